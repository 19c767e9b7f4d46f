package check

import (
	"context"
	"fmt"
	"sort"
)

// ForEach returns a generator with one descriptor per value. The
// name of each descriptor is fmt.Sprintf(format, value).
func ForEach[T any](
	format string,
	values []T,
	fn func(ctx context.Context, value T) error,
) Generator {
	return func() ([]Descriptor, error) {
		descs := make([]Descriptor, 0, len(values))
		for _, v := range values {
			descs = append(descs, New(
				fmt.Sprintf(format, v),
				func(ctx context.Context) error {
					return fn(ctx, v)
				},
			))
		}
		return descs, nil
	}
}

type orderedEntry struct {
	order int
	desc  Descriptor
}

// Ordered collects descriptors with an explicit order number.
// Descriptors sort ascending by order; ties keep the order in
// which they were added.
type Ordered struct {
	entries []orderedEntry
}

// Add appends a descriptor with the given order number and
// returns the receiver for chaining.
func (o *Ordered) Add(order int, desc Descriptor) *Ordered {
	o.entries = append(o.entries, orderedEntry{order: order, desc: desc})
	return o
}

// Descriptors returns the descriptors sorted by order number.
func (o *Ordered) Descriptors() []Descriptor {
	entries := make([]orderedEntry, len(o.entries))
	copy(entries, o.entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].order < entries[j].order
	})

	out := make([]Descriptor, len(entries))
	for i, e := range entries {
		out[i] = e.desc
	}
	return out
}

// Generator returns a generator yielding the sorted descriptors.
func (o *Ordered) Generator() Generator {
	return func() ([]Descriptor, error) {
		return o.Descriptors(), nil
	}
}
