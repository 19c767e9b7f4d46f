// Package check defines the data model of a dynamic check run:
// descriptors produced by a generator, the outcomes recorded for
// them, and the error types that separate an assertion failure
// from an unexpected fault.
package check

import "context"

// Action is the body of a check. It returns nil when the check's
// claim holds, an *AssertionFailure when it does not, and any
// other error when the check itself could not run. The context
// carries cancellation only. The runner calls each action on a
// goroutine of its own, so a panic or runtime.Goexit in it only
// errors that check.
type Action func(ctx context.Context) error

// Generator computes the descriptors of a run. It is invoked
// exactly once per run, before any check executes.
type Generator func() ([]Descriptor, error)

// Descriptor is a named check that has not run yet. The zero
// value is not usable; build descriptors with New.
type Descriptor struct {
	name   string
	action Action
}

// New creates a Descriptor. A nil action produces a check that
// always errors when run.
func New(name string, action Action) Descriptor {
	return Descriptor{name: name, action: action}
}

// Name returns the human-readable name of the check.
func (d Descriptor) Name() string {
	return d.name
}

// Run invokes the check's action. Panics are not recovered
// here; the runner converts them into errored outcomes.
func (d Descriptor) Run(ctx context.Context) error {
	if d.action == nil {
		return errNoAction
	}
	return d.action(ctx)
}

// Static returns a generator that yields the given descriptors.
func Static(descs ...Descriptor) Generator {
	return func() ([]Descriptor, error) {
		out := make([]Descriptor, len(descs))
		copy(out, descs)
		return out, nil
	}
}

// Concat returns a generator yielding the descriptors of every
// given generator in sequence. The first generator error aborts
// the combined generator.
func Concat(gens ...Generator) Generator {
	return func() ([]Descriptor, error) {
		var out []Descriptor
		for _, g := range gens {
			descs, err := g()
			if err != nil {
				return nil, err
			}
			out = append(out, descs...)
		}
		return out, nil
	}
}
