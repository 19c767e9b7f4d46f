package suite

import (
	"fmt"
	"regexp"

	"digital.vasic.checks/pkg/check"
)

// Filter wraps gen so that only descriptors whose name matches
// pattern are yielded. An empty pattern keeps every descriptor.
// An invalid pattern is reported when the generator runs, so it
// surfaces as a setup error of that run.
func Filter(gen check.Generator, pattern string) check.Generator {
	if pattern == "" {
		return gen
	}
	return func() ([]check.Descriptor, error) {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf(
				"invalid filter %q: %w", pattern, err,
			)
		}
		if gen == nil {
			return nil, fmt.Errorf("filter %q: generator is nil", pattern)
		}

		descs, err := gen()
		if err != nil {
			return nil, err
		}

		kept := make([]check.Descriptor, 0, len(descs))
		for _, d := range descs {
			if re.MatchString(d.Name()) {
				kept = append(kept, d)
			}
		}
		return kept, nil
	}
}
