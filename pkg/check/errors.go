package check

import (
	"errors"
	"fmt"
)

var errNoAction = errors.New("check has no action")

// AssertionFailure signals that a check's claim did not hold.
// It is the only error an action returns that produces a
// failed outcome; any other error produces an errored one.
type AssertionFailure struct {
	Message string
}

// Error implements the error interface.
func (f *AssertionFailure) Error() string {
	return f.Message
}

// Fail returns an AssertionFailure with the given message.
func Fail(msg string) error {
	return &AssertionFailure{Message: msg}
}

// Failf returns an AssertionFailure with a formatted message.
func Failf(format string, args ...any) error {
	return &AssertionFailure{Message: fmt.Sprintf(format, args...)}
}

// Assert returns nil when cond holds and an AssertionFailure
// with the formatted message otherwise.
func Assert(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return Failf(format, args...)
}

// AsAssertionFailure reports whether err, or any error it wraps,
// is an AssertionFailure.
func AsAssertionFailure(err error) (*AssertionFailure, bool) {
	var af *AssertionFailure
	if errors.As(err, &af) {
		return af, true
	}
	return nil, false
}

// PanicError is the fault recorded when an action or generator
// panics.
type PanicError struct {
	Value any
	Stack []byte
}

// Error implements the error interface.
func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Unwrap returns the panic value when it is itself an error.
func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

// RunSetupError is returned by a run whose generator failed. No
// check executes and no report is produced.
type RunSetupError struct {
	Cause error
}

// Error implements the error interface.
func (e *RunSetupError) Error() string {
	return fmt.Sprintf("run setup failed: %v", e.Cause)
}

// Unwrap returns the generator's error.
func (e *RunSetupError) Unwrap() error {
	return e.Cause
}

// IsRunSetupError reports whether err is, or wraps, a
// RunSetupError.
func IsRunSetupError(err error) bool {
	var se *RunSetupError
	return errors.As(err, &se)
}
