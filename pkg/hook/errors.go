package hook

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	// ErrLoad indicates the callback module is missing or cannot be loaded.
	ErrLoad = errors.New("failed to load hook module")
	// ErrSymbol indicates the module does not export the hook procedure.
	ErrSymbol = errors.New("failed to find hook procedure")
	// ErrInstall indicates the OS refused to register the hook.
	ErrInstall = errors.New("failed to install debug hook")
	// ErrLoop indicates message retrieval failed while the hook was active.
	ErrLoop = errors.New("an error occurred in GetMessage")
	// ErrTeardown marks cleanup that did not complete. It is reported, never
	// escalated.
	ErrTeardown = errors.New("debug hook teardown incomplete")
)

type hookError struct {
	kind   error
	target string
	hint   string
	err    error
}

func (e *hookError) Error() string {
	msg := e.kind.Error()
	if e.target != "" {
		msg = fmt.Sprintf("%s %q", msg, e.target)
	}
	if e.err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.err)
	}
	if e.hint != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.hint)
	}
	return msg
}

func (e *hookError) Is(target error) bool {
	return target == e.kind
}

func (e *hookError) Unwrap() error {
	return e.err
}

func newError(kind error, target string, err error) error {
	return &hookError{kind: kind, target: target, err: err}
}

// teardownErr tags a cleanup failure so callers can tell it apart from the
// failure that ended the run. A nil err stays nil.
func teardownErr(step string, err error) error {
	if err == nil {
		return nil
	}
	return &hookError{kind: ErrTeardown, target: step, err: err}
}

// TeardownOnly reports whether err carries nothing but cleanup failures.
func TeardownOnly(err error) bool {
	errs := multierr.Errors(err)
	if len(errs) == 0 {
		return false
	}
	for _, e := range errs {
		if !errors.Is(e, ErrTeardown) {
			return false
		}
	}
	return true
}
