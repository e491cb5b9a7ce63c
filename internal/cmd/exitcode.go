package cmd

import (
	"errors"

	"github.com/offlinefirst/debughook/pkg/hook"
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, hook.ErrLoad):
		return 2
	case errors.Is(err, hook.ErrSymbol):
		return 3
	case errors.Is(err, hook.ErrInstall):
		return 4
	case errors.Is(err, hook.ErrLoop):
		return 5
	default:
		return 1
	}
}
