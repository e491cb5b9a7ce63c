package events

import (
	"runtime"

	"github.com/offlinefirst/debughook/pkg/permissions"
)

// Environment summarises hook backend support on this host.
type Environment struct {
	Provider   string
	Available  bool
	Permission string
	Message    string
	Guidance   string
	LogPath    string
}

const (
	providerDebugHook = "windows_debug_hook"
	providerStub      = "stub"
)

// goos is extracted for testability.
var goos = func() string { return runtime.GOOS }

// DetectEnvironment reports whether a global debug hook can be installed and
// how far it will reach.
func DetectEnvironment(lookup permissions.LookupEnvFunc) Environment {
	elevation := permissions.ProbeElevation(lookup)
	env := Environment{
		Provider:   providerStub,
		Permission: elevation.StatusString(),
		Message:    elevation.Message,
		Guidance:   elevation.Guidance,
		LogPath:    DefaultLogPath(),
	}

	if goos() != "windows" {
		env.Permission = "not_applicable"
		env.Message = "global hooks are only available on windows"
		return env
	}

	env.Provider = providerDebugHook
	env.Available = true
	if elevation.Status == permissions.StatusDenied {
		env.Message = "hook will not reach elevated processes"
	}
	return env
}
