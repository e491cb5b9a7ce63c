package permissions

import (
	"os"
	"strings"
)

// Status enumerates coarse permission results.
type Status string

const (
	// StatusUnknown indicates no explicit signal about permission state.
	StatusUnknown Status = "unknown"
	// StatusGranted signals that the process holds the privilege.
	StatusGranted Status = "granted"
	// StatusDenied indicates the privilege is missing.
	StatusDenied Status = "denied"
	// StatusUnavailable reports that the capability is not supported.
	StatusUnavailable Status = "unavailable"
)

// ElevationGuidance is attached to install failures from a non-elevated controller.
const ElevationGuidance = "run the debugger from an elevated prompt; hooks only reach processes at or below the controller's integrity level"

// ProbeResult represents the coarse state for a permission surface.
type ProbeResult struct {
	Status   Status
	Message  string
	Guidance string
}

// LookupEnvFunc exposes environment probing for testability.
type LookupEnvFunc func(string) (string, bool)

// lookupEnv is declared for swapping in tests.
var lookupEnv = func(key string) (string, bool) {
	return os.LookupEnv(key)
}

// tokenElevated is implemented per platform.
var tokenElevated = probeTokenElevation

// ProbeElevation reports whether the controller runs with an elevated token.
// HOOK_ELEVATION overrides the platform probe.
func ProbeElevation(lookup LookupEnvFunc) ProbeResult {
	if lookup == nil {
		lookup = lookupEnv
	}
	if value, ok := lookup("HOOK_ELEVATION"); ok {
		return interpretPermissionFlag("elevation", value)
	}

	elevated, err := tokenElevated()
	if err != nil {
		return ProbeResult{Status: StatusUnavailable, Message: err.Error()}
	}
	if elevated {
		return ProbeResult{Status: StatusGranted, Message: "process token is elevated"}
	}
	return ProbeResult{Status: StatusDenied, Message: "process token is not elevated", Guidance: ElevationGuidance}
}

func interpretPermissionFlag(name, value string) ProbeResult {
	normalised := strings.ToLower(strings.TrimSpace(value))
	switch normalised {
	case "granted", "allow", "allowed", "yes", "true":
		return ProbeResult{Status: StatusGranted, Message: name + " pre-authorised via env override"}
	case "denied", "no", "false", "blocked":
		return ProbeResult{Status: StatusDenied, Message: name + " denied via env override", Guidance: ElevationGuidance}
	case "unavailable", "unsupported":
		return ProbeResult{Status: StatusUnavailable, Message: name + " unavailable on this platform"}
	default:
		return ProbeResult{Status: StatusUnknown, Message: name + " state unknown"}
	}
}

// StatusString returns the string representation used in logs and reports.
func (p ProbeResult) StatusString() string {
	if p.Status == "" {
		return string(StatusUnknown)
	}
	return string(p.Status)
}
