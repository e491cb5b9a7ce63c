package permissions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeLookup map[string]string

func (f fakeLookup) get(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

func TestInterpretPermissionFlag(t *testing.T) {
	cases := map[string]struct {
		value    string
		expected Status
	}{
		"granted":     {"granted", StatusGranted},
		"denied":      {"denied", StatusDenied},
		"unsupported": {"unsupported", StatusUnavailable},
		"unknown":     {"", StatusUnknown},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			res := interpretPermissionFlag("test", tc.value)
			assert.Equal(t, tc.expected, res.Status)
		})
	}
}

func TestProbeElevationHonoursEnv(t *testing.T) {
	res := ProbeElevation(fakeLookup{"HOOK_ELEVATION": "denied"}.get)
	assert.Equal(t, StatusDenied, res.Status)
	assert.Equal(t, ElevationGuidance, res.Guidance)
}

func TestProbeElevationUsesToken(t *testing.T) {
	orig := tokenElevated
	defer func() { tokenElevated = orig }()

	tokenElevated = func() (bool, error) { return true, nil }
	assert.Equal(t, StatusGranted, ProbeElevation(fakeLookup{}.get).Status)

	tokenElevated = func() (bool, error) { return false, nil }
	res := ProbeElevation(fakeLookup{}.get)
	assert.Equal(t, StatusDenied, res.Status)
	assert.NotEmpty(t, res.Guidance)

	tokenElevated = func() (bool, error) { return false, errors.New("no token") }
	assert.Equal(t, StatusUnavailable, ProbeElevation(fakeLookup{}.get).Status)
}

func TestStatusStringDefaultsToUnknown(t *testing.T) {
	assert.Equal(t, "unknown", ProbeResult{}.StatusString())
}
