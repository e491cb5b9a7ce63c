//go:build !windows

package permissions

import "errors"

func probeTokenElevation() (bool, error) {
	return false, errors.New("token elevation is only meaningful on windows")
}
