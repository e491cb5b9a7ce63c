//go:build windows

package permissions

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func probeTokenElevation() (bool, error) {
	var token windows.Token
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token); err != nil {
		return false, err
	}
	defer token.Close()

	var elevation uint32
	var returnLength uint32
	err := windows.GetTokenInformation(
		token,
		windows.TokenElevation,
		(*byte)(unsafe.Pointer(&elevation)),
		uint32(unsafe.Sizeof(elevation)),
		&returnLength,
	)
	if err != nil {
		return false, err
	}
	return elevation != 0, nil
}
