//go:build !windows

package hook

import (
	"errors"
	"time"
)

// ErrUnsupportedPlatform is returned by every call of the stub backend.
var ErrUnsupportedPlatform = errors.New("global debug hooks require windows")

type unsupported struct{}

// NewPlatform returns a backend whose calls all fail; global hooks only exist
// on windows.
func NewPlatform() Platform {
	return unsupported{}
}

func (unsupported) LoadLibrary(string) (ModuleHandle, error) {
	return 0, ErrUnsupportedPlatform
}

func (unsupported) GetProcAddress(ModuleHandle, string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func (unsupported) FreeLibrary(ModuleHandle) error {
	return ErrUnsupportedPlatform
}

func (unsupported) SetWindowsHookEx(int, uintptr, ModuleHandle, uint32) (HookHandle, error) {
	return 0, ErrUnsupportedPlatform
}

func (unsupported) UnhookWindowsHookEx(HookHandle) error {
	return ErrUnsupportedPlatform
}

func (unsupported) SetTimer(time.Duration) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func (unsupported) KillTimer(uintptr) error {
	return ErrUnsupportedPlatform
}

func (unsupported) GetMessage() (int32, error) {
	return -1, ErrUnsupportedPlatform
}
