//go:build windows

package logging

import (
	"strings"
	"unsafe"

	"go.uber.org/zap/zapcore"
	"golang.org/x/sys/windows"
)

var procOutputDebugStringW = windows.NewLazySystemDLL("kernel32.dll").NewProc("OutputDebugStringW")

type debugOutput struct{}

// DebugOutput returns a sink that forwards every write to OutputDebugStringW.
// Injected processes usually have no console, so this is the only channel a
// debugger or DebugView can observe.
func DebugOutput() zapcore.WriteSyncer {
	return debugOutput{}
}

func (debugOutput) Write(p []byte) (int, error) {
	msg, err := windows.UTF16PtrFromString(strings.TrimRight(string(p), "\r\n"))
	if err != nil {
		// embedded NUL; the channel cannot carry it
		return 0, err
	}
	if err := procOutputDebugStringW.Find(); err != nil {
		return 0, err
	}
	procOutputDebugStringW.Call(uintptr(unsafe.Pointer(msg)))
	return len(p), nil
}

func (debugOutput) Sync() error { return nil }
