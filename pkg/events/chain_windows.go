//go:build windows

package events

import "golang.org/x/sys/windows"

var procCallNextHookEx = windows.NewLazySystemDLL("user32.dll").NewProc("CallNextHookEx")

// CallNextHook passes an invocation on to the next procedure in the chain and
// returns its result. The error is only set when CallNextHookEx itself could
// not be resolved.
func CallNextHook(code int32, wParam, lParam uintptr) (uintptr, error) {
	if err := procCallNextHookEx.Find(); err != nil {
		return 0, err
	}
	r, _, _ := procCallNextHookEx.Call(0, uintptr(code), wParam, lParam)
	return r, nil
}
