//go:build windows

package hook

import (
	"errors"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procSetTimer            = user32.NewProc("SetTimer")
	procKillTimer           = user32.NewProc("KillTimer")
	procGetMessageW         = user32.NewProc("GetMessageW")
)

type msg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
	private uint32
}

type win32 struct {
	msg msg
}

// NewPlatform returns the user32/kernel32 backed implementation. The message
// queue half must be used from the OS thread that installed the hook.
func NewPlatform() Platform {
	return &win32{}
}

func (*win32) LoadLibrary(name string) (ModuleHandle, error) {
	h, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	return ModuleHandle(h), nil
}

func (*win32) GetProcAddress(module ModuleHandle, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(module), name)
}

func (*win32) FreeLibrary(module ModuleHandle) error {
	return windows.FreeLibrary(windows.Handle(module))
}

func (*win32) SetWindowsHookEx(idHook int, proc uintptr, module ModuleHandle, threadID uint32) (HookHandle, error) {
	if err := procSetWindowsHookExW.Find(); err != nil {
		return 0, err
	}
	r, _, err := procSetWindowsHookExW.Call(uintptr(idHook), proc, uintptr(module), uintptr(threadID))
	if r == 0 {
		return 0, errnoErr(err)
	}
	return HookHandle(r), nil
}

func (*win32) UnhookWindowsHookEx(hook HookHandle) error {
	if err := procUnhookWindowsHookEx.Find(); err != nil {
		return err
	}
	r, _, err := procUnhookWindowsHookEx.Call(uintptr(hook))
	if r == 0 {
		return errnoErr(err)
	}
	return nil
}

func (*win32) SetTimer(interval time.Duration) (uintptr, error) {
	if err := procSetTimer.Find(); err != nil {
		return 0, err
	}
	r, _, err := procSetTimer.Call(0, 0, uintptr(interval.Milliseconds()), 0)
	if r == 0 {
		return 0, errnoErr(err)
	}
	return r, nil
}

func (*win32) KillTimer(id uintptr) error {
	if err := procKillTimer.Find(); err != nil {
		return err
	}
	r, _, err := procKillTimer.Call(0, id)
	if r == 0 {
		return errnoErr(err)
	}
	return nil
}

func (w *win32) GetMessage() (int32, error) {
	if err := procGetMessageW.Find(); err != nil {
		return -1, err
	}
	r, _, err := procGetMessageW.Call(uintptr(unsafe.Pointer(&w.msg)), 0, 0, 0)
	res := int32(r)
	if res == -1 {
		return res, errnoErr(err)
	}
	return res, nil
}

// errnoErr drops the ERROR_SUCCESS errno LazyProc.Call always returns.
func errnoErr(err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) && errno == 0 {
		return errors.New("call failed without setting last error")
	}
	return err
}
