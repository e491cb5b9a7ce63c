package hook

import "time"

// ModuleHandle is an opaque reference to a loaded native module.
type ModuleHandle uintptr

// HookHandle is an opaque identifier for an installed hook.
type HookHandle uintptr

// WHDebug is the SetWindowsHookEx category whose procedure runs before any
// other hook procedure.
const WHDebug = 9

const (
	// ModuleName is the file name of the injected callback module.
	ModuleName = "hook_debug.dll"
	// ProcName is the procedure the module exports for the hook chain.
	ProcName = "DebugHookProc"
	// DefaultInterval bounds how long a quit request can go unnoticed.
	DefaultInterval = time.Second
)

// System is the subset of the OS loader and hook API the controller uses.
type System interface {
	LoadLibrary(name string) (ModuleHandle, error)
	GetProcAddress(module ModuleHandle, name string) (uintptr, error)
	FreeLibrary(module ModuleHandle) error
	// SetWindowsHookEx installs proc from module; threadID 0 means every
	// thread on the desktop.
	SetWindowsHookEx(idHook int, proc uintptr, module ModuleHandle, threadID uint32) (HookHandle, error)
	UnhookWindowsHookEx(hook HookHandle) error
}

// MessageQueue is the calling thread's message queue.
type MessageQueue interface {
	// SetTimer arms a thread timer that posts WM_TIMER every interval.
	SetTimer(interval time.Duration) (uintptr, error)
	KillTimer(id uintptr) error
	// GetMessage blocks for the next message and returns the raw BOOL result:
	// -1 on failure, 0 for WM_QUIT, positive otherwise.
	GetMessage() (int32, error)
}

// Platform is implemented by the native backend.
type Platform interface {
	System
	MessageQueue
}
