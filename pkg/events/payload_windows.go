//go:build windows

package events

import (
	"errors"
	"unsafe"
)

// debugHookInfo mirrors DEBUGHOOKINFO.
type debugHookInfo struct {
	idThread          uint32
	idThreadInstaller uint32
	lParam            uintptr
	wParam            uintptr
	code              int32
}

// DebugHookPayload is the lParam of a WH_DEBUG invocation.
//
// Precondition: the value was passed to the hook procedure that is still
// executing, so it points at a live DEBUGHOOKINFO owned by the OS. It must not
// be retained past that invocation. ThreadID is the only code that
// dereferences it.
type DebugHookPayload struct {
	info *debugHookInfo
}

// NewDebugHookPayload wraps the lParam pointer handed to the hook procedure.
func NewDebugHookPayload(lParam unsafe.Pointer) DebugHookPayload {
	return DebugHookPayload{info: (*debugHookInfo)(lParam)}
}

// ThreadID reads idThread from the DEBUGHOOKINFO.
func (p DebugHookPayload) ThreadID() (uint32, error) {
	if p.info == nil {
		return 0, queryErr("read hook payload", errors.New("null DEBUGHOOKINFO pointer"))
	}
	return p.info.idThread, nil
}
