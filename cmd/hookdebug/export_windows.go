//go:build windows

package main

/*
#include <windows.h>
*/
import "C"

import (
	"unsafe"

	"github.com/offlinefirst/debughook/pkg/events"
)

//export DebugHookProc
func DebugHookProc(code C.int, wParam C.WPARAM, lParam unsafe.Pointer) C.LRESULT {
	p := pipeline()
	w, l := uintptr(wParam), uintptr(lParam)
	next := func() uintptr {
		r, err := events.CallNextHook(int32(code), w, l)
		if err != nil {
			p.ChainFailed(err)
		}
		return r
	}
	if code < 0 {
		// negative codes must go straight down the chain
		return C.LRESULT(next())
	}
	return C.LRESULT(p.Handle(w, events.NewDebugHookPayload(lParam), next))
}
