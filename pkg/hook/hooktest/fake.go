// Package hooktest provides an in-memory hook.Platform that records every
// call, for exercising the controller without a Windows desktop.
package hooktest

import (
	"fmt"
	"sync"
	"time"

	"github.com/offlinefirst/debughook/pkg/hook"
)

// Op names recorded by Platform.
const (
	OpLoad       = "LoadLibrary"
	OpResolve    = "GetProcAddress"
	OpFree       = "FreeLibrary"
	OpSetHook    = "SetWindowsHookEx"
	OpUnhook     = "UnhookWindowsHookEx"
	OpSetTimer   = "SetTimer"
	OpKillTimer  = "KillTimer"
	OpGetMessage = "GetMessage"
)

// Platform fakes the loader, hook and message queue APIs.
type Platform struct {
	LoadErr    error
	ResolveErr error
	SetHookErr error
	UnhookErr  error
	FreeErr    error
	TimerErr   error
	KillErr    error
	// Messages are returned by GetMessage in order; once exhausted GetMessage
	// waits for the armed timer interval and returns 1.
	Messages []int32
	// MessageErr accompanies a scripted -1.
	MessageErr error

	mu         sync.Mutex
	ops        []string
	loaded     map[hook.ModuleHandle]bool
	hooks      map[hook.HookHandle]bool
	interval   time.Duration
	violations []string
	nextHandle uintptr
	hookParams []HookCall
}

// HookCall captures the SetWindowsHookEx arguments.
type HookCall struct {
	IDHook   int
	Proc     uintptr
	Module   hook.ModuleHandle
	ThreadID uint32
}

var _ hook.Platform = (*Platform)(nil)

// New returns an empty fake.
func New() *Platform {
	return &Platform{
		loaded: make(map[hook.ModuleHandle]bool),
		hooks:  make(map[hook.HookHandle]bool),
	}
}

func (p *Platform) record(op string) {
	p.ops = append(p.ops, op)
}

func (p *Platform) handle() uintptr {
	p.nextHandle += 0x1000
	return p.nextHandle
}

// Ops returns the recorded call sequence.
func (p *Platform) Ops() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.ops...)
}

// Count returns how many times op was called.
func (p *Platform) Count(op string) int {
	n := 0
	for _, o := range p.Ops() {
		if o == op {
			n++
		}
	}
	return n
}

// Violations lists modules freed while a hook into them was still active.
func (p *Platform) Violations() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.violations...)
}

// HookCalls returns the recorded SetWindowsHookEx arguments.
func (p *Platform) HookCalls() []HookCall {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]HookCall(nil), p.hookParams...)
}

// ActiveHooks reports how many hooks are still registered.
func (p *Platform) ActiveHooks() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.hooks)
}

// LoadedModules reports how many modules are still loaded.
func (p *Platform) LoadedModules() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.loaded)
}

func (p *Platform) LoadLibrary(name string) (hook.ModuleHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record(OpLoad)
	if p.LoadErr != nil {
		return 0, p.LoadErr
	}
	h := hook.ModuleHandle(p.handle())
	p.loaded[h] = true
	return h, nil
}

func (p *Platform) GetProcAddress(module hook.ModuleHandle, name string) (uintptr, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record(OpResolve)
	if p.ResolveErr != nil {
		return 0, p.ResolveErr
	}
	if !p.loaded[module] {
		return 0, fmt.Errorf("module %#x not loaded", module)
	}
	return uintptr(module) + 0x10, nil
}

func (p *Platform) FreeLibrary(module hook.ModuleHandle) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record(OpFree)
	if len(p.hooks) > 0 {
		p.violations = append(p.violations, fmt.Sprintf("module %#x freed with %d active hooks", module, len(p.hooks)))
	}
	if !p.loaded[module] {
		p.violations = append(p.violations, fmt.Sprintf("module %#x freed twice", module))
	}
	if p.FreeErr != nil {
		return p.FreeErr
	}
	delete(p.loaded, module)
	return nil
}

func (p *Platform) SetWindowsHookEx(idHook int, proc uintptr, module hook.ModuleHandle, threadID uint32) (hook.HookHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record(OpSetHook)
	p.hookParams = append(p.hookParams, HookCall{IDHook: idHook, Proc: proc, Module: module, ThreadID: threadID})
	if p.SetHookErr != nil {
		return 0, p.SetHookErr
	}
	h := hook.HookHandle(p.handle())
	p.hooks[h] = true
	return h, nil
}

func (p *Platform) UnhookWindowsHookEx(h hook.HookHandle) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record(OpUnhook)
	if !p.hooks[h] {
		p.violations = append(p.violations, fmt.Sprintf("hook %#x removed twice", h))
	}
	if p.UnhookErr != nil {
		return p.UnhookErr
	}
	delete(p.hooks, h)
	return nil
}

func (p *Platform) SetTimer(interval time.Duration) (uintptr, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record(OpSetTimer)
	if p.TimerErr != nil {
		return 0, p.TimerErr
	}
	p.interval = interval
	return 1, nil
}

func (p *Platform) KillTimer(id uintptr) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record(OpKillTimer)
	p.interval = 0
	return p.KillErr
}

func (p *Platform) GetMessage() (int32, error) {
	p.mu.Lock()
	p.record(OpGetMessage)
	if len(p.Messages) > 0 {
		res := p.Messages[0]
		p.Messages = p.Messages[1:]
		p.mu.Unlock()
		if res < 0 {
			return res, p.MessageErr
		}
		return res, nil
	}
	interval := p.interval
	p.mu.Unlock()

	if interval <= 0 {
		// nothing would ever wake a real GetMessage; keep tests from spinning
		interval = time.Hour
	}
	time.Sleep(interval)
	return 1, nil
}
