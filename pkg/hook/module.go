package hook

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// Module owns a loaded callback module.
type Module struct {
	sys    System
	name   string
	handle ModuleHandle
	logger *zap.Logger

	mu     sync.Mutex
	closed bool
}

// Callback is a procedure address borrowed from a Module. It is only valid
// while that Module is loaded.
type Callback struct {
	Addr   uintptr
	Name   string
	module *Module
}

// LoadModule loads the named module through sys.
func LoadModule(sys System, name string, logger *zap.Logger) (*Module, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	handle, err := sys.LoadLibrary(name)
	if err != nil {
		return nil, newError(ErrLoad, name, err)
	}
	if handle == 0 {
		return nil, newError(ErrLoad, name, errors.New("loader returned a null handle"))
	}
	logger.Debug("loaded hook module", zap.String("module", name))
	return &Module{sys: sys, name: name, handle: handle, logger: logger}, nil
}

// Handle returns the module handle the hook must be scoped to.
func (m *Module) Handle() ModuleHandle {
	return m.handle
}

// Resolve looks up an exported procedure.
func (m *Module) Resolve(name string) (Callback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return Callback{}, newError(ErrSymbol, name, errors.New("module already unloaded"))
	}

	addr, err := m.sys.GetProcAddress(m.handle, name)
	if err != nil {
		return Callback{}, newError(ErrSymbol, name, err)
	}
	if addr == 0 {
		return Callback{}, newError(ErrSymbol, name, errors.New("null procedure address"))
	}
	m.logger.Debug("resolved hook procedure", zap.String("module", m.name), zap.String("proc", name))
	return Callback{Addr: addr, Name: name, module: m}, nil
}

// Close unloads the module. Calls after the first are no-ops.
func (m *Module) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true

	if err := m.sys.FreeLibrary(m.handle); err != nil {
		m.logger.Warn("failed to free hook module", zap.String("module", m.name), zap.Error(err))
		return err
	}
	m.logger.Debug("freed hook module", zap.String("module", m.name))
	return nil
}
