package hook

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// Options configures Install.
type Options struct {
	ModuleName string
	ProcName   string
	Logger     *zap.Logger
	// Hint is appended to install failures, e.g. elevation guidance.
	Hint string
}

// Registration is an installed global debug hook together with the module
// that hosts its callback.
type Registration struct {
	module *Module
	handle HookHandle
	sys    System
	logger *zap.Logger

	once     sync.Once
	closeErr error
}

// Install loads the module, resolves the callback and registers it as a
// WH_DEBUG hook on every thread. If any step after loading fails the module
// is released before Install returns.
func Install(sys System, opts Options) (reg *Registration, err error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	moduleName := opts.ModuleName
	if moduleName == "" {
		moduleName = ModuleName
	}
	procName := opts.ProcName
	if procName == "" {
		procName = ProcName
	}

	module, err := LoadModule(sys, moduleName, logger)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = module.Close()
		}
	}()

	callback, err := module.Resolve(procName)
	if err != nil {
		return nil, err
	}

	handle, err := sys.SetWindowsHookEx(WHDebug, callback.Addr, module.Handle(), 0)
	if err == nil && handle == 0 {
		err = errors.New("null hook handle")
	}
	if err != nil {
		return nil, &hookError{kind: ErrInstall, target: moduleName, hint: opts.Hint, err: err}
	}

	logger.Info("installed debug hook", zap.String("module", moduleName), zap.String("proc", procName))
	return &Registration{module: module, handle: handle, sys: sys, logger: logger}, nil
}

// Close unregisters the hook and then unloads the module. If the hook cannot
// be removed the module stays loaded, since the OS may still call into it;
// process exit releases both. Failures are logged and returned, and only the
// first call does any work.
func (r *Registration) Close() error {
	r.once.Do(func() {
		if err := r.sys.UnhookWindowsHookEx(r.handle); err != nil {
			r.logger.Warn("failed to uninstall debug hook, leaving module loaded", zap.Error(err))
			r.closeErr = err
			return
		}
		r.logger.Info("uninstalled debug hook")
		r.closeErr = r.module.Close()
	})
	return r.closeErr
}
