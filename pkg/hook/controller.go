package hook

import (
	"errors"
	"runtime"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ControllerOptions configures a Controller.
type ControllerOptions struct {
	Platform Platform
	Quit     *QuitSignal
	Logger   *zap.Logger
	Interval time.Duration
	// ModuleName and ProcName default to the build constants.
	ModuleName string
	ProcName   string
	Hint       string
}

// Controller drives install, message loop and teardown of one registration.
type Controller struct {
	platform Platform
	quit     *QuitSignal
	logger   *zap.Logger
	interval time.Duration
	install  Options
}

// NewController validates opts.
func NewController(opts ControllerOptions) (*Controller, error) {
	if opts.Platform == nil {
		return nil, errors.New("platform must be provided")
	}
	if opts.Quit == nil {
		return nil, errors.New("quit signal must be provided")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Controller{
		platform: opts.Platform,
		quit:     opts.Quit,
		logger:   logger,
		interval: interval,
		install: Options{
			ModuleName: opts.ModuleName,
			ProcName:   opts.ProcName,
			Logger:     logger,
			Hint:       opts.Hint,
		},
	}, nil
}

// Run installs the hook, pumps messages until quit and tears down. The hook,
// the timer and the queue all belong to the calling OS thread, so Run keeps
// its goroutine on one thread throughout.
//
// The result combines the loop outcome with every teardown failure; the
// latter are tagged ErrTeardown, see TeardownOnly.
func (c *Controller) Run() (err error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	reg, err := Install(c.platform, c.install)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, teardownErr("Close", reg.Close()))
	}()

	return RunLoop(c.platform, c.quit, c.interval, c.logger)
}
