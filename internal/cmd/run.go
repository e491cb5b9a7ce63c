package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/offlinefirst/debughook/pkg/events"
	"github.com/offlinefirst/debughook/pkg/hook"
	"github.com/offlinefirst/debughook/pkg/permissions"
)

var (
	newPlatform    = hook.NewPlatform
	probeElevation = permissions.ProbeElevation
	loopInterval   = hook.DefaultInterval
	notifySignals  = func(ch chan<- os.Signal) { signal.Notify(ch, os.Interrupt, syscall.SIGTERM) }
)

func runController(ctx *AppContext, stdin io.Reader, stdout io.Writer) error {
	if ctx == nil {
		return fmt.Errorf("application context unavailable")
	}

	elevation := probeElevation(nil)
	ctx.Logger.Info("starting debug hook controller",
		zap.String("module", hook.ModuleName),
		zap.String("elevation", elevation.StatusString()),
		zap.String("log_path", events.DefaultLogPath()),
	)
	if elevation.Status == permissions.StatusDenied {
		ctx.Logger.Warn("controller is not elevated", zap.String("guidance", elevation.Guidance))
	}

	quit := &hook.QuitSignal{}
	fmt.Fprintln(stdout, "Press enter to quit")
	go hook.ListenForQuit(stdin, quit, ctx.Logger)

	stop := watchSignals(quit, ctx.Logger)
	defer stop()

	controller, err := hook.NewController(hook.ControllerOptions{
		Platform: newPlatform(),
		Quit:     quit,
		Logger:   ctx.Logger,
		Interval: loopInterval,
		Hint:     elevation.Guidance,
	})
	if err != nil {
		return err
	}

	started := time.Now()
	if err := controller.Run(); err != nil {
		if !hook.TeardownOnly(err) {
			ctx.Logger.Error("debug hook controller failed", zap.Error(err))
			return err
		}
		ctx.Logger.Warn("debug hook teardown incomplete", zap.Error(err))
	}
	ctx.Logger.Info("debug hook controller stopped", zap.Duration("uptime", time.Since(started)))
	return nil
}

// watchSignals raises quit on interrupt so teardown still runs in order.
func watchSignals(quit *hook.QuitSignal, logger *zap.Logger) func() {
	ch := make(chan os.Signal, 1)
	notifySignals(ch)
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-ch:
			if quit.Set() {
				logger.Info("signal received, quitting", zap.String("signal", sig.String()))
			}
		case <-done:
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}
