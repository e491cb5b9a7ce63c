package hook

import (
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// RunLoop pumps queue until quit is raised or WM_QUIT arrives. GetMessage
// blocks while the queue is idle, so a thread timer is armed purely to wake
// it every interval; the timer messages themselves are dropped. A failure to
// kill the timer is appended to the result as an ErrTeardown.
func RunLoop(queue MessageQueue, quit *QuitSignal, interval time.Duration, logger *zap.Logger) (err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	timer, timerErr := queue.SetTimer(interval)
	if timerErr != nil {
		// without the timer the loop only notices quit on unrelated messages
		logger.Warn("failed to arm wakeup timer", zap.Error(timerErr))
	} else {
		defer func() {
			if killErr := queue.KillTimer(timer); killErr != nil {
				logger.Warn("failed to kill wakeup timer", zap.Error(killErr))
				err = multierr.Append(err, teardownErr("KillTimer", killErr))
			}
		}()
	}

	for {
		if quit.IsSet() {
			logger.Debug("quit observed, leaving message loop")
			return nil
		}

		res, msgErr := queue.GetMessage()
		if res < 0 {
			return newError(ErrLoop, "", msgErr)
		}
		if res == 0 {
			logger.Info("received WM_QUIT")
			return nil
		}

		logger.Debug("received timer message")
	}
}
