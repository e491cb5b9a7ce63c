package hook

import (
	"bufio"
	"io"
	"sync/atomic"

	"go.uber.org/zap"
)

// QuitSignal is a one-way flag shared by the quit listeners and the message
// loop. atomic.Bool gives the store release and the load acquire semantics.
type QuitSignal struct {
	flag atomic.Bool
}

// Set raises the signal and reports whether this call raised it.
func (q *QuitSignal) Set() bool {
	return q.flag.CompareAndSwap(false, true)
}

// IsSet reports whether a quit was requested.
func (q *QuitSignal) IsSet() bool {
	return q.flag.Load()
}

// ListenForQuit blocks until r yields a line (or ends) and then raises quit.
// The read cannot be interrupted; run it on a goroutine that is left behind
// at process exit.
func ListenForQuit(r io.Reader, quit *QuitSignal, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	_, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		logger.Warn("console read failed, treating as quit", zap.Error(err))
	}
	if quit.Set() {
		logger.Info("user requested quit")
	}
}
