//go:build !windows

package logging

import (
	"os"

	"go.uber.org/zap/zapcore"
)

// DebugOutput falls back to stderr where no OS debug channel exists.
func DebugOutput() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stderr)
}
