package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Debug("installed debug hook", zap.String("module", "hook_debug.dll"))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "installed debug hook", entry["msg"])
	assert.Equal(t, "hook_debug.dll", entry["module"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("failed to free hook module")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "failed to free hook module")
	assert.Contains(t, out, "WARN")
}

func TestNewRejectsUnknownOptions(t *testing.T) {
	_, err := New(Options{Level: "verbose"})
	assert.Error(t, err)

	_, err = New(Options{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

type bufferSyncer struct {
	bytes.Buffer
}

func (*bufferSyncer) Sync() error { return nil }

func TestNewDiagnosticWritesBareMessage(t *testing.T) {
	var ws bufferSyncer
	logger := NewDiagnostic(zapcore.AddSync(&ws))

	logger.Error("an error occurred: failed to open thread", zap.Error(errors.New("access denied")))

	line := strings.TrimSpace(ws.String())
	assert.True(t, strings.HasPrefix(line, "an error occurred: failed to open thread"), line)
	assert.Contains(t, line, "access denied")
}

type failingSyncer struct{}

func (failingSyncer) Write([]byte) (int, error) { return 0, errors.New("string contains NUL") }
func (failingSyncer) Sync() error { return nil }

func TestNewDiagnosticNeverWritesToStderr(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stderr
	os.Stderr = w
	t.Cleanup(func() { os.Stderr = orig })

	logger := NewDiagnostic(failingSyncer{})
	logger.Error("an error occurred: failed to write to file")
	os.Stderr = orig
	require.NoError(t, w.Close())

	leaked, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Empty(t, leaked)
}
