package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/offlinefirst/debughook/pkg/config"
	"github.com/offlinefirst/debughook/pkg/hook"
	"github.com/offlinefirst/debughook/pkg/hook/hooktest"
	"github.com/offlinefirst/debughook/pkg/permissions"
)

func newTestContext() *AppContext {
	return &AppContext{Config: config.Default(), Logger: zap.NewNop()}
}

func useFakePlatform(t *testing.T, fake *hooktest.Platform) {
	t.Helper()
	origPlatform, origProbe, origInterval, origNotify := newPlatform, probeElevation, loopInterval, notifySignals
	newPlatform = func() hook.Platform { return fake }
	probeElevation = func(permissions.LookupEnvFunc) permissions.ProbeResult {
		return permissions.ProbeResult{Status: permissions.StatusGranted}
	}
	loopInterval = 10 * time.Millisecond
	notifySignals = func(chan<- os.Signal) {}
	t.Cleanup(func() {
		newPlatform, probeElevation, loopInterval, notifySignals = origPlatform, origProbe, origInterval, origNotify
	})
}

func TestRunControllerLoadFailure(t *testing.T) {
	fake := hooktest.New()
	fake.LoadErr = errors.New("The specified module could not be found.")
	useFakePlatform(t, fake)

	var stdout bytes.Buffer
	err := runController(newTestContext(), strings.NewReader(""), &stdout)
	require.Error(t, err)
	assert.ErrorIs(t, err, hook.ErrLoad)
	assert.Equal(t, 2, ExitCode(err))
	assert.Equal(t, []string{hooktest.OpLoad}, fake.Ops())
	assert.Equal(t, "Press enter to quit\n", stdout.String())
}

func TestRunControllerQuitsOnEnter(t *testing.T) {
	fake := hooktest.New()
	useFakePlatform(t, fake)

	reader, writer := io.Pipe()
	done := make(chan error, 1)
	go func() { done <- runController(newTestContext(), reader, io.Discard) }()

	time.Sleep(30 * time.Millisecond)
	_, err := writer.Write([]byte("\n"))
	require.NoError(t, err)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatalf("controller did not stop")
	}

	ops := fake.Ops()
	assert.Equal(t, []string{hooktest.OpUnhook, hooktest.OpFree}, ops[len(ops)-2:])
	assert.Empty(t, fake.Violations())
}

func TestRunControllerInstallFailureCarriesGuidance(t *testing.T) {
	fake := hooktest.New()
	fake.SetHookErr = errors.New("Access is denied.")
	useFakePlatform(t, fake)
	probeElevation = func(permissions.LookupEnvFunc) permissions.ProbeResult {
		return permissions.ProbeResult{Status: permissions.StatusDenied, Guidance: permissions.ElevationGuidance}
	}

	err := runController(newTestContext(), strings.NewReader(""), io.Discard)
	require.Error(t, err)
	assert.Equal(t, 4, ExitCode(err))
	assert.Contains(t, err.Error(), permissions.ElevationGuidance)
	assert.Zero(t, fake.LoadedModules())
}

func TestRunControllerTeardownFailureIsOnlyAWarning(t *testing.T) {
	fake := hooktest.New()
	fake.FreeErr = errors.New("busy")
	useFakePlatform(t, fake)

	core, logs := observer.New(zapcore.WarnLevel)
	ctx := &AppContext{Config: config.Default(), Logger: zap.New(core)}

	// EOF on stdin raises quit straight away
	require.NoError(t, runController(ctx, strings.NewReader(""), io.Discard))
	assert.Equal(t, 1, logs.FilterMessage("debug hook teardown incomplete").Len())
	assert.Zero(t, logs.FilterMessage("debug hook controller failed").Len())
}

func TestRunControllerRequiresContext(t *testing.T) {
	assert.Error(t, runController(nil, strings.NewReader(""), io.Discard))
}

func TestExitCode(t *testing.T) {
	fake := hooktest.New()
	fake.ResolveErr = errors.New("missing export")
	_, err := hook.Install(fake, hook.Options{})

	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 3, ExitCode(err))
	assert.Equal(t, 1, ExitCode(errors.New("other")))
}
