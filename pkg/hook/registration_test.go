package hook_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/offlinefirst/debughook/pkg/hook"
	"github.com/offlinefirst/debughook/pkg/hook/hooktest"
)

func TestInstallRegistersGlobalDebugHook(t *testing.T) {
	fake := hooktest.New()

	reg, err := hook.Install(fake, hook.Options{})
	require.NoError(t, err)

	calls := fake.HookCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, hook.WHDebug, calls[0].IDHook)
	assert.Equal(t, uint32(0), calls[0].ThreadID)
	assert.NotZero(t, calls[0].Module)
	assert.Equal(t, uintptr(calls[0].Module)+0x10, calls[0].Proc)

	require.NoError(t, reg.Close())
	assert.Equal(t, []string{hooktest.OpLoad, hooktest.OpResolve, hooktest.OpSetHook, hooktest.OpUnhook, hooktest.OpFree}, fake.Ops())
	assert.Empty(t, fake.Violations())
	assert.Zero(t, fake.ActiveHooks())
	assert.Zero(t, fake.LoadedModules())
}

func TestInstallLoadFailureNeverInstalls(t *testing.T) {
	fake := hooktest.New()
	fake.LoadErr = errors.New("The specified module could not be found.")

	reg, err := hook.Install(fake, hook.Options{})
	require.Error(t, err)
	assert.Nil(t, reg)
	assert.ErrorIs(t, err, hook.ErrLoad)
	assert.Contains(t, err.Error(), hook.ModuleName)

	assert.Equal(t, []string{hooktest.OpLoad}, fake.Ops())
}

func TestInstallSymbolFailureFreesModule(t *testing.T) {
	fake := hooktest.New()
	fake.ResolveErr = errors.New("The specified procedure could not be found.")

	_, err := hook.Install(fake, hook.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, hook.ErrSymbol)
	assert.NotErrorIs(t, err, hook.ErrLoad)

	assert.Equal(t, []string{hooktest.OpLoad, hooktest.OpResolve, hooktest.OpFree}, fake.Ops())
	assert.Zero(t, fake.LoadedModules())
}

func TestInstallHookFailureFreesModuleAndCarriesHint(t *testing.T) {
	fake := hooktest.New()
	fake.SetHookErr = errors.New("Access is denied.")

	_, err := hook.Install(fake, hook.Options{Hint: "run elevated"})
	require.Error(t, err)
	assert.ErrorIs(t, err, hook.ErrInstall)
	assert.ErrorIs(t, err, fake.SetHookErr)
	assert.Contains(t, err.Error(), "run elevated")

	assert.Equal(t, 1, fake.Count(hooktest.OpFree))
	assert.Zero(t, fake.LoadedModules())
	assert.Empty(t, fake.Violations())
}

func TestCloseIsIdempotent(t *testing.T) {
	fake := hooktest.New()
	reg, err := hook.Install(fake, hook.Options{})
	require.NoError(t, err)

	require.NoError(t, reg.Close())
	require.NoError(t, reg.Close())

	assert.Equal(t, 1, fake.Count(hooktest.OpUnhook))
	assert.Equal(t, 1, fake.Count(hooktest.OpFree))
	assert.Empty(t, fake.Violations())
}

func TestCloseKeepsModuleWhenUnhookFails(t *testing.T) {
	fake := hooktest.New()
	core, logs := observer.New(zapcore.WarnLevel)
	reg, err := hook.Install(fake, hook.Options{Logger: zap.New(core)})
	require.NoError(t, err)

	fake.UnhookErr = errors.New("Invalid hook handle.")
	err = reg.Close()
	assert.ErrorIs(t, err, fake.UnhookErr)

	assert.Zero(t, fake.Count(hooktest.OpFree))
	assert.Empty(t, fake.Violations())
	assert.Equal(t, 1, logs.FilterMessageSnippet("failed to uninstall debug hook").Len())
}

func TestCloseReportsFreeFailureAsWarning(t *testing.T) {
	fake := hooktest.New()
	core, logs := observer.New(zapcore.WarnLevel)
	reg, err := hook.Install(fake, hook.Options{Logger: zap.New(core)})
	require.NoError(t, err)

	fake.FreeErr = errors.New("busy")
	err = reg.Close()
	assert.ErrorIs(t, err, fake.FreeErr)
	assert.Equal(t, 1, logs.FilterMessage("failed to free hook module").Len())
}

func TestModuleResolveAfterCloseFails(t *testing.T) {
	fake := hooktest.New()
	module, err := hook.LoadModule(fake, hook.ModuleName, nil)
	require.NoError(t, err)

	require.NoError(t, module.Close())
	_, err = module.Resolve(hook.ProcName)
	assert.ErrorIs(t, err, hook.ErrSymbol)
	assert.Equal(t, 1, fake.Count(hooktest.OpFree))
}
