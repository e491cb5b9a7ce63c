package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/offlinefirst/debughook/internal/buildinfo"
	"github.com/offlinefirst/debughook/pkg/config"
	"github.com/offlinefirst/debughook/pkg/logging"
)

// AppContext exposes lazily initialised configuration and logging facilities.
type AppContext struct {
	Config config.Config
	Logger *zap.Logger
}

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	stdin  io.Reader
	stderr io.Writer
	appCtx *AppContext
}

// NewRootCommand constructs the debugger CLI. Invoked without a subcommand it
// runs the hook controller.
func NewRootCommand() *cobra.Command {
	return newRootCommand(os.Stdin, os.Stdout, os.Stderr)
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{stdin: stdin, stderr: stderr}

	root := &cobra.Command{
		Use:           "debugger",
		Short:         "Install a global debug hook and log input events from every process",
		Version:       versionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := opts.ensureAppContext()
			if err != nil {
				return err
			}
			return runController(ctx, opts.stdin, cmd.OutOrStdout())
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: ./debugger.yaml if present)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Override log output format (json, console)")

	root.AddCommand(newVersionCommand())
	root.AddCommand(newDoctorCommand(opts))

	return root
}

func (o *rootOptions) ensureAppContext() (*AppContext, error) {
	if o.appCtx != nil {
		return o.appCtx, nil
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	if o.logLevel != "" {
		lvl, err := config.NormalizeLogLevel(o.logLevel)
		if err != nil {
			return nil, err
		}
		cfg.Logging.Level = lvl
	}
	if o.logFormat != "" {
		format, err := config.NormalizeFormat(o.logFormat)
		if err != nil {
			return nil, err
		}
		cfg.Logging.Format = format
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: o.stderr,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded", zap.String("source", cfg.Source))

	o.appCtx = &AppContext{Config: cfg, Logger: logger}
	return o.appCtx, nil
}

func versionString() string {
	return fmt.Sprintf("%s (go%s/%s)", buildinfo.Version(), runtimeVersion(), runtimeGOOS())
}

// runtimeVersion is extracted for testability.
var runtimeVersion = func() string { return runtime.Version() }

// runtimeGOOS is extracted for testability.
var runtimeGOOS = func() string { return runtime.GOOS }
