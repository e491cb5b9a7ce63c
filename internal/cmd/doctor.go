package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/offlinefirst/debughook/pkg/events"
	"github.com/offlinefirst/debughook/pkg/hook"
)

var executablePath = os.Executable

func newDoctorCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Report whether the debug hook can be installed on this host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := opts.ensureAppContext()
			if err != nil {
				return err
			}
			ctx.Logger.Debug("doctor command invoked")
			printDoctorReport(cmd.OutOrStdout(), events.DetectEnvironment(nil))
			return nil
		},
	}
}

func printDoctorReport(out io.Writer, env events.Environment) {
	fmt.Fprintf(out, "Hook backend: %s (available=%t)\n", env.Provider, env.Available)
	fmt.Fprintf(out, "  elevation: %s\n", env.Permission)
	if env.Message != "" {
		fmt.Fprintf(out, "  note: %s\n", env.Message)
	}
	if env.Guidance != "" {
		fmt.Fprintf(out, "  guidance: %s\n", env.Guidance)
	}

	if path, err := locateModule(); err != nil {
		fmt.Fprintf(out, "Hook module: %s not found (%v)\n", hook.ModuleName, err)
	} else {
		fmt.Fprintf(out, "Hook module: %s\n", path)
	}
	fmt.Fprintf(out, "  exported procedure: %s\n", hook.ProcName)
	fmt.Fprintf(out, "Shared log: %s\n", env.LogPath)
}

// locateModule checks the places LoadLibrary looks first: the executable's
// directory, then the working directory.
func locateModule() (string, error) {
	var dirs []string
	if exe, err := executablePath(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, hook.ModuleName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", errors.New("not next to the executable or in the working directory")
}
