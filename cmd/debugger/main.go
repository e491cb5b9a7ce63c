package main

import (
	"fmt"
	"os"

	"github.com/offlinefirst/debughook/internal/buildinfo"
	"github.com/offlinefirst/debughook/internal/cmd"
)

// version is injected at build time with -ldflags "-X main.version=...".
var version string

func main() {
	buildinfo.SetVersion(version)

	root := cmd.NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cmd.ExitCode(err))
	}
}
