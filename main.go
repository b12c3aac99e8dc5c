package main

import (
	"os"

	"github.com/kubev2v/vm-snapshots/cmd"
	"github.com/kubev2v/vm-snapshots/internal/config"
)

func main() {
	cfg := config.NewConfigurationWithOptionsAndDefaults()

	if err := cmd.NewRootCommand(cfg).Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
