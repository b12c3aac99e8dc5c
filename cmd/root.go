package cmd

import (
	"github.com/google/uuid"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kubev2v/vm-snapshots/internal/config"
	srvErrors "github.com/kubev2v/vm-snapshots/pkg/errors"
)

const envPrefix = "SNAPSHOTS"

const (
	ExitOK = iota
	ExitFailure
	ExitVCenter
	ExitVMNotFound
	ExitConfiguration
)

// NewRootCommand returns the vm-snapshots command tree sharing cfg.
func NewRootCommand(cfg *config.Configuration) *cobra.Command {
	root := &cobra.Command{
		Use:               "vm-snapshots",
		Short:             "Manage the snapshots of a vSphere virtual machine",
		SilenceUsage:      true,
		PersistentPreRunE: cobrautil.CommandStack(cobrautil.SyncViperPreRunE(envPrefix), setupLogger(cfg)),
	}

	root.PersistentFlags().StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "Log format: console or json")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return srvErrors.NewConfigurationError(err.Error())
	})

	root.AddCommand(NewRunCommand(cfg))

	return root
}

// ExitCode maps the error returned by the command tree to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case srvErrors.IsConfigurationError(err):
		return ExitConfiguration
	case srvErrors.IsResourceNotFoundError(err):
		return ExitVMNotFound
	case srvErrors.IsVCenterError(err):
		return ExitVCenter
	default:
		return ExitFailure
	}
}

func setupLogger(cfg *config.Configuration) cobrautil.CobraRunFunc {
	return func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cfg.Log)
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)
		return nil
	}
}

// newLogger builds a logger writing to stderr so it never mixes with the prompts on stdout.
func newLogger(cfg config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, srvErrors.NewConfigurationError("invalid log-level: " + cfg.Level)
	}

	var zc zap.Config
	switch cfg.Format {
	case "console":
		zc = zap.NewDevelopmentConfig()
	case "json":
		zc = zap.NewProductionConfig()
	default:
		return nil, srvErrors.NewConfigurationError("invalid log-format: " + cfg.Format)
	}

	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true

	return zc.Build(zap.Fields(zap.String("run_id", uuid.NewString())))
}
