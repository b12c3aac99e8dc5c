package cmd

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/kubev2v/vm-snapshots/internal/config"
	"github.com/kubev2v/vm-snapshots/internal/models"
	"github.com/kubev2v/vm-snapshots/internal/services"
	"github.com/kubev2v/vm-snapshots/pkg/console"
	srvErrors "github.com/kubev2v/vm-snapshots/pkg/errors"
	"github.com/kubev2v/vm-snapshots/pkg/vmware"
)

const logoutTimeout = 10 * time.Second

func NewRunCommand(cfg *config.Configuration) *cobra.Command {
	requiredFlags := map[*pflag.Flag]bool{}

	runCmd := &cobra.Command{
		Use:          "run",
		Short:        "Show a VM and run one snapshot operation on it",
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			viper.SetEnvPrefix(envPrefix)
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()
			cobraflags.PresetRequiredFlags(envPrefix, requiredFlags, cmd)

			return validateConfiguration(cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			zap.S().Named("run").Debugw("starting", "configuration", cfg.DebugMap())
			return run(cmd, cfg)
		},
	}

	registerFlags(runCmd, cfg)

	for _, name := range []string{"server", "vm-name", "username", "password"} {
		_ = runCmd.MarkFlagRequired(name)
		requiredFlags[runCmd.Flags().Lookup(name)] = true
	}

	return runCmd
}

func registerFlags(cmd *cobra.Command, cfg *config.Configuration) {
	// vSphere flags
	cmd.Flags().StringVar(&cfg.VSphere.Server, "server", cfg.VSphere.Server, "vCenter host, host:port or SDK URL")
	cmd.Flags().StringVar(&cfg.VSphere.VMName, "vm-name", cfg.VSphere.VMName, "Exact name of the virtual machine")
	cmd.Flags().StringVar(&cfg.VSphere.Username, "username", cfg.VSphere.Username, "vCenter username")
	cmd.Flags().StringVar(&cfg.VSphere.Password, "password", cfg.VSphere.Password, "vCenter password")
	cmd.Flags().BoolVar(&cfg.VSphere.Insecure, "insecure", cfg.VSphere.Insecure, "Skip TLS certificate verification")

	// workflow flags
	cmd.Flags().DurationVar(&cfg.Workflow.TaskTimeout, "task-timeout", cfg.Workflow.TaskTimeout, "Bound on each remote task wait, 0 waits forever")
	cmd.Flags().BoolVar(&cfg.Workflow.CheckPrivileges, "check-privileges", cfg.Workflow.CheckPrivileges, "Check the user privileges before changing the VM")
}

func run(cmd *cobra.Command, cfg *config.Configuration) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := vmware.NewVsphereClient(ctx, vmware.ServerURL(cfg.VSphere.Server), cfg.VSphere.Username, cfg.VSphere.Password, cfg.VSphere.Insecure)
	if err != nil {
		return err
	}
	defer func() {
		logoutCtx, cancel := context.WithTimeout(context.Background(), logoutTimeout)
		defer cancel()
		if logoutErr := client.Logout(logoutCtx); logoutErr != nil {
			zap.S().Named("run").Warnw("failed to log out from vCenter", "error", logoutErr)
			err = multierr.Append(err, fmt.Errorf("failed to log out: %w", logoutErr))
		}
	}()

	vm, err := vmware.NewInventoryFinder(client.Client).FindVMByName(ctx, cfg.VSphere.VMName)
	if err != nil {
		return err
	}
	target := models.VMTarget{Moid: vm.Reference().Value, Name: cfg.VSphere.VMName}

	operator := vmware.NewVMManager(client, cfg.VSphere.Username).WithTaskTimeout(cfg.Workflow.TaskTimeout)
	srv := services.NewSnapshotService(operator, console.New(cmd.InOrStdin(), cmd.OutOrStdout()), cmd.OutOrStdout()).
		WithPrivilegeCheck(cfg.Workflow.CheckPrivileges)

	if err := srv.Describe(ctx, target); err != nil {
		return err
	}

	op, err := srv.SelectOperation()
	if err != nil {
		return err
	}

	return srv.Run(ctx, op, target)
}

func validateConfiguration(cfg *config.Configuration) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("flag")
	})

	var problems []string
	if err := validate.Struct(cfg); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return srvErrors.NewConfigurationError(err.Error())
		}
		for _, fe := range fieldErrors {
			switch fe.Tag() {
			case "required":
				problems = append(problems, fmt.Sprintf("%s cannot be empty", fe.Field()))
			case "oneof":
				problems = append(problems, fmt.Sprintf("invalid %s %q: must be one of %s", fe.Field(), fe.Value(), fe.Param()))
			default:
				problems = append(problems, fmt.Sprintf("invalid %s", fe.Field()))
			}
		}
	}

	if cfg.Workflow.TaskTimeout < 0 {
		problems = append(problems, "task-timeout cannot be negative")
	}

	if len(problems) > 0 {
		return srvErrors.NewConfigurationError(problems...)
	}
	return nil
}
