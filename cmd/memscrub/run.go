package main

import (
	"context"
	goerrors "errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/spf13/cobra"

	"memscrub/config"
	"memscrub/internal/core/services/stress"
	"memscrub/pkg/errors"
	"memscrub/pkg/logger"
)

var confPath string

// errFaultsDetected is returned instead of exiting directly so that
// deferred cleanup (log flush, signal handler release) still runs;
// main maps it to a nonzero exit status.
var errFaultsDetected = goerrors.New("memory faults detected")

func init() {
	runCmd.Flags().StringVarP(&confPath, "config", "c", "config.yaml", "Path to the configuration file.")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs a stress pass over host memory using the configured copy variant.",
	Long: `The 'run' command reads the specified YAML configuration file, sizes the
test regions against available host memory and drives the stress workers
until the configured duration or pass budget is spent.`,
	// Runtime failures are not usage mistakes; do not dump help text.
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(confPath)
		if err != nil {
			return err
		}

		log := logger.NewWithLevel("memscrub", cfg.LogLevel)
		defer log.Sync()

		if vm, err := mem.VirtualMemory(); err == nil {
			log.Infow("host memory",
				"total", vm.Total,
				"available", vm.Available,
				"used_percent", vm.UsedPercent,
			)
		}

		runner, err := stress.New(cfg.StressOptions(), log)
		if err != nil {
			if verr := errors.AsValidationError(err); verr != nil {
				log.Errorw("invalid stress options", "field", verr.Field, "value", verr.Value, "error", verr.Err)
			} else {
				log.Errorw("failed to assemble stress run", "error", err)
			}
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		summary, err := runner.Run(ctx)
		if err != nil {
			log.Errorw("stress run failed", "error", err)
			return err
		}

		if err := runner.Close(context.Background()); err != nil {
			log.Errorw("error closing runner", "error", err)
		}

		if summary.Faults > 0 {
			log.Errorw("memory faults detected", "faults", summary.Faults)
			return errFaultsDetected
		}
		return nil
	},
}
