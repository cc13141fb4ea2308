package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mbaxter/adforge/internal/queue"
)

var workerCommand = &cobra.Command{
	Use:   "worker",
	Short: "Run a generation job worker",
	Long: `Consumes queued generation jobs from Redis and stores their results.
Run one or more workers alongside 'adforge serve'.`,
	RunE: runWorkerCmd,
}

var (
	workerConfigPath string
	workerVerbose    bool
)

func init() {
	workerCommand.Flags().StringVar(&workerConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	workerCommand.Flags().BoolVarP(&workerVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(workerCommand)
}

func runWorkerCmd(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(workerConfigPath, workerVerbose)
	if err != nil {
		return err
	}

	client, err := redisClient(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	o, cleanup, err := buildOrchestrator(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	err = queue.NewWorker(queue.New(client, queue.DefaultResultTTL), o).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
