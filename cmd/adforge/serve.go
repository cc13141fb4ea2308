package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbaxter/adforge/internal/queue"
	"github.com/mbaxter/adforge/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the REST API. With Redis configured, generation requests are
enqueued for workers and answered with a job ID; without Redis they run
synchronously in the request.`,
	RunE: runServeCmd,
}

var (
	serveConfigPath string
	serveAddr       string
	serveSync       bool
	serveVerbose    bool
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCommand.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080)")
	serveCommand.Flags().BoolVar(&serveSync, "sync", false, "Run generation synchronously even when Redis is configured")
	serveCommand.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(serveConfigPath, serveVerbose)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveAddr
	}

	o, cleanup, err := buildOrchestrator(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	var jobs *queue.Queue
	if cfg.RedisURL != "" && !serveSync {
		client, err := redisClient(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		jobs = queue.New(client, queue.DefaultResultTTL)
		fmt.Println("Job queue enabled; run 'adforge worker' to process jobs")
	}

	return server.New(server.Config{Addr: cfg.Addr}, o, jobs).Start()
}
