package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/mbaxter/adforge/internal/assembler"
	"github.com/mbaxter/adforge/internal/cache"
	"github.com/mbaxter/adforge/internal/config"
	"github.com/mbaxter/adforge/internal/db"
	"github.com/mbaxter/adforge/internal/intel"
	"github.com/mbaxter/adforge/internal/orchestrator"
	"github.com/mbaxter/adforge/internal/provider"
)

// loadConfig merges config sources: environment defaults, then the optional
// config file, then explicit CLI flag values applied by the caller.
func loadConfig(configPath string, verbose bool) (config.Config, error) {
	cfg := config.FromEnv()

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = loaded.MergeWithDefaults(cfg)
		if verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", configPath)
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildOrchestrator wires the full generation stack from config. The
// returned cleanup closes the provider and any connections.
func buildOrchestrator(ctx context.Context, cfg config.Config) (*orchestrator.Orchestrator, func(), error) {
	pc := cfg.ProviderConfig()
	if pc.APIKey == "" && pc.Name != provider.NameOffline {
		log.Printf("no API key configured; using offline provider")
		pc.Name = provider.NameOffline
	}
	p, err := provider.New(ctx, pc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create provider: %w", err)
	}

	var cleanups []func()
	cleanups = append(cleanups, func() { _ = p.Close() })
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	opts := []orchestrator.Option{
		orchestrator.WithIntel(intel.NewCollector()),
	}

	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		client := redis.NewClient(redisOpts)
		cleanups = append(cleanups, func() { _ = client.Close() })
		opts = append(opts, orchestrator.WithCache(cache.NewRedis(client, cfg.CacheTTL())))
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		cleanups = append(cleanups, database.Close)
		opts = append(opts, orchestrator.WithStore(database))
	}

	return orchestrator.New(assembler.New(p), opts...), cleanup, nil
}

// redisClient connects to the configured Redis instance.
func redisClient(cfg config.Config) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("redis URL is required (set REDIS_URL or redis_url in config)")
	}
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return redis.NewClient(redisOpts), nil
}
