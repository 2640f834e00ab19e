package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/osse101/IdleSect_Go/internal/accrual"
	"github.com/osse101/IdleSect_Go/internal/config"
	"github.com/osse101/IdleSect_Go/internal/database"
	"github.com/osse101/IdleSect_Go/internal/database/postgres"
	"github.com/osse101/IdleSect_Go/internal/enhance"
	"github.com/osse101/IdleSect_Go/internal/event"
	"github.com/osse101/IdleSect_Go/internal/eventlog"
	"github.com/osse101/IdleSect_Go/internal/ladder"
	"github.com/osse101/IdleSect_Go/internal/ledger"
	"github.com/osse101/IdleSect_Go/internal/notify"
	"github.com/osse101/IdleSect_Go/internal/player"
	"github.com/osse101/IdleSect_Go/internal/reward"
	"github.com/osse101/IdleSect_Go/internal/scheduler"
	"github.com/osse101/IdleSect_Go/internal/server"
	"github.com/osse101/IdleSect_Go/internal/utils"
	"github.com/osse101/IdleSect_Go/internal/validation"
	"github.com/osse101/IdleSect_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	connString := cfg.GetDBConnString()

	if err := database.MigrateUp(connString); err != nil {
		slog.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(connString)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewRepository(pool)

	bus := event.NewMemoryBus()
	eventLog := eventlog.NewService(postgres.NewEventLogRepository(pool))
	eventLog.Subscribe(bus)

	workerPool := worker.NewPool(2, 16)
	workerPool.Start()
	defer workerPool.Stop()

	sched := scheduler.New(workerPool)
	defer sched.Stop()
	sched.Schedule(24*time.Hour, worker.NewRetentionJob(eventLog, worker.DefaultEventRetentionDays))

	sink, cleanup, err := buildSink(cfg)
	if err != nil {
		slog.Error("Failed to set up notification sink", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := validateConfigs(cfg); err != nil {
		slog.Error("Config validation failed", "error", err)
		os.Exit(1)
	}

	rng := utils.DefaultSource()

	ledgerService := ledger.NewService(repo, bus)

	accrualService, err := accrual.NewService(repo, bus, sink, rng,
		filepath.Join(cfg.ConfigDir, config.FileOfflineRates))
	if err != nil {
		slog.Error("Failed to create accrual service", "error", err)
		os.Exit(1)
	}

	enhanceService, err := enhance.NewService(repo, repo, bus, sink, rng,
		filepath.Join(cfg.ConfigDir, config.FileFusionRecipes))
	if err != nil {
		slog.Error("Failed to create enhance service", "error", err)
		os.Exit(1)
	}

	ladderService, err := ladder.NewService(repo, ledgerService, sink,
		filepath.Join(cfg.ConfigDir, config.FileDailyLadder),
		filepath.Join(cfg.ConfigDir, config.FileLevelLadder))
	if err != nil {
		slog.Error("Failed to create ladder service", "error", err)
		os.Exit(1)
	}

	rewardService, err := reward.NewService(ledgerService, sink,
		filepath.Join(cfg.ConfigDir, config.FileRewardCatalog))
	if err != nil {
		slog.Error("Failed to create reward service", "error", err)
		os.Exit(1)
	}

	playerService := player.NewService(repo, bus,
		cfg.CacheSize, time.Duration(cfg.CacheTTLSeconds)*time.Second)

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, pool, server.Services{
		Accrual: accrualService,
		Enhance: enhanceService,
		Ladder:  ladderService,
		Reward:  rewardService,
		Player:  playerService,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}

// validateConfigs checks every game definition file against its JSON schema
// before any service parses it, so a malformed config fails fast at startup.
func validateConfigs(cfg *config.Config) error {
	schemaValidator := validation.NewSchemaValidator()
	schemaDir := filepath.Join(cfg.ConfigDir, config.SchemaDir)

	checks := []struct {
		file   string
		schema string
	}{
		{config.FileOfflineRates, config.SchemaOfflineRates},
		{config.FileFusionRecipes, config.SchemaFusionRecipes},
		{config.FileDailyLadder, config.SchemaLadder},
		{config.FileLevelLadder, config.SchemaLadder},
		{config.FileRewardCatalog, config.SchemaRewardCatalog},
	}

	for _, check := range checks {
		dataPath := filepath.Join(cfg.ConfigDir, check.file)
		schemaPath := filepath.Join(schemaDir, check.schema)
		if err := schemaValidator.ValidateFile(dataPath, schemaPath); err != nil {
			return err
		}
	}
	return nil
}

// buildSink selects the notification sink: Discord when configured, with a
// slog sink always attached so outcomes land in the logs either way.
func buildSink(cfg *config.Config) (notify.Sink, func(), error) {
	logSink := notify.NewSlogSink()

	if cfg.DiscordToken == "" {
		return logSink, func() {}, nil
	}

	discordSink, err := notify.NewDiscordSink(cfg.DiscordToken, cfg.DiscordChannelID)
	if err != nil {
		return nil, nil, err
	}
	if err := discordSink.Open(); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := discordSink.Close(); err != nil {
			slog.Warn("Failed to close discord session", "error", err)
		}
	}
	return notify.MultiSink{logSink, discordSink}, cleanup, nil
}
