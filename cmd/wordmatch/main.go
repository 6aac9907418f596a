package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wordmatch/internal/config"
	"wordmatch/internal/database"
	"wordmatch/internal/handler"
	"wordmatch/internal/repository/sqlstore"
	"wordmatch/internal/service"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger. Stdout belongs to the console, logs go to stderr.
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Word Match",
		zap.String("database", cfg.Database.Type),
		zap.Duration("match_delay", cfg.Game.MatchDelay),
	)

	dialect, err := database.DialectFor(cfg.Database.Type)
	if err != nil {
		logger.Fatal("Unsupported database", zap.Error(err))
	}

	// Connect to database with retries
	db, err := database.Open(dialect, database.DialectConfig{
		Path: cfg.Database.Path,
		URL:  cfg.DSN(),
	}, database.DefaultRetryPolicy, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	wordRepo := sqlstore.NewWordRepo(db.DB, dialect)
	settingsRepo := sqlstore.NewSettingsRepo(db.DB, dialect)

	// Initialize services
	wordService := service.NewWordService(wordRepo, logger)
	settingsService := service.NewSettingsService(settingsRepo, logger)
	statsService := service.NewStatsService(wordRepo, settingsService, logger)
	gameService := service.NewGameService(wordRepo, settingsService, logger, service.GameOptions{
		ResolveDelay: cfg.Game.MatchDelay,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := wordService.SeedDefaults(ctx); err != nil {
		logger.Error("Failed to seed default word pairs", zap.Error(err))
	}

	h := handler.NewHandler(os.Stdin, os.Stdout,
		wordService,
		settingsService,
		statsService,
		gameService,
		logger,
	)

	// Run the console in background
	done := make(chan error, 1)
	go func() {
		done <- h.Run(ctx)
	}()

	// Wait for interrupt signal or the console to finish
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info("Shutdown signal received")
		cancel()
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Console stopped", zap.Error(err))
		}
	}

	// Graceful shutdown: drop the active round, let pending settings writes finish
	gameService.Leave()
	gameService.Wait()

	logger.Info("Stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}
