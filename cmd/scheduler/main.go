package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gratia-labs/patron-ledger/internal/adapter"
	"github.com/gratia-labs/patron-ledger/internal/config"
	"github.com/gratia-labs/patron-ledger/internal/logger"
	"github.com/gratia-labs/patron-ledger/internal/rates"
	"github.com/gratia-labs/patron-ledger/internal/store"
	"github.com/gratia-labs/patron-ledger/internal/surveyor"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSchedulerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "surveyor-scheduler",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Surveyor Scheduler")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Connect to Redis for the rate table
	redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Ping(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Redis", zap.Error(err), zap.String("addr", cfg.Redis.Addr))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", zap.Error(err))
		}
	}()
	rateTable := rates.NewRedisTable(redisClient, cfg.Redis.RatesKey)
	logger.InfoCtx(ctx, "Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// Create the surveyor factory and scheduler
	factory := surveyor.NewFactory(dataStore, rateTable, jsonAdapter)
	scheduler, err := surveyor.NewScheduler(&surveyor.Config{
		Schedule:        cfg.Surveyor.Schedule,
		BatchSize:       cfg.Surveyor.BatchSize,
		WorkerPoolSize:  cfg.Surveyor.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.Surveyor.Worker.WorkerQueueSize,
	}, dataStore, factory, jsonAdapter, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create scheduler", zap.Error(err))
	}

	// Start scheduler in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := scheduler.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the scheduler
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "scheduler"))
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := scheduler.Stop(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Scheduler forced to shutdown", zap.Error(err))
	}
	cancel()

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("Surveyor scheduler stopped")
}
