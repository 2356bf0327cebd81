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
	"github.com/gratia-labs/patron-ledger/internal/api/server"
	"github.com/gratia-labs/patron-ledger/internal/config"
	"github.com/gratia-labs/patron-ledger/internal/logger"
	"github.com/gratia-labs/patron-ledger/internal/providers/charge"
	"github.com/gratia-labs/patron-ledger/internal/providers/custodian"
	"github.com/gratia-labs/patron-ledger/internal/providers/jetstream"
	"github.com/gratia-labs/patron-ledger/internal/rates"
	"github.com/gratia-labs/patron-ledger/internal/reconcile"
	"github.com/gratia-labs/patron-ledger/internal/settlement"
	"github.com/gratia-labs/patron-ledger/internal/store"
	"github.com/gratia-labs/patron-ledger/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Patron Ledger API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	stamper := adapter.NewStamper(clock)
	rnd := adapter.NewRand()

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

	// Connect to NATS JetStream for report publishing
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))

	// Initialize provider clients
	custodianClient := custodian.NewClient(
		adapter.NewHTTPClient(cfg.Custodian.Timeout), cfg.Custodian.URL, cfg.Custodian.Token, jsonAdapter)
	chargeClient := charge.NewClient(
		adapter.NewHTTPClient(cfg.Charge.Timeout), cfg.Charge.URL, cfg.Charge.Secret, jsonAdapter)

	// Initialize engines
	settlementEngine := settlement.NewEngine(
		dataStore, custodianClient, publisher, stamper, rnd, jsonAdapter,
		cfg.Settlement.Unit, cfg.Settlement.UnitVotes)
	reconcileEngine := reconcile.NewEngine(
		dataStore, chargeClient, custodianClient, rateTable, publisher,
		cfg.Charge.ProcessorActor, cfg.Charge.SentinelActor, cfg.Environment == "production")
	walletService := wallet.NewService(dataStore, custodianClient, rateTable, publisher, jsonAdapter)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Create and start server
	srv := server.New(serverConfig, settlementEngine, reconcileEngine, walletService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
