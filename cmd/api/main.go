package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-lifecycle-service/config"
	httpHandler "wallet-lifecycle-service/internal/adapter/http/handler"
	pgStorage "wallet-lifecycle-service/internal/adapter/storage/postgres"
	redisStorage "wallet-lifecycle-service/internal/adapter/storage/redis"
	"wallet-lifecycle-service/internal/core/ports"
	"wallet-lifecycle-service/internal/service"
	"wallet-lifecycle-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Wallet Lifecycle Service")

	// PSP credentials are validated before anything touches the network; a
	// malformed key map must stop the process here.
	apiKeys, err := config.ParseNpgAPIKeys(cfg.Npg)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid NPG API key configuration")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	assocRepo := pgStorage.NewLegacyAssociationRepo(pool)
	appRepo := pgStorage.NewApplicationRepo(pool)
	eventRepo := pgStorage.NewEventRepo(pool)

	// Initialize Redis stores
	sessionStore := redisStorage.NewSessionStore(rdb)

	clock := service.SystemClock{}
	idGen := redisStorage.NewUniqueIDGenerator(rdb, clock)

	// Initialize business services
	tokenSvc := service.NewJWTTokenService(cfg.Session.TokenSecret, cfg.Session.TokenExpiry, cfg.Session.TokenIssuer, clock)
	walletSvc := service.NewWalletService(
		walletRepo,
		appRepo,
		sessionStore,
		eventRepo,
		tokenSvc,
		idGen,
		apiKeys,
		cfg.Session.TTL,
		clock,
		log,
	)
	notificationSvc := service.NewNotificationService(walletRepo, sessionStore, eventRepo, clock, log)
	migrationSvc := service.NewMigrationService(
		walletRepo,
		assocRepo,
		appRepo,
		eventRepo,
		idGen,
		cfg.Migration,
		clock,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:       walletSvc,
		NotificationSvc: notificationSvc,
		MigrationSvc:    migrationSvc,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
