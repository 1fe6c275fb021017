// Package main is the entry point for the business search service.
//
//	@title						Business Search API
//	@version					1.0.0
//	@description				A business search service with US state, geographic radius and text filtering, automatic radius expansion, and response caching.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/georgeerol/business-search-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/georgeerol/business-search-service/docs"

	// Application layers
	bizhttp "github.com/georgeerol/business-search-service/internal/adapter/http"
	"github.com/georgeerol/business-search-service/internal/adapter/http/middleware"
	"github.com/georgeerol/business-search-service/internal/cache"
	"github.com/georgeerol/business-search-service/internal/config"
	"github.com/georgeerol/business-search-service/internal/domain"
	"github.com/georgeerol/business-search-service/internal/infrastructure/logger"
	"github.com/georgeerol/business-search-service/internal/infrastructure/retry"
	"github.com/georgeerol/business-search-service/internal/metrics"
	"github.com/georgeerol/business-search-service/internal/repository"
	"github.com/georgeerol/business-search-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 30 * time.Second
)

// businessStore is what the wiring needs from a record store: query access
// for the API plus write access for seeding.
type businessStore interface {
	domain.BusinessRepository
	domain.BusinessWriter
}

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize the global logger with config
	logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "business-search",
	})
	appLog := logger.Global.Logger

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Store.Backend).
		Str("cache", cfg.Cache.Backend).
		Msg("Configuration loaded")

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	store, closeStore, err := openStore(ctx, cfg, appLog)
	if err != nil {
		cancel()
		appLog.Fatal().Err(err).Msg("Failed to open business store")
	}
	defer closeStore()

	if cfg.Store.SeedFile != "" {
		loaded, err := repository.LoadSeedFile(ctx, cfg.Store.SeedFile, store)
		if err != nil {
			cancel()
			appLog.Fatal().Err(err).Str("seed_file", cfg.Store.SeedFile).Msg("Failed to seed business store")
		}
		if loaded > 0 {
			appLog.Info().Int("records", loaded).Str("seed_file", cfg.Store.SeedFile).Msg("Seeded business store")
		}
	}

	responseCache, err := openCache(ctx, cfg, appLog)
	cancel()
	if err != nil {
		appLog.Fatal().Err(err).Msg("Failed to open response cache")
	}

	// Prometheus instrumentation
	recorder := metrics.NewRecorder()

	// Initialize use case
	searchUseCase := usecase.NewBusinessSearchUseCase(store, responseCache, &usecase.Config{
		Logger:  appLog,
		Metrics: recorder,
	})

	// Initialize handler
	handler := bizhttp.NewBusinessHandler(searchUseCase, store)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Middleware: request ID, request logging, panic recovery
	middleware.Setup(e, appLog)

	// Routes
	bizhttp.RegisterRoutes(e, handler)
	e.GET("/metrics", echo.WrapHandler(recorder.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, appLog)
}

// openStore builds the configured record store and returns it with a close
// function.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (businessStore, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreBadger:
		// A rolling restart can briefly leave the previous process holding
		// the directory lock, so the open is retried.
		store, err := retry.DoWithResult(ctx, func() (*repository.BadgerRepository, error) {
			return repository.OpenBadger(cfg.Store.Path, log)
		}, retry.DefaultConfig)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := store.Close(); err != nil {
				log.Error().Err(err).Msg("Error closing business store")
			}
		}
		return store, closeFn, nil
	default:
		return repository.NewMemoryRepository(), func() {}, nil
	}
}

// openCache builds the configured response cache. The Redis backend is
// pinged with retries so a briefly unavailable server does not kill startup.
func openCache(ctx context.Context, cfg *config.Config, log zerolog.Logger) (cache.ResponseCache, error) {
	if cfg.Cache.Backend != config.CacheRedis {
		return cache.NewMemoryCache(cache.MemoryConfig{
			TTL:      cfg.Cache.TTL,
			Capacity: cfg.Cache.Capacity,
		}), nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
	err := retry.Do(ctx, func() error {
		return client.Ping(ctx).Err()
	}, retry.ConnectConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Cache.RedisAddr, err)
	}

	log.Info().Str("addr", cfg.Cache.RedisAddr).Msg("Connected to Redis")
	return cache.NewRedisCache(client, cfg.Cache.TTL, log), nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
