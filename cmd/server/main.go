package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"brick_manager/internal/billing"
	"brick_manager/internal/config"
	"brick_manager/internal/database"
	"brick_manager/internal/handlers"
	"brick_manager/internal/logger"
	"brick_manager/internal/metrics"
	"brick_manager/internal/migrations"
	"brick_manager/internal/redis"
	"brick_manager/internal/repository"
	"brick_manager/internal/repository/memory"
	"brick_manager/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.Init(cfg.Environment, cfg.LogLevel)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.MetricsEnabled {
		metrics.Init(cfg.MetricsPrefix)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize store
	opened, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open store", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	defer opened.close()
	store := opened.store

	// Initialize services
	brickService := services.NewBrickService(store)
	tractorService := services.NewTractorService(store)
	laborerService := services.NewLaborerService(store)
	orderService := services.NewOrderService(store, log.Named("orders"))
	invoiceService := services.NewInvoiceService(store, billing.NewCalculator(cfg.InvoiceDueDays), log.Named("invoices"))
	settingService := services.NewSettingService(store)
	statisticsService := services.NewStatisticsService(store)

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(
		brickService,
		tractorService,
		laborerService,
		orderService,
		invoiceService,
		settingService,
		statisticsService,
	)
	for name, check := range opened.checks {
		apiHandler.AddHealthCheck(name, check)
	}
	router := handlers.NewRouter(apiHandler, log, cfg.MetricsEnabled)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", zap.Error(err))
			stop()
		}
	}()
	log.Info("Server started",
		zap.String("port", cfg.ServerPort),
		zap.String("storage", cfg.StorageDriver),
		zap.Bool("metrics", cfg.MetricsEnabled),
	)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped")
}

type backend struct {
	store  repository.Store
	checks map[string]handlers.Pinger
	close  func()
}

// openStore builds the configured store together with the health checks of
// its connections and a function releasing them.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*backend, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		store := memory.New()
		if cfg.SeedDefaultSettings {
			if _, err := store.Settings().Upsert(ctx, migrations.DefaultSettings()); err != nil {
				return nil, err
			}
		}
		return &backend{store: store, close: func() {}}, nil

	case config.StoragePostgres:
		db, err := database.Initialize(cfg.DatabaseURL, !cfg.IsProduction(), log)
		if err != nil {
			return nil, err
		}
		closers := []func() error{func() error { return database.Close(db) }}
		cleanup := func() {
			for i := len(closers) - 1; i >= 0; i-- {
				if err := closers[i](); err != nil {
					log.Warn("Failed to close connection", zap.Error(err))
				}
			}
		}
		checks := map[string]handlers.Pinger{
			"database": handlers.PingFunc(func(ctx context.Context) error { return database.Ping(ctx, db) }),
		}

		if cfg.SeedDefaultSettings {
			if err := migrations.SeedDefaultSettings(db, log); err != nil {
				cleanup()
				return nil, err
			}
		}

		var seq repository.Sequencer
		if cfg.RedisURL != "" {
			redisClient, err := redis.Initialize(cfg.RedisURL)
			if err != nil {
				cleanup()
				return nil, err
			}
			closers = append(closers, redisClient.Close)
			if err := repository.AlignSequences(ctx, db, redisClient); err != nil {
				cleanup()
				return nil, err
			}
			seq = redisClient
			checks["redis"] = redisClient
			log.Info("Numbering orders and invoices from Redis")
		}
		return &backend{store: repository.NewStore(db, seq), checks: checks, close: cleanup}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
