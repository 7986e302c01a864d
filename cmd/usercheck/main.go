package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/odyssey-erp/usercheck/internal/app"
	"github.com/odyssey-erp/usercheck/internal/frontend"
	"github.com/odyssey-erp/usercheck/internal/lookup"
	"github.com/odyssey-erp/usercheck/internal/observability"
	"github.com/odyssey-erp/usercheck/internal/platform/cache"
	"github.com/odyssey-erp/usercheck/internal/platform/db"
	"github.com/odyssey-erp/usercheck/internal/view"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	deps := lookup.Deps{}
	switch cfg.LookupBackend {
	case lookup.BackendRedis:
		redisClient, err := cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Error("connect redis", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
		deps.Redis = redisClient
	case lookup.BackendPostgres:
		dbpool, err := db.New(ctx, cfg.PGDSN)
		if err != nil {
			logger.Error("connect postgres", slog.Any("error", err))
			os.Exit(1)
		}
		defer dbpool.Close()
		deps.Postgres = dbpool
	}

	backend, err := lookup.New(lookup.Options{
		Backend:        cfg.LookupBackend,
		StaticUsers:    cfg.LookupStaticUsers,
		RedisKeyPrefix: cfg.RedisKeyPrefix,
		PGUsersTable:   cfg.PGUsersTable,
	}, deps)
	if err != nil {
		logger.Error("build lookup backend", slog.Any("error", err))
		os.Exit(1)
	}

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	metrics := observability.NewMetrics()
	frontendHandler := frontend.NewHandler(
		logger,
		lookup.Instrumented(cfg.LookupBackend, backend, metrics.Registerer()),
		templates,
		cfg.LookupTimeout,
	)

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		FrontendHandler: frontendHandler,
		Metrics:         metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("lookup_backend", cfg.LookupBackend))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
