package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg := config.Load()
	logger := newLogger(cfg.Server.LogLevel)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("database initialization failed", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewPrometheusMetrics(registry)

	userRepo := repositories.NewUserRepository(db)
	ledgerRepo := repositories.NewLedgerRepository(db)
	ruleRepo := repositories.NewCategoryRuleRepository(db)
	connectionRepo := repositories.NewConnectionRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	audit := services.NewAuditLogger(logger)
	notifications := services.NewNotificationService(notificationRepo, metrics, logger)
	categorizer := services.NewCategorizer(ruleRepo, services.NewAIClassifier(cfg.AI, logger), audit, metrics, cfg.AI, logger)
	database.SeedRules(categorizer, logger)

	ledger := services.NewLedgerService(userRepo, ledgerRepo, categorizer, notifications, audit, metrics, cfg.Ledger, logger)
	provider := services.NewSaltEdgeClient(&cfg.Provider, audit, metrics, logger)
	syncService := services.NewSyncService(userRepo, connectionRepo, ledgerRepo, ledger, categorizer, provider, notifications, audit, metrics, logger)
	importService := services.NewImportService(userRepo, ledgerRepo, ledger, audit, metrics, cfg.Ledger, logger)
	reportService := services.NewReportService(userRepo, ledgerRepo, logger)
	tokenService := services.NewTokenService(&cfg.JWT)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rateLimiter := middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go rateLimiter.Run(ctx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(registry, logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID},
	}))
	e.Use(rateLimiter.Middleware())

	router := &handlers.Router{
		Health:        handlers.NewHealthCheckHandler(db, version),
		Ledger:        handlers.NewLedgerHandler(ledger),
		Reports:       handlers.NewReportHandler(reportService),
		Imports:       handlers.NewImportHandler(importService),
		Categories:    handlers.NewCategoryHandler(categorizer),
		Sync:          handlers.NewSyncHandler(syncService),
		Notifications: handlers.NewNotificationHandler(notifications),
		Metrics:       promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	}
	router.Register(e, middleware.RequireAuth(tokenService))

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("starting server", "addr", server.Addr, "env", cfg.Server.Environment, "version", version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
