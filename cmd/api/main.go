package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/skylift-cargo/pricing-api/internal/cargospot"
	"github.com/skylift-cargo/pricing-api/internal/engine"
	"github.com/skylift-cargo/pricing-api/internal/handlers"
	"github.com/skylift-cargo/pricing-api/internal/platform/config"
	"github.com/skylift-cargo/pricing-api/internal/platform/observability"
	"github.com/skylift-cargo/pricing-api/internal/services"
)

func main() {
	startedAt := time.Now().UTC()

	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("pricing-api")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	engineClient, err := engine.NewClient(cfg.Engine.BaseURL,
		engine.WithAPIKey(cfg.Engine.APIKey),
		engine.WithTimeout(cfg.Engine.Timeout),
	)
	if err != nil {
		logger.Fatal("failed to initialise pricing engine client", zap.Error(err))
	}

	cargospotClient, err := cargospot.NewClient(cfg.Cargospot.BaseURL,
		cargospot.WithTimeout(cfg.Cargospot.Timeout),
	)
	if err != nil {
		logger.Fatal("failed to initialise cargospot client", zap.Error(err))
	}

	pricingService, err := services.NewPricingService(services.PricingServiceDeps{
		Engine:    engineClient,
		HAWBCount: cargospotClient,
		NewRef:    func() string { return ulid.Make().String() },
		Logger:    observability.ServiceLogFunc(logger.Named("pricing")),
	})
	if err != nil {
		logger.Fatal("failed to initialise pricing service", zap.Error(err))
	}

	pricingHandlers := handlers.NewPricingHandlers(pricingService)

	healthHandlers := handlers.NewHealthHandlers(
		handlers.WithHealthBuildInfo(buildInfoFromEnv(startedAt)),
		handlers.WithReadinessCheck("engine", func(context.Context) error {
			if cfg.Engine.BaseURL == "" {
				return errors.New("engine base URL not configured")
			}
			return nil
		}),
	)

	middlewares := []func(http.Handler) http.Handler{
		observability.InjectLoggerMiddleware(logger.Named("http")),
		observability.TraceMiddleware(),
		observability.RecoveryMiddleware(logger.Named("http")),
		observability.RequestLoggerMiddleware(),
	}

	router := handlers.NewRouter(
		handlers.WithMiddlewares(middlewares...),
		handlers.WithHealthHandlers(healthHandlers),
		handlers.WithAirwaybillRoutes(pricingHandlers.Routes),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("pricing api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func buildInfoFromEnv(started time.Time) handlers.BuildInfo {
	version := strings.TrimSpace(os.Getenv("PRICING_BUILD_VERSION"))
	if version == "" {
		version = "dev"
	}
	commit := strings.TrimSpace(os.Getenv("PRICING_BUILD_COMMIT_SHA"))
	environment := strings.TrimSpace(os.Getenv("PRICING_ENVIRONMENT"))
	if environment == "" {
		environment = "local"
	}
	return handlers.BuildInfo{
		Version:     version,
		CommitSHA:   commit,
		Environment: environment,
		StartedAt:   started,
	}
}
