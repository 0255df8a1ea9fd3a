package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/recellhq/recell-backend/api/routes"
	"github.com/recellhq/recell-backend/internal/admins"
	"github.com/recellhq/recell-backend/internal/audit"
	"github.com/recellhq/recell-backend/internal/catalog"
	"github.com/recellhq/recell-backend/internal/pickups"
	"github.com/recellhq/recell-backend/internal/pricing"
	"github.com/recellhq/recell-backend/pkg/config"
	"github.com/recellhq/recell-backend/pkg/db"
	"github.com/recellhq/recell-backend/pkg/logger"
	"github.com/recellhq/recell-backend/pkg/metrics"
	"github.com/recellhq/recell-backend/pkg/migrate"
	"github.com/recellhq/recell-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		closeErr := multierr.Combine(dbClient.Close(), redisClient.Close())
		if closeErr != nil {
			logg.Error(context.Background(), "error closing clients", closeErr)
		}
	}()

	metricsRegistry := prometheus.NewRegistry()
	metricsRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	valuationMetrics := metrics.NewValuationMetrics(metricsRegistry)

	auditService, err := audit.NewService(audit.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create audit service", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.NewRepository(dbClient.DB()), cfg.Valuation)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	pickupService, err := pickups.NewService(
		pickups.NewRepository(dbClient.DB()),
		catalogService,
		auditService,
		dbClient,
		cfg.Intake,
		logg,
		valuationMetrics,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create pickups service", err)
		os.Exit(1)
	}

	pricingService, err := pricing.NewService(pricing.NewRepository(dbClient.DB()), auditService, dbClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create pricing service", err)
		os.Exit(1)
	}

	adminService, err := admins.NewService(admins.NewRepository(dbClient.DB()), auditService, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create admin service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			metricsRegistry,
			valuationMetrics,
			catalogService,
			pickupService,
			pricingService,
			adminService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
