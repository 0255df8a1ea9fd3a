package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/recellhq/recell-backend/api/controllers"
	"github.com/recellhq/recell-backend/api/middleware"
	"github.com/recellhq/recell-backend/internal/admins"
	"github.com/recellhq/recell-backend/internal/catalog"
	"github.com/recellhq/recell-backend/internal/pickups"
	"github.com/recellhq/recell-backend/internal/pricing"
	"github.com/recellhq/recell-backend/pkg/config"
	"github.com/recellhq/recell-backend/pkg/db"
	"github.com/recellhq/recell-backend/pkg/logger"
	"github.com/recellhq/recell-backend/pkg/metrics"
	"github.com/recellhq/recell-backend/pkg/redis"
)

// NewRouter wires every HTTP surface: public catalog browsing and intake,
// the authenticated admin API, health probes, and metrics.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	database *db.Client,
	redisClient *redis.Client,
	metricsRegistry *prometheus.Registry,
	valuationMetrics *metrics.ValuationMetrics,
	catalogService catalog.Service,
	pickupService pickups.Service,
	pricingService pricing.Service,
	adminService admins.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.Liveness())
		r.Get("/ready", controllers.Readiness(database, redisClient, logg))
	})

	if metricsRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/brands", controllers.ListBrands(catalogService, logg))
		r.Get("/brands/{brandID}/devices", controllers.ListDevices(catalogService, logg))
		r.Get("/devices/{deviceID}/variants", controllers.ListVariants(catalogService, logg))
		r.Get("/cities", controllers.ListCities(catalogService, logg))

		r.Post("/quotes", controllers.QuotePickup(pickupService, logg))
		r.With(
			middleware.SubmitRateLimit(cfg.Intake, redisClient, logg),
			middleware.Idempotency(cfg.Intake, redisClient, logg),
		).Post("/pickups", controllers.SubmitPickup(pickupService, logg))

		r.Route("/admin", func(r chi.Router) {
			r.Post("/auth/login", controllers.AdminLogin(adminService, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminAuth(cfg.JWT, logg))

				r.Post("/auth/logout", controllers.AdminLogout(adminService, logg))

				r.Get("/pickups", controllers.ListPickups(pickupService, logg))
				r.Get("/pickups/{pickupID}", controllers.GetPickup(pickupService, logg))
				r.Patch("/pickups/{pickupID}/status", controllers.UpdatePickupStatus(pickupService, logg))

				r.Get("/variants/{variantID}/pricing", controllers.GetVariantPricing(pricingService, logg))
				r.With(middleware.Idempotency(cfg.Intake, redisClient, logg)).
					Put("/variants/{variantID}/pricing", controllers.UpdateVariantPricing(pricingService, valuationMetrics, logg))
			})
		})
	})

	return r
}
