package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/austral/caixa/internal/adapter/http/handler"
	"github.com/austral/caixa/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	SaleHandler    *handler.SaleHandler
	ReportHandler  *handler.ReportHandler
	OptionsHandler *handler.OptionsHandler
	HealthHandler  *handler.HealthHandler
	Logger         zerolog.Logger
}

// NewRouter creates the register's HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/options", cfg.OptionsHandler.Get)

		r.Route("/sales", func(r chi.Router) {
			r.Post("/", cfg.SaleHandler.Create)
			r.Get("/", cfg.SaleHandler.List)
			r.Delete("/{index}", cfg.SaleHandler.Delete)
		})

		r.Get("/summary", cfg.SaleHandler.Summary)

		r.Route("/report", func(r chi.Router) {
			r.Get("/", cfg.ReportHandler.Get)
			r.Post("/export", cfg.ReportHandler.Export)
		})
	})

	return r
}
