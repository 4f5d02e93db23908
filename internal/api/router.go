package api

import (
	_ "exrates/docs"
	"exrates/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *handler.Handler, gatherer prometheus.Gatherer) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	router.Get("/api/v1/providers", rateHandler.ListProviders)
	router.Get("/api/v1/rates/{provider}/{base:[A-Za-z]{3}}/{term:[A-Za-z]{3}}", rateHandler.GetRate)
	router.Get("/api/v1/convert/{provider}", rateHandler.Convert)
	return router
}
