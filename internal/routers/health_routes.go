package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/handlers"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/metrics"
)

func HealthRoutes(router *chi.Mux, healthHandler *handlers.HealthHandler) {
	router.Get("/healthz", healthHandler.HealthzHandler)
	router.Get("/readyz", healthHandler.ReadyzHandler)
	router.Handle("/metrics", metrics.Handler())
}
