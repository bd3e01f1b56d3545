package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/dashboard"
)

// DashboardRoutes exposes the live dashboard websocket. Authentication
// happens during the handshake, against the token query parameter.
func DashboardRoutes(router *chi.Mux, svc *dashboard.Service) {
	router.Get("/ws/dashboard", svc.HandleWS)
}
