package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/handlers"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/middleware"
)

func AuthRoutes(r *chi.Mux, authHandler *handlers.AuthHandler) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", authHandler.RegisterHandler) // Interviewer registration
		r.Post("/login", authHandler.LoginHandler)       // Interviewer login
		r.With(middleware.RequireAuth).Get("/me", authHandler.MeHandler)
	})
}
