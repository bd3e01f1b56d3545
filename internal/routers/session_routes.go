package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/handlers"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/middleware"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
)

// SessionRoutes are reached by candidates through their invite link, so they
// carry no interviewer auth.
func SessionRoutes(r *chi.Mux, sessionHandler *handlers.SessionHandler) {
	r.Route("/api/v1/sessions/{interviewId}/{candidateId}", func(r chi.Router) {
		r.Post("/start", sessionHandler.StartHandler)
		r.With(middleware.ValidateRequest[*models.SubmitAnswerRequest]()).Post("/answers", sessionHandler.AnswerHandler)
	})
}
