package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/handlers"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/middleware"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
)

func InterviewRoutes(r *chi.Mux, interviewHandler *handlers.InterviewHandler, candidateHandler *handlers.CandidateHandler, reportHandler *handlers.ReportHandler) {
	r.Route("/api/v1/interviews", func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.With(middleware.ValidateRequest[*models.CreateInterviewRequest]()).Post("/", interviewHandler.CreateHandler)
		r.Get("/", interviewHandler.ListHandler)
		r.Get("/{id}", interviewHandler.GetHandler)
		r.With(middleware.ValidateRequest[*models.UpdateInterviewRequest]()).Put("/{id}", interviewHandler.UpdateHandler)
		r.Delete("/{id}", interviewHandler.DeleteHandler)

		r.With(middleware.ValidateRequest[*models.AddCandidateRequest]()).Post("/{id}/candidates", candidateHandler.AddHandler)
		r.Get("/{id}/candidates", candidateHandler.ListHandler)
		r.Get("/{id}/candidates/{candidateId}", candidateHandler.DetailsHandler)

		r.Get("/{id}/report", reportHandler.DownloadHandler)
	})
}
