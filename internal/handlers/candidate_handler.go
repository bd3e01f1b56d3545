package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/middleware"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/repositories"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/services"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/utils"
)

// CandidateHandler manages an interview's candidate roster.
type CandidateHandler struct {
	interviews InterviewStore
	candidates CandidateStore
	reader     TranscriptReader
	appBaseURL string
	sendMail   func(to, subject, body string) error
	logger     *zap.Logger
}

func NewCandidateHandler(interviews InterviewStore, candidates CandidateStore, reader TranscriptReader, appBaseURL string, logger *zap.Logger) *CandidateHandler {
	return &CandidateHandler{
		interviews: interviews,
		candidates: candidates,
		reader:     reader,
		appBaseURL: appBaseURL,
		sendMail:   utils.SendEmail,
		logger:     logger,
	}
}

// AddHandler invites a candidate to an interview. The invitation email is
// best-effort: a delivery failure is logged, the candidate still exists and
// the link can be re-sent out of band.
func (h *CandidateHandler) AddHandler(w http.ResponseWriter, r *http.Request) {
	iv, ok := loadOwned(w, r, h.interviews, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	req := middleware.GetValidatedRequest[*models.AddCandidateRequest](r)

	candidate := &models.Candidate{
		ID:          uuid.New().String(),
		InterviewID: iv.ID,
		FullName:    req.FullName,
		Email:       req.Email,
		Status:      models.CandidateInvited,
	}
	if err := h.candidates.Create(r.Context(), candidate); err != nil {
		h.logger.Error("Failed to create candidate", zap.Error(err), zap.String("interview_id", iv.ID))
		utils.JSONError(w, http.StatusInternalServerError, "create_error", "Failed to add candidate")
		return
	}

	link := fmt.Sprintf("%s/session/%s/%s", h.appBaseURL, iv.ID, candidate.ID)
	body := fmt.Sprintf(
		"Hi %s,\n\nYou have been invited to the interview %q.\nOpen your session here: %s\n\nGood luck!",
		candidate.FullName, iv.Title, link)
	if err := h.sendMail(candidate.Email, "Interview invitation: "+iv.Title, body); err != nil {
		h.logger.Warn("Invitation email failed",
			zap.Error(err),
			zap.String("candidate_id", candidate.ID),
			zap.String("interview_id", iv.ID))
	}

	utils.JSON(w, http.StatusCreated, candidate)
}

func (h *CandidateHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	iv, ok := loadOwned(w, r, h.interviews, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	candidates, err := h.candidates.ByInterview(r.Context(), iv.ID)
	if err != nil {
		h.logger.Error("Failed to list candidates", zap.Error(err), zap.String("interview_id", iv.ID))
		utils.JSONError(w, http.StatusInternalServerError, "list_error", "Failed to list candidates")
		return
	}
	if candidates == nil {
		candidates = []models.Candidate{}
	}
	utils.JSON(w, http.StatusOK, candidates)
}

// DetailsHandler is the REST twin of the dashboard's candidate-details
// request; both go through the same authorized read path.
func (h *CandidateHandler) DetailsHandler(w http.ResponseWriter, r *http.Request) {
	details, err := h.reader.CandidateTranscript(
		r.Context(),
		chi.URLParam(r, "id"),
		chi.URLParam(r, "candidateId"),
		middleware.InterviewerID(r),
	)
	switch {
	case err == nil:
		utils.JSON(w, http.StatusOK, details)
	case errors.Is(err, repositories.ErrInterviewNotFound):
		utils.JSONError(w, http.StatusNotFound, "not_found", "Interview not found")
	case errors.Is(err, repositories.ErrCandidateNotFound):
		utils.JSONError(w, http.StatusNotFound, "not_found", "Candidate not found")
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(w, http.StatusForbidden, "forbidden", "Unauthorized access to this interview")
	default:
		h.logger.Error("Candidate details lookup failed", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "lookup_error", "Failed to load candidate details")
	}
}
