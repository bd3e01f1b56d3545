package handlers

import (
	"errors"
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

// InterviewHandler manages interview CRUD for the owning interviewer.
type InterviewHandler struct {
	interviews  InterviewStore
	candidates  CandidateStore
	transcripts TranscriptStore
	generator   QuestionGenerator
	logger      *zap.Logger
}

func NewInterviewHandler(interviews InterviewStore, candidates CandidateStore, transcripts TranscriptStore, generator QuestionGenerator, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{
		interviews:  interviews,
		candidates:  candidates,
		transcripts: transcripts,
		generator:   generator,
		logger:      logger,
	}
}

// loadOwned fetches an interview and enforces ownership, writing the HTTP
// error itself when the check fails.
func loadOwned(w http.ResponseWriter, r *http.Request, store InterviewStore, id string) (*models.Interview, bool) {
	iv, err := store.ByID(r.Context(), id)
	if errors.Is(err, repositories.ErrInterviewNotFound) {
		utils.JSONError(w, http.StatusNotFound, "not_found", "Interview not found")
		return nil, false
	}
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "lookup_error", "Failed to load interview")
		return nil, false
	}
	if iv.InterviewerID != middleware.InterviewerID(r) {
		utils.JSONError(w, http.StatusForbidden, "forbidden", "Unauthorized access to this interview")
		return nil, false
	}
	return iv, true
}

func (h *InterviewHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.CreateInterviewRequest](r)

	var questions []models.Question
	if len(req.Questions) > 0 {
		questions = make([]models.Question, 0, len(req.Questions))
		for _, text := range req.Questions {
			questions = append(questions, models.Question{ID: uuid.New().String(), Text: text})
		}
	} else {
		generated, err := h.generator.GenerateQuestions(r.Context(), req.Topic, req.Difficulty, req.NumQuestions)
		if errors.Is(err, services.ErrAIUnavailable) {
			utils.JSONError(w, http.StatusServiceUnavailable, "ai_unavailable", "Question generation unavailable")
			return
		}
		if err != nil {
			h.logger.Error("Question generation failed", zap.Error(err), zap.String("topic", req.Topic))
			utils.JSONError(w, http.StatusInternalServerError, "ai_error", "Failed to generate questions")
			return
		}
		questions = generated
	}

	interview := &models.Interview{
		ID:                 uuid.New().String(),
		InterviewerID:      middleware.InterviewerID(r),
		Title:              req.Title,
		Description:        req.Description,
		Topic:              req.Topic,
		Difficulty:         req.Difficulty,
		Status:             models.InterviewScheduled,
		ScheduledStartTime: req.ScheduledStartTime,
		NumQuestions:       req.NumQuestions,
		Questions:          questions,
	}
	if err := h.interviews.Create(r.Context(), interview); err != nil {
		h.logger.Error("Failed to create interview", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "create_error", "Failed to create interview")
		return
	}

	utils.JSON(w, http.StatusCreated, interview)
}

func (h *InterviewHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	interviews, err := h.interviews.ByInterviewer(r.Context(), middleware.InterviewerID(r))
	if err != nil {
		h.logger.Error("Failed to list interviews", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "list_error", "Failed to list interviews")
		return
	}
	if interviews == nil {
		interviews = []models.Interview{}
	}
	utils.JSON(w, http.StatusOK, interviews)
}

func (h *InterviewHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	iv, ok := loadOwned(w, r, h.interviews, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, iv)
}

func (h *InterviewHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	iv, ok := loadOwned(w, r, h.interviews, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	req := middleware.GetValidatedRequest[*models.UpdateInterviewRequest](r)

	if req.Title != nil {
		iv.Title = *req.Title
	}
	if req.Description != nil {
		iv.Description = *req.Description
	}
	if req.ScheduledStartTime != nil {
		iv.ScheduledStartTime = *req.ScheduledStartTime
	}
	if req.Status != nil {
		if !iv.Status.CanTransitionTo(*req.Status) {
			utils.JSONError(w, http.StatusUnprocessableEntity, "invalid_transition",
				"Cannot move interview from "+string(iv.Status)+" to "+string(*req.Status))
			return
		}
		iv.Status = *req.Status
	}

	if err := h.interviews.Update(r.Context(), iv); err != nil {
		h.logger.Error("Failed to update interview", zap.Error(err), zap.String("interview_id", iv.ID))
		utils.JSONError(w, http.StatusInternalServerError, "update_error", "Failed to update interview")
		return
	}
	utils.JSON(w, http.StatusOK, iv)
}

// DeleteHandler removes an interview together with its candidates and
// transcripts.
func (h *InterviewHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	iv, ok := loadOwned(w, r, h.interviews, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.interviews.Delete(r.Context(), iv.ID); err != nil {
		h.logger.Error("Failed to delete interview", zap.Error(err), zap.String("interview_id", iv.ID))
		utils.JSONError(w, http.StatusInternalServerError, "delete_error", "Failed to delete interview")
		return
	}
	if err := h.candidates.DeleteByInterview(r.Context(), iv.ID); err != nil {
		h.logger.Warn("Failed to delete interview candidates", zap.Error(err), zap.String("interview_id", iv.ID))
	}
	if err := h.transcripts.DeleteByInterview(r.Context(), iv.ID); err != nil {
		h.logger.Warn("Failed to delete interview transcripts", zap.Error(err), zap.String("interview_id", iv.ID))
	}

	utils.JSON(w, http.StatusNoContent, nil)
}
