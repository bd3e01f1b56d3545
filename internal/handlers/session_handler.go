package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/middleware"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/utils"
)

const evaluateTimeout = 30 * time.Second

// SessionHandler serves the candidate-facing answer flow. There is no JWT
// here; the unguessable candidate id from the invitation link is the
// capability.
type SessionHandler struct {
	interviews  InterviewStore
	candidates  CandidateStore
	transcripts TranscriptStore
	generator   QuestionGenerator
	logger      *zap.Logger
}

func NewSessionHandler(interviews InterviewStore, candidates CandidateStore, transcripts TranscriptStore, generator QuestionGenerator, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		interviews:  interviews,
		candidates:  candidates,
		transcripts: transcripts,
		generator:   generator,
		logger:      logger,
	}
}

type sessionStartResponse struct {
	Title        string            `json:"title"`
	NumQuestions int               `json:"num_questions"`
	Questions    []models.Question `json:"questions"`
}

// loadSession resolves the interview and candidate from the URL and checks
// the candidate belongs to the interview. Mismatches read as 404.
func (h *SessionHandler) loadSession(w http.ResponseWriter, r *http.Request) (*models.Interview, *models.Candidate, bool) {
	interviewID := chi.URLParam(r, "interviewId")
	candidateID := chi.URLParam(r, "candidateId")

	iv, err := h.interviews.ByID(r.Context(), interviewID)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "not_found", "Session not found")
		return nil, nil, false
	}
	cand, err := h.candidates.ByID(r.Context(), candidateID)
	if err != nil || cand.InterviewID != iv.ID {
		utils.JSONError(w, http.StatusNotFound, "not_found", "Session not found")
		return nil, nil, false
	}
	return iv, cand, true
}

// StartHandler opens (or resumes) a candidate session and returns the
// questions to answer.
func (h *SessionHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	iv, cand, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	if cand.Status == models.CandidateInvited {
		if err := h.candidates.SetStatus(r.Context(), cand.ID, models.CandidateInProgress); err != nil {
			h.logger.Error("Failed to mark candidate in progress", zap.Error(err), zap.String("candidate_id", cand.ID))
			utils.JSONError(w, http.StatusInternalServerError, "update_error", "Failed to start session")
			return
		}
	}

	utils.JSON(w, http.StatusOK, sessionStartResponse{
		Title:        iv.Title,
		NumQuestions: iv.NumQuestions,
		Questions:    iv.Questions,
	})
}

// AnswerHandler records a submitted answer. Scoring is best-effort: when the
// LLM is unavailable or fails, the entry stays unscored and the submission
// still succeeds.
func (h *SessionHandler) AnswerHandler(w http.ResponseWriter, r *http.Request) {
	iv, cand, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	req := middleware.GetValidatedRequest[*models.SubmitAnswerRequest](r)

	var question *models.Question
	for i := range iv.Questions {
		if iv.Questions[i].ID == req.QuestionID {
			question = &iv.Questions[i]
			break
		}
	}
	if question == nil {
		utils.JSONError(w, http.StatusNotFound, "not_found", "Question not found")
		return
	}

	now := time.Now().UTC()
	entry := &models.Transcript{
		ID:           uuid.New().String(),
		InterviewID:  iv.ID,
		CandidateID:  cand.ID,
		QuestionID:   question.ID,
		QuestionText: question.Text,
		AnswerText:   req.AnswerText,
		SubmittedAt:  &now,
	}

	if h.generator.Enabled() {
		ctx, cancel := context.WithTimeout(r.Context(), evaluateTimeout)
		score, feedback, err := h.generator.EvaluateAnswer(ctx, question.Text, req.AnswerText)
		cancel()
		if err != nil {
			h.logger.Warn("Answer evaluation failed",
				zap.Error(err),
				zap.String("candidate_id", cand.ID),
				zap.String("question_id", question.ID))
		} else {
			entry.Score = &score
			entry.Feedback = feedback
		}
	}

	if err := h.transcripts.Upsert(r.Context(), entry); err != nil {
		h.logger.Error("Failed to store transcript", zap.Error(err), zap.String("candidate_id", cand.ID))
		utils.JSONError(w, http.StatusInternalServerError, "store_error", "Failed to record answer")
		return
	}

	h.advanceCandidate(r.Context(), iv, cand)

	utils.JSON(w, http.StatusOK, entry)
}

// advanceCandidate flips the candidate to completed once every question has
// a submitted entry.
func (h *SessionHandler) advanceCandidate(ctx context.Context, iv *models.Interview, cand *models.Candidate) {
	counts, err := h.transcripts.CountSubmitted(ctx, iv.ID, []string{cand.ID})
	if err != nil {
		h.logger.Warn("Failed to count submitted answers", zap.Error(err), zap.String("candidate_id", cand.ID))
		return
	}

	next := cand.Status
	if counts[cand.ID] >= iv.NumQuestions {
		next = models.CandidateCompleted
	} else if cand.Status == models.CandidateInvited {
		next = models.CandidateInProgress
	}
	if next == cand.Status {
		return
	}
	if err := h.candidates.SetStatus(ctx, cand.ID, next); err != nil {
		h.logger.Warn("Failed to update candidate status", zap.Error(err), zap.String("candidate_id", cand.ID))
	}
}
