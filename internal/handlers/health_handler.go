package handlers

import (
	"context"
	"net/http"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/prompts"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/utils"
)

type ReadinessCheck struct {
	Status  string `json:"status"` // "ok" | "failed"
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status  string                    `json:"status"`  // "ready" | "not_ready"
	Service string                    `json:"service"` // Service name
	Checks  map[string]ReadinessCheck `json:"checks"`  // Individual check results
}

// Pinger reports database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db        Pinger
	questions QuestionGenerator
	prompts   prompts.PromptProvider
}

func NewHealthHandler(db Pinger, questions QuestionGenerator, promptManager prompts.PromptProvider) *HealthHandler {
	return &HealthHandler{
		db:        db,
		questions: questions,
		prompts:   promptManager,
	}
}

func (handler *HealthHandler) HealthzHandler(writer http.ResponseWriter, request *http.Request) {
	utils.JSON(writer, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "interviewbit",
		"version": "1.0.0",
	})
}

func (handler *HealthHandler) ReadyzHandler(writer http.ResponseWriter, request *http.Request) {
	checks := make(map[string]ReadinessCheck)
	allChecksPass := true

	// verify the database answers
	if handler.db == nil {
		checks["database"] = ReadinessCheck{
			Status:  "failed",
			Message: "Database client not initialized",
		}
		allChecksPass = false
	} else if err := handler.db.Ping(request.Context()); err != nil {
		checks["database"] = ReadinessCheck{
			Status:  "failed",
			Message: err.Error(),
		}
		allChecksPass = false
	} else {
		checks["database"] = ReadinessCheck{
			Status: "ok",
		}
	}

	// AI question generation is optional, so a missing provider degrades
	// rather than fails readiness
	if handler.questions == nil || !handler.questions.Enabled() {
		checks["ai_provider"] = ReadinessCheck{
			Status:  "ok",
			Message: "AI provider disabled, question generation unavailable",
		}
	} else {
		checks["ai_provider"] = ReadinessCheck{
			Status: "ok",
		}
	}

	// verify prompt templates loaded
	if handler.prompts == nil || len(handler.prompts.GetTemplates()) == 0 {
		checks["prompt_manager"] = ReadinessCheck{
			Status:  "failed",
			Message: "No prompt templates loaded",
		}
		allChecksPass = false
	} else {
		checks["prompt_manager"] = ReadinessCheck{
			Status: "ok",
		}
	}

	response := ReadinessResponse{
		Service: "interviewbit",
		Checks:  checks,
	}

	if allChecksPass {
		response.Status = "ready"
		utils.JSON(writer, http.StatusOK, response)
	} else {
		response.Status = "not_ready"
		utils.JSON(writer, http.StatusServiceUnavailable, response)
	}
}
