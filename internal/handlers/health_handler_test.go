package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/prompts"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error { return m.err }

func newHealthHandler(t *testing.T, db Pinger, questions QuestionGenerator) *HealthHandler {
	t.Helper()
	pm, err := prompts.NewPromptManager()
	if err != nil {
		t.Fatalf("load prompt templates: %v", err)
	}
	return NewHealthHandler(db, questions, pm)
}

func decodeReadiness(t *testing.T, rec *httptest.ResponseRecorder) ReadinessResponse {
	t.Helper()
	var response ReadinessResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode readiness response: %v", err)
	}
	return response
}

func TestHealthzHandler(t *testing.T) {
	h := newHealthHandler(t, &mockPinger{}, &mockGenerator{enabled: true})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.HealthzHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "interviewbit", resp["service"])
}

func TestReadyzHandler_AllHealthy(t *testing.T) {
	h := newHealthHandler(t, &mockPinger{}, &mockGenerator{enabled: true})

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	h.ReadyzHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeReadiness(t, rec)
	assert.Equal(t, "ready", response.Status)
	assert.Equal(t, "interviewbit", response.Service)
	for _, name := range []string{"database", "ai_provider", "prompt_manager"} {
		check, exists := response.Checks[name]
		if assert.True(t, exists, "missing check: %s", name) {
			assert.Equal(t, "ok", check.Status)
		}
	}
}

func TestReadyzHandler_DatabaseDown(t *testing.T) {
	h := newHealthHandler(t, &mockPinger{err: errors.New("server selection timeout")}, &mockGenerator{enabled: true})

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	h.ReadyzHandler(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	response := decodeReadiness(t, rec)
	assert.Equal(t, "not_ready", response.Status)
	assert.Equal(t, "failed", response.Checks["database"].Status)
	assert.Equal(t, "server selection timeout", response.Checks["database"].Message)
}

func TestReadyzHandler_DisabledAIStillReady(t *testing.T) {
	h := newHealthHandler(t, &mockPinger{}, &mockGenerator{enabled: false})

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	h.ReadyzHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeReadiness(t, rec)
	assert.Equal(t, "ready", response.Status)
	assert.Equal(t, "ok", response.Checks["ai_provider"].Status)
	assert.NotEmpty(t, response.Checks["ai_provider"].Message)
}

func TestReadyzHandler_AllDependenciesMissing(t *testing.T) {
	h := NewHealthHandler(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	h.ReadyzHandler(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	response := decodeReadiness(t, rec)
	assert.Equal(t, "not_ready", response.Status)
	assert.Equal(t, "failed", response.Checks["database"].Status)
	assert.Equal(t, "ok", response.Checks["ai_provider"].Status)
	assert.Equal(t, "failed", response.Checks["prompt_manager"].Status)
}
