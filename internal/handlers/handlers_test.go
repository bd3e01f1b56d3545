package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/repositories"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/utils"
)

// shared function-field mocks for the store interfaces

type mockInterviewers struct {
	createFn  func(ctx context.Context, iv *models.Interviewer) error
	byEmailFn func(ctx context.Context, email string) (*models.Interviewer, error)
	byIDFn    func(ctx context.Context, id string) (*models.Interviewer, error)
}

func (m *mockInterviewers) Create(ctx context.Context, iv *models.Interviewer) error {
	if m.createFn != nil {
		return m.createFn(ctx, iv)
	}
	return nil
}

func (m *mockInterviewers) ByEmail(ctx context.Context, email string) (*models.Interviewer, error) {
	if m.byEmailFn != nil {
		return m.byEmailFn(ctx, email)
	}
	return nil, repositories.ErrInterviewerNotFound
}

func (m *mockInterviewers) ByID(ctx context.Context, id string) (*models.Interviewer, error) {
	if m.byIDFn != nil {
		return m.byIDFn(ctx, id)
	}
	return nil, repositories.ErrInterviewerNotFound
}

type mockInterviews struct {
	createFn        func(ctx context.Context, iv *models.Interview) error
	byIDFn          func(ctx context.Context, id string) (*models.Interview, error)
	byInterviewerFn func(ctx context.Context, interviewerID string) ([]models.Interview, error)
	updateFn        func(ctx context.Context, iv *models.Interview) error
	deleteFn        func(ctx context.Context, id string) error
}

func (m *mockInterviews) Create(ctx context.Context, iv *models.Interview) error {
	if m.createFn != nil {
		return m.createFn(ctx, iv)
	}
	return nil
}

func (m *mockInterviews) ByID(ctx context.Context, id string) (*models.Interview, error) {
	if m.byIDFn != nil {
		return m.byIDFn(ctx, id)
	}
	return nil, repositories.ErrInterviewNotFound
}

func (m *mockInterviews) ByInterviewer(ctx context.Context, interviewerID string) ([]models.Interview, error) {
	if m.byInterviewerFn != nil {
		return m.byInterviewerFn(ctx, interviewerID)
	}
	return nil, nil
}

func (m *mockInterviews) Update(ctx context.Context, iv *models.Interview) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, iv)
	}
	return nil
}

func (m *mockInterviews) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockCandidates struct {
	createFn            func(ctx context.Context, c *models.Candidate) error
	byIDFn              func(ctx context.Context, id string) (*models.Candidate, error)
	byInterviewFn       func(ctx context.Context, interviewID string) ([]models.Candidate, error)
	setStatusFn         func(ctx context.Context, id string, status models.CandidateStatus) error
	deleteByInterviewFn func(ctx context.Context, interviewID string) error
}

func (m *mockCandidates) Create(ctx context.Context, c *models.Candidate) error {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return nil
}

func (m *mockCandidates) ByID(ctx context.Context, id string) (*models.Candidate, error) {
	if m.byIDFn != nil {
		return m.byIDFn(ctx, id)
	}
	return nil, repositories.ErrCandidateNotFound
}

func (m *mockCandidates) ByInterview(ctx context.Context, interviewID string) ([]models.Candidate, error) {
	if m.byInterviewFn != nil {
		return m.byInterviewFn(ctx, interviewID)
	}
	return nil, nil
}

func (m *mockCandidates) SetStatus(ctx context.Context, id string, status models.CandidateStatus) error {
	if m.setStatusFn != nil {
		return m.setStatusFn(ctx, id, status)
	}
	return nil
}

func (m *mockCandidates) DeleteByInterview(ctx context.Context, interviewID string) error {
	if m.deleteByInterviewFn != nil {
		return m.deleteByInterviewFn(ctx, interviewID)
	}
	return nil
}

type mockTranscripts struct {
	upsertFn            func(ctx context.Context, tr *models.Transcript) error
	byCandidateFn       func(ctx context.Context, interviewID, candidateID string) ([]models.Transcript, error)
	countSubmittedFn    func(ctx context.Context, interviewID string, ids []string) (map[string]int, error)
	deleteByInterviewFn func(ctx context.Context, interviewID string) error
}

func (m *mockTranscripts) Upsert(ctx context.Context, tr *models.Transcript) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, tr)
	}
	return nil
}

func (m *mockTranscripts) ByCandidate(ctx context.Context, interviewID, candidateID string) ([]models.Transcript, error) {
	if m.byCandidateFn != nil {
		return m.byCandidateFn(ctx, interviewID, candidateID)
	}
	return nil, nil
}

func (m *mockTranscripts) CountSubmitted(ctx context.Context, interviewID string, ids []string) (map[string]int, error) {
	if m.countSubmittedFn != nil {
		return m.countSubmittedFn(ctx, interviewID, ids)
	}
	return map[string]int{}, nil
}

func (m *mockTranscripts) DeleteByInterview(ctx context.Context, interviewID string) error {
	if m.deleteByInterviewFn != nil {
		return m.deleteByInterviewFn(ctx, interviewID)
	}
	return nil
}

type mockGenerator struct {
	enabled    bool
	generateFn func(ctx context.Context, topic string, difficulty models.Difficulty, count int) ([]models.Question, error)
	evaluateFn func(ctx context.Context, questionText, answerText string) (int, string, error)
}

func (m *mockGenerator) Enabled() bool { return m.enabled }

func (m *mockGenerator) GenerateQuestions(ctx context.Context, topic string, difficulty models.Difficulty, count int) ([]models.Question, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, topic, difficulty, count)
	}
	return nil, nil
}

func (m *mockGenerator) EvaluateAnswer(ctx context.Context, questionText, answerText string) (int, string, error) {
	if m.evaluateFn != nil {
		return m.evaluateFn(ctx, questionText, answerText)
	}
	return 0, "", nil
}

type mockReader struct {
	detailsFn func(ctx context.Context, interviewID, candidateID, interviewerID string) (*models.CandidateDetails, error)
}

func (m *mockReader) CandidateTranscript(ctx context.Context, interviewID, candidateID, interviewerID string) (*models.CandidateDetails, error) {
	if m.detailsFn != nil {
		return m.detailsFn(ctx, interviewID, candidateID, interviewerID)
	}
	return nil, repositories.ErrCandidateNotFound
}

// request helpers

func withURLParams(req *http.Request, pairs ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(pairs); i += 2 {
		rctx.URLParams.Add(pairs[i], pairs[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func authedRequest(t *testing.T, method, target string, body io.Reader) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	token, err := utils.GenerateAuthToken("iv1", "owner@example.com")
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func ownedInterview() *models.Interview {
	return &models.Interview{
		ID:                 "interview1",
		InterviewerID:      "iv1",
		Title:              "Backend screen",
		Topic:              "Concurrency",
		Difficulty:         models.Medium,
		Status:             models.InterviewScheduled,
		ScheduledStartTime: time.Now().Add(time.Hour).UTC(),
		NumQuestions:       2,
		Questions: []models.Question{
			{ID: "q1", Text: "Explain goroutines"},
			{ID: "q2", Text: "Explain channels"},
		},
	}
}
