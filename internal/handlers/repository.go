package handlers

import (
	"context"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
)

// InterviewerStore captures the persistence operations required by handlers.
type InterviewerStore interface {
	Create(ctx context.Context, iv *models.Interviewer) error
	ByEmail(ctx context.Context, email string) (*models.Interviewer, error)
	ByID(ctx context.Context, id string) (*models.Interviewer, error)
}

type InterviewStore interface {
	Create(ctx context.Context, iv *models.Interview) error
	ByID(ctx context.Context, id string) (*models.Interview, error)
	ByInterviewer(ctx context.Context, interviewerID string) ([]models.Interview, error)
	Update(ctx context.Context, iv *models.Interview) error
	Delete(ctx context.Context, id string) error
}

type CandidateStore interface {
	Create(ctx context.Context, c *models.Candidate) error
	ByID(ctx context.Context, id string) (*models.Candidate, error)
	ByInterview(ctx context.Context, interviewID string) ([]models.Candidate, error)
	SetStatus(ctx context.Context, id string, status models.CandidateStatus) error
	DeleteByInterview(ctx context.Context, interviewID string) error
}

type TranscriptStore interface {
	Upsert(ctx context.Context, t *models.Transcript) error
	ByCandidate(ctx context.Context, interviewID, candidateID string) ([]models.Transcript, error)
	CountSubmitted(ctx context.Context, interviewID string, candidateIDs []string) (map[string]int, error)
	DeleteByInterview(ctx context.Context, interviewID string) error
}

// QuestionGenerator produces interview questions and scores answers.
type QuestionGenerator interface {
	Enabled() bool
	GenerateQuestions(ctx context.Context, topic string, difficulty models.Difficulty, count int) ([]models.Question, error)
	EvaluateAnswer(ctx context.Context, questionText, answerText string) (int, string, error)
}

// TranscriptReader is the authorized candidate-details path, shared with the
// live dashboard.
type TranscriptReader interface {
	CandidateTranscript(ctx context.Context, interviewID, candidateID, interviewerID string) (*models.CandidateDetails, error)
}
