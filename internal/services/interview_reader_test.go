package services

import (
	"context"
	"errors"
	"testing"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/repositories"
)

type fakeInterviews struct {
	byID func(ctx context.Context, id string) (*models.Interview, error)
}

func (f *fakeInterviews) ByID(ctx context.Context, id string) (*models.Interview, error) {
	return f.byID(ctx, id)
}

type fakeCandidates struct {
	byID        func(ctx context.Context, id string) (*models.Candidate, error)
	byInterview func(ctx context.Context, interviewID string) ([]models.Candidate, error)
}

func (f *fakeCandidates) ByID(ctx context.Context, id string) (*models.Candidate, error) {
	return f.byID(ctx, id)
}

func (f *fakeCandidates) ByInterview(ctx context.Context, interviewID string) ([]models.Candidate, error) {
	return f.byInterview(ctx, interviewID)
}

type fakeTranscripts struct {
	byCandidate    func(ctx context.Context, interviewID, candidateID string) ([]models.Transcript, error)
	countSubmitted func(ctx context.Context, interviewID string, ids []string) (map[string]int, error)
}

func (f *fakeTranscripts) ByCandidate(ctx context.Context, interviewID, candidateID string) ([]models.Transcript, error) {
	return f.byCandidate(ctx, interviewID, candidateID)
}

func (f *fakeTranscripts) CountSubmitted(ctx context.Context, interviewID string, ids []string) (map[string]int, error) {
	return f.countSubmitted(ctx, interviewID, ids)
}

func readerFixture() *InterviewReader {
	interviews := &fakeInterviews{
		byID: func(ctx context.Context, id string) (*models.Interview, error) {
			if id != "interview1" {
				return nil, repositories.ErrInterviewNotFound
			}
			return &models.Interview{ID: "interview1", InterviewerID: "iv1"}, nil
		},
	}
	candidates := &fakeCandidates{
		byID: func(ctx context.Context, id string) (*models.Candidate, error) {
			switch id {
			case "c1":
				return &models.Candidate{ID: "c1", InterviewID: "interview1", FullName: "Ada"}, nil
			case "foreign":
				return &models.Candidate{ID: "foreign", InterviewID: "interview2"}, nil
			}
			return nil, repositories.ErrCandidateNotFound
		},
	}
	transcripts := &fakeTranscripts{
		byCandidate: func(ctx context.Context, interviewID, candidateID string) ([]models.Transcript, error) {
			return []models.Transcript{{QuestionText: "Explain maps", AnswerText: "They hash"}}, nil
		},
	}
	return NewInterviewReader(interviews, candidates, transcripts)
}

func TestCandidateTranscriptSuccess(t *testing.T) {
	reader := readerFixture()

	details, err := reader.CandidateTranscript(context.Background(), "interview1", "c1", "iv1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Candidate.FullName != "Ada" || len(details.Transcripts) != 1 {
		t.Fatalf("unexpected details: %#v", details)
	}
}

func TestCandidateTranscriptForbiddenForNonOwner(t *testing.T) {
	reader := readerFixture()

	if _, err := reader.CandidateTranscript(context.Background(), "interview1", "c1", "intruder"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCandidateTranscriptUnknownInterview(t *testing.T) {
	reader := readerFixture()

	if _, err := reader.CandidateTranscript(context.Background(), "ghost", "c1", "iv1"); !errors.Is(err, repositories.ErrInterviewNotFound) {
		t.Fatalf("expected ErrInterviewNotFound, got %v", err)
	}
}

func TestCandidateTranscriptUnknownCandidate(t *testing.T) {
	reader := readerFixture()

	if _, err := reader.CandidateTranscript(context.Background(), "interview1", "ghost", "iv1"); !errors.Is(err, repositories.ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestCandidateTranscriptForeignCandidateReadsAsNotFound(t *testing.T) {
	reader := readerFixture()

	// a candidate from another interview must not leak
	if _, err := reader.CandidateTranscript(context.Background(), "interview1", "foreign", "iv1"); !errors.Is(err, repositories.ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestCandidateTranscriptTranscriptFailure(t *testing.T) {
	reader := readerFixture()
	reader.transcripts = &fakeTranscripts{
		byCandidate: func(context.Context, string, string) ([]models.Transcript, error) {
			return nil, errors.New("db down")
		},
	}

	if _, err := reader.CandidateTranscript(context.Background(), "interview1", "c1", "iv1"); err == nil {
		t.Fatalf("expected transcript load error")
	}
}
