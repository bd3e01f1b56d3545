package services

import (
	"context"
	"fmt"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/repositories"
)

type InterviewFinder interface {
	ByID(ctx context.Context, id string) (*models.Interview, error)
}

type CandidateFinder interface {
	ByID(ctx context.Context, id string) (*models.Candidate, error)
	ByInterview(ctx context.Context, interviewID string) ([]models.Candidate, error)
}

type TranscriptFinder interface {
	ByCandidate(ctx context.Context, interviewID, candidateID string) ([]models.Transcript, error)
	CountSubmitted(ctx context.Context, interviewID string, candidateIDs []string) (map[string]int, error)
}

// InterviewReader provides the read-model queries behind the live dashboard:
// interview lookups, candidate listings, answered counts, and the authorized
// candidate-transcript fetch.
type InterviewReader struct {
	interviews  InterviewFinder
	candidates  CandidateFinder
	transcripts TranscriptFinder
}

func NewInterviewReader(interviews InterviewFinder, candidates CandidateFinder, transcripts TranscriptFinder) *InterviewReader {
	return &InterviewReader{
		interviews:  interviews,
		candidates:  candidates,
		transcripts: transcripts,
	}
}

func (r *InterviewReader) InterviewByID(ctx context.Context, id string) (*models.Interview, error) {
	return r.interviews.ByID(ctx, id)
}

func (r *InterviewReader) CandidatesByInterview(ctx context.Context, interviewID string) ([]models.Candidate, error) {
	return r.candidates.ByInterview(ctx, interviewID)
}

func (r *InterviewReader) SubmittedCounts(ctx context.Context, interviewID string, candidateIDs []string) (map[string]int, error) {
	return r.transcripts.CountSubmitted(ctx, interviewID, candidateIDs)
}

// CandidateTranscript returns a candidate with their transcript entries,
// enforcing that the caller owns the interview and the candidate belongs to
// it. A candidate from a different interview reads as not found rather than
// leaking that the id exists.
func (r *InterviewReader) CandidateTranscript(ctx context.Context, interviewID, candidateID, interviewerID string) (*models.CandidateDetails, error) {
	iv, err := r.interviews.ByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if iv.InterviewerID != interviewerID {
		return nil, ErrForbidden
	}

	cand, err := r.candidates.ByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if cand.InterviewID != interviewID {
		return nil, repositories.ErrCandidateNotFound
	}

	transcripts, err := r.transcripts.ByCandidate(ctx, interviewID, candidateID)
	if err != nil {
		return nil, fmt.Errorf("load transcripts: %w", err)
	}

	return &models.CandidateDetails{
		Candidate:   *cand,
		Transcripts: transcripts,
	}, nil
}
