package dashboard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
)

// sendSnapshot pushes dashboard:init as the first frame on a fresh
// connection. On failure the client gets one error event and stays
// connected; the dashboard is just empty until it retries.
func (s *Service) sendSnapshot(ctx context.Context, c *Client, interview *models.Interview) {
	data, err := s.buildSnapshot(ctx, interview)
	if err != nil {
		s.log.Error("Failed to build dashboard snapshot",
			zap.Error(err),
			zap.String("interview_id", interview.ID))
		c.Send(errFrame(msgSnapshotFailed))
		return
	}
	c.Send(Frame{Event: EventInit, Data: data})
}

func (s *Service) buildSnapshot(ctx context.Context, interview *models.Interview) (*InitData, error) {
	candidates, err := s.store.CandidatesByInterview(ctx, interview.ID)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	counts := map[string]int{}
	if len(candidates) > 0 {
		ids := make([]string, 0, len(candidates))
		for _, cand := range candidates {
			ids = append(ids, cand.ID)
		}
		counts, err = s.store.SubmittedCounts(ctx, interview.ID, ids)
		if err != nil {
			return nil, fmt.Errorf("aggregate answered counts: %w", err)
		}
	}

	rows := make([]CandidateSummary, 0, len(candidates))
	for _, cand := range candidates {
		rows = append(rows, CandidateSummary{
			ID:       cand.ID,
			FullName: cand.FullName,
			Email:    cand.Email,
			Status:   cand.Status,
			Progress: models.FormatProgress(counts[cand.ID], interview.NumQuestions),
		})
	}

	return &InitData{
		Interview: InterviewSummary{
			Title:              interview.Title,
			Status:             interview.Status,
			ScheduledStartTime: interview.ScheduledStartTime,
			NumQuestions:       interview.NumQuestions,
		},
		Candidates: rows,
	}, nil
}
