package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/metrics"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/repositories"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/services"
)

const lookupTimeout = 10 * time.Second

// route dispatches one inbound frame. A malformed frame answers with exactly
// one error event and the connection stays open; unknown tags are logged and
// dropped.
func (s *Service) route(c *Client, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Event == "" {
		c.Send(errFrame(msgInvalidFormat))
		return
	}

	switch env.Event {
	case EventCandidateDetails:
		metrics.DashboardMessages.WithLabelValues(env.Event).Inc()
		s.handleCandidateDetails(c, env.Payload)

	case EventPing:
		metrics.DashboardMessages.WithLabelValues(env.Event).Inc()
		c.MarkAlive()
		c.Send(Frame{Event: EventPong})

	default:
		// one shared label keeps the cardinality bounded
		metrics.DashboardMessages.WithLabelValues("unknown").Inc()
		s.log.Warn("Unknown dashboard event",
			zap.String("event", env.Event),
			zap.String("interview_id", c.InterviewID))
	}
}

// handleCandidateDetails answers request:candidate_details. Identity and
// interview come from the connection, never from the payload; the store
// enforces ownership and membership.
func (s *Service) handleCandidateDetails(c *Client, payload json.RawMessage) {
	var req candidateDetailsPayload
	if len(payload) > 0 {
		_ = json.Unmarshal(payload, &req)
	}
	if req.CandidateID == "" {
		c.Send(errFrame(msgCandidateNotFound))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	details, err := s.store.CandidateTranscript(ctx, c.InterviewID, req.CandidateID, c.InterviewerID)
	switch {
	case err == nil:
		c.Send(Frame{Event: EventCandidateReply, Data: details})

	case errors.Is(err, repositories.ErrCandidateNotFound),
		errors.Is(err, repositories.ErrInterviewNotFound):
		c.Send(errFrame(msgCandidateNotFound))

	case errors.Is(err, services.ErrForbidden):
		c.Send(errFrame(msgCandidateForbidden))

	default:
		s.log.Error("Candidate details lookup failed",
			zap.Error(err),
			zap.String("interview_id", c.InterviewID),
			zap.String("candidate_id", req.CandidateID))
		c.Send(errFrame(msgCandidateFailed))
	}
}
