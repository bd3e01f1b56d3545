package dashboard

import (
	"encoding/json"
	"time"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
)

// Inbound event tags.
const (
	EventCandidateDetails = "request:candidate_details"
	EventPing             = "ping"
)

// Outbound event tags.
const (
	EventInit           = "dashboard:init"
	EventCandidateReply = "response:candidate_details"
	EventPong           = "pong"
	EventError          = "error"
)

// Close reasons carried on the close frame.
const (
	ReasonMissingParams    = "Missing token or interviewId"
	ReasonInvalidToken     = "Invalid authentication token"
	ReasonInterviewMissing = "Interview not found"
	ReasonNotOwner         = "Unauthorized access to this interview"
	ReasonHandshakeError   = "Internal server error during handshake"
	ReasonShuttingDown     = "Server shutting down"
)

// Error-event messages.
const (
	msgSnapshotFailed     = "Failed to load dashboard data"
	msgInvalidFormat      = "Invalid message format"
	msgCandidateNotFound  = "Candidate not found"
	msgCandidateForbidden = "Unauthorized access to candidate details"
	msgCandidateFailed    = "Failed to load candidate details"
)

// Frame is the outbound envelope. Data carries event payloads; error events
// carry Message instead.
type Frame struct {
	Event   string `json:"event"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func errFrame(msg string) Frame { return Frame{Event: EventError, Message: msg} }

// Envelope is the inbound envelope; Payload decodes per event.
type Envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

type candidateDetailsPayload struct {
	CandidateID string `json:"candidateId"`
}

// InitData is the dashboard:init payload.
type InitData struct {
	Interview  InterviewSummary   `json:"interview"`
	Candidates []CandidateSummary `json:"candidates"`
}

type InterviewSummary struct {
	Title              string                 `json:"title"`
	Status             models.InterviewStatus `json:"status"`
	ScheduledStartTime time.Time              `json:"scheduled_start_time"`
	NumQuestions       int                    `json:"num_questions"`
}

// CandidateSummary is one dashboard row. Progress reads "answered/total",
// e.g. "3/5".
type CandidateSummary struct {
	ID       string                 `json:"_id"`
	FullName string                 `json:"full_name"`
	Email    string                 `json:"email"`
	Status   models.CandidateStatus `json:"status"`
	Progress string                 `json:"progress"`
}
