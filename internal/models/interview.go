package models

import "time"

type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewLive      InterviewStatus = "live"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
)

// CanTransitionTo reports whether an interview may move to the given status.
// The normal path is scheduled -> live -> completed; cancellation is allowed
// from any state that is not already completed or cancelled.
func (s InterviewStatus) CanTransitionTo(next InterviewStatus) bool {
	if s == next {
		return true
	}
	switch next {
	case InterviewLive:
		return s == InterviewScheduled
	case InterviewCompleted:
		return s == InterviewLive
	case InterviewCancelled:
		return s == InterviewScheduled || s == InterviewLive
	}
	return false
}

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Question is a single interview question, embedded in its interview document.
type Question struct {
	ID   string `bson:"_id" json:"_id"`
	Text string `bson:"text" json:"text"`
}

type Interview struct {
	ID                 string          `bson:"_id" json:"_id"`
	InterviewerID      string          `bson:"interviewer_id" json:"interviewer_id"`
	Title              string          `bson:"title" json:"title"`
	Description        string          `bson:"description,omitempty" json:"description,omitempty"`
	Topic              string          `bson:"topic" json:"topic"`
	Difficulty         Difficulty      `bson:"difficulty" json:"difficulty"`
	Status             InterviewStatus `bson:"status" json:"status"`
	ScheduledStartTime time.Time       `bson:"scheduled_start_time" json:"scheduled_start_time"`
	NumQuestions       int             `bson:"num_questions" json:"num_questions"`
	Questions          []Question      `bson:"questions" json:"questions,omitempty"`
	ReportExportedAt   *time.Time      `bson:"report_exported_at,omitempty" json:"report_exported_at,omitempty"`
	CreatedAt          time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time       `bson:"updated_at" json:"updated_at"`
}
