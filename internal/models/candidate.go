package models

import (
	"fmt"
	"time"
)

// status describes where a candidate is in the interview flow.
// invited candidates have not opened their session link yet.
type CandidateStatus string

const (
	CandidateInvited    CandidateStatus = "invited"
	CandidateInProgress CandidateStatus = "in_progress"
	CandidateCompleted  CandidateStatus = "completed"
)

type Candidate struct {
	ID          string          `bson:"_id" json:"_id"`
	InterviewID string          `bson:"interview_id" json:"interview_id"`
	FullName    string          `bson:"full_name" json:"full_name"`
	Email       string          `bson:"email" json:"email"`
	Status      CandidateStatus `bson:"status" json:"status"`
	CreatedAt   time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `bson:"updated_at" json:"updated_at"`
}

// FormatProgress renders the dashboard progress string, e.g. "3/5".
func FormatProgress(answered, total int) string {
	return fmt.Sprintf("%d/%d", answered, total)
}
