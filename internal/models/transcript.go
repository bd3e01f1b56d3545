package models

import "time"

// Transcript is one candidate's answer to one question. SubmittedAt stays
// null until the candidate submits; the dashboard's answered counts only
// consider entries with a non-null SubmittedAt.
type Transcript struct {
	ID           string     `bson:"_id" json:"_id"`
	InterviewID  string     `bson:"interview_id" json:"interview_id"`
	CandidateID  string     `bson:"candidate_id" json:"candidate_id"`
	QuestionID   string     `bson:"question_id" json:"question_id"`
	QuestionText string     `bson:"question_text" json:"question_text"`
	AnswerText   string     `bson:"answer_text" json:"answer_text"`
	Score        *int       `bson:"score" json:"score"`
	Feedback     string     `bson:"feedback,omitempty" json:"feedback,omitempty"`
	SubmittedAt  *time.Time `bson:"submitted_at" json:"submitted_at"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
}

// CandidateDetails bundles a candidate with their transcript entries, as
// returned to an authorized interviewer.
type CandidateDetails struct {
	Candidate   Candidate    `json:"candidate"`
	Transcripts []Transcript `json:"transcripts"`
}
