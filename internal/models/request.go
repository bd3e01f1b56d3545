package models

import (
	"regexp"
	"strings"
	"time"
)

var requestEmailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// request payloads for the validation middleware; each implements Validate.

type CreateInterviewRequest struct {
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Topic              string     `json:"topic"`
	Difficulty         Difficulty `json:"difficulty,omitempty"`
	ScheduledStartTime time.Time  `json:"scheduled_start_time"`
	NumQuestions       int        `json:"num_questions"`

	// Optional pre-written questions; when absent they are generated.
	Questions []string `json:"questions,omitempty"`
}

func (r *CreateInterviewRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return &ErrorResponse{Code: "missing_title", Message: "title is required"}
	}
	if r.NumQuestions < 1 || r.NumQuestions > 20 {
		return &ErrorResponse{Code: "invalid_num_questions", Message: "num_questions must be between 1 and 20"}
	}
	if r.Difficulty == "" {
		r.Difficulty = Medium
	}
	switch r.Difficulty {
	case Easy, Medium, Hard:
	default:
		return &ErrorResponse{Code: "invalid_difficulty", Message: "difficulty must be Easy, Medium or Hard"}
	}
	if r.ScheduledStartTime.IsZero() {
		return &ErrorResponse{Code: "missing_schedule", Message: "scheduled_start_time is required"}
	}
	if len(r.Questions) == 0 && strings.TrimSpace(r.Topic) == "" {
		return &ErrorResponse{Code: "missing_topic", Message: "topic is required when questions are not provided"}
	}
	if len(r.Questions) > 0 {
		if len(r.Questions) != r.NumQuestions {
			return &ErrorResponse{Code: "question_count_mismatch", Message: "questions must contain exactly num_questions entries"}
		}
		for _, q := range r.Questions {
			if strings.TrimSpace(q) == "" {
				return &ErrorResponse{Code: "empty_question", Message: "questions must not be empty"}
			}
		}
	}
	return nil
}

type UpdateInterviewRequest struct {
	Title              *string          `json:"title,omitempty"`
	Description        *string          `json:"description,omitempty"`
	ScheduledStartTime *time.Time       `json:"scheduled_start_time,omitempty"`
	Status             *InterviewStatus `json:"status,omitempty"`
}

func (r *UpdateInterviewRequest) Validate() error {
	if r.Title == nil && r.Description == nil && r.ScheduledStartTime == nil && r.Status == nil {
		return &ErrorResponse{Code: "empty_update", Message: "no fields to update"}
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return &ErrorResponse{Code: "missing_title", Message: "title must not be empty"}
	}
	if r.Status != nil {
		switch *r.Status {
		case InterviewScheduled, InterviewLive, InterviewCompleted, InterviewCancelled:
		default:
			return &ErrorResponse{Code: "invalid_status", Message: "unknown interview status"}
		}
	}
	return nil
}

type AddCandidateRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

func (r *AddCandidateRequest) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return &ErrorResponse{Code: "missing_name", Message: "full_name is required"}
	}
	if !requestEmailRe.MatchString(r.Email) {
		return &ErrorResponse{Code: "invalid_email", Message: "a valid email is required"}
	}
	return nil
}

type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	AnswerText string `json:"answer_text"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if r.QuestionID == "" {
		return &ErrorResponse{Code: "missing_question", Message: "question_id is required"}
	}
	if strings.TrimSpace(r.AnswerText) == "" {
		return &ErrorResponse{Code: "missing_answer", Message: "answer_text is required"}
	}
	if len(r.AnswerText) > 20000 {
		return &ErrorResponse{Code: "answer_too_long", Message: "answer_text must be under 20000 characters"}
	}
	return nil
}
