package models

import (
	"strings"
	"testing"
	"time"
)

func expectErrCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error code %s but got nil", code)
	}
	resp, ok := err.(*ErrorResponse)
	if !ok {
		t.Fatalf("expected ErrorResponse, got %T", err)
	}
	if resp.Code != code {
		t.Fatalf("expected error code %s, got %s", code, resp.Code)
	}
}

func TestErrorResponse_Error(t *testing.T) {
	err := &ErrorResponse{Message: "failed"}
	if err.Error() != "failed" {
		t.Fatalf("expected message to be returned, got %s", err.Error())
	}
}

func validCreate() *CreateInterviewRequest {
	return &CreateInterviewRequest{
		Title:              "Backend screen",
		Topic:              "Goroutines",
		NumQuestions:       3,
		ScheduledStartTime: time.Now().Add(time.Hour),
	}
}

func TestCreateInterviewRequestValidate(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		req := validCreate()
		req.Title = "  "
		expectErrCode(t, req.Validate(), "missing_title")
	})

	t.Run("num questions out of range", func(t *testing.T) {
		req := validCreate()
		req.NumQuestions = 0
		expectErrCode(t, req.Validate(), "invalid_num_questions")
		req.NumQuestions = 21
		expectErrCode(t, req.Validate(), "invalid_num_questions")
	})

	t.Run("unknown difficulty", func(t *testing.T) {
		req := validCreate()
		req.Difficulty = "Impossible"
		expectErrCode(t, req.Validate(), "invalid_difficulty")
	})

	t.Run("missing schedule", func(t *testing.T) {
		req := validCreate()
		req.ScheduledStartTime = time.Time{}
		expectErrCode(t, req.Validate(), "missing_schedule")
	})

	t.Run("topic required without questions", func(t *testing.T) {
		req := validCreate()
		req.Topic = ""
		expectErrCode(t, req.Validate(), "missing_topic")
	})

	t.Run("question count mismatch", func(t *testing.T) {
		req := validCreate()
		req.Questions = []string{"only one"}
		expectErrCode(t, req.Validate(), "question_count_mismatch")
	})

	t.Run("blank question", func(t *testing.T) {
		req := validCreate()
		req.Questions = []string{"a", " ", "c"}
		expectErrCode(t, req.Validate(), "empty_question")
	})

	t.Run("valid request defaults difficulty", func(t *testing.T) {
		req := validCreate()
		if err := req.Validate(); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if req.Difficulty != Medium {
			t.Fatalf("expected default difficulty Medium, got %s", req.Difficulty)
		}
	})

	t.Run("prewritten questions skip topic", func(t *testing.T) {
		req := validCreate()
		req.Topic = ""
		req.Questions = []string{"a", "b", "c"}
		if err := req.Validate(); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})
}

func TestUpdateInterviewRequestValidate(t *testing.T) {
	t.Run("empty update", func(t *testing.T) {
		req := &UpdateInterviewRequest{}
		expectErrCode(t, req.Validate(), "empty_update")
	})

	t.Run("blank title", func(t *testing.T) {
		title := "  "
		req := &UpdateInterviewRequest{Title: &title}
		expectErrCode(t, req.Validate(), "missing_title")
	})

	t.Run("unknown status", func(t *testing.T) {
		status := InterviewStatus("paused")
		req := &UpdateInterviewRequest{Status: &status}
		expectErrCode(t, req.Validate(), "invalid_status")
	})

	t.Run("valid status change", func(t *testing.T) {
		status := InterviewLive
		req := &UpdateInterviewRequest{Status: &status}
		if err := req.Validate(); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})
}

func TestAddCandidateRequestValidate(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		req := &AddCandidateRequest{Email: "ada@example.com"}
		expectErrCode(t, req.Validate(), "missing_name")
	})

	t.Run("bad email", func(t *testing.T) {
		req := &AddCandidateRequest{FullName: "Ada", Email: "not-an-email"}
		expectErrCode(t, req.Validate(), "invalid_email")
	})

	t.Run("valid", func(t *testing.T) {
		req := &AddCandidateRequest{FullName: "Ada", Email: "ada@example.com"}
		if err := req.Validate(); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})
}

func TestSubmitAnswerRequestValidate(t *testing.T) {
	t.Run("missing question", func(t *testing.T) {
		req := &SubmitAnswerRequest{AnswerText: "because"}
		expectErrCode(t, req.Validate(), "missing_question")
	})

	t.Run("blank answer", func(t *testing.T) {
		req := &SubmitAnswerRequest{QuestionID: "q1", AnswerText: "   "}
		expectErrCode(t, req.Validate(), "missing_answer")
	})

	t.Run("oversized answer", func(t *testing.T) {
		req := &SubmitAnswerRequest{QuestionID: "q1", AnswerText: strings.Repeat("a", 20001)}
		expectErrCode(t, req.Validate(), "answer_too_long")
	})

	t.Run("valid", func(t *testing.T) {
		req := &SubmitAnswerRequest{QuestionID: "q1", AnswerText: "Channels synchronize goroutines."}
		if err := req.Validate(); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})
}
