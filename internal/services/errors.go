package services

import "errors"

var (
	// ErrForbidden means the caller is not the owning interviewer.
	ErrForbidden = errors.New("forbidden")

	// ErrAIUnavailable means no LLM provider is configured.
	ErrAIUnavailable = errors.New("ai provider unavailable")
)
