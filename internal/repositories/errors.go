package repositories

import "errors"

// Sentinel errors returned by the storage layer. Callers branch on these
// with errors.Is and map them to HTTP or socket responses.
var (
	ErrInterviewerNotFound = errors.New("interviewer not found")
	ErrInterviewNotFound   = errors.New("interview not found")
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrDuplicateEmail      = errors.New("email already registered")
)
