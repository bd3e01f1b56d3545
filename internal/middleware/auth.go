package middleware

import (
	"context"
	"net/http"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/utils"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const interviewerIDKey contextKey = "interviewer_id"

// RequireAuth admits requests carrying a valid interviewer token and stores
// the caller's id in the request context.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ExtractTokenFromHeader(r.Header.Get("Authorization"))
		if err != nil {
			utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or malformed Authorization header")
			return
		}

		claims, err := utils.ValidateAuthToken(token)
		if err != nil {
			utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), interviewerIDKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// InterviewerID returns the authenticated caller's id, or "" outside
// RequireAuth.
func InterviewerID(r *http.Request) string {
	id, _ := r.Context().Value(interviewerIDKey).(string)
	return id
}
