package models

import "time"

// Interviewer is a registered account that owns interviews and watches
// the live dashboard.
type Interviewer struct {
	ID           string    `bson:"_id" json:"_id"`
	FullName     string    `bson:"full_name" json:"full_name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
