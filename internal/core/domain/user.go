package domain

import "time"

// User is the raw auth identity record. Application-level attributes
// (display name, role) live on the Profile keyed by the same id.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
