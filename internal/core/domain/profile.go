package domain

import (
	"strings"
	"time"
)

// Profile is the application-level user record, distinct from the raw
// auth identity. Exactly one profile exists per user id.
type Profile struct {
	ID        string    `json:"id" bson:"_id"`
	Email     string    `json:"email" bson:"email"`
	FullName  string    `json:"full_name,omitempty" bson:"full_name,omitempty"`
	Role      Role      `json:"role" bson:"role"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// DefaultFullName derives a display name from an email address when the
// user supplied none at sign-up: the local part of the address.
func DefaultFullName(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
