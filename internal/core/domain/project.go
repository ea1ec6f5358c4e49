package domain

import "time"

// Project is a client engagement. Status is free-form by design; the
// client link is the denormalized client_email string, matched against a
// profile's account email at query time (no foreign key).
type Project struct {
	ID          string     `json:"id" bson:"_id"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Status      string     `json:"status" bson:"status"`
	ClientName  string     `json:"client_name,omitempty" bson:"client_name,omitempty"`
	ClientEmail string     `json:"client_email,omitempty" bson:"client_email,omitempty"`
	Budget      float64    `json:"budget" bson:"budget"`
	Deadline    *time.Time `json:"deadline,omitempty" bson:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
}

// VisibleTo reports whether a caller may see this project: admins and
// employees see everything, clients only projects carrying their email.
func (p *Project) VisibleTo(role Role, email string) bool {
	if role == RoleAdmin || role == RoleEmployee {
		return true
	}
	return p.ClientEmail != "" && p.ClientEmail == email
}
