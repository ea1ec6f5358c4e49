package handler

import "time"

// projectRequest carries the create/replace form. Status stays free-form
// to match the dashboard, which lets teams define their own pipeline.
type projectRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	ClientName  string     `json:"client_name"`
	ClientEmail string     `json:"client_email" validate:"omitempty,email"`
	Budget      float64    `json:"budget" validate:"omitempty,gte=0"`
	Deadline    *time.Time `json:"deadline"`
}
