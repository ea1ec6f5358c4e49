package handler

import "time"

type createTaskRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status" validate:"omitempty,oneof=pending processing completed"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low high"`
	Remarks     string     `json:"remarks"`
	DueDate     *time.Time `json:"due_date"`
	AssignedTo  string     `json:"assigned_to"`
}

// updateTaskRequest is a partial update; absent fields stay untouched.
type updateTaskRequest struct {
	Status     *string `json:"status" validate:"omitempty,oneof=pending processing completed"`
	Remarks    *string `json:"remarks"`
	AssignedTo *string `json:"assigned_to"`
}
