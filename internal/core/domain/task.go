package domain

import "time"

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskProcessing TaskStatus = "processing"
	TaskCompleted  TaskStatus = "completed"
)

// ParseTaskStatus validates a string against the closed status enum.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case TaskPending, TaskProcessing, TaskCompleted:
		return TaskStatus(s), nil
	}
	return "", &ValidationError{Field: "status", Reason: "must be one of: pending, processing, completed"}
}

// TaskPriority is the urgency level of a task.
type TaskPriority string

const (
	PriorityLow  TaskPriority = "low"
	PriorityHigh TaskPriority = "high"
)

// ParseTaskPriority validates a string against the closed priority enum.
func ParseTaskPriority(s string) (TaskPriority, error) {
	switch TaskPriority(s) {
	case PriorityLow, PriorityHigh:
		return TaskPriority(s), nil
	}
	return "", &ValidationError{Field: "priority", Reason: "must be one of: low, high"}
}

// Task is a unit of work created by an admin or employee and optionally
// assigned to a profile. Tasks are never deleted.
type Task struct {
	ID          string       `json:"id" bson:"_id"`
	Title       string       `json:"title" bson:"title"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	Status      TaskStatus   `json:"status" bson:"status"`
	Priority    TaskPriority `json:"priority" bson:"priority"`
	Remarks     string       `json:"remarks,omitempty" bson:"remarks,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty" bson:"due_date,omitempty"`
	CreatedBy   string       `json:"created_by" bson:"created_by"`
	AssignedTo  string       `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" bson:"updated_at"`
}

// CanBeUpdatedBy reports whether the caller may change status, remarks or
// assignment on this task: the assignee or any admin.
func (t *Task) CanBeUpdatedBy(profileID string, role Role) bool {
	return role == RoleAdmin || (t.AssignedTo != "" && t.AssignedTo == profileID)
}

// ChangeOp identifies the kind of mutation carried by a change notification.
type ChangeOp string

const (
	ChangeInsert ChangeOp = "insert"
	ChangeUpdate ChangeOp = "update"
	ChangeDelete ChangeOp = "delete"
)

// TaskChange is the payload published on the tasks change feed after a
// mutation. Consumers treat any change as reason to drop cached lists.
type TaskChange struct {
	Op     ChangeOp `json:"op"`
	TaskID string   `json:"task_id"`
}
