package domain

// Role governs row visibility and mutation rights across the system.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleClient   Role = "client"
)

// ParseRole validates a free-form string against the closed role enum.
// Profiles are stored with a plain string column, so every read crosses
// this boundary instead of trusting the cast.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleEmployee, RoleClient:
		return Role(s), nil
	}
	return "", &ValidationError{Field: "role", Reason: "must be one of: admin, employee, client"}
}

// CanManageTasks reports whether the role may create tasks and see every task.
func (r Role) CanManageTasks() bool {
	return r == RoleAdmin || r == RoleEmployee
}
