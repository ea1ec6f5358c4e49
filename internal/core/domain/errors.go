package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrTokenRevoked = errors.New("token revoked")
var ErrForbidden = errors.New("access forbidden")
var ErrProfileNotFound = errors.New("profile not found")
var ErrTaskNotFound = errors.New("task not found")
var ErrProjectNotFound = errors.New("project not found")

// ValidationError reports a request field that failed validation at the
// boundary (empty required field, value outside a closed enum, malformed
// date or number).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// DataAccessError wraps a storage-layer failure with the operation that
// caused it. Callers surface the message; the cause stays available for
// logging via Unwrap.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}
