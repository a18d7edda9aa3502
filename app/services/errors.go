package services

import "fmt"

// ValidationError marks a request rejected before touching any store:
// a missing or malformed field, a bad file type, an oversized upload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError marks a request that is well-formed but clashes with current
// state, such as an email already in use or a wrong current password.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...interface{}) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}
