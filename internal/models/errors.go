package models

import "errors"

// Domain errors shared by repositories and services. Handlers map them to
// HTTP status codes with errors.Is / errors.As.
var (
	// ErrUserNotFound is returned by lookups that match no active user.
	// The authentication layer collapses it into ErrInvalidCredentials so
	// callers cannot probe for existing usernames.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken signals a username uniqueness violation, either from
	// the pre-insert check or from the unique index on a concurrent insert.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials covers every authentication failure: unknown
	// username, inactive account, or password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError is a user-correctable input error. Message is the exact
// text returned to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given client message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
