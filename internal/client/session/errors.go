package session

import "fmt"

// User-facing fallbacks used when the backend sends no message of its own.
const (
	LoginFailedMessage    = "Invalid credentials or server error."
	RegisterFailedMessage = "Registration failed"
	ProfilesFailedMessage = "Failed to fetch profiles"
	SessionExpiredMessage = "Your session has expired, please log in again"
)

// Error is a failed session operation. Message is safe to show to the user;
// Err is the underlying cause.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

// ValidationError is a client-side input check that failed before any
// request was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
