package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/workforce/internal/common"
)

var (
	ErrUnavailable    = common.ErrUnavailable
	ErrUnauthorized   = common.ErrUnauthorized
	ErrNotFound       = common.ErrNotFound
	ErrMalformedToken = common.ErrMalformedToken
	ErrTokenExpired   = common.ErrTokenExpired
)

// APIError is a non-2xx response. Message holds the backend's structured
// error text when the body carried one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, msg)
}

// Is lets errors.Is match status-specific sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

func newAPIError(status int, body []byte) *APIError {
	return &APIError{StatusCode: status, Message: errorText(body)}
}

// errorText extracts {"error": ...}, {"message": ...} or {"msg": ...} from
// an error body, in that order of preference.
func errorText(body []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	for _, key := range []string{"error", "message", "msg"} {
		if s, ok := fields[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// ErrorMessage returns the backend-provided message carried by err, or
// fallback when there is none.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsSessionLost reports whether err means the stored session is no longer
// usable: the backend answered 401 or the token was rejected before sending.
func IsSessionLost(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrMalformedToken)
}
