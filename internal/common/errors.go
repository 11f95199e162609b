package common

import "errors"

// Sentinels are matched with errors.Is.
var (
	// Token errors. Both are treated as "not authenticated".
	ErrMalformedToken = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token expired")

	// Transport/service errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")
	ErrNotFound     = errors.New("not found")
)
