// Package common contains shared constants and sentinel errors used across
// the workforce client packages.
package common

const (
	// TokenStorageKey is the metadata key holding the persisted bearer token.
	TokenStorageKey = "token"

	// TokenSavedAtKey records when the token slot was last written.
	TokenSavedAtKey = "token_saved_at"

	// AuthorizationHeaderName carries the bearer credential on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName correlates a client request with backend logs.
	RequestIDHeaderName = "X-Request-ID"

	// BearerPrefix precedes the token in the Authorization header value.
	BearerPrefix = "Bearer "
)

// BearerValue formats a token as an Authorization header value.
func BearerValue(token string) string {
	return BearerPrefix + token
}
