package client

import "context"

// Client is the transport contract used by the API services.
type Client interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, in, out any) error
	SetAuthorization(token string)
	ClearAuthorization()
}

var _ Client = (*HTTPClient)(nil)
