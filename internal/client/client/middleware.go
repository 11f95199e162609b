package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/workforce/internal/common"
	"github.com/google/uuid"
)

// RequestMiddleware transforms an outgoing request. Returning an error
// aborts the call: the request is never sent and the error reaches the caller.
type RequestMiddleware func(req *http.Request) (*http.Request, error)

// ResponseMiddleware observes or transforms the outcome of a round trip.
// It runs for every call that was sent, whether it produced a response,
// a transport error, or both.
type ResponseMiddleware func(req *http.Request, resp *http.Response, err error) (*http.Response, error)

func applyRequestChain(req *http.Request, chain []RequestMiddleware) (*http.Request, error) {
	var err error
	for _, mw := range chain {
		if req, err = mw(req); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func applyResponseChain(req *http.Request, resp *http.Response, err error, chain []ResponseMiddleware) (*http.Response, error) {
	for _, mw := range chain {
		resp, err = mw(req, resp, err)
	}
	return resp, err
}

type publicKey struct{}

// publicPrefixes are endpoints that work without a session. Stale
// credentials are dropped rather than blocking them, and a 401 from them is
// a failed credential check, not a session invalidation.
var publicPrefixes = []string{"/auth/"}

func isPublicPath(path string) bool {
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func withPublic(ctx context.Context, public bool) context.Context {
	return context.WithValue(ctx, publicKey{}, public)
}

// IsPublic reports whether req targets an endpoint that needs no session.
func IsPublic(req *http.Request) bool {
	public, _ := req.Context().Value(publicKey{}).(bool)
	return public
}

// RequestID sets X-Request-ID to a fresh UUID unless the caller provided one.
func RequestID() RequestMiddleware {
	return func(req *http.Request) (*http.Request, error) {
		if req.Header.Get(common.RequestIDHeaderName) == "" {
			req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
		}
		return req, nil
	}
}
