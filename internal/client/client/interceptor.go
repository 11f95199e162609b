package client

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/workforce/internal/client/claims"
	"github.com/dmitrijs2005/workforce/internal/common"
	"github.com/dmitrijs2005/workforce/internal/logging"
)

// TokenStore is the part of the token store the interceptors need.
type TokenStore interface {
	Get(ctx context.Context) (string, bool, error)
	Clear(ctx context.Context) error
}

// BearerToken attaches the stored token to outgoing requests.
//
// The store is the source of truth for credentials. Any Authorization header
// already on the request, including the client default installed by
// SetAuthorization, is dropped first, so only a stored token that decodes and
// is not expired is ever sent. Clients built without this middleware send the
// default header as is.
//
// A malformed or expired token is cleared from the store and the request is
// aborted with ErrMalformedToken or ErrTokenExpired; on public paths the
// request goes out anonymously instead.
func BearerToken(store TokenStore, now func() time.Time, log logging.Logger) RequestMiddleware {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logging.Nop()
	}

	return func(req *http.Request) (*http.Request, error) {
		ctx := req.Context()
		req.Header.Del(common.AuthorizationHeaderName)

		token, ok, err := store.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("read token: %w", err)
		}
		if !ok {
			return req, nil
		}

		if _, err := claims.Check(token, now()); err != nil {
			log.Info(ctx, "dropping stored token", "reason", err, "path", req.URL.Path)
			if cerr := store.Clear(ctx); cerr != nil {
				log.Error(ctx, "clear token", "error", cerr)
			}
			if IsPublic(req) {
				return req, nil
			}
			return nil, err
		}

		req.Header.Set(common.AuthorizationHeaderName, common.BearerValue(token))
		return req, nil
	}
}

// ClearOnUnauthorized clears the token store when a non-public call answers
// 401. The response and error are passed on unchanged. Concurrent 401s clear
// the store once: only the caller that still sees a token performs the clear.
func ClearOnUnauthorized(store TokenStore, log logging.Logger) ResponseMiddleware {
	if log == nil {
		log = logging.Nop()
	}
	var mu sync.Mutex

	return func(req *http.Request, resp *http.Response, err error) (*http.Response, error) {
		if resp == nil || resp.StatusCode != http.StatusUnauthorized || IsPublic(req) {
			return resp, err
		}

		ctx := context.WithoutCancel(req.Context())

		mu.Lock()
		defer mu.Unlock()

		_, ok, gerr := store.Get(ctx)
		if gerr != nil {
			log.Error(ctx, "read token", "error", gerr)
			return resp, err
		}
		if !ok {
			return resp, err
		}

		log.Warn(ctx, "session rejected by server, clearing token", "path", req.URL.Path)
		if cerr := store.Clear(ctx); cerr != nil {
			log.Error(ctx, "clear token", "error", cerr)
		}
		return resp, err
	}
}

// OnUnauthorized calls fn when a non-public call answers 401. Placed after
// ClearOnUnauthorized it runs once the store is already empty; fn is how the
// owner of the session state learns that the server rejected it. fn may be
// called once per rejected request and must tolerate repeats.
func OnUnauthorized(fn func(ctx context.Context)) ResponseMiddleware {
	return func(req *http.Request, resp *http.Response, err error) (*http.Response, error) {
		if fn != nil && resp != nil && resp.StatusCode == http.StatusUnauthorized && !IsPublic(req) {
			fn(context.WithoutCancel(req.Context()))
		}
		return resp, err
	}
}
