package session

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/workforce/internal/client/client"
	"github.com/dmitrijs2005/workforce/internal/client/services"
	"github.com/dmitrijs2005/workforce/internal/client/tokens"
	"github.com/dmitrijs2005/workforce/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// countingStore counts every Clear call on top of a MemoryStore.
type countingStore struct {
	*tokens.MemoryStore
	clears atomic.Int32
}

func (c *countingStore) Clear(ctx context.Context) error {
	c.clears.Add(1)
	return c.MemoryStore.Clear(ctx)
}

func (c *countingStore) stored(t *testing.T) (string, bool) {
	t.Helper()
	tok, ok, err := c.Get(context.Background())
	require.NoError(t, err)
	return tok, ok
}

type harness struct {
	session *Session
	store   *countingStore
	http    *client.HTTPClient

	mu      sync.Mutex
	calls   []string
	headers map[string]string
}

func (h *harness) Calls() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.calls...)
}

func (h *harness) AuthHeader(path string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.headers[path]
}

// newHarness wires a Session the way the CLI does, against a stub backend
// whose routes are given as "METHOD /path" patterns.
func newHarness(t *testing.T, routes map[string]http.HandlerFunc) *harness {
	t.Helper()
	h := &harness{
		store:   &countingStore{MemoryStore: tokens.NewMemoryStore()},
		headers: map[string]string{},
	}

	mux := http.NewServeMux()
	for pattern, fn := range routes {
		mux.HandleFunc(pattern, fn)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		h.calls = append(h.calls, r.Method+" "+r.URL.Path)
		h.headers[r.URL.Path] = r.Header.Get("Authorization")
		h.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	log := logging.Nop()
	hc, err := client.NewHTTPClient(srv.URL,
		client.WithLogger(log),
		client.WithRequestMiddleware(
			client.RequestID(),
			client.BearerToken(h.store, time.Now, log),
		),
		client.WithResponseMiddleware(
			client.ClearOnUnauthorized(h.store, log),
			client.OnUnauthorized(func(ctx context.Context) { h.session.Invalidate(ctx) }),
		),
	)
	require.NoError(t, err)
	h.http = hc

	h.session = New(h.store,
		services.NewAuthService(hc),
		services.NewProfileService(hc),
		hc,
		WithLogger(log),
	)
	return h
}

// seed stores tok as if a previous run had logged in.
func (h *harness) seed(t *testing.T, tok string) {
	t.Helper()
	require.NoError(t, h.store.Set(context.Background(), tok))
}

func validToken(t *testing.T) string {
	t.Helper()
	return signToken(t, time.Now().Add(time.Hour))
}

func expiredToken(t *testing.T) string {
	t.Helper()
	return signToken(t, time.Now().Add(-time.Hour))
}

func signToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 7,
		"exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return tok
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func authResponse(tok string) string {
	return `{"access_token":"` + tok + `","user":{"id":7,"role":"worker","email":"w@x.io","name":"Wanda"}}`
}
