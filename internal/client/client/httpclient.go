package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/workforce/internal/common"
	"github.com/dmitrijs2005/workforce/internal/logging"
)

const (
	DefaultBaseURL = "http://localhost:5000"
	DefaultTimeout = 10 * time.Second

	maxBodySize = 4 << 20
)

// HTTPClient sends JSON requests to the backend through the configured
// middleware chain. It is safe for concurrent use.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu      sync.RWMutex
	headers http.Header

	requestChain  []RequestMiddleware
	responseChain []ResponseMiddleware
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) {
		c.http.Transport = rt
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.log = l
		}
	}
}

// WithRequestMiddleware appends request middleware; they run in the order given.
func WithRequestMiddleware(mw ...RequestMiddleware) Option {
	return func(c *HTTPClient) {
		c.requestChain = append(c.requestChain, mw...)
	}
}

// WithResponseMiddleware appends response middleware; they run in the order given.
func WithResponseMiddleware(mw ...ResponseMiddleware) Option {
	return func(c *HTTPClient) {
		c.responseChain = append(c.responseChain, mw...)
	}
}

// NewHTTPClient builds a client for baseURL (DefaultBaseURL when empty).
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout, Jar: jar},
		log:     logging.Nop(),
		headers: http.Header{
			"Content-Type": []string{"application/json"},
			"Accept":       []string{"application/json"},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured backend address.
func (c *HTTPClient) BaseURL() string { return c.baseURL }

// SetAuthorization installs a default Authorization header for every request.
// A BearerToken middleware, when installed, replaces it with the stored token.
func (c *HTTPClient) SetAuthorization(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers.Set(common.AuthorizationHeaderName, common.BearerValue(token))
}

// ClearAuthorization removes the default Authorization header.
func (c *HTTPClient) ClearAuthorization() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers.Del(common.AuthorizationHeaderName)
}

func (c *HTTPClient) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, in, out any) error {
	return c.Do(ctx, http.MethodPost, path, in, out)
}

// Do sends one request. in, when non-nil, is encoded as the JSON body; out,
// when non-nil, receives the decoded JSON response.
func (c *HTTPClient) Do(ctx context.Context, method, path string, in, out any) error {
	req, err := c.newRequest(ctx, method, path, in)
	if err != nil {
		return err
	}

	req, err = applyRequestChain(req, c.requestChain)
	if err != nil {
		c.log.Debug(ctx, "request aborted", "method", method, "path", path, "error", err)
		return err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	resp, err = applyResponseChain(req, resp, err, c.responseChain)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "error", err)
		return transportError(err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request done",
		"method", method, "path", path, "status", resp.StatusCode,
		"request_id", req.Header.Get(common.RequestIDHeaderName),
		"latency", time.Since(start))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return transportError(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return newAPIError(resp.StatusCode, body)
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, in any) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	target := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		target = c.baseURL + "/" + strings.TrimLeft(path, "/")
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(withPublic(ctx, isPublicPath(req.URL.Path)))

	c.mu.RLock()
	req.Header = c.headers.Clone()
	c.mu.RUnlock()

	return req, nil
}

// transportError maps failures that produced no HTTP status. Cancellation by
// the caller is returned as is; everything else means the server could not
// be reached in time.
func transportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
