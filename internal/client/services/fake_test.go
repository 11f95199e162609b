package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/workforce/internal/client/client"
)

type fakeRoute struct {
	body string
	err  error
}

// fakeClient implements client.Client with canned responses keyed by
// "METHOD path".
type fakeClient struct {
	mu     sync.Mutex
	routes map[string]fakeRoute
	calls  []string
	bodies map[string]any

	authHeader string
}

var _ client.Client = (*fakeClient)(nil)

func newFakeClient(routes map[string]fakeRoute) *fakeClient {
	return &fakeClient{routes: routes, bodies: map[string]any{}}
}

func (f *fakeClient) do(method, path string, in, out any) error {
	key := method + " " + path

	f.mu.Lock()
	f.calls = append(f.calls, key)
	if in != nil {
		f.bodies[key] = in
	}
	r, ok := f.routes[key]
	f.mu.Unlock()

	if !ok {
		return fmt.Errorf("unexpected call %s", key)
	}
	if r.err != nil {
		return r.err
	}
	if out == nil || r.body == "" {
		return nil
	}
	return json.Unmarshal([]byte(r.body), out)
}

func (f *fakeClient) Get(_ context.Context, path string, out any) error {
	return f.do("GET", path, nil, out)
}

func (f *fakeClient) Post(_ context.Context, path string, in, out any) error {
	return f.do("POST", path, in, out)
}

func (f *fakeClient) SetAuthorization(token string) { f.authHeader = "Bearer " + token }
func (f *fakeClient) ClearAuthorization()           { f.authHeader = "" }

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type countingInvalidator struct {
	mu sync.Mutex
	n  int
}

func (c *countingInvalidator) Invalidate(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
}

func (c *countingInvalidator) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}
