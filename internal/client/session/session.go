// Package session holds the client's authentication state: who is logged
// in, their profiles, and the operations that change them.
//
// A Session starts Anonymous. Login, RegisterUser and a successful Init move
// it to Authenticated; Logout and any rejected credential move it back.
// Loading is reported while the current user is being resolved. Subscribers
// receive a Snapshot after every change.
//
// Every reset bumps a generation counter. Results of requests started before
// a reset are discarded when they arrive, so a slow profile fetch cannot
// repopulate a session that has since logged out.
package session

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/workforce/internal/client/models"
	"github.com/dmitrijs2005/workforce/internal/client/services"
	"github.com/dmitrijs2005/workforce/internal/client/tokens"
	"github.com/dmitrijs2005/workforce/internal/logging"
)

type State int

const (
	Anonymous State = iota
	Loading
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	}
	return "unknown"
}

// Snapshot is a point-in-time copy of the session.
type Snapshot struct {
	State            State
	CurrentUser      *models.User
	WorkerProfile    *models.WorkerProfile
	EmployerProfiles []models.EmployerProfile
	Loading          bool
	Error            string
}

func (s Snapshot) empty() bool {
	return s.State == Anonymous && s.CurrentUser == nil && s.WorkerProfile == nil &&
		len(s.EmployerProfiles) == 0 && !s.Loading && s.Error == ""
}

func (s Snapshot) clone() Snapshot {
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		s.CurrentUser = &u
	}
	if s.WorkerProfile != nil {
		p := *s.WorkerProfile
		s.WorkerProfile = &p
	}
	s.EmployerProfiles = slices.Clone(s.EmployerProfiles)
	return s
}

// Authorizer manages the default Authorization header of the HTTP client.
type Authorizer interface {
	SetAuthorization(token string)
	ClearAuthorization()
}

type Session struct {
	store    tokens.Store
	auth     services.AuthService
	profiles services.ProfileService
	authz    Authorizer
	log      logging.Logger

	mu   sync.Mutex
	snap Snapshot
	gen  uint64
	subs map[int]func(Snapshot)
	next int
}

var _ services.Invalidator = (*Session)(nil)

type Option func(*Session)

func WithLogger(l logging.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates an Anonymous session. Call Init to pick up a stored token.
func New(store tokens.Store, auth services.AuthService, profiles services.ProfileService, authz Authorizer, opts ...Option) *Session {
	s := &Session{
		store:    store,
		auth:     auth,
		profiles: profiles,
		authz:    authz,
		log:      logging.Nop(),
		subs:     make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.clone()
}

// Subscribe registers fn to receive a Snapshot after every change. fn runs
// outside the session lock and may call back into the Session.
func (s *Session) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// UserRole returns the current user's role, if any.
func (s *Session) UserRole() (models.Role, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.CurrentUser == nil || s.snap.CurrentUser.Role == "" {
		return "", false
	}
	return s.snap.CurrentUser.Role, true
}

// SetCurrentUser replaces the current user. A nil user makes the session
// Anonymous without touching the token store.
func (s *Session) SetCurrentUser(u *models.User) {
	s.update(func(snap *Snapshot) bool {
		if u == nil {
			s.gen++
			*snap = Snapshot{State: Anonymous}
			return true
		}
		cp := *u
		snap.CurrentUser = &cp
		snap.State = Authenticated
		return true
	})
}

// Invalidate resets the session after the server rejected it. The token
// store is left alone: the response interceptor has already cleared it.
// Invalidating a session that is already empty changes nothing, so several
// rejected requests in a row produce a single transition.
func (s *Session) Invalidate(ctx context.Context) {
	changed := false
	s.update(func(snap *Snapshot) bool {
		if snap.empty() {
			return false
		}
		s.gen++
		*snap = Snapshot{State: Anonymous}
		changed = true
		return true
	})
	if s.authz != nil {
		s.authz.ClearAuthorization()
	}
	if changed {
		s.log.Info(ctx, "session invalidated")
	}
}

func (s *Session) reset() {
	s.update(func(snap *Snapshot) bool {
		s.gen++
		*snap = Snapshot{State: Anonymous}
		return true
	})
	if s.authz != nil {
		s.authz.ClearAuthorization()
	}
}

// update applies fn under the lock and, when fn reports a change, notifies
// subscribers afterwards.
func (s *Session) update(fn func(*Snapshot) bool) {
	s.mu.Lock()
	if !fn(&s.snap) {
		s.mu.Unlock()
		return
	}
	snap := s.snap.clone()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snap)
	}
}

// generation returns the current reset counter.
func (s *Session) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// updateIfCurrent applies fn only when no reset happened since gen was read.
func (s *Session) updateIfCurrent(gen uint64, fn func(*Snapshot)) bool {
	applied := false
	s.update(func(snap *Snapshot) bool {
		if s.gen != gen {
			return false
		}
		applied = true
		fn(snap)
		return true
	})
	return applied
}
