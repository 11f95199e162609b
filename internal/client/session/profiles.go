package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/workforce/internal/client/client"
	"github.com/dmitrijs2005/workforce/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// FetchProfiles loads the worker and employer profiles concurrently.
//
// Without a stored token it only clears the loading flag. A missing profile
// (404) counts as none. A rejected session logs out unless the rejection
// already reset it. Any other failure is recorded as ProfilesFailedMessage
// and the session stays authenticated.
// Results that arrive after a logout or a new login are dropped.
func (s *Session) FetchProfiles(ctx context.Context) error {
	_, ok, err := s.store.Get(ctx)
	if err != nil || !ok {
		s.update(func(snap *Snapshot) bool {
			snap.Loading = false
			return true
		})
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		return nil
	}

	var gen uint64
	s.update(func(snap *Snapshot) bool {
		gen = s.gen
		snap.Loading = true
		snap.Error = ""
		return true
	})

	var (
		g         errgroup.Group
		worker    *models.WorkerProfile
		employers []models.EmployerProfile
		werr      error
		eerr      error
	)
	g.Go(func() error {
		worker, werr = s.profiles.WorkerProfile(ctx)
		return werr
	})
	g.Go(func() error {
		employers, eerr = s.profiles.EmployerProfiles(ctx)
		return eerr
	})
	_ = g.Wait()

	if errors.Is(werr, client.ErrNotFound) {
		worker, werr = nil, nil
	}
	if errors.Is(eerr, client.ErrNotFound) {
		employers, eerr = nil, nil
	}
	err = errors.Join(werr, eerr)

	switch {
	case err == nil:
		s.updateIfCurrent(gen, func(snap *Snapshot) {
			snap.WorkerProfile = worker
			snap.EmployerProfiles = employers
			snap.Loading = false
		})
		return nil

	case client.IsSessionLost(err):
		if s.generation() == gen {
			s.log.Info(ctx, "profiles rejected, logging out", "error", err)
			if lerr := s.Logout(ctx); lerr != nil {
				s.log.Error(ctx, "logout", "error", lerr)
			}
		} else if s.Snapshot().State != Anonymous {
			// A newer session has taken over.
			return nil
		}
		return &Error{Message: SessionExpiredMessage, Err: err}

	default:
		if !s.updateIfCurrent(gen, func(snap *Snapshot) {
			snap.Loading = false
			snap.Error = ProfilesFailedMessage
		}) {
			return nil
		}
		s.log.Warn(ctx, "fetch profiles", "error", err)
		return &Error{Message: ProfilesFailedMessage, Err: err}
	}
}
