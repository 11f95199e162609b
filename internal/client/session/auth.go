package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/workforce/internal/client/client"
	"github.com/dmitrijs2005/workforce/internal/client/models"
)

// Login authenticates with email and password. On success the token is
// stored, installed as the default Authorization header and the session
// becomes Authenticated with the returned user. On failure the session is
// left as it was and the error is an *Error carrying the backend message.
func (s *Session) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.log.Info(ctx, "login failed", "email", email, "error", err)
		return nil, "", &Error{Message: client.ErrorMessage(err, LoginFailedMessage), Err: err}
	}
	if err := s.establish(ctx, resp); err != nil {
		return nil, "", err
	}

	u := resp.User
	s.log.Info(ctx, "login succeeded", "user_id", u.ID, "role", u.Role)
	return &u, resp.AccessToken, nil
}

// RegisterUser creates an account and logs it in. Inputs are validated
// locally first; a *ValidationError means no request was sent.
func (s *Session) RegisterUser(ctx context.Context, name, email, password string) error {
	if err := ValidateRegistration(name, email, password); err != nil {
		return err
	}

	resp, err := s.auth.Register(ctx, name, email, password)
	if err != nil {
		s.log.Info(ctx, "registration failed", "email", email, "error", err)
		return &Error{Message: client.ErrorMessage(err, RegisterFailedMessage), Err: err}
	}
	if err := s.establish(ctx, resp); err != nil {
		return err
	}

	s.log.Info(ctx, "registered", "user_id", resp.User.ID, "role", resp.User.Role)
	return nil
}

func (s *Session) establish(ctx context.Context, resp *models.AuthResponse) error {
	if err := s.store.Set(ctx, resp.AccessToken); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	s.authz.SetAuthorization(resp.AccessToken)

	u := resp.User
	s.update(func(snap *Snapshot) bool {
		s.gen++
		*snap = Snapshot{State: Authenticated, CurrentUser: &u}
		return true
	})
	return nil
}

// Logout returns the session to Anonymous, removes the stored token and the
// default Authorization header. Calling it again is a no-op.
func (s *Session) Logout(ctx context.Context) error {
	err := s.clearToken(ctx)
	s.reset()
	if err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// clearToken clears the store only when it still holds a token, so a slot
// already emptied by the 401 interceptor is not cleared a second time.
func (s *Session) clearToken(ctx context.Context) error {
	_, ok, err := s.store.Get(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return s.store.Clear(ctx)
}

// Init reconciles a token persisted by a previous run. With a token present
// it installs the header, resolves /users/me and loads the profiles. A
// rejected token logs the session out; other failures keep the token so a
// later retry can succeed.
func (s *Session) Init(ctx context.Context) error {
	token, ok, err := s.store.Get(ctx)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if !ok {
		return nil
	}

	s.authz.SetAuthorization(token)

	gen := s.generation()
	s.updateIfCurrent(gen, func(snap *Snapshot) {
		if snap.State == Anonymous {
			snap.State = Loading
		}
		snap.Loading = true
	})

	u, err := s.auth.Me(ctx)
	if err != nil {
		if s.generation() != gen {
			return nil
		}
		if client.IsSessionLost(err) {
			s.log.Info(ctx, "stored session rejected", "error", err)
			return s.Logout(ctx)
		}

		s.log.Warn(ctx, "resolve current user", "error", err)
		s.updateIfCurrent(gen, func(snap *Snapshot) {
			if snap.State == Loading {
				snap.State = Anonymous
			}
			snap.Loading = false
		})
		return &Error{Message: client.ErrorMessage(err, "Could not restore the previous session"), Err: err}
	}

	applied := s.updateIfCurrent(gen, func(snap *Snapshot) {
		snap.CurrentUser = u
		snap.State = Authenticated
		snap.Loading = false
	})
	if !applied {
		return nil
	}

	s.log.Debug(ctx, "session restored", "user_id", u.ID)
	return s.FetchProfiles(ctx)
}
