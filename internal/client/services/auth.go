// Package services contains typed wrappers over the REST backend used by the
// workforce client. This file defines the authentication service: login,
// registration and the current-user read.
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/workforce/internal/client/client"
	"github.com/dmitrijs2005/workforce/internal/client/models"
)

// AuthService defines the account endpoints.
//
// Contract:
//   - Login: POST /auth/login, returns the token and user.
//   - Register: POST /auth/register, returns the token and user (auto-login).
//   - Me: GET /users/me, accepting both {"user": {...}} and a bare user.
//
// Errors come from client.Client unchanged so callers can match
// client.ErrUnauthorized or read the backend message with client.ErrorMessage.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
}

type authService struct {
	client client.Client
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(c client.Client) AuthService {
	return &authService{client: c}
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.client.Post(ctx, "/auth/login", models.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("login: %w", ErrNoToken)
	}
	return &resp, nil
}

func (a *authService) Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	req := models.RegisterRequest{Name: name, Email: email, Password: password}
	if err := a.client.Post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("register: %w", ErrNoToken)
	}
	return &resp, nil
}

func (a *authService) Me(ctx context.Context) (*models.User, error) {
	var raw json.RawMessage
	if err := a.client.Get(ctx, "/users/me", &raw); err != nil {
		return nil, err
	}
	var u models.User
	if err := decodeObject(raw, "user", &u); err != nil {
		return nil, fmt.Errorf("decode current user: %w", err)
	}
	return &u, nil
}
