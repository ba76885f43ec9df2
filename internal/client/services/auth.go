package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/reeflog/reeflog/internal/client/api"
	"github.com/reeflog/reeflog/internal/client/models"
	"github.com/reeflog/reeflog/internal/client/session"
	"github.com/reeflog/reeflog/internal/logging"
)

// AuthService handles login, registration, password recovery and session
// restoration. The token lives in its own slot, separate from the draft.
type AuthService struct {
	client   api.Client
	sessions *session.Store
	log      logging.Logger
}

// NewAuthService returns an AuthService over the given client and session store.
func NewAuthService(client api.Client, sessions *session.Store, log logging.Logger) *AuthService {
	return &AuthService{client: client, sessions: sessions, log: log}
}

// Login authenticates, installs the token on the API client and persists it.
func (a *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	a.client.SetToken(token)
	if err := a.sessions.Save(ctx, token); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	user, err := a.client.FindUserByToken(ctx, token)
	if err != nil {
		// Login itself succeeded; a failed profile fetch should not undo it.
		a.log.Warn(ctx, "profile fetch after login failed", "error", err)
		return &models.User{Email: email}, nil
	}
	return user, nil
}

// Register creates a new account. The caller still logs in afterwards.
func (a *AuthService) Register(ctx context.Context, name, email, password string) error {
	return a.client.Register(ctx, name, email, password)
}

// RecoverPassword asks the backend to start password recovery for email.
func (a *AuthService) RecoverPassword(ctx context.Context, email string) error {
	return a.client.RecoverPassword(ctx, email)
}

// Restore revives a previous session from the stored token. It returns
// (nil, nil) when there is no usable session: nothing stored, the token has
// expired, or the server no longer accepts it.
func (a *AuthService) Restore(ctx context.Context) (*models.User, error) {
	token, err := a.sessions.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}
	if a.sessions.Expired(token) {
		_ = a.sessions.Clear(ctx)
		return nil, nil
	}

	user, err := a.client.FindUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			_ = a.sessions.Clear(ctx)
			return nil, nil
		}
		return nil, err
	}

	a.client.SetToken(token)
	return user, nil
}

// Logout drops the session token, locally and from the API client. The
// draft is deliberately left alone.
func (a *AuthService) Logout(ctx context.Context) error {
	a.client.SetToken("")
	return a.sessions.Clear(ctx)
}
