// Package session keeps the authenticated bearer token in its own slot of
// the local database, independent of the draft: logging out never touches an
// in-progress dive log.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/reeflog/reeflog/internal/client/storage"
)

const slotName = "session_token"

// Store persists the session token between runs.
type Store struct {
	slots *storage.Slots
	now   func() time.Time
}

// NewStore returns a session store over the given slots repository.
func NewStore(slots *storage.Slots) *Store {
	return &Store{slots: slots, now: time.Now}
}

// Token returns the stored bearer token, or "" when none is stored.
func (s *Store) Token(ctx context.Context) (string, error) {
	data, err := s.slots.Get(ctx, slotName)
	if err != nil {
		return "", fmt.Errorf("load session token: %w", err)
	}
	return string(data), nil
}

// Save stores the bearer token.
func (s *Store) Save(ctx context.Context, token string) error {
	if err := s.slots.Set(ctx, slotName, []byte(token)); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}

// Clear removes the stored token; idempotent.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.slots.Delete(ctx, slotName); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}

// Expired inspects the token's exp claim without verifying the signature;
// the server remains the authority on validity. Tokens that do not parse or
// carry no exp claim are not treated as expired here, the backend will
// reject them if they are bad.
func (s *Store) Expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(s.now())
}
