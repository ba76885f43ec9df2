package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflog/reeflog/internal/client/api"
	"github.com/reeflog/reeflog/internal/client/models"
	"github.com/reeflog/reeflog/internal/client/session"
	"github.com/reeflog/reeflog/internal/client/storage"

	_ "modernc.org/sqlite"
)

func setupSessions(t *testing.T) *session.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE slots (name TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return session.NewStore(storage.NewSlots(db))
}

func expiringToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	s, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestLogin_PersistsTokenAndInstallsIt(t *testing.T) {
	sessions := setupSessions(t)
	fc := &fakeClient{loginToken: "tok-123", user: &models.User{Name: "Alex", Email: "a@example.com"}}
	svc := NewAuthService(fc, sessions, testLogger())

	user, err := svc.Login(context.Background(), "a@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Alex", user.Name)
	assert.Equal(t, "tok-123", fc.token)

	stored, err := sessions.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-123", stored)
}

func TestLogin_FailureReturnsError(t *testing.T) {
	sessions := setupSessions(t)
	fc := &fakeClient{loginErr: api.ErrUnauthorized}
	svc := NewAuthService(fc, sessions, testLogger())

	_, err := svc.Login(context.Background(), "a@example.com", "wrong")
	require.ErrorIs(t, err, api.ErrUnauthorized)

	stored, err := sessions.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestLogin_ProfileFetchFailureStillLogsIn(t *testing.T) {
	sessions := setupSessions(t)
	fc := &fakeClient{loginToken: "tok-123", userErr: api.ErrUnavailable}
	svc := NewAuthService(fc, sessions, testLogger())

	user, err := svc.Login(context.Background(), "a@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)
}

func TestRestore_NoStoredTokenReturnsNil(t *testing.T) {
	svc := NewAuthService(&fakeClient{}, setupSessions(t), testLogger())

	user, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestRestore_ExpiredTokenIsClearedSilently(t *testing.T) {
	sessions := setupSessions(t)
	require.NoError(t, sessions.Save(context.Background(), expiringToken(t, time.Now().Add(-time.Hour))))

	svc := NewAuthService(&fakeClient{}, sessions, testLogger())
	user, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)

	stored, err := sessions.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestRestore_RejectedTokenIsCleared(t *testing.T) {
	sessions := setupSessions(t)
	require.NoError(t, sessions.Save(context.Background(), expiringToken(t, time.Now().Add(time.Hour))))

	fc := &fakeClient{userErr: api.ErrUnauthorized}
	svc := NewAuthService(fc, sessions, testLogger())

	user, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)

	stored, err := sessions.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestRestore_ValidSessionInstallsToken(t *testing.T) {
	sessions := setupSessions(t)
	tok := expiringToken(t, time.Now().Add(time.Hour))
	require.NoError(t, sessions.Save(context.Background(), tok))

	fc := &fakeClient{user: &models.User{Name: "Alex"}}
	svc := NewAuthService(fc, sessions, testLogger())

	user, err := svc.Restore(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Alex", user.Name)
	assert.Equal(t, tok, fc.token)
}

func TestLogout_ClearsSessionOnly(t *testing.T) {
	sessions := setupSessions(t)
	require.NoError(t, sessions.Save(context.Background(), "tok-123"))

	fc := &fakeClient{token: "tok-123"}
	svc := NewAuthService(fc, sessions, testLogger())

	require.NoError(t, svc.Logout(context.Background()))
	assert.Empty(t, fc.token)

	stored, err := sessions.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}
