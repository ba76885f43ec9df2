// Package api is the REST client for the dive-log backend. All endpoints
// speak JSON; authenticated calls carry the session token as a bearer header.
package api

import (
	"context"

	"github.com/reeflog/reeflog/internal/client/models"
)

// Client is the backend surface the rest of the app depends on. Services
// take this interface so tests can substitute fakes.
type Client interface {
	// Auth and account endpoints.
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password string) error
	RecoverPassword(ctx context.Context, email string) error
	FindUserByToken(ctx context.Context, token string) (*models.User, error)

	// Dive sites and logs.
	ListDivingSpots(ctx context.Context) ([]models.Site, error)
	ListDiveLogs(ctx context.Context) ([]models.DiveLogSummary, error)
	CreateDiveLog(ctx context.Context, p models.DiveLogPayload) error

	// Site reviews: the general comments endpoint and the per-spot
	// fallback route.
	CreateComment(ctx context.Context, p models.SiteReviewPayload) error
	CreateSpotComment(ctx context.Context, spotID string, p models.SiteReviewPayload) error

	// SetToken installs the bearer token used by authenticated calls.
	SetToken(token string)
}
