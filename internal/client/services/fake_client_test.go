package services

import (
	"context"
	"log/slog"
	"os"

	"github.com/reeflog/reeflog/internal/client/models"
	"github.com/reeflog/reeflog/internal/logging"
)

func testLogger() logging.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
	return logging.NewSlogLogger(slog.New(h))
}

// fakeClient implements api.Client with canned responses and call counters.
type fakeClient struct {
	token string

	loginToken string
	loginErr   error

	user    *models.User
	userErr error

	registerErr error
	recoverErr  error

	sites      []models.Site
	sitesErr   error
	sitesCalls int

	logs    []models.DiveLogSummary
	logsErr error

	createLogCalls int
	createLogBody  models.DiveLogPayload
	createLogErr   error

	commentCalls int
	commentBody  models.SiteReviewPayload
	commentErr   error

	spotCommentCalls int
	spotCommentID    string
	spotCommentBody  models.SiteReviewPayload
	spotCommentErr   error
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeClient) Register(ctx context.Context, name, email, password string) error {
	return f.registerErr
}

func (f *fakeClient) RecoverPassword(ctx context.Context, email string) error {
	return f.recoverErr
}

func (f *fakeClient) FindUserByToken(ctx context.Context, token string) (*models.User, error) {
	return f.user, f.userErr
}

func (f *fakeClient) ListDivingSpots(ctx context.Context) ([]models.Site, error) {
	f.sitesCalls++
	return f.sites, f.sitesErr
}

func (f *fakeClient) ListDiveLogs(ctx context.Context) ([]models.DiveLogSummary, error) {
	return f.logs, f.logsErr
}

func (f *fakeClient) CreateDiveLog(ctx context.Context, p models.DiveLogPayload) error {
	f.createLogCalls++
	f.createLogBody = p
	return f.createLogErr
}

func (f *fakeClient) CreateComment(ctx context.Context, p models.SiteReviewPayload) error {
	f.commentCalls++
	f.commentBody = p
	return f.commentErr
}

func (f *fakeClient) CreateSpotComment(ctx context.Context, spotID string, p models.SiteReviewPayload) error {
	f.spotCommentCalls++
	f.spotCommentID = spotID
	f.spotCommentBody = p
	return f.spotCommentErr
}

func (f *fakeClient) SetToken(token string) { f.token = token }

// networkCalls is the total of every outbound call the fake saw.
func (f *fakeClient) networkCalls() int {
	return f.sitesCalls + f.createLogCalls + f.commentCalls + f.spotCommentCalls
}
