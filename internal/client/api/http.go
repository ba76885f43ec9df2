package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reeflog/reeflog/internal/client/models"
	"github.com/reeflog/reeflog/internal/logging"
)

// HTTPClient is the Client implementation over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
	log     logging.Logger
}

// NewHTTPClient returns a client for the backend at baseURL. A zero timeout
// leaves the transport's default behavior in place.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// doJSON sends one JSON request and decodes the JSON response into out
// (when out is non-nil). Transport failures map to ErrUnavailable, non-2xx
// statuses to *ServerError with the server message preserved, 401
// additionally to ErrUnauthorized.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, out any, header http.Header) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := serverMessage(resp.Body)
		if resp.StatusCode == http.StatusUnauthorized {
			if msg != "" {
				return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
			}
			return ErrUnauthorized
		}
		return &ServerError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// serverMessage pulls the human-readable error text out of an error body.
// The backend uses a "message" field; "error" is accepted as well.
func serverMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return ""
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return strings.TrimSpace(string(data))
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/login", req, &resp, nil); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	req := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{name, email, password}
	return c.doJSON(ctx, http.MethodPost, "/api/users", req, nil, nil)
}

func (c *HTTPClient) RecoverPassword(ctx context.Context, email string) error {
	req := struct {
		Email string `json:"email"`
	}{email}
	return c.doJSON(ctx, http.MethodPost, "/api/users/recoverPassword", req, nil, nil)
}

func (c *HTTPClient) FindUserByToken(ctx context.Context, token string) (*models.User, error) {
	req := struct {
		Token string `json:"token"`
	}{token}
	var user models.User
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/findUserByToken", req, &user, nil); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListDivingSpots(ctx context.Context) ([]models.Site, error) {
	var sites []models.Site
	if err := c.doJSON(ctx, http.MethodGet, "/api/divingSpots", nil, &sites, nil); err != nil {
		return nil, err
	}
	return sites, nil
}

func (c *HTTPClient) ListDiveLogs(ctx context.Context) ([]models.DiveLogSummary, error) {
	var logs []models.DiveLogSummary
	if err := c.doJSON(ctx, http.MethodGet, "/api/diveLogs", nil, &logs, nil); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *HTTPClient) CreateDiveLog(ctx context.Context, p models.DiveLogPayload) error {
	// One idempotency key per submission attempt, so a resubmit after an
	// ambiguous failure cannot double-create the log.
	header := http.Header{}
	header.Set("Idempotency-Key", uuid.NewString())
	return c.doJSON(ctx, http.MethodPost, "/api/diveLogs", p, nil, header)
}

func (c *HTTPClient) CreateComment(ctx context.Context, p models.SiteReviewPayload) error {
	return c.doJSON(ctx, http.MethodPost, "/api/comments", p, nil, nil)
}

func (c *HTTPClient) CreateSpotComment(ctx context.Context, spotID string, p models.SiteReviewPayload) error {
	path := "/api/divingSpots/" + url.PathEscape(spotID) + "/comments"
	return c.doJSON(ctx, http.MethodPost, path, p, nil, nil)
}
