package supabase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"lms/config"
)

// ErrNotConfigured is returned when the provider credentials are missing.
var ErrNotConfigured = errors.New("supabase credentials not configured")

// Client talks to the external auth provider's REST API. Configuration is
// optional; an unconfigured client reports so instead of failing requests.
type Client struct {
	http *resty.Client
}

func NewClient(cfg *config.Config) *Client {
	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		return &Client{}
	}

	http := resty.New().
		SetBaseURL(cfg.SupabaseURL).
		SetTimeout(10 * time.Second).
		SetHeader("apikey", cfg.SupabaseKey)

	return &Client{http: http}
}

// Configured reports whether provider credentials are present.
func (c *Client) Configured() bool {
	return c.http != nil
}

// ExternalUser is the subset of the provider user record the platform
// reads.
type ExternalUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// GetUser resolves a provider-issued access token into its user record.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*ExternalUser, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	user := new(ExternalUser)
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(user).
		Get("/auth/v1/user")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("supabase: unexpected status %s", resp.Status())
	}
	return user, nil
}

// Health pings the provider auth service.
func (c *Client) Health(ctx context.Context) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	resp, err := c.http.R().SetContext(ctx).Get("/auth/v1/health")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("supabase: unexpected status %s", resp.Status())
	}
	return nil
}
