package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// StatusError is returned when the server answers with a non-200 status.
type StatusError struct {
	Code   int
	Status string
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s (%s)", e.Code, e.Status, e.URL)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// Config holds transport settings.
type Config struct {
	// UserAgent identifies the application. MusicBrainz rejects requests
	// without a meaningful one.
	UserAgent string

	// Timeout bounds each request.
	Timeout time.Duration

	// RequestsPerSecond limits the request rate across all goroutines
	// sharing the client. Zero or less disables limiting.
	RequestsPerSecond float64
}

// DefaultConfig returns settings suitable for the public MusicBrainz server.
func DefaultConfig() Config {
	return Config{
		UserAgent:         "mbcomment/1.0 ( https://github.com/handiism/mbcomment )",
		Timeout:           30 * time.Second,
		RequestsPerSecond: 1,
	}
}

// Client wraps HTTP operations with a User-Agent, a timeout and a shared
// rate limit.
//
// Client is safe for concurrent use. All goroutines share one limiter, so
// a batch of lookups never exceeds Config.RequestsPerSecond in total.
//
// Example usage:
//
//	client := NewClient(DefaultConfig())
//	body, err := client.Get(ctx, "https://musicbrainz.org/ws/2/recording/<mbid>?fmt=json")
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient creates a new HTTP client.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultConfig().UserAgent
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent: cfg.UserAgent,
		limiter:   limiter,
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// The call first waits for the rate limiter, so it blocks until a request
// slot is free or ctx is done.
//
// Returns an error if:
//   - ctx is cancelled while waiting
//   - The request fails
//   - The response status is not 200 OK (a *StatusError)
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status, URL: url}
	}

	return io.ReadAll(resp.Body)
}
