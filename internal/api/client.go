package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/finnwire/finnhub-data/internal/auth"
	"github.com/finnwire/finnhub-data/internal/ratelimit"
)

// DefaultBaseURL is the production Finnhub REST endpoint.
const DefaultBaseURL = "https://finnhub.io/api/v1"

// Client provides access to the Finnhub REST API. All configuration is
// fixed at construction; the only mutable shared state is the rate
// limiter's internal counter, so a Client is safe for concurrent use.
type Client struct {
	baseURL    string
	creds      *auth.Credentials
	limiter    *ratelimit.Limiter
	httpClient *http.Client
	logger     *slog.Logger

	placement auth.Placement
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client. The token must be non-empty;
// a missing credential is a construction-time error, not a per-call one.
func NewClient(baseURL, token string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: baseURL,
		limiter: ratelimit.Default(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	creds, err := auth.New(token, c.placement)
	if err != nil {
		return nil, err
	}
	c.creds = creds

	return c, nil
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit replaces the default per-second limiter. Pass
// ratelimit.Windowed() for batch workloads, or a shared limiter when
// several clients must split one remote quota.
func WithRateLimit(l *ratelimit.Limiter) ClientOption {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithAuthPlacement selects where the token is attached. The default is
// the X-Finnhub-Token header.
func WithAuthPlacement(p auth.Placement) ClientOption {
	return func(c *Client) {
		c.placement = p
	}
}

// Credentials returns the client's credentials, for the streaming client.
func (c *Client) Credentials() *auth.Credentials {
	return c.creds
}

// RateLimiter returns the client's admission gate.
func (c *Client) RateLimiter() *ratelimit.Limiter {
	return c.limiter
}
