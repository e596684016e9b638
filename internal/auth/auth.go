// Package auth provides Finnhub API credential handling.
package auth

import (
	"fmt"
	"net/http"
	"net/url"
)

// HeaderName is the header Finnhub reads the API token from.
const HeaderName = "X-Finnhub-Token"

// QueryParam is the query parameter Finnhub reads the API token from.
const QueryParam = "token"

// Placement selects where the token is attached on outgoing requests.
type Placement string

const (
	// PlacementHeader attaches the token as the X-Finnhub-Token header.
	// This is the default: headers stay out of URLs and access logs.
	PlacementHeader Placement = "header"

	// PlacementQuery attaches the token as the "token" query parameter.
	PlacementQuery Placement = "query"
)

// Credentials holds the API token and its placement mode. The zero value
// is not usable; construct with New.
type Credentials struct {
	token     string
	placement Placement
}

// New creates credentials with the given token and placement.
// An empty token is a configuration error, not a per-request condition.
func New(token string, placement Placement) (*Credentials, error) {
	if token == "" {
		return nil, fmt.Errorf("API token is required")
	}
	switch placement {
	case PlacementHeader, PlacementQuery:
	case "":
		placement = PlacementHeader
	default:
		return nil, fmt.Errorf("unknown auth placement %q", placement)
	}

	return &Credentials{
		token:     token,
		placement: placement,
	}, nil
}

// Placement returns the configured placement mode.
func (c *Credentials) Placement() Placement {
	return c.placement
}

// Apply attaches the token to the request at exactly one location,
// per the configured placement. It never sets both.
func (c *Credentials) Apply(req *http.Request) {
	switch c.placement {
	case PlacementQuery:
		q := req.URL.Query()
		q.Set(QueryParam, c.token)
		req.URL.RawQuery = q.Encode()
	default:
		req.Header.Set(HeaderName, c.token)
	}
}

// StreamURL returns the WebSocket URL with the token attached as a query
// parameter. The streaming endpoint only accepts query authentication,
// regardless of the configured placement.
func (c *Credentials) StreamURL(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse stream url: %w", err)
	}

	q := u.Query()
	q.Set(QueryParam, c.token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// String implements fmt.Stringer without exposing the token, so that
// credentials are safe to hand to a logger.
func (c *Credentials) String() string {
	return fmt.Sprintf("finnhub credentials (placement=%s)", c.placement)
}
