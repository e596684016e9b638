package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL          = "https://finnhub.io/api/v1"
	DefaultStreamURL        = "wss://ws.finnhub.io"
	DefaultAuthPlacement    = "header"
	DefaultAPITimeout       = 30 * time.Second
	DefaultStrategy         = StrategyPerSecond
	DefaultStreamBufferSize = 1000
	DefaultPollInterval     = 30 * time.Second
	DefaultPollConcurrency  = 10
)

func (c *ClientConfig) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.AuthPlacement == "" {
		c.API.AuthPlacement = DefaultAuthPlacement
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	// Rate limit defaults
	if c.RateLimit.Strategy == "" {
		c.RateLimit.Strategy = DefaultStrategy
	}

	// Stream defaults
	if c.Stream.URL == "" {
		c.Stream.URL = DefaultStreamURL
	}
	if c.Stream.BufferSize == 0 {
		c.Stream.BufferSize = DefaultStreamBufferSize
	}

	// Poller defaults
	if c.Poller.Interval == 0 {
		c.Poller.Interval = DefaultPollInterval
	}
	if c.Poller.Concurrency == 0 {
		c.Poller.Concurrency = DefaultPollConcurrency
	}
}
