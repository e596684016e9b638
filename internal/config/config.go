package config

import "time"

// ClientConfig is the root configuration for the finnhub-data tools.
type ClientConfig struct {
	API       APIConfig       `yaml:"api"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Stream    StreamConfig    `yaml:"stream"`
	Poller    PollerConfig    `yaml:"poller"`
}

// APIConfig holds Finnhub REST settings.
type APIConfig struct {
	BaseURL       string        `yaml:"base_url"`
	Token         string        `yaml:"token"`          // Usually ${FINNHUB_TOKEN}
	AuthPlacement string        `yaml:"auth_placement"` // "header" or "query"
	Timeout       time.Duration `yaml:"timeout"`
}

// RateLimitConfig selects the admission strategy.
type RateLimitConfig struct {
	Strategy  string `yaml:"strategy"`   // "per_second", "windowed", or "custom"
	Capacity  int    `yaml:"capacity"`   // custom only
	PerSecond int    `yaml:"per_second"` // custom only
}

// Rate limit strategies.
const (
	StrategyPerSecond = "per_second"
	StrategyWindowed  = "windowed"
	StrategyCustom    = "custom"
)

// StreamConfig holds WebSocket settings.
type StreamConfig struct {
	URL        string `yaml:"url"`
	BufferSize int    `yaml:"buffer_size"`
}

// PollerConfig holds quote poller settings.
type PollerConfig struct {
	Interval    time.Duration `yaml:"interval"`
	Concurrency int           `yaml:"concurrency"`
	Symbols     []string      `yaml:"symbols"`
}
