package config

import "fmt"

// Validate checks the configuration for required fields and consistent
// values. Call after applying defaults.
func (c *ClientConfig) Validate() error {
	if c.API.Token == "" {
		return fmt.Errorf("api.token is required")
	}

	switch c.API.AuthPlacement {
	case "header", "query":
	default:
		return fmt.Errorf("api.auth_placement must be \"header\" or \"query\", got %q", c.API.AuthPlacement)
	}

	switch c.RateLimit.Strategy {
	case StrategyPerSecond, StrategyWindowed:
	case StrategyCustom:
		if c.RateLimit.Capacity < 1 {
			return fmt.Errorf("rate_limit.capacity must be >= 1 for custom strategy")
		}
		if c.RateLimit.PerSecond < 1 {
			return fmt.Errorf("rate_limit.per_second must be >= 1 for custom strategy")
		}
	default:
		return fmt.Errorf("rate_limit.strategy must be one of per_second, windowed, custom; got %q", c.RateLimit.Strategy)
	}

	if c.Poller.Concurrency < 1 {
		return fmt.Errorf("poller.concurrency must be >= 1")
	}

	return nil
}
