package config

import (
	"strings"
	"time"
)

// BackendConfig controls how we talk to the sports data backend.
type BackendConfig struct {
	BaseURL       string        `env:"COMPANION_BACKEND_URL"           envDefault:"http://localhost:3001"`
	Timeout       time.Duration `env:"COMPANION_BACKEND_TIMEOUT"       envDefault:"10s"`
	RetryAttempts int           `env:"COMPANION_BACKEND_RETRIES"       envDefault:"3"`
	RetryBackoff  time.Duration `env:"COMPANION_BACKEND_RETRY_BACKOFF" envDefault:"200ms"`
	// RateLimit is the sustained request rate (per second) allowed against the backend.
	RateLimit float64 `env:"COMPANION_BACKEND_RATE_LIMIT" envDefault:"5"`
	Burst     int     `env:"COMPANION_BACKEND_BURST"      envDefault:"5"`
}

func (c *BackendConfig) normalize() {
	c.BaseURL = strings.TrimSuffix(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = defaultRetryAttempts
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = defaultRetryBackoff
	}
	if c.RateLimit <= 0 {
		c.RateLimit = defaultRateLimit
	}
	if c.Burst <= 0 {
		c.Burst = defaultBurst
	}
}
