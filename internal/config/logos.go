package config

import (
	"strings"
	"time"
)

// LogosConfig controls team-logo resolution for featured games.
type LogosConfig struct {
	Enabled        bool          `env:"COMPANION_LOGOS_ENABLED"  envDefault:"true"`
	ESPNBaseURL    string        `env:"COMPANION_LOGOS_ESPN_URL"`
	LogoEPSBaseURL string        `env:"COMPANION_LOGOS_LOGOEPS_URL"`
	Timeout        time.Duration `env:"COMPANION_LOGOS_TIMEOUT"  envDefault:"3s"`
}

func (c *LogosConfig) normalize() {
	c.ESPNBaseURL = strings.TrimSuffix(strings.TrimSpace(c.ESPNBaseURL), "/")
	c.LogoEPSBaseURL = strings.TrimSuffix(strings.TrimSpace(c.LogoEPSBaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = defaultLogoTimeout
	}
}
