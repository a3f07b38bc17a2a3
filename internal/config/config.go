package config

import (
	"errors"
	"strings"
	"time"
)

// Config holds runtime configuration for the companion process.
type Config struct {
	Provider     string        `env:"COMPANION_PROVIDER"      envDefault:"fixture"`
	Locale       string        `env:"COMPANION_LOCALE"        envDefault:"pt-BR"`
	PollInterval time.Duration `env:"COMPANION_POLL_INTERVAL" envDefault:"60s"`
	LogLevel     string        `env:"LOG_LEVEL"               envDefault:"info"`
	LogFormat    string        `env:"LOG_FORMAT"              envDefault:"text"`
	Backend      BackendConfig
	Cache        CacheConfig
	Metrics      MetricsConfig
	Login        LoginConfig
	Logos        LogosConfig
}

// LoginConfig carries optional credentials used to open a session at startup.
type LoginConfig struct {
	Email    string `env:"COMPANION_LOGIN_EMAIL"`
	Password string `env:"COMPANION_LOGIN_PASSWORD"`
}

// Enabled reports whether both credentials are present.
func (c LoginConfig) Enabled() bool {
	return c.Email != "" && c.Password != ""
}

// Default returns the configuration built from defaults alone.
func Default() Config {
	var cfg Config
	// Tag defaults are static; a failure here is a programming error caught by tests.
	_ = parseDefaults(&cfg)
	cfg.normalize()
	return cfg
}

// Load reads an optional .env file and then the environment. When any variable fails to
// parse, the defaults are returned along with the error so callers can log and continue.
func Load() (Config, error) {
	dotenvErr := loadDotenv()

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Default(), errors.Join(dotenvErr, err)
	}
	cfg.normalize()
	return cfg, dotenvErr
}

func (c *Config) normalize() {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider != ProviderBackend {
		c.Provider = ProviderFixture
	}
	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = defaultLocale
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	c.Backend.normalize()
	c.Cache.normalize()
	c.Logos.normalize()
}
