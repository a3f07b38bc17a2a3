package config

import "time"

const (
	envDotenvPath = "COMPANION_DOTENV"

	defaultDotenvPath = ".env"

	// Floors applied when a duration or count is configured as zero or negative.
	defaultPollInterval  = 60 * time.Second
	defaultTimeout       = 10 * time.Second
	defaultLogoTimeout   = 3 * time.Second
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 200 * time.Millisecond
	defaultRateLimit     = 5.0
	defaultBurst         = 5
	defaultLocale        = "pt-BR"

	ProviderFixture = "fixture"
	ProviderBackend = "backend"

	CacheMemory = "memory"
	CacheSQLite = "sqlite"
)
