package app

import (
	"log/slog"

	"github.com/lucstrike/game-day-radar-seeker/internal/config"
	"github.com/lucstrike/game-day-radar-seeker/internal/metrics"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers/backend"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers/fixture"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	limited := providers.NewRateLimitedProvider(base, cfg.Backend.RateLimit, cfg.Backend.Burst, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, cfg.Provider, cfg.Backend.RetryAttempts, cfg.Backend.RetryBackoff)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case config.ProviderBackend:
		return backend.NewClient(backend.Config{
			BaseURL: cfg.Backend.BaseURL,
			Timeout: cfg.Backend.Timeout,
			Logger:  logger,
		})
	case config.ProviderFixture, "":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
