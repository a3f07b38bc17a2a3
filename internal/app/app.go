// Package app assembles the provider chain, the durable cache and the stores
// into one container.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lucstrike/game-day-radar-seeker/internal/bookmarks"
	"github.com/lucstrike/game-day-radar-seeker/internal/catalog"
	"github.com/lucstrike/game-day-radar-seeker/internal/config"
	"github.com/lucstrike/game-day-radar-seeker/internal/i18n"
	"github.com/lucstrike/game-day-radar-seeker/internal/logging"
	"github.com/lucstrike/game-day-radar-seeker/internal/logos"
	"github.com/lucstrike/game-day-radar-seeker/internal/metrics"
	"github.com/lucstrike/game-day-radar-seeker/internal/profilestore"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers"
	"github.com/lucstrike/game-day-radar-seeker/internal/session"
	"github.com/lucstrike/game-day-radar-seeker/internal/store"
)

// Container holds every long-lived component of the companion.
type Container struct {
	Provider  providers.DataProvider
	Cache     store.KV
	Localizer *i18n.Localizer
	Profiles  *profilestore.Store
	Session   *session.Store
	Catalog   *catalog.Store
	Bookmarks *bookmarks.Store
	Logos     *logos.Resolver // nil when logo resolution is disabled

	logger  *slog.Logger
	closers []io.Closer
}

// New wires a Container from cfg. recorder may be nil.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Container, error) {
	bundle, err := i18n.Default()
	if err != nil {
		return nil, fmt.Errorf("load message catalogs: %w", err)
	}
	cache, closer := buildCache(ctx, cfg.Cache, logger)
	provider := newProviderFactory(logger, recorder).build(cfg)
	c := assemble(provider, cache, bundle.Localizer(cfg.Locale), logger, recorder, closer)
	if cfg.Logos.Enabled {
		c.Logos = logos.NewResolver(cache, logos.Config{
			ESPNBaseURL:    cfg.Logos.ESPNBaseURL,
			LogoEPSBaseURL: cfg.Logos.LogoEPSBaseURL,
			Timeout:        cfg.Logos.Timeout,
			Logger:         logger,
		})
	}
	return c, nil
}

// NewWithProvider wires a Container around an already built provider and cache.
// It has no logo resolver; Badges falls back to initials.
func NewWithProvider(provider providers.DataProvider, cache store.KV, loc *i18n.Localizer, logger *slog.Logger, recorder *metrics.Recorder) *Container {
	return assemble(provider, cache, loc, logger, recorder, nil)
}

func assemble(provider providers.DataProvider, cache store.KV, loc *i18n.Localizer, logger *slog.Logger, recorder *metrics.Recorder, closer io.Closer) *Container {
	profiles := profilestore.New(provider, profilestore.Options{Logger: logger, Metrics: recorder, Localizer: loc})
	c := &Container{
		Provider:  provider,
		Cache:     cache,
		Localizer: loc,
		Profiles:  profiles,
		Session:   session.New(provider, profiles, cache, session.Options{Logger: logger, Metrics: recorder, Localizer: loc}),
		Catalog:   catalog.New(provider, catalog.Options{Logger: logger, Metrics: recorder, Localizer: loc}),
		Bookmarks: bookmarks.New(cache, logger),
		logger:    logger,
	}
	if closer != nil {
		c.closers = append(c.closers, closer)
	}
	return c
}

// Restore reloads the persisted session and bookmarks.
func (c *Container) Restore(ctx context.Context) bool {
	c.Bookmarks.Load(ctx)
	return c.Session.Restore(ctx)
}

// Persist writes the session and bookmarks to the durable cache.
func (c *Container) Persist(ctx context.Context) error {
	return errors.Join(c.Session.Persist(ctx), c.Bookmarks.Persist(ctx))
}

// Close releases the durable cache.
func (c *Container) Close() error {
	var errs []error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	if err := errors.Join(errs...); err != nil {
		logging.Warn(c.logger, "container close failed", "error", err)
		return err
	}
	return nil
}

// buildCache opens the configured cache. A SQLite failure falls back to memory
// so the companion keeps running without durability.
func buildCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (store.KV, io.Closer) {
	if cfg.Driver == config.CacheSQLite {
		sqlite, err := store.OpenSQLite(cfg.Path, logger)
		if err == nil {
			logging.Info(logger, "sqlite cache opened", "path", cfg.Path)
			return sqlite, sqlite
		}
		logging.Warn(logging.FromContext(ctx, logger), "sqlite cache unavailable, using memory", "path", cfg.Path, "error", err)
	}
	mem := store.NewMemoryStore()
	return mem, mem
}
