package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucstrike/game-day-radar-seeker/internal/config"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/i18n"
	"github.com/lucstrike/game-day-radar-seeker/internal/metrics"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers/backend"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers/fixture"
	"github.com/lucstrike/game-day-radar-seeker/internal/store"
	"github.com/lucstrike/game-day-radar-seeker/internal/teststubs"
	"github.com/lucstrike/game-day-radar-seeker/internal/testutil"
)

func newFixtureContainer(t *testing.T, cfg config.Config) *Container {
	t.Helper()
	c, err := New(context.Background(), cfg, nil, metrics.NewRecorder())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestFixtureContainerLoginRefreshAndHome(t *testing.T) {
	c := newFixtureContainer(t, config.Default())
	ctx := context.Background()

	require.True(t, c.Session.Login(ctx, fixture.ReferenceEmail, fixture.ReferencePassword))
	require.NoError(t, c.Catalog.RefreshAll(ctx))

	home := c.Home()
	assert.True(t, home.Authenticated)
	assert.Equal(t, 1, home.LiveCount)
	assert.Equal(t, 2, home.UpcomingCount, "empty favorites fall back to every upcoming game")
	assert.Equal(t, 2, home.NewsCount)
	assert.Equal(t, []string{"Brasileirão Série A", "NBA"}, home.Leagues)
	assert.Empty(t, home.Errors)

	require.NoError(t, c.Profiles.UpdateFavoriteSports([]sports.Type{sports.Basketball}))
	home = c.Home()
	require.Len(t, home.Games, 1)
	assert.Equal(t, "upcoming-2", home.Games[0].ID)
	require.Len(t, home.News, 1)
	assert.Equal(t, sports.Basketball, home.News[0].Sport)
}

func TestHomeWithoutSessionShowsEverything(t *testing.T) {
	stub := &teststubs.StubProvider{Upcoming: []games.Game{
		{ID: "a", Sport: sports.Soccer, League: "L1", Status: games.StatusUpcoming},
		{ID: "b", Sport: sports.Tennis, League: "L2", Status: games.StatusUpcoming},
		{ID: "c", Sport: sports.Tennis, League: "L2", Status: games.StatusUpcoming},
		{ID: "d", Sport: sports.Tennis, League: "L2", Status: games.StatusUpcoming},
	}}
	c := NewWithProvider(stub, store.NewMemoryStore(), nil, nil, nil)
	require.True(t, c.Catalog.FetchUpcomingGames(context.Background(), sports.All))

	home := c.Home()
	assert.False(t, home.Authenticated)
	assert.Len(t, home.Games, homePreviewSize)
	assert.Equal(t, 4, home.UpcomingCount)
	assert.Equal(t, []string{"L1", "L2"}, home.Leagues)
}

func TestHomeCollectsErrors(t *testing.T) {
	stub := &teststubs.StubProvider{Err: assert.AnError}
	bundle, err := i18n.Default()
	require.NoError(t, err)
	c := NewWithProvider(stub, nil, bundle.Localizer("en-US"), nil, nil)

	assert.Error(t, c.Catalog.RefreshAll(context.Background()))
	errs := c.Home().Errors
	assert.Len(t, errs, 2, "games and news failed, teams untouched")
	assert.Contains(t, errs, "Could not load news")
}

func TestSQLiteCacheSurvivesRestart(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Driver = config.CacheSQLite
	cfg.Cache.Path = filepath.Join(t.TempDir(), "companion.db")
	ctx := context.Background()

	first, err := New(ctx, cfg, nil, nil)
	require.NoError(t, err)
	_, isSQLite := first.Cache.(*store.SQLiteStore)
	require.True(t, isSQLite)
	require.True(t, first.Session.Login(ctx, fixture.ReferenceEmail, fixture.ReferencePassword))
	first.Bookmarks.Toggle("news-1")
	require.NoError(t, first.Persist(ctx))
	require.NoError(t, first.Close())

	second := newFixtureContainer(t, cfg)
	assert.True(t, second.Restore(ctx))
	assert.True(t, second.Session.State().IsAuthenticated)
	assert.Equal(t, []string{"news-1"}, second.Bookmarks.IDs())
}

func TestSQLiteFailureFallsBackToMemory(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Driver = config.CacheSQLite
	cfg.Cache.Path = "   "

	c := newFixtureContainer(t, cfg)
	_, isMemory := c.Cache.(*store.MemoryStore)
	assert.True(t, isMemory)
}

func TestCloseIsIdempotent(t *testing.T) {
	c := newFixtureContainer(t, config.Default())
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestSelectProvider(t *testing.T) {
	cfg := config.Default()
	_, isFixture := selectProvider(cfg, nil).(*fixture.Provider)
	assert.True(t, isFixture)

	cfg.Provider = config.ProviderBackend
	_, isBackend := selectProvider(cfg, nil).(*backend.Client)
	assert.True(t, isBackend)

	cfg.Provider = "unknown"
	_, isFixture = selectProvider(cfg, nil).(*fixture.Provider)
	assert.True(t, isFixture)
}

func TestBackendContainerAgainstFakeBackend(t *testing.T) {
	fb := testutil.NewFakeBackend(t, fixture.New())
	cfg := config.Default()
	cfg.Provider = config.ProviderBackend
	cfg.Backend.BaseURL = fb.URL
	cfg.Backend.RetryBackoff = time.Millisecond
	cfg.Backend.RateLimit = 1000
	rec := metrics.NewRecorder()
	ctx := context.Background()

	c, err := New(ctx, cfg, nil, rec)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.False(t, c.Session.Login(ctx, fixture.ReferenceEmail, "wrong"))
	assert.Equal(t, 1, fb.Hits("/api/auth/login"), "invalid credentials are never retried")
	require.True(t, c.Session.Login(ctx, fixture.ReferenceEmail, fixture.ReferencePassword))

	fb.FailNext("/api/games/live", 1)
	require.NoError(t, c.Catalog.RefreshLive(ctx))
	assert.Equal(t, 2, fb.Hits("/api/games/live"))
	assert.Len(t, c.Catalog.State().LiveGames, 1)
	assert.Equal(t, 2, rec.Provider(config.ProviderBackend).Errors, "rejected login plus one 503")

	require.NoError(t, c.Profiles.UpdateFavoriteSports([]sports.Type{sports.Soccer}))
	assert.True(t, c.Profiles.SaveProfileChanges(ctx))
}
