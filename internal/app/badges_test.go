package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucstrike/game-day-radar-seeker/internal/config"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/store"
	"github.com/lucstrike/game-day-radar-seeker/internal/teststubs"
	"github.com/lucstrike/game-day-radar-seeker/internal/testutil"
)

func TestBadgesResolveLogosThroughConfiguredHost(t *testing.T) {
	host := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead && r.URL.Path == "/espn/soccer/g1-home.png" {
			w.Header().Set("Content-Type", "image/png")
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(host.Close)

	cfg := config.Default()
	cfg.Logos.ESPNBaseURL = host.URL + "/espn"
	cfg.Logos.LogoEPSBaseURL = host.URL + "/eps"
	c := newFixtureContainer(t, cfg)
	require.NotNil(t, c.Logos)

	list := []games.Game{
		testutil.SampleGame("g1", sports.Soccer, games.StatusUpcoming),
		testutil.SampleGame("g1", sports.Soccer, games.StatusUpcoming),
	}
	badges := c.Badges(context.Background(), list)

	require.Len(t, badges, 2, "teams are de-duplicated across games")
	assert.Equal(t, Badge{LogoURL: host.URL + "/espn/soccer/g1-home.png", Initials: "TG"}, badges["g1-home"])
	assert.Equal(t, Badge{Initials: "TG"}, badges["g1-away"])

	cached, ok := c.Cache.Get(context.Background(), "team_logo_Team g1-home_soccer")
	require.True(t, ok)
	assert.Equal(t, host.URL+"/espn/soccer/g1-home.png", cached)
}

func TestBadgesWithoutResolverUseInitials(t *testing.T) {
	c := NewWithProvider(&teststubs.StubProvider{}, store.NewMemoryStore(), nil, nil, nil)
	assert.Nil(t, c.Logos)

	game := testutil.SampleGame("x", sports.Basketball, games.StatusLive)
	game.HomeTeam.Name = "Los Angeles Lakers"
	badges := c.Badges(context.Background(), []games.Game{game})

	assert.Equal(t, "LAL", badges["x-home"].Initials)
	assert.Empty(t, badges["x-home"].LogoURL)
	assert.Empty(t, c.Badges(context.Background(), nil))
}

func TestLogosDisabledSkipsResolver(t *testing.T) {
	cfg := config.Default()
	cfg.Logos.Enabled = false
	assert.Nil(t, newFixtureContainer(t, cfg).Logos)
}
