package fixture

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers"
)

func fixedProvider() *Provider {
	p := New()
	p.now = func() time.Time { return time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC) }
	return p
}

func TestFetchGamesReturnsGamesForDate(t *testing.T) {
	p := fixedProvider()

	today, err := p.FetchGames(context.Background(), "2024-01-15")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(today) != 1 || today[0].ID != "live-1" {
		t.Fatalf("unexpected games for today: %+v", today)
	}
	if today[0].Time != "18:30" {
		t.Fatalf("expected live game time from clock, got %s", today[0].Time)
	}

	tomorrow, _ := p.FetchGames(context.Background(), "2024-01-16")
	if len(tomorrow) != 2 {
		t.Fatalf("expected 2 games tomorrow, got %d", len(tomorrow))
	}

	none, _ := p.FetchGames(context.Background(), "2030-01-01")
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", none)
	}
}

func TestFetchByStatus(t *testing.T) {
	p := fixedProvider()
	ctx := context.Background()

	live, _ := p.FetchLiveGames(ctx)
	upcoming, _ := p.FetchUpcomingGames(ctx, sports.All)
	soccerUpcoming, _ := p.FetchUpcomingGames(ctx, sports.Soccer)
	finished, _ := p.FetchCompletedGames(ctx)

	if len(live) != 1 || len(upcoming) != 2 || len(soccerUpcoming) != 1 || len(finished) != 1 {
		t.Fatalf("unexpected counts live=%d upcoming=%d soccer=%d finished=%d", len(live), len(upcoming), len(soccerUpcoming), len(finished))
	}
	if finished[0].Status != games.StatusFinished || finished[0].Score == nil {
		t.Fatalf("unexpected finished game %+v", finished[0])
	}
}

func TestFetchNewsFiltersBySport(t *testing.T) {
	p := fixedProvider()

	all, _ := p.FetchNews(context.Background(), "")
	basketball, _ := p.FetchNews(context.Background(), sports.Basketball)
	if len(all) != 2 || len(basketball) != 1 || basketball[0].ID != "news-2" {
		t.Fatalf("unexpected news all=%d basketball=%+v", len(all), basketball)
	}
}

func TestFetchTeamsAndSearch(t *testing.T) {
	p := fixedProvider()
	ctx := context.Background()

	soccer, _ := p.FetchTeams(ctx, sports.Soccer)
	tennis, _ := p.FetchTeams(ctx, sports.Tennis)
	if len(soccer) != 3 || len(tennis) != 0 {
		t.Fatalf("unexpected rosters soccer=%d tennis=%d", len(soccer), len(tennis))
	}

	found, _ := p.SearchTeams(ctx, "pal")
	if len(found) != 1 || found[0].ID != "palmeiras" {
		t.Fatalf("expected only Palmeiras, got %+v", found)
	}
	byLeague, _ := p.SearchTeams(ctx, "nba")
	if len(byLeague) != 2 {
		t.Fatalf("expected league match, got %+v", byLeague)
	}
}

func TestLoginAcceptsOnlyReferencePair(t *testing.T) {
	p := New()
	ctx := context.Background()

	prof, err := p.Login(ctx, ReferenceEmail, ReferencePassword)
	if err != nil {
		t.Fatalf("expected login success, got %v", err)
	}
	if prof.Email != ReferenceEmail || prof.Name != "João Silva" || prof.ID != "1" {
		t.Fatalf("unexpected profile %+v", prof)
	}

	for _, tc := range [][2]string{
		{ReferenceEmail, "wrong"},
		{"maria@email.com", ReferencePassword},
		{"JOAO@EMAIL.COM", ReferencePassword},
		{"Joao@Email.com", ReferencePassword},
		{"  " + ReferenceEmail + "  ", ReferencePassword},
		{ReferenceEmail, " " + ReferencePassword},
		{"", ""},
	} {
		if _, err := p.Login(ctx, tc[0], tc[1]); !errors.Is(err, providers.ErrInvalidCredentials) {
			t.Fatalf("expected invalid credentials for %v, got %v", tc, err)
		}
	}
}

func TestSaveProfileAlwaysSucceeds(t *testing.T) {
	p := New()
	ok, err := p.SaveProfile(context.Background(), ReferenceProfile())
	if !ok || err != nil {
		t.Fatalf("expected save success, got %v %v", ok, err)
	}
	if len(p.Saved()) != 1 {
		t.Fatalf("expected saved profile recorded")
	}
}

func TestProviderSatisfiesDataProvider(t *testing.T) {
	var _ providers.DataProvider = New()
}
