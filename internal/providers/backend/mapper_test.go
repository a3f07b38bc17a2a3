package backend

import (
	"errors"
	"testing"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
)

func validGame() gameWire {
	return gameWire{
		ID:       "g1",
		HomeTeam: teamWire{ID: "lakers", Name: "Lakers"},
		AwayTeam: teamWire{ID: "warriors", Name: "Warriors", Sport: "basketball"},
		Date:     "2024-01-15",
		Time:     " 21:00 ",
		Sport:    "basketball",
		League:   "NBA",
		Status:   "finished",
	}
}

func TestMapGameTrimsAndCopies(t *testing.T) {
	g, err := mapGame(validGame())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if g.Time != "21:00" {
		t.Fatalf("expected trimmed time, got %q", g.Time)
	}
	if g.Score != nil || g.Predictions != nil {
		t.Fatalf("expected optional fields to stay nil")
	}
	if g.HomeTeam.Sport != sports.Basketball {
		t.Fatalf("expected inherited sport, got %q", g.HomeTeam.Sport)
	}
}

func TestMapGameRejections(t *testing.T) {
	cases := map[string]func(*gameWire){
		"missing_id":      func(g *gameWire) { g.ID = " " },
		"bad_status":      func(g *gameWire) { g.Status = "halftime" },
		"bad_sport":       func(g *gameWire) { g.Sport = "Basketball" },
		"bad_date":        func(g *gameWire) { g.Date = "15/01/2024" },
		"home_team_id":    func(g *gameWire) { g.HomeTeam.ID = "" },
		"away_team_sport": func(g *gameWire) { g.AwayTeam.Sport = "cricket" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			g := validGame()
			mutate(&g)
			if _, err := mapGame(g); err == nil {
				t.Fatalf("expected %s to be rejected", name)
			}
		})
	}
}

func TestMapArticleDefaultsViews(t *testing.T) {
	negative := -3
	a, err := mapArticle(articleWire{ID: "n1", Sport: "tennis", PublishedAt: "2024-01-15T10:00:00-03:00", Views: &negative})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if a.Views != 0 {
		t.Fatalf("expected non-positive views to default to 0, got %d", a.Views)
	}

	if _, err := mapArticle(articleWire{Sport: "tennis", PublishedAt: "2024-01-15T10:00:00Z"}); !errors.Is(err, errMissingID) {
		t.Fatalf("expected missing id error, got %v", err)
	}
}

func TestNormalizeProfileEnforcesInvariants(t *testing.T) {
	p, err := normalizeProfile(profile.UserProfile{
		ID:             "1",
		Email:          "joao@email.com",
		FavoriteSports: []sports.Type{sports.Soccer, "cricket", sports.Soccer},
		FavoriteTeams:  []teams.Team{{ID: "a"}, {ID: "a"}, {ID: "b"}},
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(p.FavoriteSports) != 1 || len(p.FavoriteTeams) != 2 {
		t.Fatalf("unexpected normalized profile %+v", p)
	}

	if _, err := normalizeProfile(profile.UserProfile{ID: "1"}); err == nil {
		t.Fatalf("expected missing email to be rejected")
	}
}
