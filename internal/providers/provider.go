package providers

import (
	"context"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/news"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
)

// GameProvider fetches game collections.
// The date parameter is a YYYY-MM-DD string; an empty sport (or sports.All) means no filter.
type GameProvider interface {
	FetchGames(ctx context.Context, date string) ([]games.Game, error)
	FetchLiveGames(ctx context.Context) ([]games.Game, error)
	FetchUpcomingGames(ctx context.Context, sport sports.Type) ([]games.Game, error)
	FetchCompletedGames(ctx context.Context) ([]games.Game, error)
}

// NewsProvider fetches news, optionally pre-filtered by sport.
type NewsProvider interface {
	FetchNews(ctx context.Context, sport sports.Type) ([]news.Article, error)
}

// TeamProvider fetches team rosters and runs team searches.
type TeamProvider interface {
	FetchTeams(ctx context.Context, sport sports.Type) ([]teams.Team, error)
	SearchTeams(ctx context.Context, query string) ([]teams.Team, error)
}

// AuthProvider checks credentials and returns the profile seed on success.
// Bad credentials are reported as ErrInvalidCredentials.
type AuthProvider interface {
	Login(ctx context.Context, email, password string) (profile.UserProfile, error)
}

// ProfileSaver persists a full profile and reports whether it was accepted.
type ProfileSaver interface {
	SaveProfile(ctx context.Context, p profile.UserProfile) (bool, error)
}

// CatalogProvider combines the read-only data capabilities.
type CatalogProvider interface {
	GameProvider
	NewsProvider
	TeamProvider
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	CatalogProvider
	AuthProvider
	ProfileSaver
}
