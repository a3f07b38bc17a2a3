package testutil

import (
	"time"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/news"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
)

// SampleTeam returns a soccer team fixture with the provided id.
func SampleTeam(id string) teams.Team {
	return teams.Team{ID: id, Name: "Team " + id, Sport: sports.Soccer, League: "Liga", Country: "Brasil"}
}

// SampleGame returns a minimal game fixture with the provided id.
func SampleGame(id string, sport sports.Type, status games.Status) games.Game {
	return games.Game{
		ID:       id,
		HomeTeam: SampleTeam(id + "-home"),
		AwayTeam: SampleTeam(id + "-away"),
		Date:     "2024-03-10",
		Time:     "16:00",
		Sport:    sport,
		League:   "Liga",
		Status:   status,
	}
}

// SampleArticle returns a news fixture published at the given time.
func SampleArticle(id string, sport sports.Type, views int, publishedAt time.Time) news.Article {
	return news.Article{
		ID:          id,
		Title:       "Title " + id,
		Summary:     "Summary " + id,
		Source:      "Source",
		Sport:       sport,
		Views:       views,
		PublishedAt: publishedAt,
	}
}

// SampleProfile returns a profile with every notification enabled and no favorites.
func SampleProfile(id, email string) profile.UserProfile {
	return profile.UserProfile{
		ID:             id,
		Name:           "User " + id,
		Email:          email,
		FavoriteSports: []sports.Type{},
		FavoriteTeams:  []teams.Team{},
		Notifications:  profile.Notifications{GameReminders: true, NewsUpdates: true, ScoreUpdates: true},
	}
}
