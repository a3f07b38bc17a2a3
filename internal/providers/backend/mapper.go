package backend

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/news"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
	"github.com/lucstrike/game-day-radar-seeker/internal/timeutil"
)

var errMissingID = errors.New("missing id")

func mapGame(g gameWire) (games.Game, error) {
	if strings.TrimSpace(g.ID) == "" {
		return games.Game{}, errMissingID
	}
	status := games.Status(strings.ToLower(strings.TrimSpace(g.Status)))
	if !status.Valid() {
		return games.Game{}, fmt.Errorf("unknown status %q", g.Status)
	}
	sport := sports.Type(g.Sport)
	if !sports.Valid(sport) {
		return games.Game{}, fmt.Errorf("unknown sport %q", g.Sport)
	}
	if !timeutil.IsDate(g.Date) {
		return games.Game{}, fmt.Errorf("invalid date %q", g.Date)
	}
	home, err := mapTeam(g.HomeTeam, sport)
	if err != nil {
		return games.Game{}, fmt.Errorf("home team: %w", err)
	}
	away, err := mapTeam(g.AwayTeam, sport)
	if err != nil {
		return games.Game{}, fmt.Errorf("away team: %w", err)
	}

	out := games.Game{
		ID:                 g.ID,
		HomeTeam:           home,
		AwayTeam:           away,
		Date:               g.Date,
		Time:               strings.TrimSpace(g.Time),
		Venue:              g.Venue,
		Sport:              sport,
		League:             g.League,
		Status:             status,
		StreamingPlatforms: mapPlatforms(g.StreamingPlatforms),
		TicketURL:          g.TicketURL,
	}
	if g.Score != nil {
		out.Score = &games.Score{Home: g.Score.Home, Away: g.Score.Away}
	}
	if p := g.Predictions; p != nil {
		out.Predictions = &games.Prediction{
			HomeWinProbability: p.HomeWinProbability,
			AwayWinProbability: p.AwayWinProbability,
			DrawProbability:    p.DrawProbability,
			KeyFactors:         append([]string(nil), p.KeyFactors...),
			ExpertTip:          p.ExpertTip,
		}
	}
	return out, nil
}

// mapTeam defaults a missing sport to fallback so teams embedded in a game inherit it.
func mapTeam(t teamWire, fallback sports.Type) (teams.Team, error) {
	if strings.TrimSpace(t.ID) == "" {
		return teams.Team{}, errMissingID
	}
	sport := sports.Type(t.Sport)
	if sport == "" {
		sport = fallback
	}
	if !sports.Valid(sport) {
		return teams.Team{}, fmt.Errorf("unknown sport %q", t.Sport)
	}
	return teams.Team{
		ID:      t.ID,
		Name:    t.Name,
		Logo:    t.Logo,
		Sport:   sport,
		League:  t.League,
		Country: t.Country,
	}, nil
}

// mapPlatforms drops platforms with an unknown type.
func mapPlatforms(in []platformWire) []games.StreamingPlatform {
	out := make([]games.StreamingPlatform, 0, len(in))
	for _, p := range in {
		kind := games.PlatformType(strings.ToLower(p.Type))
		if !kind.Valid() || p.ID == "" {
			continue
		}
		out = append(out, games.StreamingPlatform{
			ID:     p.ID,
			Name:   p.Name,
			Logo:   p.Logo,
			URL:    p.URL,
			Type:   kind,
			IsFree: p.IsFree,
		})
	}
	return out
}

func mapArticle(a articleWire) (news.Article, error) {
	if strings.TrimSpace(a.ID) == "" {
		return news.Article{}, errMissingID
	}
	sport := sports.Type(a.Sport)
	if !sports.Valid(sport) {
		return news.Article{}, fmt.Errorf("unknown sport %q", a.Sport)
	}
	published, err := time.Parse(time.RFC3339, a.PublishedAt)
	if err != nil {
		return news.Article{}, fmt.Errorf("invalid publishedAt %q", a.PublishedAt)
	}

	mentioned := make([]teams.Team, 0, len(a.Teams))
	for _, t := range a.Teams {
		team, err := mapTeam(t, sport)
		if err != nil {
			continue
		}
		mentioned = append(mentioned, team)
	}

	out := news.Article{
		ID:          a.ID,
		Title:       a.Title,
		Summary:     a.Summary,
		Content:     a.Content,
		Author:      a.Author,
		PublishedAt: published,
		ImageURL:    a.ImageURL,
		Tags:        append([]string(nil), a.Tags...),
		Sport:       sport,
		Teams:       mentioned,
		Source:      a.Source,
		URL:         a.URL,
		Category:    a.Category,
	}
	if a.Views != nil && *a.Views > 0 {
		out.Views = *a.Views
	}
	return out, nil
}

// normalizeProfile enforces the profile invariants on a seed returned by the backend.
func normalizeProfile(p profile.UserProfile) (profile.UserProfile, error) {
	if strings.TrimSpace(p.ID) == "" {
		return profile.UserProfile{}, errMissingID
	}
	if strings.TrimSpace(p.Email) == "" {
		return profile.UserProfile{}, errors.New("missing email")
	}
	validSports := make([]sports.Type, 0, len(p.FavoriteSports))
	for _, s := range p.FavoriteSports {
		if sports.Valid(s) {
			validSports = append(validSports, s)
		}
	}
	p = profile.WithFavoriteSports(p, validSports)
	p = profile.WithFavoriteTeams(p, p.FavoriteTeams)
	return p, nil
}
