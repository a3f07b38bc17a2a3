package teststubs

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/news"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
)

// StubProvider is a test double for providers.DataProvider.
// Err, when set, is returned by every catalog call; LoginErr and SaveErr cover auth and saves.
type StubProvider struct {
	Games     []games.Game
	Live      []games.Game
	Upcoming  []games.Game
	Completed []games.Game
	News      []news.Article
	Teams     []teams.Team
	Profile   profile.UserProfile
	Saved     bool

	Err      error
	LoginErr error
	SaveErr  error

	// GamesFunc replaces the canned FetchGames result when set.
	GamesFunc func(ctx context.Context, date string) ([]games.Game, error)

	Calls  atomic.Int32
	Notify chan struct{}

	mu            sync.Mutex
	savedProfiles []profile.UserProfile
	sports        []sports.Type
}

func (s *StubProvider) hit(sport sports.Type) {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	if sport != "" {
		s.mu.Lock()
		s.sports = append(s.sports, sport)
		s.mu.Unlock()
	}
}

// FetchGames returns configured games and error while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context, date string) ([]games.Game, error) {
	s.hit("")
	if s.GamesFunc != nil {
		return s.GamesFunc(ctx, date)
	}
	return s.Games, s.Err
}

func (s *StubProvider) FetchLiveGames(context.Context) ([]games.Game, error) {
	s.hit("")
	return s.Live, s.Err
}

func (s *StubProvider) FetchUpcomingGames(_ context.Context, sport sports.Type) ([]games.Game, error) {
	s.hit(sport)
	return s.Upcoming, s.Err
}

func (s *StubProvider) FetchCompletedGames(context.Context) ([]games.Game, error) {
	s.hit("")
	return s.Completed, s.Err
}

func (s *StubProvider) FetchNews(_ context.Context, sport sports.Type) ([]news.Article, error) {
	s.hit(sport)
	return s.News, s.Err
}

func (s *StubProvider) FetchTeams(_ context.Context, sport sports.Type) ([]teams.Team, error) {
	s.hit(sport)
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]teams.Team, 0, len(s.Teams))
	for _, t := range s.Teams {
		if sport == "" || sport == sports.All || t.Sport == sport {
			out = append(out, t)
		}
	}
	return out, nil
}

// SearchTeams matches query against name and league, case-insensitively.
func (s *StubProvider) SearchTeams(_ context.Context, query string) ([]teams.Team, error) {
	s.hit("")
	if s.Err != nil {
		return nil, s.Err
	}
	q := strings.ToLower(query)
	var out []teams.Team
	for _, t := range s.Teams {
		if strings.Contains(strings.ToLower(t.Name), q) || strings.Contains(strings.ToLower(t.League), q) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *StubProvider) Login(context.Context, string, string) (profile.UserProfile, error) {
	s.hit("")
	if s.LoginErr != nil {
		return profile.UserProfile{}, s.LoginErr
	}
	return s.Profile.Clone(), nil
}

// SaveProfile records the profile it receives.
func (s *StubProvider) SaveProfile(_ context.Context, p profile.UserProfile) (bool, error) {
	s.hit("")
	s.mu.Lock()
	s.savedProfiles = append(s.savedProfiles, p.Clone())
	s.mu.Unlock()
	return s.Saved, s.SaveErr
}

// SavedProfiles returns the profiles passed to SaveProfile in call order.
func (s *StubProvider) SavedProfiles() []profile.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]profile.UserProfile(nil), s.savedProfiles...)
}

// Sports returns the sport arguments observed by sport-filtered calls.
func (s *StubProvider) Sports() []sports.Type {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sports.Type(nil), s.sports...)
}
