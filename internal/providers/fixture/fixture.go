package fixture

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/news"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers"
)

// Provider serves the mock catalog and reference credential, useful for local runs and tests.
type Provider struct {
	now func() time.Time

	hashOnce sync.Once
	hash     []byte
	hashErr  error

	mu    sync.Mutex
	saved []profile.UserProfile
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchGames returns the mock games falling on date.
func (p *Provider) FetchGames(_ context.Context, date string) ([]games.Game, error) {
	out := make([]games.Game, 0)
	for _, g := range schedule(p.now()) {
		if g.Date == date {
			out = append(out, g)
		}
	}
	return out, nil
}

func (p *Provider) FetchLiveGames(context.Context) ([]games.Game, error) {
	return byStatus(schedule(p.now()), games.StatusLive, ""), nil
}

func (p *Provider) FetchUpcomingGames(_ context.Context, sport sports.Type) ([]games.Game, error) {
	return byStatus(schedule(p.now()), games.StatusUpcoming, sport), nil
}

func (p *Provider) FetchCompletedGames(context.Context) ([]games.Game, error) {
	return byStatus(schedule(p.now()), games.StatusFinished, ""), nil
}

func (p *Provider) FetchNews(_ context.Context, sport sports.Type) ([]news.Article, error) {
	out := make([]news.Article, 0)
	for _, a := range articles(p.now()) {
		if matchesSport(a.Sport, sport) {
			out = append(out, a)
		}
	}
	return out, nil
}

// FetchTeams returns the roster for sport; sports without mock teams yield an empty list.
func (p *Provider) FetchTeams(_ context.Context, sport sports.Type) ([]teams.Team, error) {
	out := make([]teams.Team, 0)
	for _, t := range Teams() {
		if matchesSport(t.Sport, sport) {
			out = append(out, t)
		}
	}
	return out, nil
}

// SearchTeams matches query against team name and league across all sports, case-insensitively.
func (p *Provider) SearchTeams(_ context.Context, query string) ([]teams.Team, error) {
	q := strings.ToLower(query)
	out := make([]teams.Team, 0)
	for _, t := range Teams() {
		if strings.Contains(strings.ToLower(t.Name), q) || strings.Contains(strings.ToLower(t.League), q) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Login accepts only the reference credential pair.
func (p *Provider) Login(_ context.Context, email, password string) (profile.UserProfile, error) {
	p.hashOnce.Do(func() {
		p.hash, p.hashErr = bcrypt.GenerateFromPassword([]byte(ReferencePassword), bcrypt.MinCost)
	})
	if p.hashErr != nil {
		return profile.UserProfile{}, fmt.Errorf("fixture credential hash: %w", p.hashErr)
	}
	if email != ReferenceEmail {
		return profile.UserProfile{}, providers.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(p.hash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return profile.UserProfile{}, providers.ErrInvalidCredentials
		}
		return profile.UserProfile{}, fmt.Errorf("fixture credential check: %w", err)
	}
	return ReferenceProfile(), nil
}

// SaveProfile accepts every profile and keeps it for inspection.
func (p *Provider) SaveProfile(_ context.Context, prof profile.UserProfile) (bool, error) {
	p.mu.Lock()
	p.saved = append(p.saved, prof.Clone())
	p.mu.Unlock()
	return true, nil
}

// Saved returns the profiles accepted so far.
func (p *Provider) Saved() []profile.UserProfile {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]profile.UserProfile(nil), p.saved...)
}

func byStatus(list []games.Game, status games.Status, sport sports.Type) []games.Game {
	out := make([]games.Game, 0, len(list))
	for _, g := range list {
		if g.Status == status && matchesSport(g.Sport, sport) {
			out = append(out, g)
		}
	}
	return out
}

func matchesSport(have, want sports.Type) bool {
	return want == "" || want == sports.All || have == want
}
