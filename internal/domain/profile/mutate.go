package profile

import (
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
)

// Clone returns a deep copy so callers cannot alias store-owned slices.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.FavoriteSports = append([]sports.Type(nil), p.FavoriteSports...)
	out.FavoriteTeams = append([]teams.Team(nil), p.FavoriteTeams...)
	out.PreferredStreamingPlatforms = append([]string(nil), p.PreferredStreamingPlatforms...)
	return out
}

// Apply merges the non-nil fields of u into p.
func Apply(p UserProfile, u Update) UserProfile {
	out := p.Clone()
	if u.Name != nil {
		out.Name = *u.Name
	}
	if u.Email != nil {
		out.Email = *u.Email
	}
	if u.Avatar != nil {
		out.Avatar = *u.Avatar
	}
	if u.Location != nil {
		out.Location = *u.Location
	}
	return out
}

// WithFavoriteSports replaces the favorite sports wholesale.
func WithFavoriteSports(p UserProfile, list []sports.Type) UserProfile {
	out := p.Clone()
	out.FavoriteSports = UniqueSports(list)
	return out
}

// WithFavoriteTeams replaces the favorite teams wholesale, dropping repeated ids.
func WithFavoriteTeams(p UserProfile, list []teams.Team) UserProfile {
	out := p.Clone()
	out.FavoriteTeams = UniqueTeams(list)
	return out
}

// WithNotifications replaces the notification block.
func WithNotifications(p UserProfile, n Notifications) UserProfile {
	out := p.Clone()
	out.Notifications = n
	return out
}

// UniqueTeams keeps the first occurrence of each id, preserving order.
func UniqueTeams(list []teams.Team) []teams.Team {
	seen := make(map[string]struct{}, len(list))
	out := make([]teams.Team, 0, len(list))
	for _, t := range list {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}

// UniqueSports keeps the first occurrence of each tag, preserving order.
func UniqueSports(list []sports.Type) []sports.Type {
	seen := make(map[sports.Type]struct{}, len(list))
	out := make([]sports.Type, 0, len(list))
	for _, s := range list {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// ToggleSport adds s when absent and removes it when present.
func ToggleSport(list []sports.Type, s sports.Type) []sports.Type {
	out := make([]sports.Type, 0, len(list)+1)
	found := false
	for _, existing := range list {
		if existing == s {
			found = true
			continue
		}
		out = append(out, existing)
	}
	if !found {
		out = append(out, s)
	}
	return out
}

// AddTeam appends t unless a team with the same id is already present.
func AddTeam(list []teams.Team, t teams.Team) []teams.Team {
	return UniqueTeams(append(append([]teams.Team(nil), list...), t))
}

// RemoveTeam drops every team with id.
func RemoveTeam(list []teams.Team, id string) []teams.Team {
	out := make([]teams.Team, 0, len(list))
	for _, t := range list {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// Personalized summarizes the profile's personalization inputs.
func Personalized(p UserProfile) Content {
	theme := DefaultTheme
	if len(p.FavoriteSports) > 0 {
		theme = p.FavoriteSports[0]
	}
	c := p.Clone()
	return Content{
		RecommendedSports: c.FavoriteSports,
		RecommendedTeams:  c.FavoriteTeams,
		Theme:             theme,
		ShowNotifications: p.Notifications.GameReminders,
	}
}
