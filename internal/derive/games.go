package derive

import (
	"strings"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
	"github.com/lucstrike/game-day-radar-seeker/internal/timeutil"
)

// DefaultUpcomingLimit is the upcoming-games cap used by the home summary.
const DefaultUpcomingLimit = 10

// AllLeagues selects every league in FilterByLeague.
const AllLeagues = "all"

// Partition splits games by their sourced status.
type Partition struct {
	Live     []games.Game
	Upcoming []games.Game
	Finished []games.Game
}

func filter(list []games.Game, keep func(games.Game) bool) []games.Game {
	out := make([]games.Game, 0, len(list))
	for _, g := range list {
		if keep(g) {
			out = append(out, g)
		}
	}
	return out
}

func clone(list []games.Game) []games.Game {
	return append(make([]games.Game, 0, len(list)), list...)
}

// FilterBySport keeps games whose sport equals sport exactly. Only sports.All
// is the identity; any other value, empty included, is an exact match.
func FilterBySport(list []games.Game, sport sports.Type) []games.Game {
	if sport == sports.All {
		return clone(list)
	}
	return filter(list, func(g games.Game) bool { return g.Sport == sport })
}

// FilterGamesByQuery matches query against both team names and the league.
func FilterGamesByQuery(list []games.Game, query string) []games.Game {
	q := strings.ToLower(query)
	if q == "" {
		return clone(list)
	}
	return filter(list, func(g games.Game) bool {
		return containsFold(g.HomeTeam.Name, q) || containsFold(g.AwayTeam.Name, q) || containsFold(g.League, q)
	})
}

// FilterByLeague keeps games of league. AllLeagues (or empty) is the identity.
func FilterByLeague(list []games.Game, league string) []games.Game {
	if league == AllLeagues || league == "" {
		return clone(list)
	}
	return filter(list, func(g games.Game) bool { return g.League == league })
}

// FilterByDate keeps games on the calendar day of date, ignoring time of day.
func FilterByDate(list []games.Game, date string) []games.Game {
	return filter(list, func(g games.Game) bool { return timeutil.SameDay(g.Date, date) })
}

// FavoriteTeamGames keeps games where either side is a favorite team.
func FavoriteTeamGames(list []games.Game, favorites []teams.Team) []games.Game {
	ids := teams.IDs(favorites)
	return filter(list, func(g games.Game) bool { return involvesAny(g, ids) })
}

// TeamGames keeps games the team plays in.
func TeamGames(list []games.Game, teamID string) []games.Game {
	return filter(list, func(g games.Game) bool { return g.Involves(teamID) })
}

// FindTeam returns the first embedded copy of the team found in list.
func FindTeam(list []games.Game, teamID string) (teams.Team, bool) {
	for _, g := range list {
		switch teamID {
		case g.HomeTeam.ID:
			return g.HomeTeam, true
		case g.AwayTeam.ID:
			return g.AwayTeam, true
		}
	}
	return teams.Team{}, false
}

// PartitionByStatus splits by the status field without recomputing it from date or time.
func PartitionByStatus(list []games.Game) Partition {
	p := Partition{
		Live:     []games.Game{},
		Upcoming: []games.Game{},
		Finished: []games.Game{},
	}
	for _, g := range list {
		switch g.Status {
		case games.StatusLive:
			p.Live = append(p.Live, g)
		case games.StatusUpcoming:
			p.Upcoming = append(p.Upcoming, g)
		case games.StatusFinished:
			p.Finished = append(p.Finished, g)
		}
	}
	return p
}

// UpcomingGames keeps the first limit upcoming games in collection order.
func UpcomingGames(list []games.Game, limit int) []games.Game {
	out := filter(list, func(g games.Game) bool { return g.Status == games.StatusUpcoming })
	return truncate(out, limit)
}

// LiveGames keeps every live game.
func LiveGames(list []games.Game) []games.Game {
	return filter(list, func(g games.Game) bool { return g.Status == games.StatusLive })
}

// UniqueLeagues lists distinct leagues in order of first appearance.
func UniqueLeagues(list []games.Game) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, g := range list {
		if _, dup := seen[g.League]; dup || g.League == "" {
			continue
		}
		seen[g.League] = struct{}{}
		out = append(out, g.League)
	}
	return out
}

// AvailableSports lists distinct sports in order of first appearance.
func AvailableSports(list []games.Game) []sports.Type {
	seen := make(map[sports.Type]struct{})
	out := make([]sports.Type, 0)
	for _, g := range list {
		if _, dup := seen[g.Sport]; dup {
			continue
		}
		seen[g.Sport] = struct{}{}
		out = append(out, g.Sport)
	}
	return out
}

func involvesAny(g games.Game, ids map[string]struct{}) bool {
	if _, ok := ids[g.HomeTeam.ID]; ok {
		return true
	}
	_, ok := ids[g.AwayTeam.ID]
	return ok
}

func containsFold(s, lowered string) bool {
	return strings.Contains(strings.ToLower(s), lowered)
}

func truncate[T any](list []T, limit int) []T {
	if limit <= 0 {
		return list[:0]
	}
	if len(list) > limit {
		return list[:limit]
	}
	return list
}
