package app

import (
	"context"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
	"github.com/lucstrike/game-day-radar-seeker/internal/logos"
)

// Badge is how a team is drawn: a logo when one resolved, initials always.
type Badge struct {
	LogoURL  string
	Initials string
}

// Badges resolves a badge for every team playing in list, keyed by team id.
func (c *Container) Badges(ctx context.Context, list []games.Game) map[string]Badge {
	seen := make(map[string]struct{}, len(list)*2)
	var roster []teams.Team
	for _, g := range list {
		for _, t := range []teams.Team{g.HomeTeam, g.AwayTeam} {
			if _, dup := seen[t.ID]; dup || t.ID == "" {
				continue
			}
			seen[t.ID] = struct{}{}
			roster = append(roster, t)
		}
	}

	var urls map[string]string
	if c.Logos != nil && len(roster) > 0 {
		urls = c.Logos.ResolveAll(ctx, roster)
	}
	out := make(map[string]Badge, len(roster))
	for _, t := range roster {
		out[t.ID] = Badge{LogoURL: urls[t.ID], Initials: logos.Initials(t.Name)}
	}
	return out
}
