package derive

import (
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/news"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
)

// PersonalizedGames keeps games of a favorite sport or involving a favorite
// team. A nil profile, or an empty result, yields the whole input.
func PersonalizedGames(list []games.Game, p *profile.UserProfile) []games.Game {
	if p == nil {
		return clone(list)
	}
	favTeams := teams.IDs(p.FavoriteTeams)
	out := filter(list, func(g games.Game) bool {
		return sports.Contains(p.FavoriteSports, g.Sport) || involvesAny(g, favTeams)
	})
	if len(out) == 0 {
		return clone(list)
	}
	return out
}

// PersonalizedNews keeps articles of a favorite sport or mentioning a favorite
// team. A nil profile, or an empty result, yields the whole input.
func PersonalizedNews(list []news.Article, p *profile.UserProfile) []news.Article {
	if p == nil {
		return cloneNews(list)
	}
	favTeams := teams.IDs(p.FavoriteTeams)
	out := filterNews(list, func(a news.Article) bool {
		return sports.Contains(p.FavoriteSports, a.Sport) || a.MentionsAny(favTeams)
	})
	if len(out) == 0 {
		return cloneNews(list)
	}
	return out
}
