package app

import (
	"github.com/lucstrike/game-day-radar-seeker/internal/derive"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/news"
)

// homePreviewSize caps the games and articles shown in the home summary.
const homePreviewSize = 3

// Home is the personalized landing summary.
type Home struct {
	Authenticated bool
	Games         []games.Game
	News          []news.Article
	LiveCount     int
	UpcomingCount int
	NewsCount     int
	Leagues       []string
	Errors        []string
}

// Home derives the landing summary from the current catalog and session.
func (c *Container) Home() Home {
	sess := c.Session.State()
	cat := c.Catalog.State()

	personalGames := derive.PersonalizedGames(cat.UpcomingGames, sess.Profile)
	personalNews := derive.PersonalizedNews(cat.News, sess.Profile)

	h := Home{
		Authenticated: sess.IsAuthenticated,
		Games:         preview(personalGames),
		News:          preview(personalNews),
		LiveCount:     len(cat.LiveGames),
		UpcomingCount: len(personalGames),
		NewsCount:     len(personalNews),
		Leagues:       derive.UniqueLeagues(append(append([]games.Game{}, cat.LiveGames...), cat.UpcomingGames...)),
		Errors:        []string{},
	}
	for _, msg := range []string{cat.GamesError, cat.NewsError, cat.TeamsError} {
		if msg != "" {
			h.Errors = append(h.Errors, msg)
		}
	}
	return h
}

func preview[T any](list []T) []T {
	if len(list) > homePreviewSize {
		return list[:homePreviewSize]
	}
	return list
}
