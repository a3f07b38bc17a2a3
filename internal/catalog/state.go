package catalog

import (
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/news"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
	"github.com/lucstrike/game-day-radar-seeker/internal/i18n"
)

// State is the catalog snapshot. Loading and error fields are tracked per
// concern so one domain's outage leaves the others displayable; collections
// keep their last good value when a fetch fails.
type State struct {
	Date          string
	Games         []games.Game
	SelectedSport sports.Type
	FilteredGames []games.Game

	LiveGames     []games.Game
	UpcomingGames []games.Game
	FinishedGames []games.Game

	News []news.Article

	TeamsSport sports.Type
	Teams      []teams.Team

	IsLoadingGames bool
	IsLoadingNews  bool
	IsLoadingTeams bool
	GamesError     string
	NewsError      string
	TeamsError     string

	pending     [concernCount]int
	generations [slotCount]uint64
}

type concern int

const (
	concernGames concern = iota
	concernNews
	concernTeams
	concernCount
)

// slot is one independently fetched collection. Each slot has its own
// generation counter.
type slot int

const (
	slotGames slot = iota
	slotLive
	slotUpcoming
	slotCompleted
	slotNews
	slotTeams
	slotCount
)

var slotNames = [slotCount]string{
	slotGames:     "games",
	slotLive:      "live_games",
	slotUpcoming:  "upcoming_games",
	slotCompleted: "completed_games",
	slotNews:      "news",
	slotTeams:     "teams",
}

var slotErrorKeys = [slotCount]string{
	slotGames:     i18n.KeyGamesFailed,
	slotLive:      i18n.KeyLiveGamesFailed,
	slotUpcoming:  i18n.KeyUpcomingGamesFailed,
	slotCompleted: i18n.KeyCompletedGamesFailed,
	slotNews:      i18n.KeyNewsFailed,
	slotTeams:     i18n.KeyTeamsFailed,
}

func (s slot) String() string { return slotNames[s] }

func (s slot) concern() concern {
	switch s {
	case slotNews:
		return concernNews
	case slotTeams:
		return concernTeams
	default:
		return concernGames
	}
}

func (st *State) setError(c concern, msg string) {
	switch c {
	case concernGames:
		st.GamesError = msg
	case concernNews:
		st.NewsError = msg
	case concernTeams:
		st.TeamsError = msg
	}
}

func (st *State) syncLoading() {
	st.IsLoadingGames = st.pending[concernGames] > 0
	st.IsLoadingNews = st.pending[concernNews] > 0
	st.IsLoadingTeams = st.pending[concernTeams] > 0
}

// clone copies the collections so readers cannot alias store-owned slices.
func (st State) clone() State {
	st.Games = append([]games.Game(nil), st.Games...)
	st.FilteredGames = append([]games.Game(nil), st.FilteredGames...)
	st.LiveGames = append([]games.Game(nil), st.LiveGames...)
	st.UpcomingGames = append([]games.Game(nil), st.UpcomingGames...)
	st.FinishedGames = append([]games.Game(nil), st.FinishedGames...)
	st.News = append([]news.Article(nil), st.News...)
	st.Teams = append([]teams.Team(nil), st.Teams...)
	return st
}
