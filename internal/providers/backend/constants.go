package backend

import "time"

const (
	providerName       = "backend"
	defaultBaseURL     = "http://localhost:3001"
	defaultHTTPTimeout = 10 * time.Second
	errorBodyLimit     = 512
)

const (
	pathGames          = "/api/games"
	pathLiveGames      = "/api/games/live"
	pathUpcomingGames  = "/api/games/upcoming"
	pathCompletedGames = "/api/games/completed"
	pathNews           = "/api/news"
	pathTeams          = "/api/teams"
	pathTeamSearch     = "/api/teams/search"
	pathLogin          = "/api/auth/login"
	pathProfile        = "/api/profile"
)
