package i18n

// Message keys shared by the stores. Every key must exist in the base locale.
const (
	KeyInvalidCredentials   = "session.invalid_credentials"
	KeyLoginFailed          = "session.login_failed"
	KeyNoProfile            = "profile.missing"
	KeyProfileSaveFailed    = "profile.save_failed"
	KeyGamesFailed          = "catalog.games_failed"
	KeyLiveGamesFailed      = "catalog.live_games_failed"
	KeyUpcomingGamesFailed  = "catalog.upcoming_games_failed"
	KeyCompletedGamesFailed = "catalog.completed_games_failed"
	KeyNewsFailed           = "catalog.news_failed"
	KeyTeamsFailed          = "catalog.teams_failed"
)

// Keys lists every message key the stores may emit.
func Keys() []string {
	return []string{
		KeyInvalidCredentials,
		KeyLoginFailed,
		KeyNoProfile,
		KeyProfileSaveFailed,
		KeyGamesFailed,
		KeyLiveGamesFailed,
		KeyUpcomingGamesFailed,
		KeyCompletedGamesFailed,
		KeyNewsFailed,
		KeyTeamsFailed,
	}
}
