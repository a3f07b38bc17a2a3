package profile

import (
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
)

// Notifications is replaced wholesale, never merged flag by flag.
type Notifications struct {
	GameReminders bool `json:"gameReminders"`
	NewsUpdates   bool `json:"newsUpdates"`
	ScoreUpdates  bool `json:"scoreUpdates"`
}

// UserProfile is created on login, edited by the profile store and cleared on logout.
// FavoriteTeams is unique by ID and FavoriteSports holds no duplicate tag.
type UserProfile struct {
	ID                          string        `json:"id"`
	Name                        string        `json:"name"`
	Email                       string        `json:"email"`
	Avatar                      string        `json:"avatar,omitempty"`
	Location                    string        `json:"location,omitempty"`
	FavoriteSports              []sports.Type `json:"favoriteSports"`
	FavoriteTeams               []teams.Team  `json:"favoriteTeams"`
	PreferredStreamingPlatforms []string      `json:"preferredStreamingPlatforms"`
	Notifications               Notifications `json:"notifications"`
}

// Update carries the editable identity fields; nil fields are left untouched.
type Update struct {
	Name     *string
	Email    *string
	Avatar   *string
	Location *string
}

// Content summarizes how a profile biases the home screen.
type Content struct {
	RecommendedSports []sports.Type
	RecommendedTeams  []teams.Team
	Theme             sports.Type
	ShowNotifications bool
}

// DefaultTheme is used when the profile has no favorite sport.
const DefaultTheme = sports.Soccer
