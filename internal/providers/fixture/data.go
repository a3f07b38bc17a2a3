package fixture

import (
	"time"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/news"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
	"github.com/lucstrike/game-day-radar-seeker/internal/timeutil"
)

const (
	// ReferenceEmail and ReferencePassword are the single credential pair the fixture accepts.
	ReferenceEmail    = "joao@email.com"
	ReferencePassword = "senha123"
)

const logoBase = "https://logoeps.com/wp-content/uploads/2013/03/"

var (
	palmeiras   = teams.Team{ID: "palmeiras", Name: "Palmeiras", Logo: logoBase + "palmeiras-vector-logo.png", Sport: sports.Soccer, League: "Brasileirão Série A", Country: "Brasil"}
	flamengo    = teams.Team{ID: "flamengo", Name: "Flamengo", Logo: logoBase + "flamengo-vector-logo.png", Sport: sports.Soccer, League: "Brasileirão Série A", Country: "Brasil"}
	corinthians = teams.Team{ID: "corinthians", Name: "Corinthians", Logo: logoBase + "corinthians-vector-logo.png", Sport: sports.Soccer, League: "Brasileirão Série A", Country: "Brasil"}
	lakers      = teams.Team{ID: "lakers", Name: "Los Angeles Lakers", Logo: logoBase + "los-angeles-lakers-vector-logo.png", Sport: sports.Basketball, League: "NBA", Country: "USA"}
	warriors    = teams.Team{ID: "warriors", Name: "Golden State Warriors", Logo: logoBase + "golden-state-warriors-vector-logo.png", Sport: sports.Basketball, League: "NBA", Country: "USA"}
)

// Teams returns the full mock roster across sports.
func Teams() []teams.Team {
	return []teams.Team{palmeiras, flamengo, corinthians, lakers, warriors}
}

// ReferenceProfile is the canned profile returned for the reference credentials.
// Favorites start empty; the user builds them after login.
func ReferenceProfile() profile.UserProfile {
	return profile.UserProfile{
		ID:                          "1",
		Name:                        "João Silva",
		Email:                       ReferenceEmail,
		Avatar:                      "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
		FavoriteSports:              []sports.Type{},
		FavoriteTeams:               []teams.Team{},
		PreferredStreamingPlatforms: []string{},
		Notifications: profile.Notifications{
			GameReminders: true,
			NewsUpdates:   true,
			ScoreUpdates:  true,
		},
	}
}

func draw(v float64) *float64 { return &v }

// schedule builds the mock games relative to now: one live today, one upcoming tomorrow, one finished yesterday.
func schedule(now time.Time) []games.Game {
	today := timeutil.FormatDate(now)
	tomorrow := timeutil.FormatDate(now.AddDate(0, 0, 1))
	yesterday := timeutil.FormatDate(now.AddDate(0, 0, -1))

	return []games.Game{
		{
			ID:       "live-1",
			HomeTeam: palmeiras,
			AwayTeam: flamengo,
			Date:     today,
			Time:     now.Format("15:04"),
			Venue:    "Allianz Parque",
			Sport:    sports.Soccer,
			League:   "Brasileirão Série A",
			Status:   games.StatusLive,
			Score:    &games.Score{Home: 1, Away: 0},
			StreamingPlatforms: []games.StreamingPlatform{
				{ID: "globo", Name: "Globo", Logo: "https://upload.wikimedia.org/wikipedia/commons/thumb/8/81/Rede_Globo_logo.svg/200px-Rede_Globo_logo.svg.png", URL: "https://globoplay.globo.com", Type: games.PlatformTV},
			},
			Predictions: &games.Prediction{
				HomeWinProbability: 55,
				AwayWinProbability: 30,
				DrawProbability:    draw(15),
				KeyFactors:         []string{"Mando de campo", "Histórico recente favorável"},
				ExpertTip:          "Casa vence por 2x1",
			},
		},
		{
			ID:       "upcoming-1",
			HomeTeam: palmeiras,
			AwayTeam: corinthians,
			Date:     tomorrow,
			Time:     "16:00",
			Venue:    "Allianz Parque",
			Sport:    sports.Soccer,
			League:   "Brasileirão Série A",
			Status:   games.StatusUpcoming,
			StreamingPlatforms: []games.StreamingPlatform{
				{ID: "premiere", Name: "Premiere", Logo: "https://upload.wikimedia.org/wikipedia/commons/thumb/3/30/Premiere_FC_logo.svg/200px-Premiere_FC_logo.svg.png", URL: "https://globoplay.globo.com/premiere", Type: games.PlatformStreaming},
			},
			TicketURL: "https://www.palmeiras.com.br/ingressos",
			Predictions: &games.Prediction{
				HomeWinProbability: 60,
				AwayWinProbability: 25,
				DrawProbability:    draw(15),
				KeyFactors:         []string{"Palmeiras em casa", "Corinthians com desfalques"},
				ExpertTip:          "Palmeiras favorito para vencer",
			},
		},
		{
			ID:       "upcoming-2",
			HomeTeam: warriors,
			AwayTeam: lakers,
			Date:     tomorrow,
			Time:     "21:30",
			Venue:    "Chase Center",
			Sport:    sports.Basketball,
			League:   "NBA",
			Status:   games.StatusUpcoming,
			StreamingPlatforms: []games.StreamingPlatform{
				{ID: "espn", Name: "ESPN", URL: "https://www.espn.com.br", Type: games.PlatformTV},
			},
		},
		{
			ID:       "finished-1",
			HomeTeam: lakers,
			AwayTeam: warriors,
			Date:     yesterday,
			Time:     "21:00",
			Venue:    "Crypto.com Arena",
			Sport:    sports.Basketball,
			League:   "NBA",
			Status:   games.StatusFinished,
			Score:    &games.Score{Home: 112, Away: 108},
		},
	}
}

func articles(now time.Time) []news.Article {
	return []news.Article{
		{
			ID:          "news-1",
			Title:       "Palmeiras anuncia contratação de novo atacante",
			Summary:     "Clube paulista fecha acordo com jogador europeu por três temporadas.",
			Content:     "O Palmeiras oficializou hoje a contratação do atacante...",
			Author:      "Redação ESPN",
			PublishedAt: now,
			ImageURL:    "https://images.unsplash.com/photo-1431324155629-1a6deb1dec8d?w=400&h=300&fit=crop",
			Tags:        []string{"Palmeiras", "Contratação", "Futebol"},
			Sport:       sports.Soccer,
			Teams:       []teams.Team{palmeiras},
			Source:      "ESPN",
			URL:         "https://www.espn.com.br",
			Views:       1520,
			Category:    "transferencias",
		},
		{
			ID:          "news-2",
			Title:       "NBA: Lakers vencem mais uma e se aproximam dos playoffs",
			Summary:     "Time de Los Angeles conquista vitória importante contra Warriors.",
			Content:     "Os Lakers conseguiram uma vitória crucial...",
			Author:      "John Sports",
			PublishedAt: now.Add(-time.Hour),
			ImageURL:    "https://images.unsplash.com/photo-1546519638-68e109498ffc?w=400&h=300&fit=crop",
			Tags:        []string{"Lakers", "NBA", "Basketball"},
			Sport:       sports.Basketball,
			Teams:       []teams.Team{lakers},
			Source:      "ESPN",
			URL:         "https://www.espn.com",
			Views:       980,
			Category:    "resultados",
		},
	}
}
