package games

import (
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
)

// Status mirrors the externally driven game lifecycle. It is interpreted, never
// computed from date or time.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusLive     Status = "live"
	StatusFinished Status = "finished"
)

// Valid reports whether s is one of the three lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusLive, StatusFinished:
		return true
	}
	return false
}

// PlatformType classifies how a broadcast reaches viewers.
type PlatformType string

const (
	PlatformTV        PlatformType = "tv"
	PlatformStreaming PlatformType = "streaming"
	PlatformRadio     PlatformType = "radio"
)

// Valid reports whether p is a known platform type.
func (p PlatformType) Valid() bool {
	switch p {
	case PlatformTV, PlatformStreaming, PlatformRadio:
		return true
	}
	return false
}

// StreamingPlatform is owned by its Game.
type StreamingPlatform struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Logo   string       `json:"logo"`
	URL    string       `json:"url"`
	Type   PlatformType `json:"type"`
	IsFree bool         `json:"isFree"`
}

// Prediction holds win probabilities in 0-100. They need not sum to 100.
type Prediction struct {
	HomeWinProbability float64  `json:"homeWinProbability"`
	AwayWinProbability float64  `json:"awayWinProbability"`
	DrawProbability    *float64 `json:"drawProbability,omitempty"`
	KeyFactors         []string `json:"keyFactors"`
	ExpertTip          string   `json:"expertTip"`
}

// Score captures home and away points.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Game is the canonical game shape held by the catalog.
type Game struct {
	ID                 string              `json:"id"`
	HomeTeam           teams.Team          `json:"homeTeam"`
	AwayTeam           teams.Team          `json:"awayTeam"`
	Date               string              `json:"date"`
	Time               string              `json:"time"`
	Venue              string              `json:"venue"`
	Sport              sports.Type         `json:"sport"`
	League             string              `json:"league"`
	Status             Status              `json:"status"`
	Score              *Score              `json:"score,omitempty"`
	StreamingPlatforms []StreamingPlatform `json:"streamingPlatforms"`
	TicketURL          string              `json:"ticketUrl,omitempty"`
	Predictions        *Prediction         `json:"predictions,omitempty"`
}

// Involves reports whether the team with id plays in g.
func (g Game) Involves(teamID string) bool {
	return g.HomeTeam.ID == teamID || g.AwayTeam.ID == teamID
}

// Response is the payload returned by /api/games?date=YYYY-MM-DD.
type Response struct {
	Date  string `json:"date,omitempty"`
	Games []Game `json:"games"`
}
