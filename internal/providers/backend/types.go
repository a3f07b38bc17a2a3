package backend

import "encoding/json"

// Wire shapes mirror the backend JSON. Entities are decoded lazily so one
// malformed element is dropped without failing the whole envelope.

type gamesEnvelope struct {
	Games []json.RawMessage `json:"games"`
}

type newsEnvelope struct {
	News []json.RawMessage `json:"news"`
}

type teamsEnvelope struct {
	Teams []json.RawMessage `json:"teams"`
}

type gameWire struct {
	ID                 string          `json:"id"`
	HomeTeam           teamWire        `json:"homeTeam"`
	AwayTeam           teamWire        `json:"awayTeam"`
	Date               string          `json:"date"`
	Time               string          `json:"time"`
	Venue              string          `json:"venue"`
	Sport              string          `json:"sport"`
	League             string          `json:"league"`
	Status             string          `json:"status"`
	Score              *scoreWire      `json:"score"`
	StreamingPlatforms []platformWire  `json:"streamingPlatforms"`
	TicketURL          string          `json:"ticketUrl"`
	Predictions        *predictionWire `json:"predictions"`
}

type teamWire struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Sport   string `json:"sport"`
	League  string `json:"league"`
	Country string `json:"country"`
}

type scoreWire struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type platformWire struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	URL    string `json:"url"`
	Type   string `json:"type"`
	IsFree bool   `json:"isFree"`
}

type predictionWire struct {
	HomeWinProbability float64  `json:"homeWinProbability"`
	AwayWinProbability float64  `json:"awayWinProbability"`
	DrawProbability    *float64 `json:"drawProbability"`
	KeyFactors         []string `json:"keyFactors"`
	ExpertTip          string   `json:"expertTip"`
}

type articleWire struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	PublishedAt string     `json:"publishedAt"`
	ImageURL    string     `json:"imageUrl"`
	Tags        []string   `json:"tags"`
	Sport       string     `json:"sport"`
	Teams       []teamWire `json:"teams"`
	Source      string     `json:"source"`
	URL         string     `json:"url"`
	Views       *int       `json:"views"`
	Category    string     `json:"category"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Profile json.RawMessage `json:"profile"`
}

type saveResponse struct {
	Success bool `json:"success"`
}
