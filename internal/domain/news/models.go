package news

import (
	"time"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
)

// Article is a news item in the catalog. Views is zero when the source omits it.
type Article struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Summary     string       `json:"summary"`
	Content     string       `json:"content"`
	Author      string       `json:"author"`
	PublishedAt time.Time    `json:"publishedAt"`
	ImageURL    string       `json:"imageUrl"`
	Tags        []string     `json:"tags"`
	Sport       sports.Type  `json:"sport"`
	Teams       []teams.Team `json:"teams"`
	Source      string       `json:"source"`
	URL         string       `json:"url"`
	Views       int          `json:"views,omitempty"`
	Category    string       `json:"category,omitempty"`
}

// MentionsAny reports whether the article references any team in ids.
func (a Article) MentionsAny(ids map[string]struct{}) bool {
	for _, t := range a.Teams {
		if _, ok := ids[t.ID]; ok {
			return true
		}
	}
	return false
}

// Response is the payload returned by /api/news.
type Response struct {
	News []Article `json:"news"`
}
