package teams

import "github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"

// Team is immutable once fetched; identity is by ID.
type Team struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Logo    string      `json:"logo"`
	Sport   sports.Type `json:"sport"`
	League  string      `json:"league"`
	Country string      `json:"country"`
}

// IDs returns the set of team ids in items.
func IDs(items []Team) map[string]struct{} {
	ids := make(map[string]struct{}, len(items))
	for _, t := range items {
		ids[t.ID] = struct{}{}
	}
	return ids
}
