// Package bookmarks keeps the ordered list of bookmarked news article ids.
package bookmarks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/lucstrike/game-day-radar-seeker/internal/logging"
	"github.com/lucstrike/game-day-radar-seeker/internal/observable"
	"github.com/lucstrike/game-day-radar-seeker/internal/store"
)

// StorageKey is the durable cache key holding the JSON array of ids.
const StorageKey = "bookmarkedNews"

// Store holds bookmarks in insertion order. cache may be nil.
type Store struct {
	cache  store.KV
	logger *slog.Logger
	ids    *observable.Value[[]string]
}

func New(cache store.KV, logger *slog.Logger) *Store {
	return &Store{cache: cache, logger: logger, ids: observable.New([]string{})}
}

// ToggleID removes id when present and appends it otherwise. ids is not modified.
func ToggleID(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

// Load replaces the in-memory list with the persisted one. An unreadable
// entry is logged and leaves the list empty.
func (s *Store) Load(ctx context.Context) []string {
	if s.cache == nil {
		return s.IDs()
	}
	logger := logging.FromContext(ctx, s.logger)
	raw, ok := s.cache.Get(ctx, StorageKey)
	if !ok {
		return s.IDs()
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logging.Warn(logger, "discarding unreadable bookmarks", logging.FieldKey, StorageKey, "error", err)
		ids = nil
	}
	if ids == nil {
		ids = []string{}
	}
	s.ids.Set(ids)
	logging.Debug(logger, "bookmarks loaded", logging.FieldCount, len(ids))
	return s.IDs()
}

// Toggle flips id and reports whether it is now bookmarked.
func (s *Store) Toggle(id string) bool {
	var now bool
	s.ids.Update(func(cur []string) []string {
		next := ToggleID(cur, id)
		now = len(next) > len(cur)
		return next
	})
	return now
}

func (s *Store) IsBookmarked(id string) bool {
	for _, v := range s.ids.Get() {
		if v == id {
			return true
		}
	}
	return false
}

// IDs returns a copy of the bookmarked ids in insertion order.
func (s *Store) IDs() []string {
	return append([]string{}, s.ids.Get()...)
}

// Subscribe registers fn for list changes.
func (s *Store) Subscribe(fn func([]string)) (unsubscribe func()) {
	return s.ids.Subscribe(func(ids []string) { fn(append([]string{}, ids...)) })
}

// Persist writes the list as a JSON array.
func (s *Store) Persist(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	payload, err := json.Marshal(s.IDs())
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	if err := s.cache.Set(ctx, StorageKey, string(payload)); err != nil {
		return fmt.Errorf("persist bookmarks: %w", err)
	}
	return nil
}
