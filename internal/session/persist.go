package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/logging"
)

// StorageKey is the durable cache key holding the persisted session.
const StorageKey = "user-storage"

const storageVersion = 0

type persistedState struct {
	Profile         *profile.UserProfile `json:"profile"`
	IsAuthenticated bool                 `json:"isAuthenticated"`
}

type storageEnvelope struct {
	State   persistedState `json:"state"`
	Version int            `json:"version"`
}

// Persist writes {profile, isAuthenticated} to the durable cache. Callers
// invoke it after a mutation they want to survive a restart.
func (s *Store) Persist(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	st := s.State()
	payload, err := json.Marshal(storageEnvelope{
		State:   persistedState{Profile: st.Profile, IsAuthenticated: st.IsAuthenticated},
		Version: storageVersion,
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.cache.Set(ctx, StorageKey, string(payload)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	logging.Debug(logging.FromContext(ctx, s.logger), "session persisted", logging.FieldKey, StorageKey)
	return nil
}

// Restore loads a persisted session. A missing, corrupt or unauthenticated
// entry leaves the store logged out and reports false.
func (s *Store) Restore(ctx context.Context) bool {
	if s.cache == nil {
		return false
	}
	logger := logging.FromContext(ctx, s.logger)
	raw, ok := s.cache.Get(ctx, StorageKey)
	if !ok {
		return false
	}
	var env storageEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		logging.Warn(logger, "discarding unreadable session", logging.FieldKey, StorageKey, "error", err)
		return false
	}
	if !env.State.IsAuthenticated || env.State.Profile == nil || env.State.Profile.ID == "" {
		return false
	}

	s.profiles.Seed(*env.State.Profile)
	id := s.newID()
	s.state.Update(func(a authState) authState {
		a.authenticated = true
		a.err = ""
		a.sessionID = id
		return a
	})
	logging.Info(logger, "session restored", logging.FieldEmail, env.State.Profile.Email, "session_id", id)
	return true
}
