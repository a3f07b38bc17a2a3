// Package profilestore owns the signed-in user's editable profile.
//
// Every mutation requires a seeded profile. Without one it returns ErrNoProfile
// and leaves state untouched. Mutations only change memory; SaveProfileChanges
// is the explicit step that sends the profile to the persistence provider.
package profilestore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
	"github.com/lucstrike/game-day-radar-seeker/internal/i18n"
	"github.com/lucstrike/game-day-radar-seeker/internal/logging"
	"github.com/lucstrike/game-day-radar-seeker/internal/metrics"
	"github.com/lucstrike/game-day-radar-seeker/internal/observable"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers"
)

// ErrNoProfile is returned by mutations attempted before a profile is seeded.
var ErrNoProfile = errors.New("profilestore: no profile loaded")

// State is the snapshot exposed to readers and subscribers.
type State struct {
	Profile   *profile.UserProfile
	IsLoading bool
	Error     string
}

// Options carries the optional collaborators of a Store.
type Options struct {
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	Localizer *i18n.Localizer
}

// Store holds the current profile behind an observable state cell.
type Store struct {
	saver    providers.ProfileSaver
	logger   *slog.Logger
	recorder *metrics.Recorder
	loc      *i18n.Localizer
	state    *observable.Value[State]
}

// New constructs an empty Store. A nil saver makes every save fail.
func New(saver providers.ProfileSaver, opts Options) *Store {
	return &Store{
		saver:    saver,
		logger:   opts.Logger,
		recorder: opts.Metrics,
		loc:      opts.Localizer,
		state:    observable.New(State{}),
	}
}

// State returns a deep copy of the current state.
func (s *Store) State() State {
	return cloneState(s.state.Get())
}

// Subscribe registers fn for state changes.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	return s.state.Subscribe(func(st State) { fn(cloneState(st)) })
}

// Profile returns a copy of the current profile, if any.
func (s *Store) Profile() (profile.UserProfile, bool) {
	st := s.state.Get()
	if st.Profile == nil {
		return profile.UserProfile{}, false
	}
	return st.Profile.Clone(), true
}

// Seed installs p as the current profile, enforcing the uniqueness invariants.
func (s *Store) Seed(p profile.UserProfile) {
	p = profile.WithFavoriteTeams(profile.WithFavoriteSports(p, p.FavoriteSports), p.FavoriteTeams)
	s.state.Update(func(State) State {
		return State{Profile: &p}
	})
}

// Clear drops the profile and any transient state.
func (s *Store) Clear() {
	s.state.Set(State{})
}

// UpdateProfile merges the non-nil fields of u into the profile.
func (s *Store) UpdateProfile(u profile.Update) error {
	return s.mutate("profile updated", func(p profile.UserProfile) profile.UserProfile {
		return profile.Apply(p, u)
	})
}

// UpdateFavoriteSports replaces the favorite sports wholesale.
func (s *Store) UpdateFavoriteSports(list []sports.Type) error {
	return s.mutate("favorite sports updated", func(p profile.UserProfile) profile.UserProfile {
		return profile.WithFavoriteSports(p, list)
	})
}

// UpdateFavoriteTeams replaces the favorite teams wholesale, dropping repeated ids.
func (s *Store) UpdateFavoriteTeams(list []teams.Team) error {
	return s.mutate("favorite teams updated", func(p profile.UserProfile) profile.UserProfile {
		return profile.WithFavoriteTeams(p, list)
	})
}

// SetNotificationPreferences replaces the notification block wholesale.
func (s *Store) SetNotificationPreferences(n profile.Notifications) error {
	return s.mutate("notification preferences updated", func(p profile.UserProfile) profile.UserProfile {
		return profile.WithNotifications(p, n)
	})
}

// PersonalizedContent summarizes the profile's personalization inputs.
func (s *Store) PersonalizedContent() (profile.Content, bool) {
	p, ok := s.Profile()
	if !ok {
		return profile.Content{}, false
	}
	return profile.Personalized(p), true
}

// SaveProfileChanges sends the current profile to the persistence provider.
// A failed save is surfaced in State.Error; the in-memory profile is kept as is.
func (s *Store) SaveProfileChanges(ctx context.Context) bool {
	current, ok := s.Profile()
	if !ok {
		logging.Debug(s.logger, "profile save skipped", "error", ErrNoProfile)
		return false
	}

	s.state.TryUpdate(func(st State) (State, bool) {
		if st.Profile == nil {
			return st, false
		}
		st.IsLoading = true
		st.Error = ""
		return st, true
	})

	start := time.Now()
	saved, err := s.save(ctx, current)
	s.recorder.RecordProfileSave(saved)

	// A logout during the round trip has already reset the state.
	s.state.TryUpdate(func(st State) (State, bool) {
		if st.Profile == nil {
			return st, false
		}
		st.IsLoading = false
		if !saved {
			st.Error = s.loc.T(i18n.KeyProfileSaveFailed)
		}
		return st, true
	})

	logger := logging.FromContext(ctx, s.logger)
	if !saved {
		logging.Error(logger, "profile save failed", err, logging.FieldDurationMS, time.Since(start).Milliseconds())
		return false
	}
	logging.Info(logger, "profile saved", logging.FieldDurationMS, time.Since(start).Milliseconds())
	return true
}

func (s *Store) save(ctx context.Context, p profile.UserProfile) (bool, error) {
	if s.saver == nil {
		return false, providers.ErrProviderUnavailable
	}
	ok, err := s.saver.SaveProfile(ctx, p)
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (s *Store) mutate(msg string, fn func(profile.UserProfile) profile.UserProfile) error {
	_, applied := s.state.TryUpdate(func(st State) (State, bool) {
		if st.Profile == nil {
			return st, false
		}
		next := fn(*st.Profile)
		st.Profile = &next
		return st, true
	})
	if !applied {
		logging.Debug(s.logger, "profile mutation ignored", "op", msg, "error", ErrNoProfile)
		return ErrNoProfile
	}
	logging.Debug(s.logger, msg)
	return nil
}

func cloneState(st State) State {
	if st.Profile != nil {
		p := st.Profile.Clone()
		st.Profile = &p
	}
	return st
}
