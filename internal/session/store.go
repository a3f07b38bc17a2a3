// Package session holds authentication state and drives the profile store's lifecycle.
package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/i18n"
	"github.com/lucstrike/game-day-radar-seeker/internal/logging"
	"github.com/lucstrike/game-day-radar-seeker/internal/metrics"
	"github.com/lucstrike/game-day-radar-seeker/internal/observable"
	"github.com/lucstrike/game-day-radar-seeker/internal/profilestore"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers"
	"github.com/lucstrike/game-day-radar-seeker/internal/store"
)

// State is the snapshot exposed to readers. Profile mirrors the profile store.
type State struct {
	Profile         *profile.UserProfile
	IsAuthenticated bool
	IsLoading       bool
	Error           string
	SessionID       string
}

type authState struct {
	authenticated bool
	pending       int
	err           string
	sessionID     string
}

// Options carries the optional collaborators of a Store.
type Options struct {
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	Localizer *i18n.Localizer
	// NewID generates session ids; defaults to random UUIDs.
	NewID func() string
}

// Store owns the authentication flag and the transient login state.
// Concurrent logins are not serialized: the last one to settle wins.
type Store struct {
	auth     providers.AuthProvider
	profiles *profilestore.Store
	cache    store.KV
	logger   *slog.Logger
	recorder *metrics.Recorder
	loc      *i18n.Localizer
	newID    func() string
	state    *observable.Value[authState]
}

// New constructs a logged-out Store. profiles must be non-nil; cache may be nil
// when nothing should survive a restart.
func New(auth providers.AuthProvider, profiles *profilestore.Store, cache store.KV, opts Options) *Store {
	newID := opts.NewID
	if newID == nil {
		newID = func() string { return uuid.NewString() }
	}
	return &Store{
		auth:     auth,
		profiles: profiles,
		cache:    cache,
		logger:   opts.Logger,
		recorder: opts.Metrics,
		loc:      opts.Localizer,
		newID:    newID,
		state:    observable.New(authState{}),
	}
}

// State composes the authentication state with the current profile.
func (s *Store) State() State {
	a := s.state.Get()
	st := State{
		IsAuthenticated: a.authenticated,
		IsLoading:       a.pending > 0,
		Error:           a.err,
		SessionID:       a.sessionID,
	}
	if p, ok := s.profiles.Profile(); ok && a.authenticated {
		st.Profile = &p
	}
	return st
}

// Subscribe registers fn for authentication state changes.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	return s.state.Subscribe(func(authState) { fn(s.State()) })
}

// Login checks the credentials with the auth provider. On success the profile
// store is seeded and the session becomes authenticated. On failure the error is
// set and any existing session is left as it was.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	s.state.Update(func(a authState) authState {
		a.pending++
		a.err = ""
		return a
	})

	seed, err := s.login(ctx, email, password)
	logger := logging.FromContext(ctx, s.logger)
	s.recorder.RecordLogin(err == nil)

	if err != nil {
		msg := s.loc.T(i18n.KeyLoginFailed)
		if errors.Is(err, providers.ErrInvalidCredentials) {
			msg = s.loc.T(i18n.KeyInvalidCredentials)
		}
		s.state.Update(func(a authState) authState {
			a.pending--
			a.err = msg
			return a
		})
		logging.Warn(logger, "login failed", logging.FieldEmail, email, "error", err)
		return false
	}

	s.profiles.Seed(seed)
	id := s.newID()
	s.state.Update(func(a authState) authState {
		a.pending--
		a.authenticated = true
		a.err = ""
		a.sessionID = id
		return a
	})
	logging.Info(logger, "login succeeded", logging.FieldEmail, email, "session_id", id)
	return true
}

func (s *Store) login(ctx context.Context, email, password string) (profile.UserProfile, error) {
	if s.auth == nil {
		return profile.UserProfile{}, providers.ErrProviderUnavailable
	}
	return s.auth.Login(ctx, email, password)
}

// Logout clears the profile and the authentication flag. Calling it twice is safe.
func (s *Store) Logout() {
	s.profiles.Clear()
	s.state.Update(func(a authState) authState {
		return authState{pending: a.pending}
	})
	logging.Info(s.logger, "logged out")
}
