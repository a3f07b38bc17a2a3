package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/metrics"
	"github.com/lucstrike/game-day-radar-seeker/internal/profilestore"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers/fixture"
	"github.com/lucstrike/game-day-radar-seeker/internal/store"
	"github.com/lucstrike/game-day-radar-seeker/internal/teststubs"
)

type harness struct {
	session  *Store
	profiles *profilestore.Store
	cache    *store.MemoryStore
	recorder *metrics.Recorder
}

func newHarness(auth providers.AuthProvider) harness {
	rec := metrics.NewRecorder()
	profiles := profilestore.New(nil, profilestore.Options{})
	cache := store.NewMemoryStore()
	n := 0
	s := New(auth, profiles, cache, Options{
		Metrics: rec,
		NewID: func() string {
			n++
			return "session-" + string(rune('0'+n))
		},
	})
	return harness{session: s, profiles: profiles, cache: cache, recorder: rec}
}

func TestLoginWithReferenceCredentials(t *testing.T) {
	h := newHarness(fixture.New())

	var loading []bool
	h.session.Subscribe(func(st State) { loading = append(loading, st.IsLoading) })

	ok := h.session.Login(context.Background(), fixture.ReferenceEmail, fixture.ReferencePassword)
	require.True(t, ok)

	st := h.session.State()
	assert.True(t, st.IsAuthenticated)
	assert.False(t, st.IsLoading)
	assert.Empty(t, st.Error)
	assert.Equal(t, "session-1", st.SessionID)
	require.NotNil(t, st.Profile)
	assert.Equal(t, fixture.ReferenceEmail, st.Profile.Email)
	assert.Equal(t, []bool{true, false}, loading)

	success, _ := h.recorder.Logins()
	assert.Equal(t, 1, success)
}

func TestLoginWithWrongCredentials(t *testing.T) {
	h := newHarness(fixture.New())

	ok := h.session.Login(context.Background(), fixture.ReferenceEmail, "errada")
	require.False(t, ok)

	st := h.session.State()
	assert.False(t, st.IsAuthenticated)
	assert.Nil(t, st.Profile)
	assert.Equal(t, "Credenciais inválidas.", st.Error)

	_, failure := h.recorder.Logins()
	assert.Equal(t, 1, failure)
}

func TestLoginRejectsEmailVariants(t *testing.T) {
	for _, email := range []string{"JOAO@EMAIL.COM", "Joao@Email.com", "  joao@email.com  "} {
		t.Run(email, func(t *testing.T) {
			h := newHarness(fixture.New())

			require.False(t, h.session.Login(context.Background(), email, fixture.ReferencePassword))
			st := h.session.State()
			assert.False(t, st.IsAuthenticated)
			assert.Nil(t, st.Profile)
			assert.NotEmpty(t, st.Error)
		})
	}
}

func TestLoginTransportFailureUsesGenericMessage(t *testing.T) {
	h := newHarness(&teststubs.StubProvider{LoginErr: errors.New("dial tcp: refused")})

	assert.False(t, h.session.Login(context.Background(), "a", "b"))
	assert.Equal(t, "Falha no login.", h.session.State().Error)
}

func TestLoginWithoutProviderFails(t *testing.T) {
	h := newHarness(nil)
	assert.False(t, h.session.Login(context.Background(), "a", "b"))
	assert.NotEmpty(t, h.session.State().Error)
}

func TestFailedLoginKeepsExistingSession(t *testing.T) {
	h := newHarness(fixture.New())
	ctx := context.Background()
	require.True(t, h.session.Login(ctx, fixture.ReferenceEmail, fixture.ReferencePassword))

	assert.False(t, h.session.Login(ctx, fixture.ReferenceEmail, "errada"))

	st := h.session.State()
	assert.True(t, st.IsAuthenticated)
	assert.NotNil(t, st.Profile)
	assert.NotEmpty(t, st.Error)
}

func TestLogoutResetsAndIsIdempotent(t *testing.T) {
	h := newHarness(fixture.New())
	require.True(t, h.session.Login(context.Background(), fixture.ReferenceEmail, fixture.ReferencePassword))

	h.session.Logout()
	h.session.Logout()

	st := h.session.State()
	assert.False(t, st.IsAuthenticated)
	assert.Nil(t, st.Profile)
	assert.Empty(t, st.SessionID)
	_, ok := h.profiles.Profile()
	assert.False(t, ok)
}

func TestPersistAndRestoreRoundTrip(t *testing.T) {
	h := newHarness(fixture.New())
	ctx := context.Background()
	require.True(t, h.session.Login(ctx, fixture.ReferenceEmail, fixture.ReferencePassword))
	require.NoError(t, h.profiles.UpdateFavoriteSports([]sports.Type{sports.Soccer}))
	require.NoError(t, h.session.Persist(ctx))

	raw, ok := h.cache.Get(ctx, StorageKey)
	require.True(t, ok)
	assert.Contains(t, raw, `"isAuthenticated":true`)

	restoredProfiles := profilestore.New(nil, profilestore.Options{})
	restored := New(nil, restoredProfiles, h.cache, Options{})
	require.True(t, restored.Restore(ctx))

	st := restored.State()
	assert.True(t, st.IsAuthenticated)
	require.NotNil(t, st.Profile)
	assert.Equal(t, []sports.Type{sports.Soccer}, st.Profile.FavoriteSports)
	assert.NotEmpty(t, st.SessionID)
}

func TestRestoreIgnoresMissingOrCorruptEntries(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"corrupt":         `{"state":`,
		"logged_out":      `{"state":{"profile":null,"isAuthenticated":false},"version":0}`,
		"missing_profile": `{"state":{"isAuthenticated":true},"version":0}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(nil)
			require.NoError(t, h.cache.Set(ctx, StorageKey, payload))
			assert.False(t, h.session.Restore(ctx))
			assert.False(t, h.session.State().IsAuthenticated)
		})
	}

	h := newHarness(nil)
	assert.False(t, h.session.Restore(ctx))
}

func TestPersistAfterLogoutStoresLoggedOutState(t *testing.T) {
	h := newHarness(fixture.New())
	ctx := context.Background()
	require.True(t, h.session.Login(ctx, fixture.ReferenceEmail, fixture.ReferencePassword))
	require.NoError(t, h.session.Persist(ctx))
	h.session.Logout()
	require.NoError(t, h.session.Persist(ctx))

	fresh := New(nil, profilestore.New(nil, profilestore.Options{}), h.cache, Options{})
	assert.False(t, fresh.Restore(ctx))
}

func TestPersistWithoutCacheIsNoop(t *testing.T) {
	s := New(nil, profilestore.New(nil, profilestore.Options{}), nil, Options{})
	assert.NoError(t, s.Persist(context.Background()))
	assert.False(t, s.Restore(context.Background()))
}
