package profilestore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
	"github.com/lucstrike/game-day-radar-seeker/internal/i18n"
	"github.com/lucstrike/game-day-radar-seeker/internal/metrics"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers"
	"github.com/lucstrike/game-day-radar-seeker/internal/teststubs"
)

func seeded(t *testing.T, saver providers.ProfileSaver) (*Store, *metrics.Recorder) {
	t.Helper()
	rec := metrics.NewRecorder()
	s := New(saver, Options{Metrics: rec})
	s.Seed(profile.UserProfile{ID: "1", Name: "João Silva", Email: "joao@email.com"})
	return s, rec
}

func TestMutationsWithoutProfileAreDocumentedNoOps(t *testing.T) {
	s := New(nil, Options{})
	notified := 0
	s.Subscribe(func(State) { notified++ })
	name := "x"

	assert.ErrorIs(t, s.UpdateProfile(profile.Update{Name: &name}), ErrNoProfile)
	assert.ErrorIs(t, s.UpdateFavoriteSports([]sports.Type{sports.Soccer}), ErrNoProfile)
	assert.ErrorIs(t, s.UpdateFavoriteTeams([]teams.Team{{ID: "a"}}), ErrNoProfile)
	assert.ErrorIs(t, s.SetNotificationPreferences(profile.Notifications{}), ErrNoProfile)
	assert.False(t, s.SaveProfileChanges(context.Background()))

	assert.Equal(t, State{}, s.State())
	assert.Zero(t, notified)
	_, ok := s.PersonalizedContent()
	assert.False(t, ok)
}

func TestUpdateProfileMergesFields(t *testing.T) {
	s, _ := seeded(t, nil)
	location := "Rio de Janeiro"

	require.NoError(t, s.UpdateProfile(profile.Update{Location: &location}))

	p, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, "Rio de Janeiro", p.Location)
	assert.Equal(t, "João Silva", p.Name)
}

func TestUpdateFavoriteTeamsTwiceHasNoDuplicates(t *testing.T) {
	s, _ := seeded(t, nil)
	list := []teams.Team{{ID: "palmeiras"}, {ID: "lakers"}, {ID: "palmeiras"}}

	require.NoError(t, s.UpdateFavoriteTeams(list))
	require.NoError(t, s.UpdateFavoriteTeams(list))

	p, _ := s.Profile()
	assert.Len(t, p.FavoriteTeams, 2)
}

func TestUpdateFavoriteSportsReplacesWholesale(t *testing.T) {
	s, _ := seeded(t, nil)
	require.NoError(t, s.UpdateFavoriteSports([]sports.Type{sports.Soccer, sports.Tennis}))
	require.NoError(t, s.UpdateFavoriteSports([]sports.Type{sports.Basketball}))

	p, _ := s.Profile()
	assert.Equal(t, []sports.Type{sports.Basketball}, p.FavoriteSports)
}

func TestSetNotificationPreferences(t *testing.T) {
	s, _ := seeded(t, nil)
	require.NoError(t, s.SetNotificationPreferences(profile.Notifications{NewsUpdates: true}))

	content, ok := s.PersonalizedContent()
	require.True(t, ok)
	assert.False(t, content.ShowNotifications)
	assert.Equal(t, sports.Soccer, content.Theme)
}

func TestStateIsACopy(t *testing.T) {
	s, _ := seeded(t, nil)
	require.NoError(t, s.UpdateFavoriteSports([]sports.Type{sports.Soccer}))

	st := s.State()
	st.Profile.FavoriteSports[0] = sports.Tennis
	st.Profile.Name = "mutated"

	p, _ := s.Profile()
	assert.Equal(t, sports.Soccer, p.FavoriteSports[0])
	assert.Equal(t, "João Silva", p.Name)
}

func TestSaveProfileChangesSuccess(t *testing.T) {
	saver := &teststubs.StubProvider{Saved: true}
	s, rec := seeded(t, saver)
	require.NoError(t, s.UpdateFavoriteSports([]sports.Type{sports.Volleyball}))

	var loading []bool
	s.Subscribe(func(st State) { loading = append(loading, st.IsLoading) })

	assert.True(t, s.SaveProfileChanges(context.Background()))
	assert.Equal(t, []bool{true, false}, loading)
	assert.Empty(t, s.State().Error)

	saved := saver.SavedProfiles()
	require.Len(t, saved, 1)
	assert.Equal(t, []sports.Type{sports.Volleyball}, saved[0].FavoriteSports)

	ok, failed := rec.ProfileSaves()
	assert.Equal(t, 1, ok)
	assert.Zero(t, failed)
}

func TestSaveProfileChangesFailureKeepsEdits(t *testing.T) {
	cases := map[string]*teststubs.StubProvider{
		"rejected": {Saved: false},
		"errored":  {Saved: true, SaveErr: errors.New("boom")},
	}
	for name, saver := range cases {
		t.Run(name, func(t *testing.T) {
			s, rec := seeded(t, saver)
			require.NoError(t, s.UpdateFavoriteSports([]sports.Type{sports.Baseball}))

			assert.False(t, s.SaveProfileChanges(context.Background()))

			st := s.State()
			assert.False(t, st.IsLoading)
			assert.Equal(t, "Erro ao salvar alterações", st.Error)
			assert.Equal(t, []sports.Type{sports.Baseball}, st.Profile.FavoriteSports)

			_, failed := rec.ProfileSaves()
			assert.Equal(t, 1, failed)
		})
	}
}

func TestSaveWithoutSaverFails(t *testing.T) {
	bundle, err := i18n.Default()
	require.NoError(t, err)
	s := New(nil, Options{Localizer: bundle.Localizer("en-US")})
	s.Seed(profile.UserProfile{ID: "1"})
	assert.False(t, s.SaveProfileChanges(context.Background()))
	assert.Equal(t, bundle.Localizer("en-US").T(i18n.KeyProfileSaveFailed), s.State().Error)
	assert.NotEqual(t, "Erro ao salvar alterações", s.State().Error)
}

func TestClearResetsState(t *testing.T) {
	s, _ := seeded(t, nil)
	s.Clear()
	s.Clear()
	_, ok := s.Profile()
	assert.False(t, ok)
}
