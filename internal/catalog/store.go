// Package catalog holds the games, news and teams fetched from the data provider.
//
// Every fetch captures a generation for its collection when issued; the
// response is applied only if no later fetch for that collection has been
// issued since. Superseded responses are discarded and counted as stale.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lucstrike/game-day-radar-seeker/internal/derive"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/news"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
	"github.com/lucstrike/game-day-radar-seeker/internal/i18n"
	"github.com/lucstrike/game-day-radar-seeker/internal/logging"
	"github.com/lucstrike/game-day-radar-seeker/internal/metrics"
	"github.com/lucstrike/game-day-radar-seeker/internal/observable"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers"
)

var errLiveRefresh = errors.New("catalog: live games refresh failed")

// Options carries the optional collaborators of a Store.
type Options struct {
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	Localizer *i18n.Localizer
}

// Store is the catalog state container.
type Store struct {
	provider providers.CatalogProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
	loc      *i18n.Localizer
	state    *observable.Value[State]
}

// New constructs an empty Store with SelectedSport set to sports.All.
func New(provider providers.CatalogProvider, opts Options) *Store {
	return &Store{
		provider: provider,
		logger:   opts.Logger,
		recorder: opts.Metrics,
		loc:      opts.Localizer,
		state:    observable.New(State{SelectedSport: sports.All}),
	}
}

// State returns a copy of the current snapshot.
func (s *Store) State() State {
	return s.state.Get().clone()
}

// Subscribe registers fn for state changes.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	return s.state.Subscribe(func(st State) { fn(st.clone()) })
}

// FetchGames loads the games for date and re-derives FilteredGames for the selected sport.
func (s *Store) FetchGames(ctx context.Context, date string) bool {
	return run(ctx, s, slotGames, func(ctx context.Context, p providers.CatalogProvider) ([]games.Game, error) {
		return p.FetchGames(ctx, date)
	}, func(st *State, list []games.Game) {
		st.Date = date
		st.Games = list
		st.FilteredGames = derive.FilterBySport(list, st.SelectedSport)
	}, slog.String(logging.FieldDate, date))
}

func (s *Store) FetchLiveGames(ctx context.Context) bool {
	return run(ctx, s, slotLive, func(ctx context.Context, p providers.CatalogProvider) ([]games.Game, error) {
		return p.FetchLiveGames(ctx)
	}, func(st *State, list []games.Game) {
		st.LiveGames = list
	})
}

// FetchUpcomingGames loads upcoming games; an empty sport or sports.All means every sport.
func (s *Store) FetchUpcomingGames(ctx context.Context, sport sports.Type) bool {
	return run(ctx, s, slotUpcoming, func(ctx context.Context, p providers.CatalogProvider) ([]games.Game, error) {
		return p.FetchUpcomingGames(ctx, sport)
	}, func(st *State, list []games.Game) {
		st.UpcomingGames = list
	}, slog.String(logging.FieldSport, string(sport)))
}

func (s *Store) FetchCompletedGames(ctx context.Context) bool {
	return run(ctx, s, slotCompleted, func(ctx context.Context, p providers.CatalogProvider) ([]games.Game, error) {
		return p.FetchCompletedGames(ctx)
	}, func(st *State, list []games.Game) {
		st.FinishedGames = list
	})
}

// FetchNews loads news, pre-filtered by the provider when sport is set.
func (s *Store) FetchNews(ctx context.Context, sport sports.Type) bool {
	return run(ctx, s, slotNews, func(ctx context.Context, p providers.CatalogProvider) ([]news.Article, error) {
		return p.FetchNews(ctx, sport)
	}, func(st *State, list []news.Article) {
		st.News = list
	}, slog.String(logging.FieldSport, string(sport)))
}

// FetchTeams loads the roster for sport.
func (s *Store) FetchTeams(ctx context.Context, sport sports.Type) bool {
	return run(ctx, s, slotTeams, func(ctx context.Context, p providers.CatalogProvider) ([]teams.Team, error) {
		return p.FetchTeams(ctx, sport)
	}, func(st *State, list []teams.Team) {
		st.TeamsSport = sport
		st.Teams = list
	}, slog.String(logging.FieldSport, string(sport)))
}

// SearchTeams matches query against team names and leagues across every sport.
// It never touches stored state and never fails: provider errors yield an empty list.
func (s *Store) SearchTeams(ctx context.Context, query string) []teams.Team {
	logger := logging.FromContext(ctx, s.logger)
	if s.provider == nil {
		return []teams.Team{}
	}
	found, err := s.provider.SearchTeams(ctx, query)
	if err != nil {
		logging.Warn(logger, "team search failed", "query", query, "error", err)
		return []teams.Team{}
	}
	logging.Debug(logger, "team search", "query", query, logging.FieldCount, len(found))
	if found == nil {
		return []teams.Team{}
	}
	return found
}

// SelectSport sets the sport filter and re-derives FilteredGames from Games.
func (s *Store) SelectSport(sport sports.Type) {
	s.state.Update(func(st State) State {
		st.SelectedSport = sport
		st.FilteredGames = derive.FilterBySport(st.Games, sport)
		return st
	})
}

// RefreshLive re-fetches live games; status transitions arrive this way.
func (s *Store) RefreshLive(ctx context.Context) error {
	if !s.FetchLiveGames(ctx) {
		return errLiveRefresh
	}
	return nil
}

// RefreshAll runs the live, upcoming, completed and news fetches concurrently
// and returns once all have settled. One failure does not cancel the others.
func (s *Store) RefreshAll(ctx context.Context) error {
	return s.refresh(ctx, "refresh all",
		s.FetchLiveGames,
		func(ctx context.Context) bool { return s.FetchUpcomingGames(ctx, sports.All) },
		s.FetchCompletedGames,
		func(ctx context.Context) bool { return s.FetchNews(ctx, sports.All) },
	)
}

// RefreshData is RefreshAll plus the games for date.
func (s *Store) RefreshData(ctx context.Context, date string) error {
	return s.refresh(ctx, "refresh data",
		func(ctx context.Context) bool { return s.FetchGames(ctx, date) },
		s.FetchLiveGames,
		func(ctx context.Context) bool { return s.FetchUpcomingGames(ctx, sports.All) },
		s.FetchCompletedGames,
		func(ctx context.Context) bool { return s.FetchNews(ctx, sports.All) },
	)
}

func (s *Store) refresh(ctx context.Context, label string, fetches ...func(context.Context) bool) error {
	start := time.Now()
	var failed atomic.Int32
	var g errgroup.Group
	for _, fetch := range fetches {
		g.Go(func() error {
			if !fetch(ctx) {
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	var err error
	if n := failed.Load(); n > 0 {
		err = fmt.Errorf("%s: %d of %d fetches failed", label, n, len(fetches))
	}
	s.recorder.RecordRefreshCycle(time.Since(start), err)

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logging.Warn(logger, label+" settled with failures", "error", err, logging.FieldDurationMS, time.Since(start).Milliseconds())
		return err
	}
	logging.Info(logger, label+" settled", logging.FieldDurationMS, time.Since(start).Milliseconds())
	return nil
}

// run issues one fetch for sl. It reports whether the provider call succeeded,
// regardless of whether the result was still current.
func run[T any](
	ctx context.Context,
	s *Store,
	sl slot,
	fetch func(context.Context, providers.CatalogProvider) ([]T, error),
	apply func(*State, []T),
	attrs ...any,
) bool {
	c := sl.concern()
	var gen uint64
	s.state.Update(func(st State) State {
		st.generations[sl]++
		gen = st.generations[sl]
		st.pending[c]++
		st.setError(c, "")
		st.syncLoading()
		return st
	})

	start := time.Now()
	var list []T
	var err error
	if s.provider == nil {
		err = providers.ErrProviderUnavailable
	} else {
		list, err = fetch(ctx, s.provider)
	}
	elapsed := time.Since(start)
	s.recorder.RecordFetch(sl.String(), elapsed, err)
	if list == nil {
		list = []T{}
	}

	stale := false
	s.state.Update(func(st State) State {
		st.pending[c]--
		st.syncLoading()
		if st.generations[sl] != gen {
			stale = true
			return st
		}
		if err != nil {
			st.setError(c, s.loc.T(slotErrorKeys[sl]))
			return st
		}
		apply(&st, list)
		return st
	})

	logger := logging.FromContext(ctx, s.logger)
	attrs = append(attrs, logging.FieldDomain, sl.String(), logging.FieldGeneration, gen, logging.FieldDurationMS, elapsed.Milliseconds())
	switch {
	case stale:
		s.recorder.RecordStale(sl.String())
		logging.Debug(logger, "discarding stale catalog response", attrs...)
	case err != nil:
		logging.Error(logger, "catalog fetch failed", err, attrs...)
	default:
		logging.Info(logger, "catalog fetch applied", append(attrs, logging.FieldCount, len(list))...)
	}
	return err == nil
}
