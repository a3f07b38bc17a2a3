package providers

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/news"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
	"github.com/lucstrike/game-day-radar-seeker/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DataProvider with retry/backoff behavior and per-attempt metrics.
type retryingProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	recorder     *metrics.Recorder
	providerName string
	maxAttempts  int
	backoffFn    backoffFunc

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
// Login is attempted once; a credential check is never repeated.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, backoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		recorder:     recorder,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *retryingProvider) FetchGames(ctx context.Context, date string) ([]games.Game, error) {
	return withRetry(ctx, r, "games", func(ctx context.Context) ([]games.Game, error) {
		return r.inner.FetchGames(ctx, date)
	})
}

func (r *retryingProvider) FetchLiveGames(ctx context.Context) ([]games.Game, error) {
	return withRetry(ctx, r, "live_games", r.inner.FetchLiveGames)
}

func (r *retryingProvider) FetchUpcomingGames(ctx context.Context, sport sports.Type) ([]games.Game, error) {
	return withRetry(ctx, r, "upcoming_games", func(ctx context.Context) ([]games.Game, error) {
		return r.inner.FetchUpcomingGames(ctx, sport)
	})
}

func (r *retryingProvider) FetchCompletedGames(ctx context.Context) ([]games.Game, error) {
	return withRetry(ctx, r, "completed_games", r.inner.FetchCompletedGames)
}

func (r *retryingProvider) FetchNews(ctx context.Context, sport sports.Type) ([]news.Article, error) {
	return withRetry(ctx, r, "news", func(ctx context.Context) ([]news.Article, error) {
		return r.inner.FetchNews(ctx, sport)
	})
}

func (r *retryingProvider) FetchTeams(ctx context.Context, sport sports.Type) ([]teams.Team, error) {
	return withRetry(ctx, r, "teams", func(ctx context.Context) ([]teams.Team, error) {
		return r.inner.FetchTeams(ctx, sport)
	})
}

func (r *retryingProvider) SearchTeams(ctx context.Context, query string) ([]teams.Team, error) {
	return withRetry(ctx, r, "team_search", func(ctx context.Context) ([]teams.Team, error) {
		return r.inner.SearchTeams(ctx, query)
	})
}

func (r *retryingProvider) Login(ctx context.Context, email, password string) (profile.UserProfile, error) {
	start := time.Now()
	p, err := r.inner.Login(ctx, email, password)
	r.observe(start, err)
	return p, err
}

func (r *retryingProvider) SaveProfile(ctx context.Context, p profile.UserProfile) (bool, error) {
	return withRetry(ctx, r, "profile_save", func(ctx context.Context) (bool, error) {
		return r.inner.SaveProfile(ctx, p)
	})
}

func withRetry[T any](ctx context.Context, r *retryingProvider, op string, call func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		result, err := call(ctx)
		r.observe(start, err)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == r.maxAttempts || !Retryable(err) {
			break
		}

		delay := r.computeDelay(err, attempt)
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch retry",
			"op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "delay", delay, "err", err)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch failed", "op", op, "err", lastErr)
	return zero, lastErr
}

func (r *retryingProvider) observe(start time.Time, err error) {
	r.recorder.RecordProviderAttempt(r.providerName, time.Since(start), err)
	if rlErr, ok := AsRateLimitError(err); ok {
		r.recorder.RecordRateLimit(r.providerName, rlErr.RetryAfter)
	}
}

// computeDelay honors Retry-After for rate limits and otherwise applies jitter in [base/2, base].
func (r *retryingProvider) computeDelay(err error, attempt int) time.Duration {
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
		return rlErr.RetryAfter
	}
	base := r.backoffFn(attempt)
	if base <= 0 {
		return 0
	}
	half := base / 2
	r.rngMu.Lock()
	jitter := time.Duration(r.rng.Int63n(int64(half) + 1))
	r.rngMu.Unlock()
	return half + jitter
}
