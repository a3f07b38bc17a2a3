package providers

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/metrics"
	"github.com/lucstrike/game-day-radar-seeker/internal/teststubs"
)

func flakey(failures int, err error) *teststubs.StubProvider {
	stub := &teststubs.StubProvider{}
	var calls atomic.Int32
	stub.GamesFunc = func(context.Context, string) ([]games.Game, error) {
		if calls.Add(1) <= int32(failures) {
			return nil, err
		}
		return []games.Game{{ID: "ok"}}, nil
	}
	return stub
}

func noSleep(rp DataProvider) *retryingProvider {
	r := rp.(*retryingProvider)
	r.backoffFn = func(int) time.Duration { return 0 }
	return r
}

func TestRetryingProviderRetriesAndSucceeds(t *testing.T) {
	fp := flakey(2, errors.New("boom"))
	rp := noSleep(NewRetryingProvider(fp, slog.Default(), metrics.NewRecorder(), "flakey", 3, time.Millisecond))

	got, err := rp.FetchGames(context.Background(), "2024-01-01")
	if err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if len(got) != 1 || got[0].ID != "ok" {
		t.Fatalf("unexpected games %+v", got)
	}
	if fp.Calls.Load() != 3 {
		t.Fatalf("expected 3 attempts, got %d", fp.Calls.Load())
	}
}

func TestRetryingProviderStopsAfterMaxAttempts(t *testing.T) {
	fp := flakey(5, errors.New("boom"))
	rp := noSleep(NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 2, time.Millisecond))

	if _, err := rp.FetchGames(context.Background(), ""); err == nil {
		t.Fatal("expected error after retries")
	}
	if fp.Calls.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", fp.Calls.Load())
	}
}

func TestRetryingProviderDoesNotRetryFinalErrors(t *testing.T) {
	fp := flakey(5, &StatusError{Provider: "p", StatusCode: 404})
	rp := noSleep(NewRetryingProvider(fp, nil, nil, "flakey", 3, time.Millisecond))

	if _, err := rp.FetchGames(context.Background(), ""); err == nil {
		t.Fatal("expected error")
	}
	if fp.Calls.Load() != 1 {
		t.Fatalf("expected a single attempt for a client error, got %d", fp.Calls.Load())
	}
}

func TestRetryingProviderNeverRetriesLogin(t *testing.T) {
	stub := &teststubs.StubProvider{LoginErr: errors.New("connection reset")}
	rec := metrics.NewRecorder()
	rp := noSleep(NewRetryingProvider(stub, nil, rec, "auth", 3, time.Millisecond))

	if _, err := rp.Login(context.Background(), "a@b.c", "x"); err == nil {
		t.Fatal("expected login error")
	}
	if stub.Calls.Load() != 1 {
		t.Fatalf("expected one login attempt, got %d", stub.Calls.Load())
	}
	if got := rec.Provider("auth"); got.Calls != 1 || got.Errors != 1 {
		t.Fatalf("unexpected stats %+v", got)
	}
}

func TestRetryingProviderRetriesSaves(t *testing.T) {
	stub := &teststubs.StubProvider{Saved: true}
	rp := noSleep(NewRetryingProvider(stub, nil, nil, "p", 3, time.Millisecond))

	ok, err := rp.SaveProfile(context.Background(), profile.UserProfile{ID: "1"})
	if err != nil || !ok {
		t.Fatalf("expected save success, got %v %v", ok, err)
	}
}

func TestRetryingProviderRespectsContextCancel(t *testing.T) {
	fp := flakey(5, errors.New("boom"))
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rp.FetchGames(ctx, ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestRetryingProviderRecordsRateLimitMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	fp := flakey(1, &RateLimitError{StatusCode: 429})
	rp := noSleep(NewRetryingProvider(fp, nil, rec, "rl", 2, time.Millisecond))

	if _, err := rp.FetchGames(context.Background(), ""); err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}

	stats := rec.Provider("rl")
	if stats.RateLimitHits != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", stats.RateLimitHits)
	}
	if stats.Calls != 2 {
		t.Fatalf("expected 2 provider calls, got %d", stats.Calls)
	}
	if stats.Errors != 1 {
		t.Fatalf("expected 1 error, got %d", stats.Errors)
	}
}

func TestRetryingProviderDelaySelection(t *testing.T) {
	rp := NewRetryingProvider(&teststubs.StubProvider{}, nil, nil, "rl", 2, time.Millisecond).(*retryingProvider)
	rp.rng = rand.New(rand.NewSource(1))
	rp.backoffFn = func(int) time.Duration { return 50 * time.Millisecond }

	if delay := rp.computeDelay(&RateLimitError{RetryAfter: 3 * time.Second}, 1); delay != 3*time.Second {
		t.Fatalf("expected retry-after delay, got %s", delay)
	}

	for i := 0; i < 20; i++ {
		delay := rp.computeDelay(errors.New("boom"), 1)
		if delay < 25*time.Millisecond || delay > 50*time.Millisecond {
			t.Fatalf("expected jittered delay between 25ms and 50ms, got %s", delay)
		}
	}
}
