package metrics

import (
	"sync"
	"time"
)

type callStats struct {
	calls           int
	errors          int
	stale           int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and store activity.
// Provider attempts and store fetches are tracked under separate keys.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*callStats
	domains   map[string]*callStats
	logins    outcomeCounts
	saves     outcomeCounts
	otel      *otelInstruments
}

type outcomeCounts struct {
	success int
	failure int
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*callStats),
		domains:   make(map[string]*callStats),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := ensure(r.providers, provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := ensure(r.providers, provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordFetch tracks one settled store fetch for a catalog domain (games, news, teams).
func (r *Recorder) RecordFetch(domain string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := ensure(r.domains, domain)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(domain, duration, err)
	}
}

// RecordStale tracks a response discarded because a newer request for the same key was issued.
func (r *Recorder) RecordStale(domain string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	ensure(r.domains, domain).stale++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStale(domain)
	}
}

// RecordLogin tracks a settled login attempt.
func (r *Recorder) RecordLogin(success bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.logins.add(success)
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordOutcome(r.otel.logins, success)
	}
}

// RecordProfileSave tracks a settled profile persistence round trip.
func (r *Recorder) RecordProfileSave(success bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.saves.add(success)
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordOutcome(r.otel.profileSaves, success)
	}
}

// RecordRefreshCycle tracks poller refresh cycles and errors.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRefresh(duration, err)
}

// Snapshot returns a copy of the current stats for a provider or domain.
type Snapshot struct {
	Calls           int
	Errors          int
	Stale           int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Provider returns the stats recorded for a provider.
func (r *Recorder) Provider(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return toSnapshot(r.providers[provider])
}

// Domain returns the stats recorded for a catalog domain.
func (r *Recorder) Domain(domain string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return toSnapshot(r.domains[domain])
}

// Logins returns successful and failed login counts.
func (r *Recorder) Logins() (success, failure int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logins.success, r.logins.failure
}

// ProfileSaves returns successful and failed profile save counts.
func (r *Recorder) ProfileSaves() (success, failure int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves.success, r.saves.failure
}

func (c *outcomeCounts) add(success bool) {
	if success {
		c.success++
		return
	}
	c.failure++
}

// ensure must be called with r.mu held.
func ensure(m map[string]*callStats, key string) *callStats {
	stats, ok := m[key]
	if !ok {
		stats = &callStats{}
		m[key] = stats
	}
	return stats
}

func toSnapshot(stats *callStats) Snapshot {
	if stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Stale:           stats.stale,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}
