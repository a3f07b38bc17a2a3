// Package logos resolves team logo URLs from public image hosts and caches
// hits in the durable cache.
package logos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
	"github.com/lucstrike/game-day-radar-seeker/internal/logging"
	"github.com/lucstrike/game-day-radar-seeker/internal/store"
)

const (
	defaultESPNBaseURL    = "https://a.espncdn.com/i/teamlogos"
	defaultLogoEPSBaseURL = "https://logoeps.com/wp-content/uploads/2013/03"
	defaultTTL            = 24 * time.Hour
	defaultTimeout        = 5 * time.Second
	resolveConcurrency    = 4
	timestampSuffix       = "_timestamp"
)

var whitespace = regexp.MustCompile(`\s+`)

// knownSlugs maps lowercased team names to logoeps slugs for names that do
// not slugify directly.
var knownSlugs = map[string]string{
	"palmeiras":   "palmeiras",
	"flamengo":    "flamengo",
	"corinthians": "corinthians",
	"lakers":      "los-angeles-lakers",
	"warriors":    "golden-state-warriors",
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls where the resolver looks and how long hits stay fresh.
type Config struct {
	ESPNBaseURL    string
	LogoEPSBaseURL string
	TTL            time.Duration
	Timeout        time.Duration
	HTTPClient     *http.Client
	Logger         *slog.Logger
	Now            func() time.Time
}

// Resolver finds a reachable logo image for a team.
type Resolver struct {
	cache   store.KV
	client  httpDoer
	espn    string
	logoeps string
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger
	group   singleflight.Group
}

// NewResolver builds a Resolver. cache may be nil to disable caching.
func NewResolver(cache store.KV, cfg Config) *Resolver {
	r := &Resolver{
		cache:   cache,
		espn:    trimBase(cfg.ESPNBaseURL, defaultESPNBaseURL),
		logoeps: trimBase(cfg.LogoEPSBaseURL, defaultLogoEPSBaseURL),
		ttl:     cfg.TTL,
		now:     cfg.Now,
		logger:  cfg.Logger,
	}
	if cfg.HTTPClient != nil {
		r.client = cfg.HTTPClient
	} else {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		r.client = &http.Client{Timeout: timeout}
	}
	if r.ttl <= 0 {
		r.ttl = defaultTTL
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// CacheKey is the durable cache key for a team's logo.
func CacheKey(team teams.Team) string {
	return fmt.Sprintf("team_logo_%s_%s", team.Name, team.Sport)
}

// Initials is the text fallback when no logo resolves: the first letter of
// each word, uppercased, at most three.
func Initials(name string) string {
	out := make([]rune, 0, 3)
	for _, word := range strings.Fields(name) {
		if len(out) == cap(out) {
			break
		}
		first, _ := utf8.DecodeRuneInString(word)
		out = append(out, unicode.ToUpper(first))
	}
	return string(out)
}

// Candidates lists the URLs tried for team, in priority order.
func (r *Resolver) Candidates(team teams.Team) []string {
	out := make([]string, 0, 3)
	if team.ID != "" && team.Sport != "" {
		out = append(out, fmt.Sprintf("%s/%s/%s.png", r.espn, team.Sport, team.ID))
	}
	lower := strings.ToLower(strings.TrimSpace(team.Name))
	if lower != "" {
		out = append(out, r.logoepsURL(whitespace.ReplaceAllString(lower, "-")))
	}
	if slug, ok := knownSlugs[lower]; ok {
		if u := r.logoepsURL(slug); u != out[len(out)-1] {
			out = append(out, u)
		}
	}
	return out
}

func (r *Resolver) logoepsURL(slug string) string {
	return fmt.Sprintf("%s/%s-vector-logo.png", r.logoeps, slug)
}

// Resolve returns a fresh cached URL or the first candidate that answers a
// HEAD request with an image. Concurrent calls for the same team share one lookup.
func (r *Resolver) Resolve(ctx context.Context, team teams.Team) (string, bool) {
	key := CacheKey(team)
	if url, ok := r.cached(ctx, key); ok {
		return url, true
	}
	v, _, _ := r.group.Do(key, func() (any, error) {
		return r.lookup(ctx, key, team), nil
	})
	url, _ := v.(string)
	return url, url != ""
}

// ResolveAll resolves every team with bounded concurrency, keyed by team id.
// Teams without a logo are absent from the result.
func (r *Resolver) ResolveAll(ctx context.Context, list []teams.Team) map[string]string {
	results := make([]string, len(list))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)
	for i, team := range list {
		g.Go(func() error {
			if url, ok := r.Resolve(gctx, team); ok {
				results[i] = url
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]string, len(list))
	for i, team := range list {
		if results[i] != "" {
			out[team.ID] = results[i]
		}
	}
	return out
}

func (r *Resolver) lookup(ctx context.Context, key string, team teams.Team) string {
	logger := logging.FromContext(ctx, r.logger)
	for _, candidate := range r.Candidates(team) {
		if !r.validate(ctx, candidate) {
			continue
		}
		r.store(ctx, key, candidate)
		logging.Debug(logger, "team logo resolved", logging.FieldKey, key, "url", candidate)
		return candidate
	}
	logging.Debug(logger, "no team logo found", logging.FieldKey, key)
	return ""
}

func (r *Resolver) validate(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false
	}
	return strings.HasPrefix(strings.ToLower(resp.Header.Get("Content-Type")), "image/")
}

func (r *Resolver) cached(ctx context.Context, key string) (string, bool) {
	if r.cache == nil {
		return "", false
	}
	url, ok := r.cache.Get(ctx, key)
	if !ok || url == "" {
		return "", false
	}
	raw, ok := r.cache.Get(ctx, key+timestampSuffix)
	if !ok {
		return "", false
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || r.now().Sub(time.UnixMilli(ms)) >= r.ttl {
		return "", false
	}
	return url, true
}

func (r *Resolver) store(ctx context.Context, key, url string) {
	if r.cache == nil {
		return
	}
	logger := logging.FromContext(ctx, r.logger)
	if err := r.cache.Set(ctx, key, url); err != nil {
		logging.Warn(logger, "cache team logo failed", logging.FieldKey, key, "error", err)
		return
	}
	stamp := strconv.FormatInt(r.now().UnixMilli(), 10)
	if err := r.cache.Set(ctx, key+timestampSuffix, stamp); err != nil {
		logging.Warn(logger, "cache team logo timestamp failed", logging.FieldKey, key, "error", err)
	}
}

func trimBase(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = fallback
	}
	return strings.TrimSuffix(raw, "/")
}
