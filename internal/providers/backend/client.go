package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/news"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
	"github.com/lucstrike/game-day-radar-seeker/internal/logging"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers"
)

// Config controls how the client reaches the companion backend.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches catalog data, checks credentials and saves profiles against the backend HTTP API.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient constructs a backend client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// FetchGames retrieves the games scheduled on date (YYYY-MM-DD).
func (c *Client) FetchGames(ctx context.Context, date string) ([]games.Game, error) {
	return c.fetchGames(ctx, pathGames, url.Values{"date": {date}})
}

func (c *Client) FetchLiveGames(ctx context.Context) ([]games.Game, error) {
	return c.fetchGames(ctx, pathLiveGames, nil)
}

func (c *Client) FetchUpcomingGames(ctx context.Context, sport sports.Type) ([]games.Game, error) {
	return c.fetchGames(ctx, pathUpcomingGames, sportQuery(sport))
}

func (c *Client) FetchCompletedGames(ctx context.Context) ([]games.Game, error) {
	return c.fetchGames(ctx, pathCompletedGames, nil)
}

func (c *Client) FetchNews(ctx context.Context, sport sports.Type) ([]news.Article, error) {
	var env newsEnvelope
	if err := c.getJSON(ctx, pathNews, sportQuery(sport), "news", &env); err != nil {
		return nil, err
	}
	return decodeEach(ctx, c, "news", env.News, mapArticle), nil
}

func (c *Client) FetchTeams(ctx context.Context, sport sports.Type) ([]teams.Team, error) {
	return c.fetchTeams(ctx, pathTeams, sportQuery(sport))
}

func (c *Client) SearchTeams(ctx context.Context, query string) ([]teams.Team, error) {
	return c.fetchTeams(ctx, pathTeamSearch, url.Values{"q": {query}})
}

// Login posts the credentials; a 401 maps to providers.ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (profile.UserProfile, error) {
	resp, err := c.send(ctx, http.MethodPost, pathLogin, nil, loginRequest{Email: email, Password: password})
	if err != nil {
		return profile.UserProfile{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		_, _ = io.Copy(io.Discard, resp.Body)
		return profile.UserProfile{}, providers.ErrInvalidCredentials
	}
	if err := c.checkStatus(resp, pathLogin); err != nil {
		return profile.UserProfile{}, err
	}

	var payload loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return profile.UserProfile{}, &providers.DecodeError{Provider: providerName, Resource: "login", Err: err}
	}
	if len(payload.Profile) == 0 {
		return profile.UserProfile{}, &providers.DecodeError{Provider: providerName, Resource: "login", Err: errors.New("missing profile")}
	}
	var seed profile.UserProfile
	if err := json.Unmarshal(payload.Profile, &seed); err != nil {
		return profile.UserProfile{}, &providers.DecodeError{Provider: providerName, Resource: "login", Err: err}
	}
	seed, err = normalizeProfile(seed)
	if err != nil {
		return profile.UserProfile{}, &providers.DecodeError{Provider: providerName, Resource: "login", Err: err}
	}
	return seed, nil
}

// SaveProfile puts the full profile. A 204 or a 2xx without body counts as accepted.
func (c *Client) SaveProfile(ctx context.Context, p profile.UserProfile) (bool, error) {
	resp, err := c.send(ctx, http.MethodPut, pathProfile, nil, p)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, pathProfile); err != nil {
		return false, err
	}
	var payload saveResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, &providers.DecodeError{Provider: providerName, Resource: "profile", Err: err}
	}
	return payload.Success, nil
}

func (c *Client) fetchGames(ctx context.Context, path string, query url.Values) ([]games.Game, error) {
	var env gamesEnvelope
	if err := c.getJSON(ctx, path, query, "games", &env); err != nil {
		return nil, err
	}
	return decodeEach(ctx, c, "games", env.Games, mapGame), nil
}

func (c *Client) fetchTeams(ctx context.Context, path string, query url.Values) ([]teams.Team, error) {
	var env teamsEnvelope
	if err := c.getJSON(ctx, path, query, "teams", &env); err != nil {
		return nil, err
	}
	return decodeEach(ctx, c, "teams", env.Teams, func(t teamWire) (teams.Team, error) {
		return mapTeam(t, "")
	}), nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, resource string, dest any) error {
	resp, err := c.send(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, path); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &providers.DecodeError{Provider: providerName, Resource: resource, Err: err}
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// checkStatus converts non-2xx responses into typed provider errors.
func (c *Client) checkStatus(resp *http.Response, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	msg := strings.TrimSpace(string(body))

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    msg,
		}
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", providerName, path, providers.ErrNotFound)
	}
	return &providers.StatusError{Provider: providerName, StatusCode: resp.StatusCode, Body: msg}
}

// decodeEach validates every element, dropping and logging the malformed ones.
func decodeEach[W any, T any](ctx context.Context, c *Client, resource string, raw []json.RawMessage, mapFn func(W) (T, error)) []T {
	out := make([]T, 0, len(raw))
	dropped := 0
	for i, item := range raw {
		var wire W
		if err := json.Unmarshal(item, &wire); err != nil {
			dropped++
			logging.Debug(logging.FromContext(ctx, c.logger), "dropping undecodable entity", "resource", resource, "index", i, "error", err)
			continue
		}
		mapped, err := mapFn(wire)
		if err != nil {
			dropped++
			logging.Debug(logging.FromContext(ctx, c.logger), "dropping malformed entity", "resource", resource, "index", i, "error", err)
			continue
		}
		out = append(out, mapped)
	}
	if dropped > 0 {
		logging.Warn(logging.FromContext(ctx, c.logger), "backend payload contained malformed entities",
			logging.FieldProvider, providerName, "resource", resource, "dropped", dropped, logging.FieldCount, len(out))
	}
	return out
}

func sportQuery(sport sports.Type) url.Values {
	if sport == "" || sport == sports.All {
		return nil
	}
	return url.Values{"sport": {string(sport)}}
}
