package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers"
)

// FakeBackend serves the companion backend HTTP API from an in-process
// provider, so HTTP clients can be exercised end to end.
type FakeBackend struct {
	Server *httptest.Server
	URL    string

	source   providers.DataProvider
	mu       sync.Mutex
	failures map[string]int
	hits     map[string]int
}

// NewFakeBackend starts a fake backend over source; it is closed with the test.
func NewFakeBackend(t *testing.T, source providers.DataProvider) *FakeBackend {
	t.Helper()
	fb := &FakeBackend{source: source, failures: map[string]int{}, hits: map[string]int{}}

	r := chi.NewRouter()
	r.Use(fb.track)
	r.Route("/api", func(r chi.Router) {
		r.Get("/games", func(w http.ResponseWriter, req *http.Request) {
			list, err := source.FetchGames(req.Context(), req.URL.Query().Get("date"))
			fb.respond(w, map[string]any{"games": list}, err)
		})
		r.Get("/games/live", func(w http.ResponseWriter, req *http.Request) {
			list, err := source.FetchLiveGames(req.Context())
			fb.respond(w, map[string]any{"games": list}, err)
		})
		r.Get("/games/upcoming", func(w http.ResponseWriter, req *http.Request) {
			list, err := source.FetchUpcomingGames(req.Context(), sportParam(req))
			fb.respond(w, map[string]any{"games": list}, err)
		})
		r.Get("/games/completed", func(w http.ResponseWriter, req *http.Request) {
			list, err := source.FetchCompletedGames(req.Context())
			fb.respond(w, map[string]any{"games": list}, err)
		})
		r.Get("/news", func(w http.ResponseWriter, req *http.Request) {
			list, err := source.FetchNews(req.Context(), sportParam(req))
			fb.respond(w, map[string]any{"news": list}, err)
		})
		r.Get("/teams", func(w http.ResponseWriter, req *http.Request) {
			list, err := source.FetchTeams(req.Context(), sportParam(req))
			fb.respond(w, map[string]any{"teams": list}, err)
		})
		r.Get("/teams/search", func(w http.ResponseWriter, req *http.Request) {
			list, err := source.SearchTeams(req.Context(), req.URL.Query().Get("q"))
			fb.respond(w, map[string]any{"teams": list}, err)
		})
		r.Post("/auth/login", fb.login)
		r.Put("/profile", fb.saveProfile)
	})

	fb.Server = httptest.NewServer(r)
	fb.URL = fb.Server.URL
	t.Cleanup(fb.Server.Close)
	return fb
}

// FailNext makes the next n requests to path answer with 503.
func (fb *FakeBackend) FailNext(path string, n int) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.failures[path] = n
}

// Hits reports how many requests reached path.
func (fb *FakeBackend) Hits(path string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.hits[path]
}

func (fb *FakeBackend) track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		fb.mu.Lock()
		fb.hits[req.URL.Path]++
		failing := fb.failures[req.URL.Path] > 0
		if failing {
			fb.failures[req.URL.Path]--
		}
		fb.mu.Unlock()
		if failing {
			writeBody(w, http.StatusServiceUnavailable, map[string]string{"error": "unavailable"})
			return
		}
		next.ServeHTTP(w, req)
	})
}

func (fb *FakeBackend) login(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeBody(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	p, err := fb.source.Login(req.Context(), body.Email, body.Password)
	if errors.Is(err, providers.ErrInvalidCredentials) {
		writeBody(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}
	fb.respond(w, map[string]any{"profile": p}, err)
}

func (fb *FakeBackend) saveProfile(w http.ResponseWriter, req *http.Request) {
	var p profile.UserProfile
	if err := json.NewDecoder(req.Body).Decode(&p); err != nil {
		writeBody(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	ok, err := fb.source.SaveProfile(req.Context(), p)
	fb.respond(w, map[string]bool{"success": ok}, err)
}

func (fb *FakeBackend) respond(w http.ResponseWriter, payload any, err error) {
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, context.Canceled) {
			status = http.StatusServiceUnavailable
		}
		writeBody(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeBody(w, http.StatusOK, payload)
}

func writeBody(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func sportParam(req *http.Request) sports.Type {
	return sports.Type(req.URL.Query().Get("sport"))
}
