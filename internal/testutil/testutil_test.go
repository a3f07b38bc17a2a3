package testutil

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/providers/fixture"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if MustParseRFC3339(now.Format(time.RFC3339)) != now {
		t.Fatalf("expected parse round trip")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid RFC3339")
		}
	}()
	MustParseRFC3339("not-a-time")
}

func TestManualClockAdvances(t *testing.T) {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)
	c.Advance(time.Hour)
	if got := c.Now(); !got.Equal(start.Add(time.Hour)) {
		t.Fatalf("expected clock advanced one hour, got %v", got)
	}
}

func TestFixturesHelper(t *testing.T) {
	g := SampleGame("id-1", sports.Tennis, games.StatusLive)
	if g.ID != "id-1" || g.HomeTeam.ID == g.AwayTeam.ID || g.Sport != sports.Tennis {
		t.Fatalf("unexpected game fixture %+v", g)
	}
	p := SampleProfile("1", "a@b.c")
	if p.FavoriteSports == nil || !p.Notifications.ScoreUpdates {
		t.Fatalf("unexpected profile fixture %+v", p)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}
}

func TestServeWithHeaders(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Echo", r.Header.Get("X-Request-ID"))
	})
	rr := ServeWithHeaders(handler, http.MethodGet, "/echo", map[string]string{"X-Request-ID": "req-1"})
	if got := rr.Header().Get("X-Echo"); got != "req-1" {
		t.Fatalf("expected header forwarded, got %q", got)
	}
}

func TestLoggerHelperCapturesDebugConcurrently(t *testing.T) {
	logger, buf := NewBufferLogger()
	done := make(chan struct{})
	go func() {
		logger.Debug("from goroutine")
		close(done)
	}()
	logger.Info("hello", "k", "v")
	<-done
	if !buf.Contains("hello") || !buf.Contains("from goroutine") {
		t.Fatalf("expected log output captured, got %q", buf.String())
	}
	if buf.Len() == 0 {
		t.Fatalf("expected non-empty buffer")
	}
}

func TestFakeBackendServesProvider(t *testing.T) {
	fb := NewFakeBackend(t, fixture.New())

	resp, err := fb.Server.Client().Get(fb.URL + "/api/games/live")
	if err != nil {
		t.Fatalf("get live games: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Games []games.Game `json:"games"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Games) != 1 || body.Games[0].Status != games.StatusLive {
		t.Fatalf("unexpected live games %+v", body.Games)
	}
	if fb.Hits("/api/games/live") != 1 {
		t.Fatalf("expected one hit, got %d", fb.Hits("/api/games/live"))
	}
}

func TestFakeBackendLoginAndFailures(t *testing.T) {
	fb := NewFakeBackend(t, fixture.New())
	client := fb.Server.Client()

	bad, err := client.Post(fb.URL+"/api/auth/login", "application/json", strings.NewReader(`{"email":"x","password":"y"}`))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	bad.Body.Close()
	if bad.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", bad.StatusCode)
	}

	fb.FailNext("/api/news", 1)
	first, err := client.Get(fb.URL + "/api/news")
	if err != nil {
		t.Fatalf("news: %v", err)
	}
	first.Body.Close()
	second, err := client.Get(fb.URL + "/api/news")
	if err != nil {
		t.Fatalf("news: %v", err)
	}
	second.Body.Close()
	if first.StatusCode != http.StatusServiceUnavailable || second.StatusCode != http.StatusOK {
		t.Fatalf("expected 503 then 200, got %d then %d", first.StatusCode, second.StatusCode)
	}
}
