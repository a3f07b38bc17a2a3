package handlers

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/lucstrike/game-day-radar-seeker/internal/app"
	"github.com/lucstrike/game-day-radar-seeker/internal/poller"
)

// Handler serves the operational endpoints.
type Handler struct {
	logger   *slog.Logger
	statusFn func() poller.Status
	homeFn   func() app.Home
}

// NewHandler constructs a Handler. Either function may be nil.
func NewHandler(logger *slog.Logger, statusFn func() poller.Status, homeFn func() app.Home) *Handler {
	return &Handler{logger: logger, statusFn: statusFn, homeFn: homeFn}
}

type pollerStatus struct {
	Ready               bool       `json:"ready"`
	ConsecutiveFailures int        `json:"consecutiveFailures"`
	LastError           string     `json:"lastError,omitempty"`
	LastAttempt         *time.Time `json:"lastAttempt,omitempty"`
	LastSuccess         *time.Time `json:"lastSuccess,omitempty"`
}

type statusResponse struct {
	Authenticated bool          `json:"authenticated"`
	LiveCount     int           `json:"liveCount"`
	UpcomingCount int           `json:"upcomingCount"`
	NewsCount     int           `json:"newsCount"`
	Leagues       []string      `json:"leagues"`
	Errors        []string      `json:"errors"`
	Poller        *pollerStatus `json:"poller,omitempty"`
}

// Health reports the process is up.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, loggerFromContext(r, h.logger))
}

// Ready reports whether live data is being refreshed successfully.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, loggerFromContext(r, h.logger))
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Status summarizes the session, the catalog and the poller.
func (h *Handler) Status(w nethttp.ResponseWriter, r *nethttp.Request) {
	resp := statusResponse{Leagues: []string{}, Errors: []string{}}
	if h.homeFn != nil {
		home := h.homeFn()
		resp.Authenticated = home.Authenticated
		resp.LiveCount = home.LiveCount
		resp.UpcomingCount = home.UpcomingCount
		resp.NewsCount = home.NewsCount
		if home.Leagues != nil {
			resp.Leagues = home.Leagues
		}
		if home.Errors != nil {
			resp.Errors = home.Errors
		}
	}
	if h.statusFn != nil {
		resp.Poller = toPollerStatus(h.statusFn())
	}
	writeJSON(w, nethttp.StatusOK, resp, loggerFromContext(r, h.logger))
}

func toPollerStatus(s poller.Status) *pollerStatus {
	out := &pollerStatus{
		Ready:               s.IsReady(),
		ConsecutiveFailures: s.ConsecutiveFailures,
		LastError:           s.LastError,
	}
	if !s.LastAttempt.IsZero() {
		at := s.LastAttempt
		out.LastAttempt = &at
	}
	if !s.LastSuccess.IsZero() {
		at := s.LastSuccess
		out.LastSuccess = &at
	}
	return out
}
