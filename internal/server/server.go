package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lucstrike/game-day-radar-seeker/internal/app"
	"github.com/lucstrike/game-day-radar-seeker/internal/config"
	httpserver "github.com/lucstrike/game-day-radar-seeker/internal/http"
	"github.com/lucstrike/game-day-radar-seeker/internal/http/handlers"
	"github.com/lucstrike/game-day-radar-seeker/internal/logging"
	"github.com/lucstrike/game-day-radar-seeker/internal/metrics"
	"github.com/lucstrike/game-day-radar-seeker/internal/poller"
	"github.com/lucstrike/game-day-radar-seeker/internal/timeutil"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg         config.Config
	logger      *slog.Logger
	metrics     *metrics.Recorder
	container   *app.Container
	httpServer  httpServer
	poller      Poller
	metricsStop func(context.Context) error
	now         func() time.Time
}

// New wires telemetry, the container, the poller and the ops HTTP server from cfg.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, promHandler, metricsShutdown := buildMetrics(ctx, cfg, logger)

	container, err := app.New(ctx, cfg, logger, recorder)
	if err != nil {
		if metricsShutdown != nil {
			_ = metricsShutdown(ctx)
		}
		return nil, err
	}

	plr := poller.New(container.Catalog, logger, recorder, cfg.PollInterval)
	s := newServerWithDeps(cfg, logger, container, buildHTTPServer(cfg, container, plr, promHandler, logger), plr)
	s.metrics = recorder
	s.metricsStop = metricsShutdown
	return s, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, container *app.Container, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		container:  container,
		httpServer: httpSrv,
		poller:     plr,
		now:        time.Now,
	}
}

func buildHTTPServer(cfg config.Config, container *app.Container, plr Poller, promHandler http.Handler, logger *slog.Logger) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}
	handler := handlers.NewHandler(logger, statusFn, container.Home)

	return newNetHTTPServer(":"+cfg.Metrics.Port, httpserver.NewRouter(handler, promHandler, logger))
}

// Run serves the ops endpoints, loads the initial data and starts the poller,
// then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startServer(stop)
	s.bootstrap(ctx)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

// bootstrap restores the persisted session, logs in from config when no session
// was restored, and performs the first full refresh. A startup login is
// persisted at once so a crash before shutdown does not lose it.
func (s *Server) bootstrap(ctx context.Context) {
	restored := s.container.Restore(ctx)
	if !restored && s.cfg.Login.Enabled() {
		s.startupLogin(ctx)
	}

	today := timeutil.Today(s.now, nil)
	if err := s.container.Catalog.RefreshData(ctx, today); err != nil {
		logging.Warn(s.logger, "initial refresh incomplete", slog.String(logging.FieldDate, today), "error", err)
	}
	s.logHome(ctx)
}

func (s *Server) startupLogin(ctx context.Context) {
	if !s.container.Session.Login(ctx, s.cfg.Login.Email, s.cfg.Login.Password) {
		logging.Warn(s.logger, "startup login failed",
			slog.String(logging.FieldEmail, s.cfg.Login.Email),
			slog.String("error", s.container.Session.State().Error),
		)
		return
	}
	if err := s.container.Persist(ctx); err != nil {
		logging.Warn(s.logger, "persist after startup login failed", "error", err)
	}
}

func (s *Server) logHome(ctx context.Context) {
	home := s.container.Home()
	logging.Info(s.logger, "home summary",
		slog.Bool("authenticated", home.Authenticated),
		slog.Int("live", home.LiveCount),
		slog.Int("upcoming", home.UpcomingCount),
		slog.Int("news", home.NewsCount),
		slog.Any("leagues", home.Leagues),
	)
	badges := s.container.Badges(ctx, home.Games)
	for _, g := range home.Games {
		logging.Info(s.logger, "featured game",
			slog.String(logging.FieldKey, g.ID),
			slog.String(logging.FieldSport, string(g.Sport)),
			slog.String("match", g.HomeTeam.Name+" x "+g.AwayTeam.Name),
			slog.String("home_badge", badgeLabel(badges[g.HomeTeam.ID])),
			slog.String("away_badge", badgeLabel(badges[g.AwayTeam.ID])),
		)
	}
}

func badgeLabel(b app.Badge) string {
	if b.LogoURL != "" {
		return b.LogoURL
	}
	return b.Initials
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.httpServer == nil {
		return
	}
	launchServer("ops", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			logging.Error(s.logger, "graceful shutdown failed", err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if err := s.container.Persist(shutdownCtx); err != nil {
		logging.Warn(s.logger, "persist on shutdown failed", "error", err)
	}
	_ = s.container.Close()

	logging.Info(s.logger, "shutdown complete")
}

// buildMetrics returns the recorder, the Prometheus handler when telemetry is
// enabled, and the exporter shutdown func. A setup failure degrades to the in-memory recorder.
func buildMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger) (*metrics.Recorder, http.Handler, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(ctx, recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}
	if !recCfg.Enabled {
		handler = nil
	}
	return rec, handler, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Handler()
}
