package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/games"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/news"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/profile"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/teams"
)

const (
	defaultRatePerSecond = 5
	rateLimitedName      = "rate-limited"
)

// rateLimitedProvider wraps a DataProvider with a token bucket shared by every call.
type rateLimitedProvider struct {
	next    DataProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider allowing perSecond calls with the given burst.
// Calls block until a token is available or ctx is done.
func NewRateLimitedProvider(next DataProvider, perSecond float64, burst int, logger *slog.Logger) DataProvider {
	if perSecond <= 0 {
		perSecond = defaultRatePerSecond
	}
	if burst <= 0 {
		burst = 1
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context, op string) error {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "provider unavailable", "op", op)
		}
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "rate-limited call canceled", "op", op, "err", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, rateLimitedName, "rate-limited provider call", "op", op)
	return nil
}

func (p *rateLimitedProvider) FetchGames(ctx context.Context, date string) ([]games.Game, error) {
	if err := p.wait(ctx, "games"); err != nil {
		return nil, err
	}
	return p.next.FetchGames(ctx, date)
}

func (p *rateLimitedProvider) FetchLiveGames(ctx context.Context) ([]games.Game, error) {
	if err := p.wait(ctx, "live_games"); err != nil {
		return nil, err
	}
	return p.next.FetchLiveGames(ctx)
}

func (p *rateLimitedProvider) FetchUpcomingGames(ctx context.Context, sport sports.Type) ([]games.Game, error) {
	if err := p.wait(ctx, "upcoming_games"); err != nil {
		return nil, err
	}
	return p.next.FetchUpcomingGames(ctx, sport)
}

func (p *rateLimitedProvider) FetchCompletedGames(ctx context.Context) ([]games.Game, error) {
	if err := p.wait(ctx, "completed_games"); err != nil {
		return nil, err
	}
	return p.next.FetchCompletedGames(ctx)
}

func (p *rateLimitedProvider) FetchNews(ctx context.Context, sport sports.Type) ([]news.Article, error) {
	if err := p.wait(ctx, "news"); err != nil {
		return nil, err
	}
	return p.next.FetchNews(ctx, sport)
}

func (p *rateLimitedProvider) FetchTeams(ctx context.Context, sport sports.Type) ([]teams.Team, error) {
	if err := p.wait(ctx, "teams"); err != nil {
		return nil, err
	}
	return p.next.FetchTeams(ctx, sport)
}

func (p *rateLimitedProvider) SearchTeams(ctx context.Context, query string) ([]teams.Team, error) {
	if err := p.wait(ctx, "team_search"); err != nil {
		return nil, err
	}
	return p.next.SearchTeams(ctx, query)
}

func (p *rateLimitedProvider) Login(ctx context.Context, email, password string) (profile.UserProfile, error) {
	if err := p.wait(ctx, "login"); err != nil {
		return profile.UserProfile{}, err
	}
	return p.next.Login(ctx, email, password)
}

func (p *rateLimitedProvider) SaveProfile(ctx context.Context, prof profile.UserProfile) (bool, error) {
	if err := p.wait(ctx, "profile_save"); err != nil {
		return false, err
	}
	return p.next.SaveProfile(ctx, prof)
}
