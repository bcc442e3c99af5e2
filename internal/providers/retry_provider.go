package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-postgame-bot/internal/domain"
	"nba-postgame-bot/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingGameProvider wraps a GameProvider with retry/backoff behavior.
type retryingGameProvider struct {
	inner       GameProvider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingGameProvider wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingGameProvider(inner GameProvider, logger *slog.Logger, maxAttempts int, backoff time.Duration) GameProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingGameProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingGameProvider) FetchGames(ctx context.Context, dateKey string) ([]domain.Game, error) {
	var games []domain.Game
	err := r.retry(ctx, "fetch games", func() error {
		var fetchErr error
		games, fetchErr = r.inner.FetchGames(ctx, dateKey)
		return fetchErr
	})
	return games, err
}

func (r *retryingGameProvider) FetchBoxScore(ctx context.Context, gameID string) (*domain.BoxScore, error) {
	var box *domain.BoxScore
	err := r.retry(ctx, "fetch box score", func() error {
		var fetchErr error
		box, fetchErr = r.inner.FetchBoxScore(ctx, gameID)
		return fetchErr
	})
	return box, err
}

func (r *retryingGameProvider) retry(ctx context.Context, op string, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, op+" retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", lastErr)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, op+" failed", "attempts", r.maxAttempts, "err", lastErr)
	return lastErr
}

func (r *retryingGameProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
