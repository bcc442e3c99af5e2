// Package runner coordinates one full run: fetch the day's slate and the
// platform state once, fan out one pipeline per game, and aggregate outcomes.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"nba-postgame-bot/internal/domain"
	"nba-postgame-bot/internal/logging"
	"nba-postgame-bot/internal/metrics"
	"nba-postgame-bot/internal/pipeline"
	"nba-postgame-bot/internal/providers"
	"nba-postgame-bot/internal/render"
	"nba-postgame-bot/internal/timeutil"
)

// SessionProviderFactory launches the rendering backend for one run. The
// runner closes the provider exactly once, after every pipeline has reached a
// terminal outcome.
type SessionProviderFactory func(ctx context.Context) (render.SessionProvider, error)

// Runner owns the fan-out of per-game pipelines.
type Runner struct {
	games       providers.GameProvider
	threads     providers.ThreadProvider
	images      providers.ImageHost
	newSessions SessionProviderFactory
	logger      *slog.Logger
	recorder    *metrics.Recorder
	now         func() time.Time
}

// New constructs a Runner.
func New(games providers.GameProvider, threads providers.ThreadProvider, images providers.ImageHost, newSessions SessionProviderFactory, logger *slog.Logger, recorder *metrics.Recorder) *Runner {
	return &Runner{
		games:       games,
		threads:     threads,
		images:      images,
		newSessions: newSessions,
		logger:      logger,
		recorder:    recorder,
		now:         time.Now,
	}
}

// RunOnce executes one full run. Per-game failures never fail the run; only a
// failure to fetch the slate or the platform state does. An empty slate is a
// silent no-op.
func (r *Runner) RunOnce(ctx context.Context) (domain.RunReport, error) {
	start := r.now()
	runID := uuid.NewString()
	dateKey := timeutil.APIDateKey(start)

	logger := r.logger
	if logger != nil {
		logger = logger.With(
			slog.String(logging.FieldRunID, runID),
			slog.String(logging.FieldDate, dateKey),
		)
	}
	logging.Info(logger, "run started")

	games, err := r.games.FetchGames(ctx, dateKey)
	if err != nil {
		r.recorder.RecordRunCycle(time.Since(start), err)
		return domain.RunReport{}, fmt.Errorf("fetch games: %w", err)
	}
	if len(games) == 0 {
		logging.Info(logger, "no games for date, nothing to do")
		r.recorder.RecordRunCycle(time.Since(start), nil)
		return domain.NewRunReport(runID, dateKey, nil), nil
	}

	candidates, err := r.threads.FetchNewThreads(ctx)
	if err != nil {
		r.recorder.RecordRunCycle(time.Since(start), err)
		return domain.RunReport{}, fmt.Errorf("fetch threads: %w", err)
	}
	replies, err := r.threads.FetchExistingReplies(ctx)
	if err != nil {
		r.recorder.RecordRunCycle(time.Since(start), err)
		return domain.RunReport{}, fmt.Errorf("fetch replies: %w", err)
	}

	sessions, err := r.newSessions(ctx)
	if err != nil {
		r.recorder.RecordRunCycle(time.Since(start), err)
		return domain.RunReport{}, fmt.Errorf("start render backend: %w", err)
	}

	pipe := pipeline.New(r.games, r.threads, r.images, sessions, logger, r.recorder)
	outcomes := r.fanOut(ctx, logger, pipe, games, candidates, replies)

	// Teardown only after every pipeline is terminal; a close racing an
	// in-flight session would kill its tab mid-render.
	sessions.Close()

	for _, outcome := range outcomes {
		r.recorder.RecordOutcome(outcome)
	}

	report := domain.NewRunReport(runID, dateKey, outcomes)
	r.recorder.RecordRunCycle(time.Since(start), nil)
	logging.Info(logger, "run finished",
		logging.FieldCount, report.Games,
		"succeeded", report.Succeeded,
		"skipped", report.Skipped,
		"failed", report.Failed,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return report, nil
}

// fanOut launches one pipeline per game and joins all of them regardless of
// individual outcomes.
func (r *Runner) fanOut(ctx context.Context, logger *slog.Logger, pipe *pipeline.Pipeline, games []domain.Game, candidates []domain.CandidateThread, replies []domain.ExistingReply) []domain.Outcome {
	outcomes := make([]domain.Outcome, len(games))

	var wg sync.WaitGroup
	wg.Add(len(games))
	for i, game := range games {
		go func(i int, game domain.Game) {
			defer wg.Done()
			gameCtx := ctx
			if logger != nil {
				gameCtx = logging.WithLogger(ctx, logger.With(slog.String(logging.FieldGameID, game.ID)))
			}
			outcomes[i] = pipe.Run(gameCtx, game, candidates, replies)
		}(i, game)
	}
	wg.Wait()

	return outcomes
}
