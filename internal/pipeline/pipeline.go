// Package pipeline drives one game end to end: match the post-game thread,
// check for an existing reply, fetch the box score, render light and dark
// captures, upload both, and post a comment with the surviving links.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"nba-postgame-bot/internal/domain"
	"nba-postgame-bot/internal/logging"
	"nba-postgame-bot/internal/match"
	"nba-postgame-bot/internal/metrics"
	"nba-postgame-bot/internal/providers"
	"nba-postgame-bot/internal/render"
)

const (
	payloadWindowName = "box"
	themeLight        = "light"
	themeDark         = "dark"
)

// Pipeline holds the collaborators one game's run needs. Candidate threads
// and existing replies are passed per call because they are fetched once per
// run and shared read-only across all games.
type Pipeline struct {
	games    providers.GameProvider
	threads  providers.ThreadProvider
	images   providers.ImageHost
	sessions render.SessionProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// New constructs a pipeline.
func New(games providers.GameProvider, threads providers.ThreadProvider, images providers.ImageHost, sessions render.SessionProvider, logger *slog.Logger, recorder *metrics.Recorder) *Pipeline {
	return &Pipeline{
		games:    games,
		threads:  threads,
		images:   images,
		sessions: sessions,
		logger:   logger,
		recorder: recorder,
	}
}

// Run drives the game to a terminal outcome. It never lets an error escape:
// expected early stops become skip outcomes, stage errors become failure
// outcomes pinned to the stage that produced them.
func (p *Pipeline) Run(ctx context.Context, game domain.Game, candidates []domain.CandidateThread, replies []domain.ExistingReply) (outcome domain.Outcome) {
	stage := domain.StageFetchDetail
	defer func() {
		if r := recover(); r != nil {
			outcome = domain.Failed(game.ID, stage, fmt.Errorf("pipeline panic: %v", r))
		}
	}()

	logger := logging.FromContext(ctx, p.logger)

	normalized := match.Normalize(game)
	thread, ok := match.FindThread(normalized, candidates)
	if !ok {
		logging.Info(logger, "no thread found",
			logging.FieldGameID, game.ID,
			"home", game.Home.Code,
			"visitor", game.Visitor.Code,
		)
		return domain.Skipped(game.ID, domain.SkipNoThread)
	}
	logging.Info(logger, "thread matched", logging.FieldGameID, game.ID, logging.FieldThreadID, thread.ID)

	if match.AlreadyCommented(thread, replies) {
		logging.Info(logger, "already commented", logging.FieldGameID, game.ID, logging.FieldThreadID, thread.ID)
		return domain.Skipped(game.ID, domain.SkipAlreadyCommented)
	}

	box, err := p.games.FetchBoxScore(ctx, game.ID)
	if err != nil {
		return p.failed(logger, game.ID, domain.StageFetchDetail, err)
	}
	if box == nil {
		logging.Info(logger, "box score not available yet", logging.FieldGameID, game.ID)
		return domain.Skipped(game.ID, domain.SkipNoBoxData)
	}

	stage = domain.StageRender
	light, dark, err := p.renderCaptures(ctx, box)
	if err != nil {
		return p.failed(logger, game.ID, domain.StageRender, err)
	}

	stage = domain.StageUpload
	lightLink, darkLink := p.uploadCaptures(ctx, logger, box, light, dark)

	// A reply goes out even when both uploads failed: an acknowledgment is
	// preferred over silence.
	stage = domain.StagePost
	if err := p.threads.PostReply(ctx, thread, lightLink, darkLink); err != nil {
		return p.failed(logger, game.ID, domain.StagePost, err)
	}

	logging.Info(logger, "reply posted", logging.FieldGameID, game.ID, logging.FieldThreadID, thread.ID)
	return domain.Succeeded(game.ID, thread.ID, lightLink, darkLink)
}

// renderCaptures renders the payload under the default theme, captures it,
// flips the dark theme, and captures again. Both captures share one exclusive
// session depicting identical data.
func (p *Pipeline) renderCaptures(ctx context.Context, box *domain.BoxScore) ([]byte, []byte, error) {
	session, err := p.sessions.NewSession(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("acquire session: %w", err)
	}
	defer session.Release()

	if err := session.Inject(ctx, payloadWindowName, box.Raw); err != nil {
		return nil, nil, fmt.Errorf("inject payload: %w", err)
	}
	if err := session.Navigate(ctx); err != nil {
		return nil, nil, fmt.Errorf("navigate: %w", err)
	}

	light, err := session.Capture(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("capture light: %w", err)
	}

	if err := session.ApplyTheme(ctx, themeDark); err != nil {
		return nil, nil, fmt.Errorf("apply dark theme: %w", err)
	}
	dark, err := session.Capture(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("capture dark: %w", err)
	}

	return light, dark, nil
}

// uploadCaptures submits both captures concurrently and judges the results
// independently: one theme failing never discards the other's link.
func (p *Pipeline) uploadCaptures(ctx context.Context, logger *slog.Logger, box *domain.BoxScore, light, dark []byte) (string, string) {
	caption := box.Caption()

	var wg sync.WaitGroup
	var lightLink, darkLink string
	var lightErr, darkErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		lightLink, lightErr = p.upload(ctx, themeLight, light, caption)
	}()
	go func() {
		defer wg.Done()
		darkLink, darkErr = p.upload(ctx, themeDark, dark, caption)
	}()
	wg.Wait()

	if lightErr != nil {
		logging.Warn(logger, "light upload failed", logging.FieldGameID, box.GameID, "error", lightErr)
	}
	if darkErr != nil {
		logging.Warn(logger, "dark upload failed", logging.FieldGameID, box.GameID, "error", darkErr)
	}
	return lightLink, darkLink
}

func (p *Pipeline) upload(ctx context.Context, theme string, image []byte, caption string) (string, error) {
	start := time.Now()
	link, err := p.images.Upload(ctx, image, caption)
	if p.recorder != nil {
		p.recorder.RecordUpload(theme, time.Since(start), err)
	}
	return link, err
}

func (p *Pipeline) failed(logger *slog.Logger, gameID string, stage domain.Stage, err error) domain.Outcome {
	logging.Error(logger, "pipeline stage failed", err,
		logging.FieldGameID, gameID,
		logging.FieldStage, string(stage),
	)
	return domain.Failed(gameID, stage, err)
}
