package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"nba-postgame-bot/internal/domain"
	"nba-postgame-bot/internal/metrics"
	"nba-postgame-bot/internal/teststubs"
)

func testGame() domain.Game {
	return domain.Game{
		ID:      "0022300001",
		Home:    domain.TeamSide{City: "Los Angeles", Code: "LAL", Nickname: "Lakers"},
		Visitor: domain.TeamSide{City: "Boston", Code: "BOS", Nickname: "Celtics"},
	}
}

func testBox() *domain.BoxScore {
	return &domain.BoxScore{
		GameID:         "0022300001",
		TipOffUTC:      "20240102",
		HomeTricode:    "LAL",
		VisitorTricode: "BOS",
		Raw:            json.RawMessage(`{"gdtutc": "20240102"}`),
	}
}

func matchedThreads() []domain.CandidateThread {
	return []domain.CandidateThread{
		{ID: "th1", Title: "[Post Game Thread] Celtics beat Lakers in OT"},
	}
}

type fixture struct {
	games    *teststubs.StubGameProvider
	threads  *teststubs.StubThreadProvider
	images   *teststubs.StubImageHost
	sessions *teststubs.StubSessionProvider
	pipeline *Pipeline
}

func newFixture() *fixture {
	games := &teststubs.StubGameProvider{
		Boxes: map[string]*domain.BoxScore{"0022300001": testBox()},
	}
	threads := &teststubs.StubThreadProvider{}
	images := &teststubs.StubImageHost{Link: "https://i.example/img.png"}
	sessions := &teststubs.StubSessionProvider{}
	return &fixture{
		games:    games,
		threads:  threads,
		images:   images,
		sessions: sessions,
		pipeline: New(games, threads, images, sessions, nil, metrics.NewRecorder()),
	}
}

func TestRunSucceedsEndToEnd(t *testing.T) {
	f := newFixture()

	outcome := f.pipeline.Run(context.Background(), testGame(), matchedThreads(), nil)

	if outcome.Status != domain.OutcomeSucceeded {
		t.Fatalf("expected success, got %+v", outcome)
	}
	if outcome.ThreadID != "th1" {
		t.Fatalf("expected matched thread id, got %q", outcome.ThreadID)
	}
	if outcome.LightLink == "" || outcome.DarkLink == "" {
		t.Fatalf("expected both links, got %+v", outcome)
	}
	if got := f.images.Calls.Load(); got != 2 {
		t.Fatalf("expected 2 uploads, got %d", got)
	}
	posted := f.threads.Posted()
	if len(posted) != 1 || posted[0].Thread.ID != "th1" {
		t.Fatalf("expected one reply on th1, got %+v", posted)
	}
	if f.sessions.Released() != 1 {
		t.Fatalf("expected session released, got %d", f.sessions.Released())
	}
}

func TestRunSkipsWhenNoThreadMatches(t *testing.T) {
	f := newFixture()
	candidates := []domain.CandidateThread{
		{ID: "zz9", Title: "[Post Game Thread] Warriors vs Nets recap"},
	}

	outcome := f.pipeline.Run(context.Background(), testGame(), candidates, nil)

	if outcome.Status != domain.OutcomeSkipped || outcome.Reason != domain.SkipNoThread {
		t.Fatalf("expected no-thread skip, got %+v", outcome)
	}
	if f.games.BoxCalls.Load() != 0 {
		t.Fatal("expected no box score fetch on no-match")
	}
	if f.sessions.Opened() != 0 {
		t.Fatal("expected no session on no-match")
	}
}

func TestRunSkipsWhenAlreadyCommented(t *testing.T) {
	f := newFixture()
	replies := []domain.ExistingReply{{ID: "c1", ParentID: "t3_th1"}}

	outcome := f.pipeline.Run(context.Background(), testGame(), matchedThreads(), replies)

	if outcome.Status != domain.OutcomeSkipped || outcome.Reason != domain.SkipAlreadyCommented {
		t.Fatalf("expected already-commented skip, got %+v", outcome)
	}
	// The pipeline must stop before FETCH_DETAIL.
	if f.games.BoxCalls.Load() != 0 {
		t.Fatal("expected no box score fetch for a deduped thread")
	}
}

func TestRunSkipsWhenBoxScoreAbsent(t *testing.T) {
	f := newFixture()
	f.games.Boxes = nil

	outcome := f.pipeline.Run(context.Background(), testGame(), matchedThreads(), nil)

	if outcome.Status != domain.OutcomeSkipped || outcome.Reason != domain.SkipNoBoxData {
		t.Fatalf("expected no-box-data skip, got %+v", outcome)
	}
	if f.sessions.Opened() != 0 {
		t.Fatal("expected no session when box data is absent")
	}
}

func TestRunFailsOnBoxScoreTransportError(t *testing.T) {
	f := newFixture()
	f.games.BoxErr = errors.New("connection reset")

	outcome := f.pipeline.Run(context.Background(), testGame(), matchedThreads(), nil)

	if outcome.Status != domain.OutcomeFailed || outcome.Stage != domain.StageFetchDetail {
		t.Fatalf("expected fetch-detail failure, got %+v", outcome)
	}
	if outcome.Err == nil {
		t.Fatal("expected underlying error to be carried")
	}
}

func TestRunFailsOnRenderErrorAndReleasesSession(t *testing.T) {
	f := newFixture()
	f.sessions.Configure(teststubs.StubSessionProviderConfig{CaptureErr: errors.New("tab crashed")})

	outcome := f.pipeline.Run(context.Background(), testGame(), matchedThreads(), nil)

	if outcome.Status != domain.OutcomeFailed || outcome.Stage != domain.StageRender {
		t.Fatalf("expected render failure, got %+v", outcome)
	}
	if f.sessions.Released() != 1 {
		t.Fatalf("expected session released on failure, got %d", f.sessions.Released())
	}
	if f.images.Calls.Load() != 0 {
		t.Fatal("expected no uploads after render failure")
	}
}

func TestRunCarriesPartialUploadFailure(t *testing.T) {
	f := newFixture()
	calls := 0
	f.images.UploadFn = func(image []byte, caption string) (string, error) {
		calls++
		if calls == 2 {
			return "", errors.New("over capacity")
		}
		return "https://i.example/light.png", nil
	}

	outcome := f.pipeline.Run(context.Background(), testGame(), matchedThreads(), nil)

	if outcome.Status != domain.OutcomeSucceeded {
		t.Fatalf("expected success with partial links, got %+v", outcome)
	}
	links := []string{outcome.LightLink, outcome.DarkLink}
	populated := 0
	for _, l := range links {
		if l != "" {
			populated++
		}
	}
	if populated != 1 {
		t.Fatalf("expected exactly one surviving link, got %+v", outcome)
	}
	posted := f.threads.Posted()
	if len(posted) != 1 {
		t.Fatalf("expected reply despite partial failure, got %+v", posted)
	}
}

func TestRunPostsEvenWhenBothUploadsFail(t *testing.T) {
	f := newFixture()
	f.images.UploadFn = func(image []byte, caption string) (string, error) {
		return "", errors.New("down")
	}

	outcome := f.pipeline.Run(context.Background(), testGame(), matchedThreads(), nil)

	if outcome.Status != domain.OutcomeSucceeded {
		t.Fatalf("expected success with no links, got %+v", outcome)
	}
	if outcome.LightLink != "" || outcome.DarkLink != "" {
		t.Fatalf("expected empty links, got %+v", outcome)
	}
	posted := f.threads.Posted()
	if len(posted) != 1 || posted[0].LightLink != "" || posted[0].DarkLink != "" {
		t.Fatalf("expected link-less reply, got %+v", posted)
	}
}

func TestRunFailsOnPostError(t *testing.T) {
	f := newFixture()
	f.threads.PostErr = errors.New("comment rejected")

	outcome := f.pipeline.Run(context.Background(), testGame(), matchedThreads(), nil)

	if outcome.Status != domain.OutcomeFailed || outcome.Stage != domain.StagePost {
		t.Fatalf("expected post failure, got %+v", outcome)
	}
}

func TestRunRecordsUploadMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	f := newFixture()
	f.pipeline = New(f.games, f.threads, f.images, f.sessions, nil, rec)

	f.pipeline.Run(context.Background(), testGame(), matchedThreads(), nil)

	if rec.UploadAttempts("light") != 1 || rec.UploadAttempts("dark") != 1 {
		t.Fatalf("expected one upload per theme, got light=%d dark=%d",
			rec.UploadAttempts("light"), rec.UploadAttempts("dark"))
	}
}
