// Package teststubs provides shared test doubles for the provider and render
// interfaces.
package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"nba-postgame-bot/internal/domain"
	"nba-postgame-bot/internal/render"
)

// StubGameProvider is a test double for providers.GameProvider.
type StubGameProvider struct {
	Games    []domain.Game
	GamesErr error

	// Boxes maps game id to payload; absent ids yield (nil, nil).
	Boxes  map[string]*domain.BoxScore
	BoxErr error

	GameCalls atomic.Int32
	BoxCalls  atomic.Int32
}

func (s *StubGameProvider) FetchGames(ctx context.Context, dateKey string) ([]domain.Game, error) {
	_ = ctx
	_ = dateKey
	s.GameCalls.Add(1)
	return s.Games, s.GamesErr
}

func (s *StubGameProvider) FetchBoxScore(ctx context.Context, gameID string) (*domain.BoxScore, error) {
	_ = ctx
	s.BoxCalls.Add(1)
	if s.BoxErr != nil {
		return nil, s.BoxErr
	}
	return s.Boxes[gameID], nil
}

// StubThreadProvider is a test double for providers.ThreadProvider.
type StubThreadProvider struct {
	Threads    []domain.CandidateThread
	ThreadsErr error
	Replies    []domain.ExistingReply
	RepliesErr error
	PostErr    error

	mu     sync.Mutex
	posted []PostedReply
}

// PostedReply records one PostReply invocation.
type PostedReply struct {
	Thread    domain.CandidateThread
	LightLink string
	DarkLink  string
}

func (s *StubThreadProvider) FetchNewThreads(ctx context.Context) ([]domain.CandidateThread, error) {
	_ = ctx
	return s.Threads, s.ThreadsErr
}

func (s *StubThreadProvider) FetchExistingReplies(ctx context.Context) ([]domain.ExistingReply, error) {
	_ = ctx
	return s.Replies, s.RepliesErr
}

func (s *StubThreadProvider) PostReply(ctx context.Context, thread domain.CandidateThread, lightLink, darkLink string) error {
	_ = ctx
	if s.PostErr != nil {
		return s.PostErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posted = append(s.posted, PostedReply{Thread: thread, LightLink: lightLink, DarkLink: darkLink})
	return nil
}

// Posted returns a copy of the recorded replies.
func (s *StubThreadProvider) Posted() []PostedReply {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PostedReply, len(s.posted))
	copy(out, s.posted)
	return out
}

// StubImageHost is a test double for providers.ImageHost. UploadFn lets a
// test decide per call; without it every upload succeeds with Link.
type StubImageHost struct {
	Link     string
	UploadFn func(image []byte, caption string) (string, error)

	Calls atomic.Int32
}

func (s *StubImageHost) Upload(ctx context.Context, image []byte, caption string) (string, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.UploadFn != nil {
		return s.UploadFn(image, caption)
	}
	return s.Link, nil
}

// StubSessionProvider is a test double for render.SessionProvider. It tracks
// how many sessions were opened and released and whether Close raced an
// unreleased session.
type StubSessionProvider struct {
	NewErr error

	mu            sync.Mutex
	opened        int
	released      int
	closed        bool
	closedCount   int
	closedEarly   bool
	captureErr    error
	injectErr     error
	navigateErr   error
	themeErr      error
	captureOutput []byte
}

// StubSessionProviderConfig seeds failure behavior for sessions.
type StubSessionProviderConfig struct {
	InjectErr   error
	NavigateErr error
	CaptureErr  error
	ThemeErr    error
	Capture     []byte
}

// Configure applies per-session behavior.
func (s *StubSessionProvider) Configure(cfg StubSessionProviderConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.injectErr = cfg.InjectErr
	s.navigateErr = cfg.NavigateErr
	s.captureErr = cfg.CaptureErr
	s.themeErr = cfg.ThemeErr
	s.captureOutput = cfg.Capture
}

func (s *StubSessionProvider) NewSession(ctx context.Context) (render.Session, error) {
	_ = ctx
	if s.NewErr != nil {
		return nil, s.NewErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opened++
	return &stubSession{provider: s}, nil
}

func (s *StubSessionProvider) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.closedCount++
	if s.released < s.opened {
		s.closedEarly = true
	}
}

// Opened returns the number of sessions handed out.
func (s *StubSessionProvider) Opened() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opened
}

// Released returns the number of sessions released.
func (s *StubSessionProvider) Released() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

// Closed reports whether Close was called.
func (s *StubSessionProvider) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// CloseCount returns how many times Close was called.
func (s *StubSessionProvider) CloseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closedCount
}

// ClosedEarly reports whether Close raced an unreleased session.
func (s *StubSessionProvider) ClosedEarly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closedEarly
}

type stubSession struct {
	provider *StubSessionProvider
	released bool
}

func (s *stubSession) Inject(ctx context.Context, name string, payload any) error {
	_ = ctx
	_ = name
	_ = payload
	s.provider.mu.Lock()
	defer s.provider.mu.Unlock()
	return s.provider.injectErr
}

func (s *stubSession) Navigate(ctx context.Context) error {
	_ = ctx
	s.provider.mu.Lock()
	defer s.provider.mu.Unlock()
	return s.provider.navigateErr
}

func (s *stubSession) Capture(ctx context.Context) ([]byte, error) {
	_ = ctx
	s.provider.mu.Lock()
	defer s.provider.mu.Unlock()
	if s.provider.captureErr != nil {
		return nil, s.provider.captureErr
	}
	if s.provider.captureOutput != nil {
		return s.provider.captureOutput, nil
	}
	return []byte("png"), nil
}

func (s *stubSession) ApplyTheme(ctx context.Context, theme string) error {
	_ = ctx
	_ = theme
	s.provider.mu.Lock()
	defer s.provider.mu.Unlock()
	return s.provider.themeErr
}

func (s *stubSession) Release() {
	s.provider.mu.Lock()
	defer s.provider.mu.Unlock()
	if !s.released {
		s.released = true
		s.provider.released++
	}
}
