package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"nba-postgame-bot/internal/domain"
)

type flakyProvider struct {
	failures  int
	gameCalls int
	boxCalls  int
}

func (f *flakyProvider) FetchGames(ctx context.Context, dateKey string) ([]domain.Game, error) {
	f.gameCalls++
	if f.gameCalls <= f.failures {
		return nil, errors.New("transient")
	}
	return []domain.Game{{ID: "g1"}}, nil
}

func (f *flakyProvider) FetchBoxScore(ctx context.Context, gameID string) (*domain.BoxScore, error) {
	f.boxCalls++
	if f.boxCalls <= f.failures {
		return nil, errors.New("transient")
	}
	return &domain.BoxScore{GameID: gameID}, nil
}

func TestRetryingProviderRecovers(t *testing.T) {
	inner := &flakyProvider{failures: 2}
	provider := NewRetryingGameProvider(inner, nil, 3, time.Millisecond)

	games, err := provider.FetchGames(context.Background(), "20240102")
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if len(games) != 1 || inner.gameCalls != 3 {
		t.Fatalf("expected 3 attempts and one game, got calls=%d games=%d", inner.gameCalls, len(games))
	}
}

func TestRetryingProviderExhaustsAttempts(t *testing.T) {
	inner := &flakyProvider{failures: 10}
	provider := NewRetryingGameProvider(inner, nil, 2, time.Millisecond)

	if _, err := provider.FetchBoxScore(context.Background(), "g1"); err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if inner.boxCalls != 2 {
		t.Fatalf("expected 2 attempts, got %d", inner.boxCalls)
	}
}

func TestRetryingProviderHonorsContext(t *testing.T) {
	inner := &flakyProvider{failures: 10}
	provider := NewRetryingGameProvider(inner, nil, 5, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := provider.FetchGames(ctx, "20240102"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
