package providers

import (
	"context"

	"nba-postgame-bot/internal/domain"
)

// GameProvider defines how upstream game data is fetched and normalized.
// FetchGames takes an 8-digit date key in the provider's scheduling timezone;
// an empty slate is a normal result, not an error. FetchBoxScore returns
// (nil, nil) when the provider has no payload yet for the game.
type GameProvider interface {
	FetchGames(ctx context.Context, dateKey string) ([]domain.Game, error)
	FetchBoxScore(ctx context.Context, gameID string) (*domain.BoxScore, error)
}

// ThreadProvider exposes the discussion platform: recent candidate threads
// (newest-first), the bot account's existing replies, and reply submission.
// PostReply tolerates one or both links being empty.
type ThreadProvider interface {
	FetchNewThreads(ctx context.Context) ([]domain.CandidateThread, error)
	FetchExistingReplies(ctx context.Context) ([]domain.ExistingReply, error)
	PostReply(ctx context.Context, thread domain.CandidateThread, lightLink, darkLink string) error
}

// ImageHost uploads a rendered capture and returns its public link.
type ImageHost interface {
	Upload(ctx context.Context, image []byte, caption string) (string, error)
}
