package nbadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"nba-postgame-bot/internal/domain"
	"nba-postgame-bot/internal/providers"
)

// Config controls how the client reaches the stats API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches the day's slate and per-game box scores and maps them to
// domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a stats client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchGames retrieves the slate for the given 8-digit date key. An empty
// slate returns an empty slice, not an error.
func (c *Client) FetchGames(ctx context.Context, dateKey string) ([]domain.Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/scoreboard.json", c.baseURL, dateKey), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var payload scoreboardResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, decodeErr
	}

	games := make([]domain.Game, 0, len(payload.Games))
	for _, g := range payload.Games {
		games = append(games, mapGame(g))
	}
	return games, nil
}

// FetchBoxScore retrieves the statistics payload for one game. A missing or
// not-yet-published payload returns (nil, nil); transport errors are errors.
func (c *Client) FetchBoxScore(ctx context.Context, gameID string) (*domain.BoxScore, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/boxscore/%s.json", c.baseURL, gameID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope boxScoreEnvelope
	if decodeErr := json.Unmarshal(raw, &envelope); decodeErr != nil {
		return nil, decodeErr
	}
	if envelope.empty() {
		return nil, nil
	}

	return mapBoxScore(gameID, envelope, raw), nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &providers.StatusError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
