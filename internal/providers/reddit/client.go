package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"nba-postgame-bot/internal/domain"
	"nba-postgame-bot/internal/providers"
)

// Config controls how the client reaches reddit.
type Config struct {
	BaseURL      string
	AuthURL      string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	Subreddit    string
	UserAgent    string
	HTTPClient   *http.Client
}

// Client talks to reddit on behalf of the bot account: candidate thread
// listings, the account's recent comments, and comment submission.
type Client struct {
	baseURL      string
	authURL      string
	clientID     string
	clientSecret string
	username     string
	password     string
	subreddit    string
	userAgent    string
	httpClient   httpDoer
	now          func() time.Time

	tokenMu     sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs a reddit client with the provided configuration.
func NewClient(cfg Config) *Client {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:      normalizeURL(cfg.BaseURL, defaultBaseURL),
		authURL:      normalizeURL(cfg.AuthURL, defaultAuthURL),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		username:     cfg.Username,
		password:     cfg.Password,
		subreddit:    cfg.Subreddit,
		userAgent:    userAgent,
		httpClient:   doer,
		now:          time.Now,
	}
}

// FetchNewThreads returns the subreddit's recent post-game threads,
// newest-first as the listing delivers them.
func (c *Client) FetchNewThreads(ctx context.Context) ([]domain.CandidateThread, error) {
	payload, err := c.getListing(ctx, fmt.Sprintf("/r/%s/new", c.subreddit))
	if err != nil {
		return nil, err
	}

	threads := make([]domain.CandidateThread, 0, len(payload.Data.Children))
	for _, child := range payload.Data.Children {
		if !strings.Contains(strings.ToLower(child.Data.Title), threadTitleMarker) {
			continue
		}
		threads = append(threads, domain.CandidateThread{
			ID:    child.Data.ID,
			Title: child.Data.Title,
		})
	}
	return threads, nil
}

// FetchExistingReplies returns the bot account's recent comments.
func (c *Client) FetchExistingReplies(ctx context.Context) ([]domain.ExistingReply, error) {
	payload, err := c.getListing(ctx, fmt.Sprintf("/user/%s/comments", c.username))
	if err != nil {
		return nil, err
	}

	replies := make([]domain.ExistingReply, 0, len(payload.Data.Children))
	for _, child := range payload.Data.Children {
		replies = append(replies, domain.ExistingReply{
			ID:       child.Data.ID,
			ParentID: child.Data.ParentID,
		})
	}
	return replies, nil
}

// PostReply submits one top-level comment on the thread carrying whichever
// links are present. Both links may be empty; the body degrades accordingly.
func (c *Client) PostReply(ctx context.Context, thread domain.CandidateThread, lightLink, darkLink string) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("thing_id", "t3_"+thread.ID)
	form.Set("text", replyBody(lightLink, darkLink))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/comment", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	c.decorate(req, token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reddit: post comment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return nil
}

func (c *Client) getListing(ctx context.Context, path string) (*listingResponse, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("limit", strconv.Itoa(defaultListingLimit))
	req.URL.RawQuery = q.Encode()
	c.decorate(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reddit: listing %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: retryAfter(resp),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var payload listingResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, decodeErr
	}
	return &payload, nil
}

func (c *Client) decorate(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", c.userAgent)
}

func replyBody(lightLink, darkLink string) string {
	var b strings.Builder
	b.WriteString("Box score summary:\n\n")
	if lightLink != "" {
		b.WriteString(fmt.Sprintf("- [Light](%s)\n", lightLink))
	}
	if darkLink != "" {
		b.WriteString(fmt.Sprintf("- [Dark](%s)\n", darkLink))
	}
	if lightLink == "" && darkLink == "" {
		b.WriteString("The image host is having a rough night; no images this time.\n")
	}
	b.WriteString("\n^(I am a bot. Beep boop.)")
	return b.String()
}

func retryAfter(resp *http.Response) time.Duration {
	raw := resp.Header.Get("Retry-After")
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &providers.StatusError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}

func normalizeURL(raw, fallback string) string {
	if raw == "" {
		raw = fallback
	}
	return strings.TrimSuffix(raw, "/")
}
