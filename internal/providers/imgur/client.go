package imgur

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nba-postgame-bot/internal/providers"
)

const (
	defaultBaseURL     = "https://api.imgur.com/3"
	defaultHTTPTimeout = 30 * time.Second
	providerName       = "imgur"
)

// Config controls how the client reaches imgur.
type Config struct {
	BaseURL    string
	ClientID   string
	HTTPClient *http.Client
}

// Client uploads rendered captures anonymously under a registered client id.
type Client struct {
	baseURL    string
	clientID   string
	httpClient httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type uploadResponse struct {
	Data struct {
		Link string `json:"link"`
	} `json:"data"`
	Success bool `json:"success"`
}

// NewClient constructs an imgur client with the provided configuration.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(base, "/"),
		clientID:   cfg.ClientID,
		httpClient: doer,
	}
}

// Upload submits one image and returns its public link.
func (c *Client) Upload(ctx context.Context, image []byte, caption string) (string, error) {
	form := url.Values{}
	form.Set("image", base64.StdEncoding.EncodeToString(image))
	form.Set("type", "base64")
	form.Set("title", caption)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/image", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Client-ID "+c.clientID)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("imgur: upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload uploadResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return "", decodeErr
	}
	if payload.Data.Link == "" {
		return "", fmt.Errorf("imgur: upload succeeded but no link in response")
	}
	return payload.Data.Link, nil
}
