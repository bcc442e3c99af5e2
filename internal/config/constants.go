package config

import "time"

const (
	envPort          = "PORT"
	envRetryAttempts = "PROVIDER_RETRY_ATTEMPTS"
	envRetryBackoff  = "PROVIDER_RETRY_BACKOFF"

	envNBABaseURL = "NBA_BASE_URL"

	envRedditBaseURL      = "REDDIT_BASE_URL"
	envRedditAuthURL      = "REDDIT_AUTH_URL"
	envRedditClientID     = "REDDIT_CLIENT_ID"
	envRedditClientSecret = "REDDIT_CLIENT_SECRET"
	envRedditUsername     = "REDDIT_USERNAME"
	envRedditPassword     = "REDDIT_PASSWORD"
	envRedditSubreddit    = "REDDIT_SUBREDDIT"
	envRedditUserAgent    = "REDDIT_USER_AGENT"

	envImgurBaseURL  = "IMGUR_BASE_URL"
	envImgurClientID = "IMGUR_CLIENT_ID"

	envRenderPageURL  = "RENDER_PAGE_URL"
	envRenderWidth    = "RENDER_WIDTH"
	envRenderHeight   = "RENDER_HEIGHT"
	envRenderHeadless = "RENDER_HEADLESS"

	envMetricsEnabled      = "METRICS_ENABLED"
	envMetricsPort         = "METRICS_PORT"
	envMetricsServiceName  = "METRICS_SERVICE_NAME"
	envMetricsOtlpEndpoint = "METRICS_OTLP_ENDPOINT"
	envMetricsOtlpInsecure = "METRICS_OTLP_INSECURE"

	envTelegramToken  = "TELEGRAM_BOT_TOKEN"
	envTelegramChatID = "TELEGRAM_CHAT_ID"
)

const (
	defaultPort          = "8080"
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 200 * time.Millisecond
	defaultSubreddit     = "nba"
	defaultRenderWidth   = 1440
	defaultRenderHeight  = 1080
	defaultMetricsPort   = "9090"
	defaultServiceName   = "nba-postgame-bot"
)
