package config

// Config holds runtime configuration for the bot.
type Config struct {
	Port          string
	RetryAttempts int
	RetryBackoff  Duration
	NBA           NBAConfig
	Reddit        RedditConfig
	Imgur         ImgurConfig
	Render        RenderConfig
	Metrics       MetricsConfig
	Telegram      TelegramConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		RetryBackoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
		NBA:           loadNBA(),
		Reddit:        loadReddit(),
		Imgur:         loadImgur(),
		Render:        loadRender(),
		Metrics:       loadMetrics(),
		Telegram:      loadTelegram(),
	}
}

// NBAConfig configures the stats provider client.
type NBAConfig struct {
	BaseURL string
}

func loadNBA() NBAConfig {
	return NBAConfig{
		BaseURL: envOrDefault(envNBABaseURL, ""),
	}
}

// RedditConfig configures the discussion platform client.
type RedditConfig struct {
	BaseURL      string
	AuthURL      string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	Subreddit    string
	UserAgent    string
}

func loadReddit() RedditConfig {
	return RedditConfig{
		BaseURL:      envOrDefault(envRedditBaseURL, ""),
		AuthURL:      envOrDefault(envRedditAuthURL, ""),
		ClientID:     envOrDefault(envRedditClientID, ""),
		ClientSecret: envOrDefault(envRedditClientSecret, ""),
		Username:     envOrDefault(envRedditUsername, ""),
		Password:     envOrDefault(envRedditPassword, ""),
		Subreddit:    envOrDefault(envRedditSubreddit, defaultSubreddit),
		UserAgent:    envOrDefault(envRedditUserAgent, ""),
	}
}

// ImgurConfig configures the image host client.
type ImgurConfig struct {
	BaseURL  string
	ClientID string
}

func loadImgur() ImgurConfig {
	return ImgurConfig{
		BaseURL:  envOrDefault(envImgurBaseURL, ""),
		ClientID: envOrDefault(envImgurClientID, ""),
	}
}

// RenderConfig configures the headless rendering surface.
type RenderConfig struct {
	PageURL  string
	Width    int
	Height   int
	Headless bool
}

func loadRender() RenderConfig {
	return RenderConfig{
		PageURL:  envOrDefault(envRenderPageURL, ""),
		Width:    intEnvOrDefault(envRenderWidth, defaultRenderWidth),
		Height:   intEnvOrDefault(envRenderHeight, defaultRenderHeight),
		Headless: boolEnvOrDefault(envRenderHeadless, true),
	}
}

// MetricsConfig configures telemetry export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsEnabled, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envMetricsServiceName, defaultServiceName),
		OtlpEndpoint: envOrDefault(envMetricsOtlpEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envMetricsOtlpInsecure, false),
	}
}

// TelegramConfig configures the optional run-summary notifier. An empty token
// disables it.
type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

func loadTelegram() TelegramConfig {
	return TelegramConfig{
		BotToken: envOrDefault(envTelegramToken, ""),
		ChatID:   int64EnvOrDefault(envTelegramChatID, 0),
	}
}
