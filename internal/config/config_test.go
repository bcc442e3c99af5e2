package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.RetryAttempts != defaultRetryAttempts {
		t.Fatalf("expected default retry attempts, got %d", cfg.RetryAttempts)
	}
	if cfg.Reddit.Subreddit != defaultSubreddit {
		t.Fatalf("expected default subreddit, got %s", cfg.Reddit.Subreddit)
	}
	if cfg.Render.Width != defaultRenderWidth || cfg.Render.Height != defaultRenderHeight {
		t.Fatalf("expected default viewport, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if !cfg.Render.Headless {
		t.Fatal("expected headless rendering by default")
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled by default")
	}
	if cfg.Telegram.BotToken != "" {
		t.Fatal("expected telegram disabled by default")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv(envPort, "9000")
	t.Setenv(envRedditSubreddit, "bostonceltics")
	t.Setenv(envRenderPageURL, "file:///opt/bot/ui/index.html")
	t.Setenv(envRenderWidth, "1920")
	t.Setenv(envRetryBackoff, "500ms")
	t.Setenv(envMetricsEnabled, "true")
	t.Setenv(envTelegramChatID, "-100123456")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Fatalf("expected port override, got %s", cfg.Port)
	}
	if cfg.Reddit.Subreddit != "bostonceltics" {
		t.Fatalf("expected subreddit override, got %s", cfg.Reddit.Subreddit)
	}
	if cfg.Render.PageURL != "file:///opt/bot/ui/index.html" {
		t.Fatalf("expected page URL, got %s", cfg.Render.PageURL)
	}
	if cfg.Render.Width != 1920 {
		t.Fatalf("expected width override, got %d", cfg.Render.Width)
	}
	if cfg.RetryBackoff != 500*time.Millisecond {
		t.Fatalf("expected backoff override, got %v", cfg.RetryBackoff)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled")
	}
	if cfg.Telegram.ChatID != -100123456 {
		t.Fatalf("expected negative chat id, got %d", cfg.Telegram.ChatID)
	}
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv(envRenderWidth, "not-a-number")
	t.Setenv(envRetryBackoff, "-5s")
	t.Setenv(envMetricsEnabled, "maybe")

	cfg := Load()

	if cfg.Render.Width != defaultRenderWidth {
		t.Fatalf("expected fallback width, got %d", cfg.Render.Width)
	}
	if cfg.RetryBackoff != defaultRetryBackoff {
		t.Fatalf("expected fallback backoff, got %v", cfg.RetryBackoff)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected fallback to disabled metrics")
	}
}
