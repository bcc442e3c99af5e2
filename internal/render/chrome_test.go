package render

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestInjectScriptEmbedsPayload(t *testing.T) {
	script, err := injectScript("box", map[string]string{"gdtutc": "20240102"})
	if err != nil {
		t.Fatalf("expected script, got %v", err)
	}
	if !strings.Contains(script, `Object.defineProperty(window, "box"`) {
		t.Fatalf("expected window property definition, got %q", script)
	}
	if !strings.Contains(script, `{"gdtutc":"20240102"}`) {
		t.Fatalf("expected encoded payload, got %q", script)
	}
}

func TestInjectScriptPassesRawJSONThrough(t *testing.T) {
	raw := json.RawMessage(`{"hls": {"tn": "LAL"}}`)
	script, err := injectScript("box", raw)
	if err != nil {
		t.Fatalf("expected script, got %v", err)
	}
	if !strings.Contains(script, `{"hls": {"tn": "LAL"}}`) {
		t.Fatalf("expected raw payload to survive untouched, got %q", script)
	}
}

func TestInjectScriptRejectsUnencodablePayload(t *testing.T) {
	if _, err := injectScript("box", make(chan int)); err == nil {
		t.Fatal("expected error for unencodable payload")
	}
}

func TestNewChromeProviderRequiresPageURL(t *testing.T) {
	if _, err := NewChromeProvider(context.Background(), Config{}); err == nil {
		t.Fatal("expected error without page URL")
	}
}

func TestNewChromeProviderAppliesViewportDefaults(t *testing.T) {
	provider, err := NewChromeProvider(context.Background(), Config{PageURL: "file:///tmp/index.html"})
	if err != nil {
		t.Fatalf("expected provider, got %v", err)
	}
	defer provider.Close()

	if provider.cfg.Width != defaultViewportWidth || provider.cfg.Height != defaultViewportHeight {
		t.Fatalf("expected default viewport, got %dx%d", provider.cfg.Width, provider.cfg.Height)
	}
}
