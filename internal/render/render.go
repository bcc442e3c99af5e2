// Package render drives the box-score page in a headless browser and captures
// it as images. One Session maps to one isolated browser tab; sessions are
// never shared between concurrent pipelines.
package render

import "context"

// Session is an exclusive rendering surface for a single game.
//
// Call order per game: Inject -> Navigate -> Capture -> ApplyTheme ->
// Capture -> Release. Release must run on every exit path.
type Session interface {
	// Inject makes the payload visible to the page as a window property
	// before navigation.
	Inject(ctx context.Context, name string, payload any) error
	// Navigate loads the rendering page.
	Navigate(ctx context.Context) error
	// Capture screenshots the full page.
	Capture(ctx context.Context) ([]byte, error)
	// ApplyTheme switches the page's visual theme for subsequent captures.
	ApplyTheme(ctx context.Context, theme string) error
	// Release tears the surface down.
	Release()
}

// SessionProvider hands out sessions backed by one shared browser process.
// Close must only be called after every session has been released.
type SessionProvider interface {
	NewSession(ctx context.Context) (Session, error)
	Close()
}
