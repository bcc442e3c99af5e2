package render

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const (
	defaultViewportWidth  = 1440
	defaultViewportHeight = 1080
	captureQuality        = 90
)

// Config controls the headless browser and the page it renders.
type Config struct {
	// PageURL is the rendering canvas, typically a file:// URL.
	PageURL  string
	Width    int64
	Height   int64
	Headless bool
}

// ChromeProvider owns a single headless Chrome process and hands out one tab
// per session.
type ChromeProvider struct {
	cfg         Config
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromeProvider launches the browser allocator. The process itself starts
// lazily with the first session.
func NewChromeProvider(ctx context.Context, cfg Config) (*ChromeProvider, error) {
	if cfg.PageURL == "" {
		return nil, fmt.Errorf("render: page URL is required")
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultViewportWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultViewportHeight
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	return &ChromeProvider{
		cfg:         cfg,
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
	}, nil
}

// NewSession opens a fresh tab for one game's rendering.
func (p *ChromeProvider) NewSession(ctx context.Context) (Session, error) {
	_ = ctx
	tabCtx, tabCancel := chromedp.NewContext(p.allocCtx)
	return &chromeSession{
		cfg:    p.cfg,
		ctx:    tabCtx,
		cancel: tabCancel,
	}, nil
}

// Close tears down the browser. Callers must release all sessions first.
func (p *ChromeProvider) Close() {
	p.allocCancel()
}

type chromeSession struct {
	cfg    Config
	ctx    context.Context
	cancel context.CancelFunc
}

// Inject installs a read-only window property carrying the payload, evaluated
// on every new document so the page sees it on load.
func (s *chromeSession) Inject(ctx context.Context, name string, payload any) error {
	script, err := injectScript(name, payload)
	if err != nil {
		return err
	}

	return s.run(ctx, chromedp.ActionFunc(func(actionCtx context.Context) error {
		_, addErr := page.AddScriptToEvaluateOnNewDocument(script).Do(actionCtx)
		return addErr
	}))
}

func injectScript(name string, payload any) (string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("render: encode payload: %w", err)
	}
	return fmt.Sprintf(`Object.defineProperty(window, %q, {
		get() {
			return %s
		}
	})`, name, encoded), nil
}

func (s *chromeSession) Navigate(ctx context.Context) error {
	return s.run(ctx,
		chromedp.EmulateViewport(s.cfg.Width, s.cfg.Height),
		chromedp.Navigate(s.cfg.PageURL),
		chromedp.WaitReady("body"),
	)
}

func (s *chromeSession) Capture(ctx context.Context) ([]byte, error) {
	var buf []byte
	if err := s.run(ctx, chromedp.FullScreenshot(&buf, captureQuality)); err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *chromeSession) ApplyTheme(ctx context.Context, theme string) error {
	script := fmt.Sprintf(`document.body.className += ' %s'`, theme)
	return s.run(ctx, chromedp.Evaluate(script, nil))
}

func (s *chromeSession) Release() {
	s.cancel()
}

// run executes actions on the tab context while honoring the caller's
// cancellation.
func (s *chromeSession) run(ctx context.Context, actions ...chromedp.Action) error {
	done := make(chan error, 1)
	go func() {
		done <- chromedp.Run(s.ctx, actions...)
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
