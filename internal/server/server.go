// Package server wires configuration, providers, the runner, and telemetry
// into a runnable process.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"nba-postgame-bot/internal/config"
	"nba-postgame-bot/internal/logging"
	"nba-postgame-bot/internal/metrics"
	"nba-postgame-bot/internal/notify"
	"nba-postgame-bot/internal/providers"
	"nba-postgame-bot/internal/providers/imgur"
	"nba-postgame-bot/internal/providers/nbadata"
	"nba-postgame-bot/internal/providers/reddit"
	"nba-postgame-bot/internal/render"
	"nba-postgame-bot/internal/runner"
)

var metricsSetup = metrics.Setup

// Server owns the HTTP surface and the run coordinator.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	runner        runTrigger
	notifier      runNotifier
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	var games providers.GameProvider = nbadata.NewClient(nbadata.Config{BaseURL: cfg.NBA.BaseURL})
	games = providers.NewRetryingGameProvider(games, logger, cfg.RetryAttempts, cfg.RetryBackoff)

	threads := reddit.NewClient(reddit.Config{
		BaseURL:      cfg.Reddit.BaseURL,
		AuthURL:      cfg.Reddit.AuthURL,
		ClientID:     cfg.Reddit.ClientID,
		ClientSecret: cfg.Reddit.ClientSecret,
		Username:     cfg.Reddit.Username,
		Password:     cfg.Reddit.Password,
		Subreddit:    cfg.Reddit.Subreddit,
		UserAgent:    cfg.Reddit.UserAgent,
	})
	images := imgur.NewClient(imgur.Config{
		BaseURL:  cfg.Imgur.BaseURL,
		ClientID: cfg.Imgur.ClientID,
	})

	factory := func(ctx context.Context) (render.SessionProvider, error) {
		provider, err := render.NewChromeProvider(ctx, render.Config{
			PageURL:  cfg.Render.PageURL,
			Width:    int64(cfg.Render.Width),
			Height:   int64(cfg.Render.Height),
			Headless: cfg.Render.Headless,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	}

	run := runner.New(games, threads, images, factory, logger, recorder)

	notifier, err := notify.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID, logger)
	if err != nil {
		logging.Warn(logger, "telegram notifier unavailable, continuing without it", "error", err)
		notifier = nil
	}

	return assemble(cfg, logger, recorder, run, notifierOrNil(notifier), metricsSrv, metricsShutdown)
}

// notifierOrNil keeps a nil *TelegramNotifier from becoming a non-nil
// interface value.
func notifierOrNil(n *notify.TelegramNotifier) runNotifier {
	if n == nil {
		return nil
	}
	return n
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, run runTrigger, notifier runNotifier) *Server {
	return assemble(cfg, logger, recorder, run, notifier, nil, nil)
}

func assemble(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, run runTrigger, notifier runNotifier, metricsSrv httpServer, metricsShutdown func(context.Context) error) *Server {
	handler := NewHandler(run, notifier, logger)
	wrapped := loggingMiddleware(logger, newRouter(handler))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		runner:        run,
		notifier:      notifier,
		httpServer:    netHTTPServer{srv: srv},
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the HTTP and metrics servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
