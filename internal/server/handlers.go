package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"nba-postgame-bot/internal/domain"
	"nba-postgame-bot/internal/logging"
)

// runTrigger starts one full run and reports its outcomes.
type runTrigger interface {
	RunOnce(ctx context.Context) (domain.RunReport, error)
}

// runNotifier pushes a run summary to an operator channel.
type runNotifier interface {
	NotifyRunReport(report domain.RunReport)
}

// Handler exposes the run trigger and health probe over HTTP.
type Handler struct {
	runner   runTrigger
	notifier runNotifier
	logger   *slog.Logger
}

// NewHandler constructs the HTTP handler. The notifier may be nil.
func NewHandler(runner runTrigger, notifier runNotifier, logger *slog.Logger) *Handler {
	return &Handler{runner: runner, notifier: notifier, logger: logger}
}

func newRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.Health)
	mux.HandleFunc("/run", h.TriggerRun)
	return mux
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// TriggerRun executes one run synchronously and returns its report. Per-game
// failures are part of the report; only a failed slate or platform fetch turns
// into an error response.
func (h *Handler) TriggerRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	report, err := h.runner.RunOnce(r.Context())
	if err != nil {
		logging.Error(h.logger, "run failed", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	if h.notifier != nil {
		h.notifier.NotifyRunReport(report)
	}
	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
