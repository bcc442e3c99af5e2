package metrics

import (
	"sync"
	"time"

	"nba-postgame-bot/internal/domain"
)

type uploadStats struct {
	attempts    int
	errors      int
	lastLatency time.Duration
}

type providerStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about runs, provider
// calls, and image uploads. It is intentionally simple so it can be swapped
// for a real backend later; when OTel is configured the same events are also
// exported.
type Recorder struct {
	mu        sync.Mutex
	runs      int
	runErrors int
	outcomes  map[domain.OutcomeStatus]int
	skips     map[domain.SkipReason]int
	failures  map[domain.Stage]int
	uploads   map[string]*uploadStats
	providers map[string]*providerStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		outcomes:  make(map[domain.OutcomeStatus]int),
		skips:     make(map[domain.SkipReason]int),
		failures:  make(map[domain.Stage]int),
		uploads:   make(map[string]*uploadStats),
		providers: make(map[string]*providerStats),
		otel:      otel,
	}
}

// RecordRunCycle counts a full coordinator run and its duration.
func (r *Recorder) RecordRunCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs++
	if err != nil {
		r.runErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRun(duration, err)
	}
}

// RecordOutcome tallies one game's terminal pipeline outcome.
func (r *Recorder) RecordOutcome(outcome domain.Outcome) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.outcomes[outcome.Status]++
	if outcome.Status == domain.OutcomeSkipped {
		r.skips[outcome.Reason]++
	}
	if outcome.Status == domain.OutcomeFailed {
		r.failures[outcome.Stage]++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordOutcome(outcome)
	}
}

// RecordProviderAttempt counts an upstream call and stores its latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureProvider(provider)
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordUpload counts one image upload attempt for a theme.
func (r *Recorder) RecordUpload(theme string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureUpload(theme)
	stats.attempts++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpload(theme, duration, err)
	}
}

// Runs returns the number of recorded run cycles.
func (r *Recorder) Runs() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}

// RunErrors returns the number of failed run cycles.
func (r *Recorder) RunErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runErrors
}

// Outcomes returns the count recorded for a terminal status.
func (r *Recorder) Outcomes(status domain.OutcomeStatus) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcomes[status]
}

// Skips returns the count recorded for a skip reason.
func (r *Recorder) Skips(reason domain.SkipReason) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.skips[reason]
}

// UploadAttempts returns the attempts recorded for a theme.
func (r *Recorder) UploadAttempts(theme string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.uploads[theme]; ok {
		return stats.attempts
	}
	return 0
}

// UploadErrors returns the failed attempts recorded for a theme.
func (r *Recorder) UploadErrors(theme string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.uploads[theme]; ok {
		return stats.errors
	}
	return 0
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.providers[provider]; ok {
		return stats.calls
	}
	return 0
}

func (r *Recorder) ensureProvider(provider string) *providerStats {
	if stats, ok := r.providers[provider]; ok {
		return stats
	}
	stats := &providerStats{}
	r.providers[provider] = stats
	return stats
}

func (r *Recorder) ensureUpload(theme string) *uploadStats {
	if stats, ok := r.uploads[theme]; ok {
		return stats
	}
	stats := &uploadStats{}
	r.uploads[theme] = stats
	return stats
}
