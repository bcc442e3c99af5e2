package metrics

import (
	"errors"
	"testing"
	"time"

	"nba-postgame-bot/internal/domain"
)

func TestRecorderCountsRunCycles(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRunCycle(time.Millisecond, nil)
	rec.RecordRunCycle(time.Millisecond, errors.New("boom"))

	if rec.Runs() != 2 {
		t.Fatalf("expected 2 runs, got %d", rec.Runs())
	}
	if rec.RunErrors() != 1 {
		t.Fatalf("expected 1 run error, got %d", rec.RunErrors())
	}
}

func TestRecorderTalliesOutcomes(t *testing.T) {
	rec := NewRecorder()
	rec.RecordOutcome(domain.Succeeded("g1", "th1", "l", "d"))
	rec.RecordOutcome(domain.Skipped("g2", domain.SkipNoThread))
	rec.RecordOutcome(domain.Skipped("g3", domain.SkipNoThread))
	rec.RecordOutcome(domain.Failed("g4", domain.StageUpload, errors.New("boom")))

	if rec.Outcomes(domain.OutcomeSucceeded) != 1 {
		t.Fatalf("expected 1 success, got %d", rec.Outcomes(domain.OutcomeSucceeded))
	}
	if rec.Outcomes(domain.OutcomeSkipped) != 2 {
		t.Fatalf("expected 2 skips, got %d", rec.Outcomes(domain.OutcomeSkipped))
	}
	if rec.Skips(domain.SkipNoThread) != 2 {
		t.Fatalf("expected 2 no-thread skips, got %d", rec.Skips(domain.SkipNoThread))
	}
}

func TestRecorderTracksUploadsPerTheme(t *testing.T) {
	rec := NewRecorder()
	rec.RecordUpload("light", time.Millisecond, nil)
	rec.RecordUpload("dark", time.Millisecond, errors.New("boom"))

	if rec.UploadAttempts("light") != 1 || rec.UploadAttempts("dark") != 1 {
		t.Fatalf("unexpected attempts light=%d dark=%d", rec.UploadAttempts("light"), rec.UploadAttempts("dark"))
	}
	if rec.UploadErrors("light") != 0 || rec.UploadErrors("dark") != 1 {
		t.Fatalf("unexpected errors light=%d dark=%d", rec.UploadErrors("light"), rec.UploadErrors("dark"))
	}
}

func TestRecorderTracksProviderCalls(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("nbadata", time.Millisecond, nil)
	rec.RecordProviderAttempt("nbadata", time.Millisecond, errors.New("boom"))

	if rec.ProviderCalls("nbadata") != 2 {
		t.Fatalf("expected 2 calls, got %d", rec.ProviderCalls("nbadata"))
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordRunCycle(time.Millisecond, nil)
	rec.RecordOutcome(domain.Outcome{})
	rec.RecordUpload("light", time.Millisecond, nil)
	rec.RecordProviderAttempt("nbadata", time.Millisecond, nil)
	if rec.Runs() != 0 {
		t.Fatal("expected zero runs from nil recorder")
	}
}
