package domain

// OutcomeStatus is the terminal state of one game's pipeline.
type OutcomeStatus string

const (
	OutcomeSkipped   OutcomeStatus = "skipped"
	OutcomeSucceeded OutcomeStatus = "succeeded"
	OutcomeFailed    OutcomeStatus = "failed"
)

// SkipReason explains an early, non-error pipeline stop.
type SkipReason string

const (
	SkipNoThread         SkipReason = "no-thread"
	SkipAlreadyCommented SkipReason = "already-commented"
	SkipNoBoxData        SkipReason = "no-box-data"
)

// Stage names the pipeline step where a failure occurred.
type Stage string

const (
	StageFetchDetail Stage = "fetch-detail"
	StageRender      Stage = "render"
	StageUpload      Stage = "upload"
	StagePost        Stage = "post"
)

// Outcome is the terminal result of one game's pipeline. Exactly one of the
// skip/failure fields is meaningful depending on Status.
type Outcome struct {
	GameID    string        `json:"gameId"`
	ThreadID  string        `json:"threadId,omitempty"`
	Status    OutcomeStatus `json:"status"`
	Reason    SkipReason    `json:"reason,omitempty"`
	Stage     Stage         `json:"stage,omitempty"`
	Err       error         `json:"-"`
	LightLink string        `json:"lightLink,omitempty"`
	DarkLink  string        `json:"darkLink,omitempty"`
}

// Skipped builds a skip outcome for the game.
func Skipped(gameID string, reason SkipReason) Outcome {
	return Outcome{GameID: gameID, Status: OutcomeSkipped, Reason: reason}
}

// Succeeded builds a success outcome carrying whichever links survived upload.
func Succeeded(gameID, threadID, lightLink, darkLink string) Outcome {
	return Outcome{
		GameID:    gameID,
		ThreadID:  threadID,
		Status:    OutcomeSucceeded,
		LightLink: lightLink,
		DarkLink:  darkLink,
	}
}

// Failed builds a failure outcome pinned to the stage that errored.
func Failed(gameID string, stage Stage, err error) Outcome {
	return Outcome{GameID: gameID, Status: OutcomeFailed, Stage: stage, Err: err}
}

// RunReport aggregates the outcomes of one run.
type RunReport struct {
	RunID     string    `json:"runId"`
	DateKey   string    `json:"dateKey"`
	Games     int       `json:"games"`
	Succeeded int       `json:"succeeded"`
	Skipped   int       `json:"skipped"`
	Failed    int       `json:"failed"`
	Outcomes  []Outcome `json:"outcomes"`
}

// NewRunReport tallies per-status counts from the collected outcomes.
func NewRunReport(runID, dateKey string, outcomes []Outcome) RunReport {
	report := RunReport{
		RunID:    runID,
		DateKey:  dateKey,
		Games:    len(outcomes),
		Outcomes: outcomes,
	}
	for _, o := range outcomes {
		switch o.Status {
		case OutcomeSucceeded:
			report.Succeeded++
		case OutcomeSkipped:
			report.Skipped++
		case OutcomeFailed:
			report.Failed++
		}
	}
	return report
}
