package nbadata

const providerName = "nbadata"

type scoreboardResponse struct {
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	ID      string       `json:"id"`
	Home    teamResponse `json:"home"`
	Visitor teamResponse `json:"visitor"`
}

type teamResponse struct {
	City     string `json:"city"`
	TeamCode string `json:"team_code"`
	Nickname string `json:"nickname"`
}

// boxScoreEnvelope pulls the caption fields out of the payload while the raw
// bytes are kept intact for the rendering surface.
type boxScoreEnvelope struct {
	GameDateUTC string       `json:"gdtutc"`
	HomeLine    teamLineScore `json:"hls"`
	VisitorLine teamLineScore `json:"vls"`
}

type teamLineScore struct {
	Tricode string `json:"tn"`
}

func (b boxScoreEnvelope) empty() bool {
	return b.GameDateUTC == "" && b.HomeLine.Tricode == "" && b.VisitorLine.Tricode == ""
}
