package domain

import "encoding/json"

// TeamSide identifies one side of a game the way thread titles refer to it.
type TeamSide struct {
	City     string `json:"city"`
	Code     string `json:"team_code"`
	Nickname string `json:"nickname"`
}

// Game is one scheduled game on the day's slate. Immutable once fetched.
type Game struct {
	ID      string   `json:"id"`
	Home    TeamSide `json:"home"`
	Visitor TeamSide `json:"visitor"`
}

// CandidateThread is a discussion thread that may be the game's post-game
// thread. Listings arrive newest-first.
type CandidateThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ExistingReply is one of the bot account's recent comments. ParentID carries
// the platform's thread-scoped prefix (t3_<thread id> for top-level replies).
type ExistingReply struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id"`
}

// BoxScore is the statistics payload for a finished game. Raw is injected
// into the rendering surface untouched; the named fields feed upload captions.
type BoxScore struct {
	GameID         string
	TipOffUTC      string
	HomeTricode    string
	VisitorTricode string
	Raw            json.RawMessage
}

// Caption is the title attached to uploaded captures of this box score.
func (b *BoxScore) Caption() string {
	return b.TipOffUTC + " " + b.VisitorTricode + " vs " + b.HomeTricode
}
