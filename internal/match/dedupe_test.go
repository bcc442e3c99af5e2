package match

import (
	"testing"

	"nba-postgame-bot/internal/domain"
)

func TestAlreadyCommentedFindsThreadReply(t *testing.T) {
	thread := domain.CandidateThread{ID: "abc123"}
	replies := []domain.ExistingReply{
		{ID: "c1", ParentID: "t3_zzz999"},
		{ID: "c2", ParentID: "t3_abc123"},
	}

	if !AlreadyCommented(thread, replies) {
		t.Fatal("expected existing reply to be detected")
	}
}

func TestAlreadyCommentedIgnoresNestedReplies(t *testing.T) {
	thread := domain.CandidateThread{ID: "abc123"}
	// t1_ parents are replies to comments, not to the thread itself.
	replies := []domain.ExistingReply{
		{ID: "c1", ParentID: "t1_abc123"},
	}

	if AlreadyCommented(thread, replies) {
		t.Fatal("expected nested reply not to count")
	}
}

func TestAlreadyCommentedEmptyReplies(t *testing.T) {
	thread := domain.CandidateThread{ID: "abc123"}
	if AlreadyCommented(thread, nil) {
		t.Fatal("expected false for empty reply list")
	}
}
