package match

import (
	"testing"

	"nba-postgame-bot/internal/domain"
)

func TestNormalizeLowercasesAllFields(t *testing.T) {
	game := domain.Game{
		ID:      "0022300001",
		Home:    domain.TeamSide{City: "Los Angeles", Code: "LAL", Nickname: "Lakers"},
		Visitor: domain.TeamSide{City: "Boston", Code: "BOS", Nickname: "Celtics"},
	}

	norm := Normalize(game)

	if norm.HomeCity != "los angeles" || norm.HomeCode != "lal" || norm.HomeNickname != "lakers" {
		t.Fatalf("unexpected home fields: %+v", norm)
	}
	if norm.VisitorCity != "boston" || norm.VisitorCode != "bos" || norm.VisitorNickname != "celtics" {
		t.Fatalf("unexpected visitor fields: %+v", norm)
	}
	if norm.Game.ID != game.ID {
		t.Fatalf("expected original game to be carried, got %+v", norm.Game)
	}
}
