package match

import (
	"strings"

	"nba-postgame-bot/internal/domain"
)

// NormalizedGame carries the lowercase identifier fields thread titles are
// matched against. Derived once per game, never recomputed mid-match.
type NormalizedGame struct {
	Game domain.Game

	HomeCity        string
	HomeCode        string
	HomeNickname    string
	VisitorCity     string
	VisitorCode     string
	VisitorNickname string
}

// Normalize projects a game into its matching fields.
func Normalize(game domain.Game) NormalizedGame {
	return NormalizedGame{
		Game:            game,
		HomeCity:        strings.ToLower(game.Home.City),
		HomeCode:        strings.ToLower(game.Home.Code),
		HomeNickname:    strings.ToLower(game.Home.Nickname),
		VisitorCity:     strings.ToLower(game.Visitor.City),
		VisitorCode:     strings.ToLower(game.Visitor.Code),
		VisitorNickname: strings.ToLower(game.Visitor.Nickname),
	}
}

func (n NormalizedGame) homeIdentifiers() []string {
	return []string{n.HomeCity, n.HomeCode, n.HomeNickname}
}

func (n NormalizedGame) visitorIdentifiers() []string {
	return []string{n.VisitorCity, n.VisitorCode, n.VisitorNickname}
}
