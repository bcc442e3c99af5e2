package nbadata

import (
	"encoding/json"

	"nba-postgame-bot/internal/domain"
)

func mapGame(g gameResponse) domain.Game {
	return domain.Game{
		ID:      g.ID,
		Home:    mapSide(g.Home),
		Visitor: mapSide(g.Visitor),
	}
}

func mapSide(t teamResponse) domain.TeamSide {
	return domain.TeamSide{
		City:     t.City,
		Code:     t.TeamCode,
		Nickname: t.Nickname,
	}
}

func mapBoxScore(gameID string, envelope boxScoreEnvelope, raw []byte) *domain.BoxScore {
	return &domain.BoxScore{
		GameID:         gameID,
		TipOffUTC:      envelope.GameDateUTC,
		HomeTricode:    envelope.HomeLine.Tricode,
		VisitorTricode: envelope.VisitorLine.Tricode,
		Raw:            json.RawMessage(raw),
	}
}
