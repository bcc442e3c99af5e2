package match

import (
	"strings"

	"nba-postgame-bot/internal/domain"
)

// FindThread scans candidates in the given order (newest-first from the
// listing) and returns the first whose lowercased title contains at least one
// home identifier and at least one visitor identifier as a substring.
//
// Matching is deliberately plain substring containment: short team codes can
// false-positive inside unrelated words, which has been an acceptable
// trade-off in practice. Absence of a match is a normal result.
func FindThread(game NormalizedGame, candidates []domain.CandidateThread) (domain.CandidateThread, bool) {
	for _, candidate := range candidates {
		title := strings.ToLower(candidate.Title)
		if containsAny(title, game.homeIdentifiers()) && containsAny(title, game.visitorIdentifiers()) {
			return candidate, true
		}
	}
	return domain.CandidateThread{}, false
}

func containsAny(title string, identifiers []string) bool {
	for _, id := range identifiers {
		if id != "" && strings.Contains(title, id) {
			return true
		}
	}
	return false
}
