package match

import "nba-postgame-bot/internal/domain"

// threadParentPrefix is the platform's fullname prefix for top-level replies.
const threadParentPrefix = "t3_"

// AlreadyCommented reports whether one of the bot's existing replies is a
// top-level comment on the given thread. Replies are always the ones fetched
// during the current run; there is no cross-run cache.
func AlreadyCommented(thread domain.CandidateThread, replies []domain.ExistingReply) bool {
	parent := threadParentPrefix + thread.ID
	for _, reply := range replies {
		if reply.ParentID == parent {
			return true
		}
	}
	return false
}
