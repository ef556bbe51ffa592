package streak

import "github.com/casualfc/matchday/internal/model"

// Count returns how many consecutive trailing matches the player has played
// without sitting one out. The scan walks the history backwards from the
// most recent match and stops at the first match the player is absent from;
// a player absent from the most recent match has a streak of 0.
func Count(matches []model.Match, id model.PlayerID) int {
	count := 0
	for i := len(matches) - 1; i >= 0; i-- {
		if !matches[i].Contains(id) {
			break
		}
		count++
	}
	return count
}
