package priority

import (
	"sort"
	"time"

	"github.com/casualfc/matchday/internal/model"
)

// Resolve orders a player set into the entry-priority sequence used to seed
// the first match of a session.
//
// Tier 1 is recurring members who arrived by the cutoff and have not already
// played; tier 2 is everyone else. Both tiers are ordered by arrival time,
// with arrival order as tie-break. Every input player appears exactly once
// in the output: this is a priority ordering, not a filter.
func Resolve(players []model.Player, cutoff time.Time, alreadyPlayed map[model.PlayerID]struct{}) []model.PlayerID {
	var tier1, tier2 []model.Player
	for _, p := range players {
		if p.Tier == model.TierRecurring && !p.ArrivalTime.After(cutoff) && !contains(alreadyPlayed, p.ID) {
			tier1 = append(tier1, p)
		} else {
			tier2 = append(tier2, p)
		}
	}

	byArrival(tier1)
	byArrival(tier2)

	out := make([]model.PlayerID, 0, len(players))
	for _, p := range tier1 {
		out = append(out, p.ID)
	}
	for _, p := range tier2 {
		out = append(out, p.ID)
	}
	return out
}

func byArrival(players []model.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].ArrivalTime.Equal(players[j].ArrivalTime) {
			return players[i].ArrivalOrder < players[j].ArrivalOrder
		}
		return players[i].ArrivalTime.Before(players[j].ArrivalTime)
	})
}

func contains(set map[model.PlayerID]struct{}, id model.PlayerID) bool {
	if set == nil {
		return false
	}
	_, ok := set[id]
	return ok
}
