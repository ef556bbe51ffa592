package balance

import (
	"math"

	"github.com/casualfc/matchday/internal/dependencies/random"
	"github.com/casualfc/matchday/internal/model"
	"github.com/casualfc/matchday/internal/services/rating"
)

// Trials is the fixed budget of random splits the balancer evaluates
const Trials = 100

// MinPlayers is the smallest player set that can be split into two teams
const MinPlayers = 4

// Service partitions a fixed player set into two position-constrained,
// score-balanced teams using a bounded randomized search
type Service struct {
	random random.Random
}

// New creates a new balancer
func New(random random.Random) *Service {
	return &Service{random: random}
}

type split struct {
	teamA []model.Player
	teamB []model.Player
	diff  float64
}

// Split partitions the players into two teams whose sizes differ by at most
// one. Across the trial budget it keeps the accepted split (per-position
// head-count difference at most one) with the smallest balance-score
// difference. If no trial satisfies the position constraint the best
// unconstrained split is returned instead, so a non-empty result is
// guaranteed for any valid input.
func (s *Service) Split(players []model.Player) ([]model.Player, []model.Player, error) {
	if len(players) < MinPlayers {
		return nil, nil, model.ErrInsufficientPlayers
	}

	sizeA := (len(players) + 1) / 2

	var best, bestUnconstrained *split

	pool := make([]model.Player, len(players))
	for trial := 0; trial < Trials; trial++ {
		copy(pool, players)
		random.Shuffle(s.random, len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})

		teamA := pool[:sizeA]
		teamB := pool[sizeA:]
		diff := math.Abs(rating.TeamScore(teamA) - rating.TeamScore(teamB))

		if bestUnconstrained == nil || diff < bestUnconstrained.diff {
			bestUnconstrained = newSplit(teamA, teamB, diff)
		}
		if !positionsBalanced(teamA, teamB) {
			continue
		}
		if best == nil || diff < best.diff {
			best = newSplit(teamA, teamB, diff)
		}
	}

	if best == nil {
		best = bestUnconstrained
	}
	return best.teamA, best.teamB, nil
}

func newSplit(teamA, teamB []model.Player, diff float64) *split {
	sp := &split{
		teamA: make([]model.Player, len(teamA)),
		teamB: make([]model.Player, len(teamB)),
		diff:  diff,
	}
	copy(sp.teamA, teamA)
	copy(sp.teamB, teamB)
	return sp
}

// positionsBalanced reports whether each position's head-count differs by at
// most one between the two teams
func positionsBalanced(teamA, teamB []model.Player) bool {
	for _, pos := range []model.Position{model.PositionDefense, model.PositionMidfield, model.PositionAttack} {
		diff := countPosition(teamA, pos) - countPosition(teamB, pos)
		if diff < -1 || diff > 1 {
			return false
		}
	}
	return true
}

func countPosition(players []model.Player, pos model.Position) int {
	count := 0
	for _, p := range players {
		if p.Position == pos {
			count++
		}
	}
	return count
}
