package rating

import "github.com/casualfc/matchday/internal/model"

// Weights of each attribute in the balance score
const (
	skillWeight    = 0.6
	ageWeight      = 0.3
	positionWeight = 0.1
)

// Score maps a player's skill, age bracket and position to the numeric
// balance score used by the team balancer
func Score(p model.Player) float64 {
	return float64(p.SkillLevel)*skillWeight +
		p.AgeGroup.Midpoint()*ageWeight +
		p.Position.Weight()*positionWeight
}

// TeamScore sums the balance scores of a set of players
func TeamScore(players []model.Player) float64 {
	var total float64
	for _, p := range players {
		total += Score(p)
	}
	return total
}
