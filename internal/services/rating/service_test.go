package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casualfc/matchday/internal/model"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		player   model.Player
		expected float64
	}{
		{
			name: "young skilled attacker",
			player: model.Player{
				SkillLevel: 5,
				AgeGroup:   model.AgeUnder21,
				Position:   model.PositionAttack,
			},
			// 5*0.6 + 17.5*0.3 + 3*0.1
			expected: 8.55,
		},
		{
			name: "mid-age average midfielder",
			player: model.Player{
				SkillLevel: 3,
				AgeGroup:   model.Age31To40,
				Position:   model.PositionMidfield,
			},
			// 3*0.6 + 35.5*0.3 + 2*0.1
			expected: 12.65,
		},
		{
			name: "veteran defender",
			player: model.Player{
				SkillLevel: 1,
				AgeGroup:   model.AgeOver50,
				Position:   model.PositionDefense,
			},
			// 1*0.6 + 55*0.3 + 1*0.1
			expected: 17.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Score(tt.player), 1e-9)
		})
	}
}

func TestTeamScoreSumsPlayers(t *testing.T) {
	players := []model.Player{
		{SkillLevel: 5, AgeGroup: model.AgeUnder21, Position: model.PositionAttack},
		{SkillLevel: 3, AgeGroup: model.Age31To40, Position: model.PositionMidfield},
	}

	expected := Score(players[0]) + Score(players[1])
	assert.InDelta(t, expected, TeamScore(players), 1e-9)
}

func TestTeamScoreEmpty(t *testing.T) {
	assert.Zero(t, TeamScore(nil))
}
