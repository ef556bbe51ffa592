package balance

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/casualfc/matchday/internal/dependencies/mocks"
	"github.com/casualfc/matchday/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random)
}

func player(id string, pos model.Position, skill int) model.Player {
	return model.Player{
		ID:         model.PlayerID(id),
		Name:       id,
		Position:   pos,
		SkillLevel: skill,
		AgeGroup:   model.Age21To30,
		Tier:       model.TierRecurring,
	}
}

func ids(players []model.Player) []model.PlayerID {
	out := make([]model.PlayerID, len(players))
	for i, p := range players {
		out[i] = p.ID
	}
	return out
}

func (s *ServiceSuite) TestSplitRejectsFewerThanFourPlayers() {
	players := []model.Player{
		player("p1", model.PositionDefense, 3),
		player("p2", model.PositionAttack, 3),
		player("p3", model.PositionMidfield, 3),
	}

	_, _, err := s.service.Split(players)
	s.ErrorIs(err, model.ErrInsufficientPlayers)
}

func (s *ServiceSuite) TestSplitSizesSumAndDifferByAtMostOne() {
	for _, n := range []int{4, 5, 9, 18} {
		players := make([]model.Player, 0, n)
		for i := 0; i < n; i++ {
			pos := []model.Position{model.PositionDefense, model.PositionMidfield, model.PositionAttack}[i%3]
			players = append(players, player(string(rune('a'+i)), pos, i%5+1))
		}

		teamA, teamB, err := s.service.Split(players)
		s.Require().NoError(err)

		s.Equal(n, len(teamA)+len(teamB))
		s.LessOrEqual(len(teamA)-len(teamB), 1)
		s.GreaterOrEqual(len(teamA)-len(teamB), 0)
	}
}

// With no queued values MockRandom returns 0 from every Intn call, so each
// trial's shuffle is the same fixed permutation and the returned split is
// fully predictable
func (s *ServiceSuite) TestSplitDeterministicWithMockedShuffle() {
	players := []model.Player{
		player("p1", model.PositionDefense, 3),
		player("p2", model.PositionMidfield, 3),
		player("p3", model.PositionAttack, 3),
		player("p4", model.PositionDefense, 3),
	}

	teamA, teamB, err := s.service.Split(players)
	s.Require().NoError(err)

	s.Equal([]model.PlayerID{"p2", "p3"}, ids(teamA))
	s.Equal([]model.PlayerID{"p4", "p1"}, ids(teamB))
}

func (s *ServiceSuite) TestSplitKeepsPositionHeadCountsClose() {
	players := []model.Player{
		player("m1", model.PositionMidfield, 3),
		player("d1", model.PositionDefense, 2),
		player("m2", model.PositionMidfield, 3),
		player("a1", model.PositionAttack, 5),
		player("d2", model.PositionDefense, 4),
		player("a2", model.PositionAttack, 1),
	}

	teamA, teamB, err := s.service.Split(players)
	s.Require().NoError(err)

	for _, pos := range []model.Position{model.PositionDefense, model.PositionMidfield, model.PositionAttack} {
		diff := countPosition(teamA, pos) - countPosition(teamB, pos)
		s.LessOrEqual(diff, 1)
		s.GreaterOrEqual(diff, -1)
	}
}

// When every trial produces a position-unbalanced split the balancer must
// still return the best unconstrained one instead of nothing
func (s *ServiceSuite) TestSplitFallsBackToUnconstrainedSplit() {
	// The fixed all-zeros shuffle maps [a1 d1 d2 a2] to [d1 d2 a2 a1],
	// putting both defenders on one side in every trial
	players := []model.Player{
		player("a1", model.PositionAttack, 3),
		player("d1", model.PositionDefense, 3),
		player("d2", model.PositionDefense, 3),
		player("a2", model.PositionAttack, 3),
	}

	teamA, teamB, err := s.service.Split(players)
	s.Require().NoError(err)

	s.Equal([]model.PlayerID{"d1", "d2"}, ids(teamA))
	s.Equal([]model.PlayerID{"a2", "a1"}, ids(teamB))
}

func (s *ServiceSuite) TestSplitOddCountGivesLargerFirstTeam() {
	players := []model.Player{
		player("p1", model.PositionDefense, 1),
		player("p2", model.PositionMidfield, 2),
		player("p3", model.PositionAttack, 3),
		player("p4", model.PositionDefense, 4),
		player("p5", model.PositionMidfield, 5),
	}

	teamA, teamB, err := s.service.Split(players)
	s.Require().NoError(err)

	s.Len(teamA, 3)
	s.Len(teamB, 2)
}
