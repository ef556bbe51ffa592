package rotation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/casualfc/matchday/internal/dependencies/mocks"
	"github.com/casualfc/matchday/internal/model"
	"github.com/casualfc/matchday/internal/services/balance"
	"github.com/casualfc/matchday/internal/testutil"
)

type EngineSuite struct {
	suite.Suite
	clock  *mocks.MockClock
	random *mocks.MockRandom
	engine *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 5, 18, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.engine = NewEngine(balance.New(s.random), s.clock, testutil.NopLogger())
}

// newSession builds a session with n drop-in players arriving one minute
// apart, none of whom qualify for the priority tier
func (s *EngineSuite) newSession(n, matchSize int) *model.Session {
	base := time.Date(2024, 6, 5, 19, 30, 0, 0, time.UTC)
	roster := make([]model.Player, 0, n)
	for i := 0; i < n; i++ {
		roster = append(roster, model.Player{
			ID:           model.PlayerID(fmt.Sprintf("p%02d", i+1)),
			Name:         fmt.Sprintf("Player %d", i+1),
			Position:     []model.Position{model.PositionDefense, model.PositionMidfield, model.PositionAttack}[i%3],
			SkillLevel:   i%5 + 1,
			AgeGroup:     model.Age21To30,
			ArrivalTime:  base.Add(time.Duration(i) * time.Minute),
			Tier:         model.TierDropIn,
			ArrivalOrder: i + 1,
		})
	}
	return &model.Session{
		ID:           "session-1",
		Name:         "Wednesday",
		Date:         time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		Config:       model.SessionConfig{MatchSize: matchSize, PriorityCutoff: "19:00"},
		Roster:       roster,
		WaitingQueue: []model.PlayerID{},
	}
}

// commit applies an engine result to the session the way the controller does
func commit(session *model.Session, result *Result) {
	session.Matches = append(session.Matches, *result.Match)
	session.WaitingQueue = result.Queue
	session.CurrentMatchID = &result.Match.ID
}

// assertAccounting checks that every roster id is in exactly one of the
// current match's teams or the waiting queue
func (s *EngineSuite) assertAccounting(session *model.Session, result *Result) {
	seen := map[model.PlayerID]int{}
	for _, id := range result.Match.PlayerIDs() {
		seen[id]++
	}
	for _, id := range result.Queue {
		seen[id]++
	}

	s.Len(seen, len(session.Roster))
	for _, p := range session.Roster {
		s.Equal(1, seen[p.ID], "player %s must be in exactly one of match or queue", p.ID)
	}
}

// Scenario: 20 players, match size 18

func (s *EngineSuite) TestFirstMatchFullPool() {
	session := s.newSession(20, 18)

	result, err := s.engine.Generate(session)
	s.Require().NoError(err)

	s.Len(result.Match.TeamA.Players, 9)
	s.Len(result.Match.TeamB.Players, 9)
	s.Equal(model.MatchInProgress, result.Match.Status)
	s.Equal([]model.PlayerID{"p19", "p20"}, result.Queue)
	s.assertAccounting(session, result)
}

func (s *EngineSuite) TestFirstMatchSmallRosterUsesLargestEvenPool() {
	session := s.newSession(10, 18)

	result, err := s.engine.Generate(session)
	s.Require().NoError(err)

	s.Len(result.Match.TeamA.Players, 5)
	s.Len(result.Match.TeamB.Players, 5)
	s.Empty(result.Queue)
	s.assertAccounting(session, result)
}

func (s *EngineSuite) TestFirstMatchOddRosterBenchesOne() {
	session := s.newSession(9, 18)

	result, err := s.engine.Generate(session)
	s.Require().NoError(err)

	s.Len(result.Match.PlayerIDs(), 8)
	s.Len(result.Queue, 1)
	s.assertAccounting(session, result)
}

func (s *EngineSuite) TestFirstMatchRequiresFourPlayers() {
	session := s.newSession(3, 18)

	_, err := s.engine.Generate(session)
	s.ErrorIs(err, model.ErrInsufficientPlayers)
}

func (s *EngineSuite) TestFirstMatchRejectedOnceSessionStarted() {
	session := s.newSession(20, 18)

	result, err := s.engine.Generate(session)
	s.Require().NoError(err)
	commit(session, result)

	_, err = s.engine.FirstMatch(session)
	s.ErrorIs(err, model.ErrSessionStarted)
}

func (s *EngineSuite) TestFirstMatchPrioritizesRecurringMembersBeforeCutoff() {
	session := s.newSession(6, 4)
	// The last arrival is a recurring member who made the cutoff
	session.Roster[5].Tier = model.TierRecurring
	session.Roster[5].ArrivalTime = time.Date(2024, 6, 5, 18, 30, 0, 0, time.UTC)

	result, err := s.engine.Generate(session)
	s.Require().NoError(err)

	s.True(result.Match.Contains("p06"), "priority member should be on the field")
	s.Len(result.Queue, 2)
	s.assertAccounting(session, result)
}

// Rotation scenarios

func (s *EngineSuite) TestNextMatchRotatesLosersThroughQueue() {
	session := s.newSession(20, 18)

	first, err := s.engine.Generate(session)
	s.Require().NoError(err)
	commit(session, first)

	finished, err := s.engine.FinishMatch(session, first.Match.ID, model.TeamA)
	s.Require().NoError(err)
	*session.MatchByID(first.Match.ID) = *finished

	second, err := s.engine.Generate(session)
	s.Require().NoError(err)

	// Winner carried over unchanged in its own slot, score reset
	s.Equal(first.Match.TeamA.Players, second.Match.TeamA.Players)
	s.Equal(0, second.Match.TeamA.Score)

	// Challenger popped from the queue front: the two benched players plus
	// seven of the losing team
	s.Len(second.Match.TeamB.Players, 9)
	s.Contains(second.Match.TeamB.Players, model.PlayerID("p19"))
	s.Contains(second.Match.TeamB.Players, model.PlayerID("p20"))

	// Two losers remain waiting
	s.Len(second.Queue, 2)
	for _, id := range second.Queue {
		s.True(first.Match.TeamB.Contains(id))
	}

	commit(session, second)
	s.assertAccounting(session, second)
}

func (s *EngineSuite) TestNextMatchWinnerKeepsItsTeamSlot() {
	session := s.newSession(20, 18)

	first, err := s.engine.Generate(session)
	s.Require().NoError(err)
	commit(session, first)

	finished, err := s.engine.FinishMatch(session, first.Match.ID, model.TeamB)
	s.Require().NoError(err)
	*session.MatchByID(first.Match.ID) = *finished

	second, err := s.engine.Generate(session)
	s.Require().NoError(err)

	s.Equal(first.Match.TeamB.Players, second.Match.TeamB.Players)
	s.Equal(model.TeamA, second.Match.TeamA.ID)
	s.Len(second.Match.TeamA.Players, 9)
}

func (s *EngineSuite) TestNextMatchOrdersLosersByStreak() {
	session := s.newSession(12, 8)

	first, err := s.engine.Generate(session)
	s.Require().NoError(err)
	commit(session, first)

	finished, err := s.engine.FinishMatch(session, first.Match.ID, model.TeamA)
	s.Require().NoError(err)
	*session.MatchByID(first.Match.ID) = *finished

	second, err := s.engine.Generate(session)
	s.Require().NoError(err)
	commit(session, second)

	// The four losers of match one all carry streak 1; the queue keeps them
	// in arrival order behind nobody (the previous queue was consumed)
	losers := first.Match.TeamB.Players
	for _, id := range second.Queue {
		s.Contains(losers, id)
	}
	s.assertAccounting(session, second)
}

func (s *EngineSuite) TestNextMatchWhileInProgressFails() {
	session := s.newSession(20, 18)

	first, err := s.engine.Generate(session)
	s.Require().NoError(err)
	commit(session, first)

	queueBefore := append([]model.PlayerID{}, session.WaitingQueue...)
	matchesBefore := len(session.Matches)

	_, err = s.engine.Generate(session)
	s.ErrorIs(err, model.ErrLastMatchNotFinished)

	// Snapshot untouched on error
	s.Equal(queueBefore, session.WaitingQueue)
	s.Len(session.Matches, matchesBefore)
}

func (s *EngineSuite) TestNextMatchRequiresWinner() {
	session := s.newSession(20, 18)

	first, err := s.engine.Generate(session)
	s.Require().NoError(err)
	commit(session, first)

	// Force a finished match with no winner recorded
	session.MatchByID(first.Match.ID).Status = model.MatchFinished

	_, err = s.engine.Generate(session)
	s.ErrorIs(err, model.ErrNoWinnerDefined)
}

func (s *EngineSuite) TestNextMatchRequiresFourWaitingPlayers() {
	session := s.newSession(6, 6)

	first, err := s.engine.Generate(session)
	s.Require().NoError(err)
	commit(session, first)

	finished, err := s.engine.FinishMatch(session, first.Match.ID, model.TeamA)
	s.Require().NoError(err)
	*session.MatchByID(first.Match.ID) = *finished

	// Only the three losers would be available to pop
	_, err = s.engine.Generate(session)
	s.ErrorIs(err, model.ErrInsufficientPlayers)
}

func (s *EngineSuite) TestNextMatchUnknownQueueIDFails() {
	session := s.newSession(20, 18)

	first, err := s.engine.Generate(session)
	s.Require().NoError(err)
	commit(session, first)

	finished, err := s.engine.FinishMatch(session, first.Match.ID, model.TeamA)
	s.Require().NoError(err)
	*session.MatchByID(first.Match.ID) = *finished

	session.WaitingQueue = append(session.WaitingQueue, "ghost")

	_, err = s.engine.Generate(session)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// FinishMatch

func (s *EngineSuite) TestFinishMatchRecordsWinner() {
	session := s.newSession(20, 18)

	first, err := s.engine.Generate(session)
	s.Require().NoError(err)
	commit(session, first)

	s.clock.Advance(45 * time.Minute)
	finished, err := s.engine.FinishMatch(session, first.Match.ID, model.TeamA)
	s.Require().NoError(err)

	s.Equal(model.MatchFinished, finished.Status)
	s.Equal(model.TeamA, finished.WinnerTeamID)
	s.Equal(s.clock.Now(), finished.UpdatedAt)

	// The stored match is untouched until the caller commits
	s.Equal(model.MatchInProgress, session.MatchByID(first.Match.ID).Status)
}

func (s *EngineSuite) TestFinishMatchUnknownMatch() {
	session := s.newSession(20, 18)

	_, err := s.engine.FinishMatch(session, "missing", model.TeamA)
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *EngineSuite) TestFinishMatchUnknownTeam() {
	session := s.newSession(20, 18)

	first, err := s.engine.Generate(session)
	s.Require().NoError(err)
	commit(session, first)

	_, err = s.engine.FinishMatch(session, first.Match.ID, "C")
	s.ErrorIs(err, model.ErrUnknownTeam)
}

func (s *EngineSuite) TestFinishMatchAlreadyFinished() {
	session := s.newSession(20, 18)

	first, err := s.engine.Generate(session)
	s.Require().NoError(err)
	commit(session, first)

	finished, err := s.engine.FinishMatch(session, first.Match.ID, model.TeamA)
	s.Require().NoError(err)
	*session.MatchByID(first.Match.ID) = *finished

	_, err = s.engine.FinishMatch(session, first.Match.ID, model.TeamA)
	s.ErrorIs(err, model.ErrMatchFinished)
}

// Accounting invariant over a longer run of rotations

func (s *EngineSuite) TestAccountingInvariantAcrossRotations() {
	session := s.newSession(14, 8)

	result, err := s.engine.Generate(session)
	s.Require().NoError(err)
	commit(session, result)
	s.assertAccounting(session, result)

	winners := []model.TeamID{model.TeamA, model.TeamB, model.TeamB, model.TeamA}
	for _, winner := range winners {
		finished, err := s.engine.FinishMatch(session, *session.CurrentMatchID, winner)
		s.Require().NoError(err)
		*session.MatchByID(finished.ID) = *finished

		result, err = s.engine.Generate(session)
		s.Require().NoError(err)
		commit(session, result)
		s.assertAccounting(session, result)
	}
}
