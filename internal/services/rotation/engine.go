package rotation

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/casualfc/matchday/internal/dependencies/clock"
	"github.com/casualfc/matchday/internal/model"
	"github.com/casualfc/matchday/internal/services/balance"
	"github.com/casualfc/matchday/internal/services/priority"
	"github.com/casualfc/matchday/internal/services/streak"
)

// Engine decides whether a new match can be generated from a session
// snapshot and produces the next match's two teams plus the updated waiting
// queue. It never mutates the snapshot: every operation returns new values
// for the caller to commit, or an error with nothing changed.
type Engine struct {
	balancer *balance.Service
	clock    clock.Clock
	logger   *slog.Logger
}

// NewEngine creates a new rotation engine
func NewEngine(balancer *balance.Service, clock clock.Clock, logger *slog.Logger) *Engine {
	return &Engine{
		balancer: balancer,
		clock:    clock,
		logger:   logger,
	}
}

// Result is the outcome of a successful match generation
type Result struct {
	Match *model.Match
	Queue []model.PlayerID
}

// Generate dispatches to FirstMatch for a session with no history and to
// NextMatch otherwise
func (e *Engine) Generate(session *model.Session) (*Result, error) {
	if session.LastMatch() == nil {
		return e.FirstMatch(session)
	}
	return e.NextMatch(session)
}

// FirstMatch seeds the opening match of a session. The match pool is the
// front of the entry-priority order, sized to the configured match size or
// the largest even number the roster allows; the rest of the roster becomes
// the initial waiting queue in arrival order.
func (e *Engine) FirstMatch(session *model.Session) (*Result, error) {
	if len(session.Matches) > 0 {
		return nil, model.ErrSessionStarted
	}
	if len(session.Roster) < balance.MinPlayers {
		return nil, model.ErrInsufficientPlayers
	}

	poolSize := session.Config.MatchSize
	if even := len(session.Roster) &^ 1; even < poolSize {
		poolSize = even
	}

	order := priority.Resolve(session.Roster, session.CutoffAt(), nil)

	pool := make([]model.Player, 0, poolSize)
	for _, id := range order[:poolSize] {
		p := session.PlayerByID(id)
		if p == nil {
			return nil, model.ErrPlayerNotFound
		}
		pool = append(pool, *p)
	}

	teamA, teamB, err := e.balancer.Split(pool)
	if err != nil {
		return nil, err
	}

	match := e.newMatch(
		model.Team{ID: model.TeamA, Name: "Team A", Players: playerIDs(teamA)},
		model.Team{ID: model.TeamB, Name: "Team B", Players: playerIDs(teamB)},
	)

	queue := make([]model.PlayerID, 0, len(order)-poolSize)
	for _, id := range order[poolSize:] {
		queue = append(queue, id)
	}
	sortByArrivalOrder(queue, session)

	e.logger.Info("first match generated",
		slog.String("session_id", string(session.ID)),
		slog.String("match_id", string(match.ID)),
		slog.Int("pool_size", poolSize),
		slog.Int("queue_size", len(queue)),
	)

	return &Result{Match: match, Queue: queue}, nil
}

// NextMatch rotates the session after a finished match: the losing team is
// appended to the waiting queue ordered by play streak, the challenger team
// is popped from the queue front, and the winning team is carried over
// unchanged with its score reset. The balancer does not re-run here: only
// the first match of a session is balanced.
func (e *Engine) NextMatch(session *model.Session) (*Result, error) {
	last := session.LastMatch()
	if last == nil {
		return nil, model.ErrNoCurrentMatch
	}
	if last.Status != model.MatchFinished {
		return nil, model.ErrLastMatchNotFinished
	}
	if last.WinnerTeamID == "" {
		return nil, model.ErrNoWinnerDefined
	}

	winnerTeam := last.TeamByID(last.WinnerTeamID)
	if winnerTeam == nil {
		return nil, model.ErrUnknownTeam
	}
	loserTeam := &last.TeamA
	if loserTeam.ID == winnerTeam.ID {
		loserTeam = &last.TeamB
	}

	losers, err := e.orderLosers(session, loserTeam.Players)
	if err != nil {
		return nil, err
	}

	// A deleted match returns its players to the queue, which can include
	// the carried winners and already-queued losers; filter both so every
	// player ends up in exactly one of queue or field
	queue := make([]model.PlayerID, 0, len(session.WaitingQueue)+len(losers))
	for _, id := range session.WaitingQueue {
		if !winnerTeam.Contains(id) {
			queue = append(queue, id)
		}
	}
	for _, id := range losers {
		if !queued(queue, id) {
			queue = append(queue, id)
		}
	}

	if len(queue) < balance.MinPlayers {
		return nil, model.ErrInsufficientPlayers
	}
	popCount := session.Config.MatchSize / 2
	if popCount > len(queue) {
		popCount = len(queue)
	}

	challengers := make([]model.PlayerID, popCount)
	for i, id := range queue[:popCount] {
		if session.PlayerByID(id) == nil {
			return nil, model.ErrPlayerNotFound
		}
		challengers[i] = id
	}
	queue = append([]model.PlayerID{}, queue[popCount:]...)

	// The winner keeps its team slot; the challengers take the other one
	carried := model.Team{
		ID:      winnerTeam.ID,
		Name:    winnerTeam.Name,
		Players: append([]model.PlayerID{}, winnerTeam.Players...),
	}
	challengerID := model.TeamA
	challengerName := "Team A"
	if carried.ID == model.TeamA {
		challengerID = model.TeamB
		challengerName = "Team B"
	}
	challenger := model.Team{ID: challengerID, Name: challengerName, Players: challengers}

	var match *model.Match
	if carried.ID == model.TeamA {
		match = e.newMatch(carried, challenger)
	} else {
		match = e.newMatch(challenger, carried)
	}

	e.logger.Info("next match generated",
		slog.String("session_id", string(session.ID)),
		slog.String("match_id", string(match.ID)),
		slog.String("carried_team", string(carried.ID)),
		slog.Int("challenger_size", len(challengers)),
		slog.Int("queue_size", len(queue)),
	)

	return &Result{Match: match, Queue: queue}, nil
}

// FinishMatch marks a match as finished with the given winner. The returned
// match is a copy; the caller commits it in place of the in-progress one.
func (e *Engine) FinishMatch(session *model.Session, matchID model.MatchID, winner model.TeamID) (*model.Match, error) {
	m := session.MatchByID(matchID)
	if m == nil {
		return nil, model.ErrMatchNotFound
	}
	if m.Status != model.MatchInProgress {
		return nil, model.ErrMatchFinished
	}
	if m.TeamByID(winner) == nil {
		return nil, model.ErrUnknownTeam
	}

	finished := *m
	finished.Status = model.MatchFinished
	finished.WinnerTeamID = winner
	finished.UpdatedAt = e.clock.Now()

	e.logger.Info("match finished",
		slog.String("session_id", string(session.ID)),
		slog.String("match_id", string(matchID)),
		slog.String("winner", string(winner)),
	)

	return &finished, nil
}

// orderLosers sorts the losing team for queue entry: players with shorter
// recent streaks first, so those who already sat out recently come back
// sooner; arrival time breaks ties.
func (e *Engine) orderLosers(session *model.Session, ids []model.PlayerID) ([]model.PlayerID, error) {
	type entry struct {
		player model.Player
		streak int
	}
	entries := make([]entry, 0, len(ids))
	for _, id := range ids {
		p := session.PlayerByID(id)
		if p == nil {
			return nil, model.ErrPlayerNotFound
		}
		entries = append(entries, entry{player: *p, streak: streak.Count(session.Matches, id)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].streak != entries[j].streak {
			return entries[i].streak < entries[j].streak
		}
		if !entries[i].player.ArrivalTime.Equal(entries[j].player.ArrivalTime) {
			return entries[i].player.ArrivalTime.Before(entries[j].player.ArrivalTime)
		}
		return entries[i].player.ArrivalOrder < entries[j].player.ArrivalOrder
	})

	out := make([]model.PlayerID, len(entries))
	for i, en := range entries {
		out[i] = en.player.ID
	}
	return out, nil
}

func (e *Engine) newMatch(teamA, teamB model.Team) *model.Match {
	now := e.clock.Now()
	return &model.Match{
		ID:        model.MatchID(uuid.NewString()),
		TeamA:     teamA,
		TeamB:     teamB,
		Status:    model.MatchInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func queued(queue []model.PlayerID, id model.PlayerID) bool {
	for _, q := range queue {
		if q == id {
			return true
		}
	}
	return false
}

func playerIDs(players []model.Player) []model.PlayerID {
	ids := make([]model.PlayerID, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return ids
}

func sortByArrivalOrder(ids []model.PlayerID, session *model.Session) {
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := session.PlayerByID(ids[i]), session.PlayerByID(ids[j])
		if a == nil || b == nil {
			return false
		}
		return a.ArrivalOrder < b.ArrivalOrder
	})
}
