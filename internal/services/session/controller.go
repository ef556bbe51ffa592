package session

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/casualfc/matchday/internal/dependencies/clock"
	"github.com/casualfc/matchday/internal/model"
	"github.com/casualfc/matchday/internal/services/rotation"
	"github.com/casualfc/matchday/internal/storage"
)

// Controller manages session lifecycle, roster operations and match
// rotation. All rotation logic lives in the engine; the controller loads a
// session snapshot, runs the engine, and commits the result through the
// versioned storage save so concurrent writers cannot interleave.
type Controller struct {
	storage storage.Storage
	engine  *rotation.Engine
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new session controller
func NewController(
	storage storage.Storage,
	engine *rotation.Engine,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		engine:  engine,
		clock:   clock,
		logger:  logger,
	}
}

// CreateSession creates a new session for the given date
func (c *Controller) CreateSession(ctx context.Context, name string, date time.Time, cfg model.SessionConfig) (*model.Session, error) {
	// Each omitted field defaults independently, so a partial config is valid
	if cfg.MatchSize == 0 {
		cfg.MatchSize = model.DefaultMatchSize
	}
	if cfg.PriorityCutoff == "" {
		cfg.PriorityCutoff = model.DefaultPriorityCutoff
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	if date.IsZero() {
		date = now
	}
	session := &model.Session{
		ID:           model.SessionID(uuid.NewString()),
		Name:         name,
		Date:         date,
		Config:       cfg,
		Roster:       []model.Player{},
		Matches:      []model.Match{},
		WaitingQueue: []model.PlayerID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.String("name", name),
	)

	return session, nil
}

// GetSession retrieves a session by id
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// ListSessions returns the ids of all stored sessions
func (c *Controller) ListSessions(ctx context.Context) ([]model.SessionID, error) {
	return c.storage.ListSessionIDs(ctx)
}

// DeleteSession removes a session and all of its history
func (c *Controller) DeleteSession(ctx context.Context, id model.SessionID) error {
	exists, err := c.storage.SessionExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrSessionNotFound
	}
	return c.storage.DeleteSession(ctx, id)
}

// UpdateConfig updates the session configuration. Rejected while a match is
// in progress: match and challenger sizes must not change under a live game.
func (c *Controller) UpdateConfig(ctx context.Context, id model.SessionID, cfg model.SessionConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return err
	}

	if last := session.LastMatch(); last != nil && last.Status == model.MatchInProgress {
		return model.ErrMatchInProgress
	}

	session.Config = cfg
	session.UpdatedAt = c.clock.Now()
	return c.storage.SaveSession(ctx, session)
}

// CheckInParams are the attributes recorded when a player arrives
type CheckInParams struct {
	Name       string
	Position   model.Position
	SkillLevel int
	AgeGroup   model.AgeGroup
	Tier       model.MembershipTier
}

func (p CheckInParams) validate() error {
	if !p.Position.Valid() || !p.AgeGroup.Valid() || !p.Tier.Valid() || !model.ValidSkillLevel(p.SkillLevel) {
		return model.ErrInvalidConfig
	}
	return nil
}

// CheckIn adds a player to the roster, assigning the next arrival order
func (c *Controller) CheckIn(ctx context.Context, sessionID model.SessionID, params CheckInParams) (*model.Player, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	player := model.Player{
		ID:           model.PlayerID(uuid.NewString()),
		Name:         params.Name,
		Position:     params.Position,
		SkillLevel:   params.SkillLevel,
		AgeGroup:     params.AgeGroup,
		ArrivalTime:  c.clock.Now(),
		Tier:         params.Tier,
		ArrivalOrder: len(session.Roster) + 1,
	}

	session.Roster = append(session.Roster, player)
	// Players arriving after the first match join the back of the queue
	if len(session.Matches) > 0 {
		session.WaitingQueue = append(session.WaitingQueue, player.ID)
	}
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("player checked in",
		slog.String("session_id", string(sessionID)),
		slog.String("player_id", string(player.ID)),
		slog.Int("arrival_order", player.ArrivalOrder),
	)

	return &player, nil
}

// PlayerUpdate carries the admin-editable player attributes; nil fields are
// left unchanged
type PlayerUpdate struct {
	Position   *model.Position
	SkillLevel *int
	AgeGroup   *model.AgeGroup
	Tier       *model.MembershipTier
}

func (u PlayerUpdate) validate() error {
	if u.Position != nil && !u.Position.Valid() {
		return model.ErrInvalidConfig
	}
	if u.SkillLevel != nil && !model.ValidSkillLevel(*u.SkillLevel) {
		return model.ErrInvalidConfig
	}
	if u.AgeGroup != nil && !u.AgeGroup.Valid() {
		return model.ErrInvalidConfig
	}
	if u.Tier != nil && !u.Tier.Valid() {
		return model.ErrInvalidConfig
	}
	return nil
}

// UpdatePlayer applies admin edits to a roster entry. The update is
// all-or-nothing: every field is validated before any is applied, so a
// rejected edit leaves the stored session untouched.
func (c *Controller) UpdatePlayer(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID, update PlayerUpdate) (*model.Player, error) {
	if err := update.validate(); err != nil {
		return nil, err
	}

	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	player := session.PlayerByID(playerID)
	if player == nil {
		return nil, model.ErrPlayerNotFound
	}

	if update.Position != nil {
		player.Position = *update.Position
	}
	if update.SkillLevel != nil {
		player.SkillLevel = *update.SkillLevel
	}
	if update.AgeGroup != nil {
		player.AgeGroup = *update.AgeGroup
	}
	if update.Tier != nil {
		player.Tier = *update.Tier
	}

	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return player, nil
}

// RemovePlayer takes a player off the roster and out of the waiting queue,
// re-sequencing arrival orders into a dense 1..N run. Players currently on
// the field cannot be removed.
func (c *Controller) RemovePlayer(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID) error {
	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if session.PlayerByID(playerID) == nil {
		return model.ErrPlayerNotFound
	}

	if last := session.LastMatch(); last != nil && last.Status == model.MatchInProgress && last.Contains(playerID) {
		return model.ErrPlayerOnField
	}

	roster := make([]model.Player, 0, len(session.Roster)-1)
	for _, p := range session.Roster {
		if p.ID != playerID {
			roster = append(roster, p)
		}
	}
	renumber(roster)
	session.Roster = roster

	queue := make([]model.PlayerID, 0, len(session.WaitingQueue))
	for _, id := range session.WaitingQueue {
		if id != playerID {
			queue = append(queue, id)
		}
	}
	session.WaitingQueue = queue

	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return err
	}

	c.logger.Info("player removed",
		slog.String("session_id", string(sessionID)),
		slog.String("player_id", string(playerID)),
	)
	return nil
}

// GenerateMatch produces the next match for the session, seeding the first
// one from the arrival-priority order and rotating subsequent ones through
// the waiting queue
func (c *Controller) GenerateMatch(ctx context.Context, sessionID model.SessionID) (*model.Match, error) {
	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, err := c.engine.Generate(session)
	if err != nil {
		return nil, err
	}

	session.Matches = append(session.Matches, *result.Match)
	session.WaitingQueue = result.Queue
	session.CurrentMatchID = &result.Match.ID
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return result.Match, nil
}

// FinishMatch records the winner of the current match
func (c *Controller) FinishMatch(ctx context.Context, sessionID model.SessionID, matchID model.MatchID, winner model.TeamID) (*model.Match, error) {
	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	finished, err := c.engine.FinishMatch(session, matchID, winner)
	if err != nil {
		return nil, err
	}

	*session.MatchByID(matchID) = *finished
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return finished, nil
}

// RecordGoal credits a goal to a player on one of the current match's teams
func (c *Controller) RecordGoal(ctx context.Context, sessionID model.SessionID, matchID model.MatchID, playerID model.PlayerID, teamID model.TeamID) (*model.Match, error) {
	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	match := session.MatchByID(matchID)
	if match == nil {
		return nil, model.ErrMatchNotFound
	}
	if match.Status != model.MatchInProgress {
		return nil, model.ErrMatchFinished
	}

	team := match.TeamByID(teamID)
	if team == nil {
		return nil, model.ErrUnknownTeam
	}
	if !match.Contains(playerID) {
		return nil, model.ErrPlayerNotFound
	}

	team.Score++
	match.Goals = append(match.Goals, model.Goal{
		PlayerID: playerID,
		TeamID:   teamID,
		ScoredAt: c.clock.Now(),
	})
	match.UpdatedAt = c.clock.Now()
	session.UpdatedAt = match.UpdatedAt

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return match, nil
}

// DeleteMatch removes the most recent match from the session. Its players
// are returned to the front of the waiting queue so nobody is lost, and the
// current match pointer is cleared.
func (c *Controller) DeleteMatch(ctx context.Context, sessionID model.SessionID, matchID model.MatchID) error {
	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	last := session.LastMatch()
	if last == nil || last.ID != matchID {
		return model.ErrMatchNotFound
	}

	returned := last.PlayerIDs()
	session.Matches = session.Matches[:len(session.Matches)-1]
	session.WaitingQueue = append(returned, session.WaitingQueue...)
	session.CurrentMatchID = nil
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return err
	}

	c.logger.Info("match deleted",
		slog.String("session_id", string(sessionID)),
		slog.String("match_id", string(matchID)),
	)
	return nil
}

// renumber re-sequences arrival orders densely, preserving relative order
func renumber(roster []model.Player) {
	sorted := make([]*model.Player, len(roster))
	for i := range roster {
		sorted[i] = &roster[i]
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivalOrder < sorted[j].ArrivalOrder
	})
	for i, p := range sorted {
		p.ArrivalOrder = i + 1
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateSession(ctx context.Context, name string, date time.Time, cfg model.SessionConfig) (*model.Session, error)
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	ListSessions(ctx context.Context) ([]model.SessionID, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	UpdateConfig(ctx context.Context, id model.SessionID, cfg model.SessionConfig) error
	CheckIn(ctx context.Context, sessionID model.SessionID, params CheckInParams) (*model.Player, error)
	UpdatePlayer(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID, update PlayerUpdate) (*model.Player, error)
	RemovePlayer(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID) error
	GenerateMatch(ctx context.Context, sessionID model.SessionID) (*model.Match, error)
	FinishMatch(ctx context.Context, sessionID model.SessionID, matchID model.MatchID, winner model.TeamID) (*model.Match, error)
	RecordGoal(ctx context.Context, sessionID model.SessionID, matchID model.MatchID, playerID model.PlayerID, teamID model.TeamID) (*model.Match, error)
	DeleteMatch(ctx context.Context, sessionID model.SessionID, matchID model.MatchID) error
}

var _ ControllerInterface = (*Controller)(nil)
