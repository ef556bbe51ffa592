package model

import "time"

// MatchID uniquely identifies a match within a session
type MatchID string

// TeamID labels one of the two sides of a match
type TeamID string

const (
	TeamA TeamID = "A"
	TeamB TeamID = "B"
)

// Valid reports whether the team id is one of the two known slots
func (t TeamID) Valid() bool {
	return t == TeamA || t == TeamB
}

// MatchStatus represents the lifecycle state of a match
type MatchStatus string

const (
	MatchInProgress MatchStatus = "in_progress"
	MatchFinished   MatchStatus = "finished"
)

// Team is one side of a match
type Team struct {
	ID      TeamID
	Name    string
	Players []PlayerID
	Score   int
}

// Contains reports whether the player is on this team
func (t *Team) Contains(id PlayerID) bool {
	for _, p := range t.Players {
		if p == id {
			return true
		}
	}
	return false
}

// Goal records a single goal scored during live play
type Goal struct {
	PlayerID PlayerID
	TeamID   TeamID
	ScoredAt time.Time
}

// Match is one game between two teams. Matches are created only by the
// rotation engine; once finished they are immutable apart from deletion.
type Match struct {
	ID           MatchID
	TeamA        Team
	TeamB        Team
	Status       MatchStatus
	WinnerTeamID TeamID // empty until the match is finished
	Goals        []Goal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TeamByID returns the team with the given id, or nil if it is neither side
func (m *Match) TeamByID(id TeamID) *Team {
	switch id {
	case m.TeamA.ID:
		return &m.TeamA
	case m.TeamB.ID:
		return &m.TeamB
	}
	return nil
}

// Contains reports whether the player is on either team
func (m *Match) Contains(id PlayerID) bool {
	return m.TeamA.Contains(id) || m.TeamB.Contains(id)
}

// PlayerIDs returns all players in the match, team A first
func (m *Match) PlayerIDs() []PlayerID {
	ids := make([]PlayerID, 0, len(m.TeamA.Players)+len(m.TeamB.Players))
	ids = append(ids, m.TeamA.Players...)
	ids = append(ids, m.TeamB.Players...)
	return ids
}
