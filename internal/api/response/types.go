package response

import (
	"time"

	"github.com/casualfc/matchday/internal/model"
)

// Player represents a roster entry in API responses
type Player struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Position     string    `json:"position"`
	SkillLevel   int       `json:"skill_level"`
	AgeGroup     string    `json:"age_group"`
	ArrivalTime  time.Time `json:"arrival_time"`
	Tier         string    `json:"tier"`
	ArrivalOrder int       `json:"arrival_order"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:           string(p.ID),
		Name:         p.Name,
		Position:     string(p.Position),
		SkillLevel:   p.SkillLevel,
		AgeGroup:     string(p.AgeGroup),
		ArrivalTime:  p.ArrivalTime,
		Tier:         string(p.Tier),
		ArrivalOrder: p.ArrivalOrder,
	}
}

// Team represents one side of a match
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []string `json:"players"`
	Score   int      `json:"score"`
}

// TeamFromModel converts model.Team
func TeamFromModel(t model.Team) Team {
	players := make([]string, len(t.Players))
	for i, p := range t.Players {
		players[i] = string(p)
	}
	return Team{
		ID:      string(t.ID),
		Name:    t.Name,
		Players: players,
		Score:   t.Score,
	}
}

// Goal represents a recorded goal
type Goal struct {
	PlayerID string    `json:"player_id"`
	TeamID   string    `json:"team_id"`
	ScoredAt time.Time `json:"scored_at"`
}

// Match represents a match in API responses
type Match struct {
	ID           string    `json:"id"`
	TeamA        Team      `json:"team_a"`
	TeamB        Team      `json:"team_b"`
	Status       string    `json:"status"`
	WinnerTeamID *string   `json:"winner_team_id"`
	Goals        []Goal    `json:"goals,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MatchFromModel converts model.Match
func MatchFromModel(m *model.Match) Match {
	goals := make([]Goal, len(m.Goals))
	for i, g := range m.Goals {
		goals[i] = Goal{
			PlayerID: string(g.PlayerID),
			TeamID:   string(g.TeamID),
			ScoredAt: g.ScoredAt,
		}
	}

	var winner *string
	if m.WinnerTeamID != "" {
		w := string(m.WinnerTeamID)
		winner = &w
	}

	return Match{
		ID:           string(m.ID),
		TeamA:        TeamFromModel(m.TeamA),
		TeamB:        TeamFromModel(m.TeamB),
		Status:       string(m.Status),
		WinnerTeamID: winner,
		Goals:        goals,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// SessionConfig represents session configuration
type SessionConfig struct {
	MatchSize      int    `json:"match_size"`
	PriorityCutoff string `json:"priority_cutoff"`
}

// Session represents a session in API responses
type Session struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Date           time.Time     `json:"date"`
	Config         SessionConfig `json:"config"`
	Roster         []Player      `json:"roster"`
	Matches        []Match       `json:"matches"`
	WaitingQueue   []string      `json:"waiting_queue"`
	CurrentMatchID *string       `json:"current_match_id"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// SessionFromModel converts model.Session
func SessionFromModel(s *model.Session) Session {
	roster := make([]Player, len(s.Roster))
	for i := range s.Roster {
		roster[i] = PlayerFromModel(&s.Roster[i])
	}

	matches := make([]Match, len(s.Matches))
	for i := range s.Matches {
		matches[i] = MatchFromModel(&s.Matches[i])
	}

	queue := make([]string, len(s.WaitingQueue))
	for i, id := range s.WaitingQueue {
		queue[i] = string(id)
	}

	var current *string
	if s.CurrentMatchID != nil {
		c := string(*s.CurrentMatchID)
		current = &c
	}

	return Session{
		ID:             string(s.ID),
		Name:           s.Name,
		Date:           s.Date,
		Config:         SessionConfig{MatchSize: s.Config.MatchSize, PriorityCutoff: s.Config.PriorityCutoff},
		Roster:         roster,
		Matches:        matches,
		WaitingQueue:   queue,
		CurrentMatchID: current,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// SessionList is the response for GET /sessions
type SessionList struct {
	Sessions []string `json:"sessions"`
}
