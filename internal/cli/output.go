package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case SessionList:
		o.printSessionList(v)
	case Player:
		o.printPlayer(v)
	case Match:
		o.printMatch(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
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

// Team response type
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []string `json:"players"`
	Score   int      `json:"score"`
}

// Goal response type
type Goal struct {
	PlayerID string    `json:"player_id"`
	TeamID   string    `json:"team_id"`
	ScoredAt time.Time `json:"scored_at"`
}

// Match response type
type Match struct {
	ID           string  `json:"id"`
	TeamA        Team    `json:"team_a"`
	TeamB        Team    `json:"team_b"`
	Status       string  `json:"status"`
	WinnerTeamID *string `json:"winner_team_id"`
	Goals        []Goal  `json:"goals,omitempty"`
}

// SessionConfig response type
type SessionConfig struct {
	MatchSize      int    `json:"match_size"`
	PriorityCutoff string `json:"priority_cutoff"`
}

// Session response type
type Session struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Date           time.Time     `json:"date"`
	Config         SessionConfig `json:"config"`
	Roster         []Player      `json:"roster"`
	Matches        []Match       `json:"matches"`
	WaitingQueue   []string      `json:"waiting_queue"`
	CurrentMatchID *string       `json:"current_match_id"`
}

// SessionList response type
type SessionList struct {
	Sessions []string `json:"sessions"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Position: %s\n", p.Position)
	fmt.Printf("Skill: %d\n", p.SkillLevel)
	fmt.Printf("Age Group: %s\n", p.AgeGroup)
	fmt.Printf("Tier: %s\n", p.Tier)
	fmt.Printf("Arrival: #%d at %s\n", p.ArrivalOrder, p.ArrivalTime.Format(time.RFC3339))
}

func (o *Output) printTeam(t Team) {
	fmt.Printf("  %s (%s): %d - %s\n", t.Name, t.ID, t.Score, strings.Join(t.Players, ", "))
}

func (o *Output) printMatch(m Match) {
	fmt.Printf("Match: %s\n", m.ID)
	fmt.Printf("Status: %s\n", m.Status)
	o.printTeam(m.TeamA)
	o.printTeam(m.TeamB)
	if m.WinnerTeamID != nil {
		fmt.Printf("Winner: %s\n", *m.WinnerTeamID)
	}
	for _, g := range m.Goals {
		fmt.Printf("  Goal: %s (%s) at %s\n", g.PlayerID, g.TeamID, g.ScoredAt.Format(time.RFC3339))
	}
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s (%s)\n", s.Name, s.ID)
	fmt.Printf("Date: %s\n", s.Date.Format("2006-01-02"))
	fmt.Printf("Match Size: %d\n", s.Config.MatchSize)
	fmt.Printf("Priority Cutoff: %s\n", s.Config.PriorityCutoff)

	fmt.Printf("Roster (%d):\n", len(s.Roster))
	for _, p := range s.Roster {
		fmt.Printf("  #%d %s (%s) - %s, skill %d\n", p.ArrivalOrder, p.Name, p.ID, p.Position, p.SkillLevel)
	}

	if len(s.WaitingQueue) > 0 {
		fmt.Printf("Waiting Queue: %s\n", strings.Join(s.WaitingQueue, ", "))
	}

	if s.CurrentMatchID != nil {
		fmt.Printf("Current Match: %s\n", *s.CurrentMatchID)
	}

	if len(s.Matches) > 0 {
		fmt.Printf("Matches (%d):\n", len(s.Matches))
		for _, m := range s.Matches {
			result := m.Status
			if m.WinnerTeamID != nil {
				result = fmt.Sprintf("%s, winner %s", m.Status, *m.WinnerTeamID)
			}
			fmt.Printf("  %s: %d-%d (%s)\n", m.ID, m.TeamA.Score, m.TeamB.Score, result)
		}
	}
}

func (o *Output) printSessionList(l SessionList) {
	fmt.Printf("Sessions (%d):\n", len(l.Sessions))
	for _, id := range l.Sessions {
		fmt.Printf("  - %s\n", id)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
