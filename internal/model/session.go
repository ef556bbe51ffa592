package model

import (
	"fmt"
	"time"
)

// SessionID uniquely identifies one day's session
type SessionID string

// Default session configuration values
const (
	DefaultMatchSize      = 18
	DefaultPriorityCutoff = "19:00"
)

// SessionConfig holds configurable settings for matches in this session
type SessionConfig struct {
	// MatchSize is the total number of players in a full match; the
	// challenger team popped from the queue each rotation is half of it
	MatchSize int
	// PriorityCutoff is the time of day ("HH:MM") on the session date up to
	// which recurring members keep entry priority for the first match
	PriorityCutoff string
}

// DefaultSessionConfig returns the default session configuration
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		MatchSize:      DefaultMatchSize,
		PriorityCutoff: DefaultPriorityCutoff,
	}
}

// Validate checks the configuration for usable values
func (c SessionConfig) Validate() error {
	if c.MatchSize < 4 || c.MatchSize%2 != 0 {
		return fmt.Errorf("%w: match size must be an even number >= 4", ErrInvalidConfig)
	}
	if _, err := time.Parse("15:04", c.PriorityCutoff); err != nil {
		return fmt.Errorf("%w: priority cutoff must be HH:MM", ErrInvalidConfig)
	}
	return nil
}

// Session is one day's recurring game event: the roster of arrived players,
// the append-only match history, and the queue of players off the field.
type Session struct {
	ID             SessionID
	Name           string
	Date           time.Time
	Config         SessionConfig
	Roster         []Player
	Matches        []Match
	WaitingQueue   []PlayerID
	CurrentMatchID *MatchID // nil before the first match and after deletion
	// Version guards concurrent rotation requests; storage rejects saves
	// whose version does not match the stored document
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlayerByID returns the roster entry with the given id, or nil
func (s *Session) PlayerByID(id PlayerID) *Player {
	for i := range s.Roster {
		if s.Roster[i].ID == id {
			return &s.Roster[i]
		}
	}
	return nil
}

// LastMatch returns the most recent match, or nil if none have been played
func (s *Session) LastMatch() *Match {
	if len(s.Matches) == 0 {
		return nil
	}
	return &s.Matches[len(s.Matches)-1]
}

// MatchByID returns the match with the given id, or nil
func (s *Session) MatchByID(id MatchID) *Match {
	for i := range s.Matches {
		if s.Matches[i].ID == id {
			return &s.Matches[i]
		}
	}
	return nil
}

// CutoffAt resolves the configured priority cutoff to a point in time on the
// session date, in the session date's location
func (s *Session) CutoffAt() time.Time {
	t, err := time.Parse("15:04", s.Config.PriorityCutoff)
	if err != nil {
		t, _ = time.Parse("15:04", DefaultPriorityCutoff)
	}
	return time.Date(
		s.Date.Year(), s.Date.Month(), s.Date.Day(),
		t.Hour(), t.Minute(), 0, 0, s.Date.Location(),
	)
}
