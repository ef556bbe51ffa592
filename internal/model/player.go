package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Position is a player's field position
type Position string

const (
	PositionDefense  Position = "defense"
	PositionMidfield Position = "midfield"
	PositionAttack   Position = "attack"
)

// Valid reports whether the position is one of the three known values
func (p Position) Valid() bool {
	switch p {
	case PositionDefense, PositionMidfield, PositionAttack:
		return true
	}
	return false
}

// Weight returns the position's contribution to the balance score
func (p Position) Weight() float64 {
	switch p {
	case PositionDefense:
		return 1
	case PositionMidfield:
		return 2
	case PositionAttack:
		return 3
	}
	return 0
}

// AgeGroup is the bracket a player falls into, ordered youngest to oldest
type AgeGroup string

const (
	AgeUnder21 AgeGroup = "under_21"
	Age21To30  AgeGroup = "21_30"
	Age31To40  AgeGroup = "31_40"
	Age41To50  AgeGroup = "41_50"
	AgeOver50  AgeGroup = "over_50"
)

// Valid reports whether the age group is a known bracket
func (a AgeGroup) Valid() bool {
	switch a {
	case AgeUnder21, Age21To30, Age31To40, Age41To50, AgeOver50:
		return true
	}
	return false
}

// Midpoint returns the representative age for the bracket
func (a AgeGroup) Midpoint() float64 {
	switch a {
	case AgeUnder21:
		return 17.5
	case Age21To30:
		return 25.5
	case Age31To40:
		return 35.5
	case Age41To50:
		return 45.5
	case AgeOver50:
		return 55
	}
	return 0
}

// MembershipTier distinguishes monthly members from per-session players
type MembershipTier string

const (
	TierRecurring MembershipTier = "recurring"
	TierDropIn    MembershipTier = "drop_in"
)

// Valid reports whether the tier is a known value
func (t MembershipTier) Valid() bool {
	return t == TierRecurring || t == TierDropIn
}

// Skill level bounds for the admin-assigned rating
const (
	MinSkillLevel = 1
	MaxSkillLevel = 5
)

// ValidSkillLevel reports whether the level is in the allowed range
func ValidSkillLevel(level int) bool {
	return level >= MinSkillLevel && level <= MaxSkillLevel
}

// Player represents a checked-in session participant.
// Position, SkillLevel, AgeGroup and Tier are admin-editable; ArrivalOrder
// is re-sequenced when a player is removed from the roster.
type Player struct {
	ID           PlayerID
	Name         string
	Position     Position
	SkillLevel   int
	AgeGroup     AgeGroup
	ArrivalTime  time.Time
	Tier         MembershipTier
	ArrivalOrder int
}
