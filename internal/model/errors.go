package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidConfig   = errors.New("invalid session config")
	ErrVersionConflict = errors.New("session was modified concurrently")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerOnField  = errors.New("player is in the current match")

	// Rotation errors
	ErrSessionStarted       = errors.New("session already has matches")
	ErrInsufficientPlayers  = errors.New("insufficient players")
	ErrLastMatchNotFinished = errors.New("last match is not finished")
	ErrNoWinnerDefined      = errors.New("last match has no winner")

	// Match errors
	ErrMatchNotFound   = errors.New("match not found")
	ErrNoCurrentMatch  = errors.New("no match in progress")
	ErrMatchFinished   = errors.New("match is already finished")
	ErrMatchInProgress = errors.New("match is in progress")
	ErrUnknownTeam     = errors.New("team id does not belong to this match")
)
