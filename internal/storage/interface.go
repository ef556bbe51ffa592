package storage

import (
	"context"

	"github.com/casualfc/matchday/internal/model"
)

// Storage defines the interface for session persistence.
//
// The session document is the single source of truth for a day's event, so
// SaveSession performs a compare-and-swap on Session.Version: a save whose
// version no longer matches the stored document fails with
// model.ErrVersionConflict and the caller must reload and retry. This is
// what keeps two concurrent rotation requests from popping overlapping
// players off the same waiting queue.
type Storage interface {
	// SaveSession persists the session, bumping its version on success
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	SessionExists(ctx context.Context, id model.SessionID) (bool, error)
	ListSessionIDs(ctx context.Context) ([]model.SessionID, error)
}
