package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/casualfc/matchday/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newSession(id model.SessionID) *model.Session {
	return &model.Session{
		ID:        id,
		Name:      "Wednesday",
		Date:      time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		Config:    model.DefaultSessionConfig(),
		CreatedAt: time.Now(),
	}
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := s.newSession("session-1")

	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	stored, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session.Name, stored.Name)
}

func (s *StorageSuite) TestSaveBumpsVersion() {
	session := s.newSession("session-1")

	s.Require().NoError(s.storage.SaveSession(s.ctx, session))
	s.Equal(int64(1), session.Version)

	s.Require().NoError(s.storage.SaveSession(s.ctx, session))
	s.Equal(int64(2), session.Version)
}

func (s *StorageSuite) TestSaveStaleVersionRejected() {
	session := s.newSession("session-1")
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	stale := s.newSession("session-1")
	stale.Version = 1

	err := s.storage.SaveSession(s.ctx, stale)
	s.ErrorIs(err, model.ErrVersionConflict)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	session := s.newSession("session-1")
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	s.Require().NoError(s.storage.DeleteSession(s.ctx, "session-1"))

	_, err := s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionExists() {
	exists, err := s.storage.SessionExists(s.ctx, "session-1")
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("session-1")))

	exists, err = s.storage.SessionExists(s.ctx, "session-1")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestListSessionIDsSorted() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("b")))
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("a")))
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("c")))

	ids, err := s.storage.ListSessionIDs(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.SessionID{"a", "b", "c"}, ids)
}
