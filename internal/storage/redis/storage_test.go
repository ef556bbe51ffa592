package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/casualfc/matchday/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) newSession(id model.SessionID) *model.Session {
	return &model.Session{
		ID:     id,
		Name:   "Wednesday",
		Date:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		Config: model.DefaultSessionConfig(),
		Roster: []model.Player{
			{
				ID:           "p1",
				Name:         "Alice",
				Position:     model.PositionMidfield,
				SkillLevel:   4,
				AgeGroup:     model.Age21To30,
				Tier:         model.TierRecurring,
				ArrivalOrder: 1,
			},
		},
		WaitingQueue: []model.PlayerID{},
		CreatedAt:    time.Now().UTC(),
	}
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := s.newSession("session-1")

	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	stored, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session.Name, stored.Name)
	s.Require().Len(stored.Roster, 1)
	s.Equal(model.PlayerID("p1"), stored.Roster[0].ID)
	s.Equal(session.Version, stored.Version)
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

	// A second writer loads and commits first
	other, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Require().NoError(s.storage.SaveSession(s.ctx, other))

	err = s.storage.SaveSession(s.ctx, session)
	s.ErrorIs(err, model.ErrVersionConflict)
	// Failed save must not bump the caller's version
	s.Equal(int64(1), session.Version)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSessionRemovesDocumentAndIndex() {
	session := s.newSession("session-1")
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	s.Require().NoError(s.storage.DeleteSession(s.ctx, "session-1"))

	_, err := s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)

	ids, err := s.storage.ListSessionIDs(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
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

func (s *StorageSuite) TestListSessionIDs() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("a")))
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("b")))

	ids, err := s.storage.ListSessionIDs(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]model.SessionID{"a", "b"}, ids)
}

func (s *StorageSuite) TestExpiredSessionDroppedFromListing() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("a")))
	s.mini.FastForward(30 * time.Minute)
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("b")))

	// Expire the older document; the index set keeps its id
	s.mini.FastForward(45 * time.Minute)

	_, err := s.storage.GetSession(s.ctx, "a")
	s.ErrorIs(err, model.ErrSessionNotFound)

	ids, err := s.storage.ListSessionIDs(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.SessionID{"b"}, ids)
}

func (s *StorageSuite) TestSessionTTLApplied() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("session-1")))

	ttl := s.mini.TTL(sessionKey("session-1"))
	s.Equal(time.Hour, ttl)
}
