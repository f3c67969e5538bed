package repositories

import (
	"testing"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestNotificationRepository(t *testing.T) {
	suite.Run(t, new(NotificationRepositorySuite))
}

type NotificationRepositorySuite struct {
	suite.Suite
	db    *database.DB
	repo  NotificationRepositoryInterface
	owner *models.User
}

func (s *NotificationRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewNotificationRepository(s.db.DB)
	s.owner = database.CreateTestUser(s.T(), s.db, "owner@example.com")
}

func (s *NotificationRepositorySuite) TestListAndMarkRead() {
	first := &models.Notification{UserID: s.owner.ID, Title: "High Expense Alert", Message: "You just spent 600 on Shopping"}
	second := &models.Notification{UserID: s.owner.ID, Title: "New transactions", Message: "2 new transactions synced"}
	s.Require().NoError(s.repo.Create(first))
	s.Require().NoError(s.repo.Create(second))

	s.Require().NoError(s.repo.MarkRead(s.owner.ID, first.ID))

	unread, err := s.repo.ListByUser(s.owner.ID, true, 0)
	s.Require().NoError(err)
	s.Require().Len(unread, 1)
	s.Equal(second.ID, unread[0].ID)

	all, err := s.repo.ListByUser(s.owner.ID, false, 10)
	s.Require().NoError(err)
	s.Len(all, 2)

	s.ErrorIs(s.repo.MarkRead(uuid.New(), first.ID), ErrNotificationNotFound)
}
