package repositories

import (
	"testing"

	"fintrack/internal/database"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) TestCreate() {
	user := &models.User{Email: "Owner@Example.com", DisplayName: "Owner"}

	s.Require().NoError(s.repo.Create(user))
	s.NotEqual(uuid.Nil, user.ID)
	s.Equal("owner@example.com", user.Email)
	s.Equal(models.ConnectionStateUnlinked, user.LinkState)

	err := s.repo.Create(&models.User{Email: "owner@example.com"})
	s.ErrorIs(err, ErrUserAlreadyExists)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *UserRepositorySuite) TestGetByEmail() {
	user := database.CreateTestUser(s.T(), s.db, "test@example.com")

	found, err := s.repo.GetByEmail(" TEST@example.com ")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.repo.GetByEmail("missing@example.com")
	s.ErrorIs(err, ErrUserNotFound)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *UserRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestUpdateBalance() {
	user := database.CreateTestUser(s.T(), s.db, "test@example.com")

	s.Require().NoError(s.repo.UpdateBalance(user.ID, decimal.RequireFromString("1250.5")))

	found, err := s.repo.GetByID(user.ID)
	s.Require().NoError(err)
	s.True(found.Balance.Equal(decimal.RequireFromString("1250.5")), found.Balance.String())

	s.ErrorIs(s.repo.UpdateBalance(uuid.New(), decimal.Zero), ErrUserNotFound)
}

func (s *UserRepositorySuite) TestProviderCustomer() {
	user := database.CreateTestUser(s.T(), s.db, "test@example.com")

	s.Require().NoError(s.repo.SetProviderCustomerID(user.ID, "cust-42"))
	s.Require().NoError(s.repo.SetLinkState(user.ID, models.ConnectionStateSessionCreated))

	found, err := s.repo.GetByProviderCustomerID("cust-42")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)
	s.True(found.HasProviderCustomer())
	s.Equal(models.ConnectionStateSessionCreated, found.LinkState)

	_, err = s.repo.GetByProviderCustomerID("cust-unknown")
	s.ErrorIs(err, ErrUserNotFound)
}
