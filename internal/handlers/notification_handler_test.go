package handlers

import (
	"net/http"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type NotificationHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	echo    *echo.Echo
	service *service_mocks.MockNotificationServiceInterface
	handler *NotificationHandler
	userID  uuid.UUID
}

func TestNotificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerSuite))
}

func (s *NotificationHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = newTestEcho()
	s.service = service_mocks.NewMockNotificationServiceInterface(s.ctrl)
	s.handler = NewNotificationHandler(s.service)
	s.userID = uuid.New()
}

func (s *NotificationHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *NotificationHandlerSuite) TestListNotifications() {
	s.service.EXPECT().List(s.userID, true, 10).Return([]models.Notification{
		{ID: uuid.New(), UserID: s.userID, Title: "High Expense Alert", Message: "You just spent 900.00 on Shopping"},
	}, nil)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/v1/notifications?unread=true&limit=10", nil, s.userID)
	s.Require().NoError(s.handler.ListNotifications(c))
	s.Equal(http.StatusOK, rec.Code)

	var notifications []models.Notification
	decodeData(s.T(), rec, &notifications)
	s.Require().Len(notifications, 1)
	s.Equal("High Expense Alert", notifications[0].Title)
}

func (s *NotificationHandlerSuite) TestListNotifications_Defaults() {
	s.service.EXPECT().List(s.userID, false, 0).Return(nil, nil)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/v1/notifications?limit=abc", nil, s.userID)
	s.Require().NoError(s.handler.ListNotifications(c))
	s.JSONEq(`{"data":[]}`, rec.Body.String())
}

func (s *NotificationHandlerSuite) TestMarkRead() {
	id := uuid.New()
	s.service.EXPECT().MarkRead(s.userID, id).Return(nil)

	c, rec := newAuthedContext(s.echo, http.MethodPost, "/", nil, s.userID)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	s.Require().NoError(s.handler.MarkRead(c))
	s.Equal(http.StatusNoContent, rec.Code)

	missing := uuid.New()
	s.service.EXPECT().MarkRead(s.userID, missing).Return(repositories.ErrNotificationNotFound)

	c, rec = newAuthedContext(s.echo, http.MethodPost, "/", nil, s.userID)
	c.SetParamNames("id")
	c.SetParamValues(missing.String())
	s.Require().NoError(s.handler.MarkRead(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
