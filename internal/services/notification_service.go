package services

import (
	"context"
	"log/slog"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

const defaultNotificationLimit = 50

type notificationService struct {
	repo    repositories.NotificationRepositoryInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewNotificationService stores notifications in the database. Notify never
// fails the caller.
func NewNotificationService(
	repo repositories.NotificationRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) NotificationServiceInterface {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &notificationService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *notificationService) Notify(ctx context.Context, ownerID uuid.UUID, title, message string) {
	notification := &models.Notification{
		UserID:  ownerID,
		Title:   title,
		Message: message,
	}

	if err := s.repo.Create(notification); err != nil {
		s.metrics.IncrementCounter(MetricNotification, map[string]string{"status": "failed"})
		s.logger.WarnContext(ctx, "failed to store notification",
			"user_id", ownerID,
			"title", title,
			"error", err,
		)
		return
	}

	s.metrics.IncrementCounter(MetricNotification, map[string]string{"status": "sent"})
	s.logger.InfoContext(ctx, "notification sent",
		"user_id", ownerID,
		"notification_id", notification.ID,
		"title", title,
	)
}

func (s *notificationService) List(ownerID uuid.UUID, unreadOnly bool, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > defaultNotificationLimit {
		limit = defaultNotificationLimit
	}
	return s.repo.ListByUser(ownerID, unreadOnly, limit)
}

func (s *notificationService) MarkRead(ownerID, notificationID uuid.UUID) error {
	return s.repo.MarkRead(ownerID, notificationID)
}
