package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/velesmarket/payment-service/internal/entities"
)

type NotificationRepo interface {
	SaveNotification(ctx context.Context, n entities.Notification) error
	NotificationsByUser(ctx context.Context, userID string, limit int) ([]entities.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
}

type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// NotifierService persists notifications and forwards them to the
// notifications topic for asynchronous delivery (push, email). A broker
// failure is logged but does not fail the send: the row is already stored and
// visible through the read API.
type NotifierService struct {
	logger   *slog.Logger
	repo     NotificationRepo
	producer Publisher
}

func NewNotifierService(logger *slog.Logger, repo NotificationRepo, producer Publisher) *NotifierService {
	return &NotifierService{
		logger:   logger.With(slog.String("service", "notifier")),
		repo:     repo,
		producer: producer,
	}
}

func (s *NotifierService) Send(ctx context.Context, n entities.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	if err := s.repo.SaveNotification(ctx, n); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	if err := s.producer.Publish(ctx, n.UserID, NotificationEvent{
		NotificationID: n.ID,
		UserID:         n.UserID,
		Type:           string(n.Type),
		Title:          n.Title,
		Message:        n.Message,
		ActionURL:      n.ActionURL,
		Meta:           n.Meta,
	}); err != nil {
		s.logger.Error("failed to publish notification event",
			slog.String("notification_id", n.ID),
			slog.String("user_id", n.UserID),
			slog.Any("error", err),
		)
	}

	return nil
}

func (s *NotifierService) NotificationsByUser(ctx context.Context, userID string, limit int) ([]entities.Notification, error) {
	return s.repo.NotificationsByUser(ctx, userID, limit)
}

func (s *NotifierService) MarkRead(ctx context.Context, notificationID string) error {
	return s.repo.MarkRead(ctx, notificationID)
}

// NotificationEvent is the message published to the notifications topic.
type NotificationEvent struct {
	NotificationID string            `json:"notification_id"`
	UserID         string            `json:"user_id"`
	Type           string            `json:"type"`
	Title          string            `json:"title"`
	Message        string            `json:"message"`
	ActionURL      string            `json:"action_url,omitempty"`
	Meta           map[string]string `json:"meta,omitempty"`
}
