package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/velesmarket/payment-service/internal/entities"
	"github.com/velesmarket/payment-service/internal/service"
	mocks "github.com/velesmarket/payment-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotifier(t *testing.T) (*service.NotifierService, *mocks.MockNotificationRepo, *mocks.MockPublisher) {
	repo := mocks.NewMockNotificationRepo(t)
	producer := mocks.NewMockPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewNotifierService(logger, repo, producer), repo, producer
}

func TestNotifierService_Send(t *testing.T) {
	notification := entities.Notification{
		UserID:  "buyer-1",
		Type:    entities.NotificationOrderConfirmed,
		Title:   "Order confirmed",
		Message: "Your order ORD-20250831-AAAAAA has been confirmed.",
	}

	t.Run("persists and publishes with a generated id", func(t *testing.T) {
		svc, repo, producer := newNotifier(t)

		var savedID string
		repo.EXPECT().SaveNotification(mock.Anything, mock.MatchedBy(func(n entities.Notification) bool {
			savedID = n.ID
			return n.ID != "" && !n.CreatedAt.IsZero() && n.UserID == "buyer-1"
		})).Return(nil).Once()
		producer.EXPECT().Publish(mock.Anything, "buyer-1", mock.MatchedBy(func(ev any) bool {
			event, ok := ev.(service.NotificationEvent)
			return ok && event.NotificationID == savedID && event.Type == "order_confirmed"
		})).Return(nil).Once()

		err := svc.Send(context.Background(), notification)
		require.NoError(t, err)
	})

	t.Run("save failure fails the send", func(t *testing.T) {
		svc, repo, producer := newNotifier(t)

		repo.EXPECT().SaveNotification(mock.Anything, mock.Anything).
			Return(errors.New("constraint violation")).Once()

		err := svc.Send(context.Background(), notification)
		assert.Error(t, err)
		producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("broker failure is swallowed", func(t *testing.T) {
		svc, repo, producer := newNotifier(t)

		repo.EXPECT().SaveNotification(mock.Anything, mock.Anything).Return(nil).Once()
		producer.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("broker unavailable")).Once()

		err := svc.Send(context.Background(), notification)
		require.NoError(t, err)
	})
}

func TestNotifierService_MarkRead(t *testing.T) {
	svc, repo, _ := newNotifier(t)

	repo.EXPECT().MarkRead(mock.Anything, "n1").Return(nil).Once()
	require.NoError(t, svc.MarkRead(context.Background(), "n1"))

	repo.EXPECT().MarkRead(mock.Anything, "missing").Return(entities.ErrNotificationNotFound).Once()
	assert.ErrorIs(t, svc.MarkRead(context.Background(), "missing"), entities.ErrNotificationNotFound)
}
