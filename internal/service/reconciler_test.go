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

type reconcilerMocks struct {
	orders       *mocks.MockOrderRepo
	transactions *mocks.MockTransactionRepo
	stock        *mocks.MockStockAdjuster
	notifier     *mocks.MockNotifier
	cache        *mocks.MockCache
}

func newReconciler(t *testing.T) (*service.ReconcilerService, reconcilerMocks) {
	m := reconcilerMocks{
		orders:       mocks.NewMockOrderRepo(t),
		transactions: mocks.NewMockTransactionRepo(t),
		stock:        mocks.NewMockStockAdjuster(t),
		notifier:     mocks.NewMockNotifier(t),
		cache:        mocks.NewMockCache(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewReconcilerService(logger, m.orders, m.transactions, m.stock, m.notifier, m.cache)
	return svc, m
}

func TestReconcilerService_HandlePaymentSucceeded(t *testing.T) {
	orderA := entities.Order{
		ID:         "A",
		Number:     "ORD-20250831-AAAAAA",
		CustomerID: "buyer-1",
		Status:     entities.StatusPending,
		Total:      5000,
		Items: []entities.Item{
			{ProductID: "p1", SellerID: "seller-1", Price: 2500, Quantity: 2},
		},
	}
	orderB := entities.Order{
		ID:         "B",
		Number:     "ORD-20250831-BBBBBB",
		CustomerID: "buyer-2",
		Status:     entities.StatusPending,
		Total:      1000,
		Items: []entities.Item{
			{ProductID: "p2", SellerID: "seller-2", Price: 1000, Quantity: 1},
		},
	}

	t.Run("single order is reconciled end to end", func(t *testing.T) {
		svc, m := newReconciler(t)

		m.orders.EXPECT().GetOrderByID(mock.Anything, "A").Return(orderA, nil).Once()
		m.orders.EXPECT().MarkPaid(mock.Anything, "A", "pi_1", mock.Anything).Return(true, nil).Once()
		m.orders.EXPECT().AppendTracking(mock.Anything, "A", mock.Anything).Return(nil).Once()
		m.cache.EXPECT().Delete("A").Return().Once()
		m.transactions.EXPECT().SaveTransaction(mock.Anything, mock.MatchedBy(func(tx entities.Transaction) bool {
			return tx.ID == "pi_1" && tx.OrderID == "A" && tx.Kind == entities.TransactionCharge &&
				tx.Status == entities.TransactionSucceeded && tx.Amount == 5000
		})).Return(nil).Once()
		m.stock.EXPECT().AdjustForOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
			return o.ID == "A" && o.Status == entities.StatusProcessing && o.PaymentStatus == entities.PaymentCompleted
		})).Return(nil).Once()
		m.notifier.EXPECT().Send(mock.Anything, mock.MatchedBy(func(n entities.Notification) bool {
			return n.UserID == "buyer-1" && n.Type == entities.NotificationOrderConfirmed
		})).Return(nil).Once()
		m.notifier.EXPECT().Send(mock.Anything, mock.MatchedBy(func(n entities.Notification) bool {
			return n.UserID == "seller-1" && n.Type == entities.NotificationNewOrder
		})).Return(nil).Once()

		err := svc.HandlePaymentSucceeded(context.Background(), entities.PaymentEvent{
			TransactionID: "pi_1",
			Metadata:      map[string]string{"order_id": "A"},
		})
		require.NoError(t, err)
	})

	t.Run("duplicate delivery is a no-op on inventory and notifications", func(t *testing.T) {
		svc, m := newReconciler(t)

		m.orders.EXPECT().GetOrderByID(mock.Anything, "A").Return(orderA, nil).Once()
		m.orders.EXPECT().MarkPaid(mock.Anything, "A", "pi_1", mock.Anything).Return(false, nil).Once()

		err := svc.HandlePaymentSucceeded(context.Background(), entities.PaymentEvent{
			TransactionID: "pi_1",
			Metadata:      map[string]string{"order_ids": "A"},
		})
		require.NoError(t, err)

		m.stock.AssertNotCalled(t, "AdjustForOrder", mock.Anything, mock.Anything)
		m.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		m.transactions.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
	})

	t.Run("multi-order event updates both orders independently", func(t *testing.T) {
		svc, m := newReconciler(t)

		for _, order := range []entities.Order{orderA, orderB} {
			m.orders.EXPECT().GetOrderByID(mock.Anything, order.ID).Return(order, nil).Once()
			m.orders.EXPECT().MarkPaid(mock.Anything, order.ID, "pi_2", mock.Anything).Return(true, nil).Once()
			m.orders.EXPECT().AppendTracking(mock.Anything, order.ID, mock.Anything).Return(nil).Once()
			m.cache.EXPECT().Delete(order.ID).Return().Once()
		}
		m.transactions.EXPECT().SaveTransaction(mock.Anything, mock.Anything).Return(nil).Times(2)
		m.stock.EXPECT().AdjustForOrder(mock.Anything, mock.Anything).Return(nil).Times(2)
		m.notifier.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Times(4)

		err := svc.HandlePaymentSucceeded(context.Background(), entities.PaymentEvent{
			TransactionID: "pi_2",
			Metadata:      map[string]string{"order_ids": "A,B"},
		})
		require.NoError(t, err)
	})

	t.Run("missing order does not abort the batch", func(t *testing.T) {
		svc, m := newReconciler(t)

		m.orders.EXPECT().GetOrderByID(mock.Anything, "A").Return(orderA, nil).Once()
		m.orders.EXPECT().MarkPaid(mock.Anything, "A", "pi_3", mock.Anything).Return(true, nil).Once()
		m.orders.EXPECT().AppendTracking(mock.Anything, "A", mock.Anything).Return(nil).Once()
		m.cache.EXPECT().Delete("A").Return().Once()
		m.orders.EXPECT().GetOrderByID(mock.Anything, "B").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		m.transactions.EXPECT().SaveTransaction(mock.Anything, mock.Anything).Return(nil).Once()
		m.stock.EXPECT().AdjustForOrder(mock.Anything, mock.Anything).Return(nil).Once()
		m.notifier.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Times(2)

		err := svc.HandlePaymentSucceeded(context.Background(), entities.PaymentEvent{
			TransactionID: "pi_3",
			Metadata:      map[string]string{"order_ids": "A,B"},
		})
		require.NoError(t, err)
	})

	t.Run("legacy single order_id field is honored", func(t *testing.T) {
		svc, m := newReconciler(t)

		m.orders.EXPECT().GetOrderByID(mock.Anything, "A").Return(orderA, nil).Once()
		m.orders.EXPECT().MarkPaid(mock.Anything, "A", "pi_4", mock.Anything).Return(true, nil).Once()
		m.orders.EXPECT().AppendTracking(mock.Anything, "A", mock.Anything).Return(nil).Once()
		m.cache.EXPECT().Delete("A").Return().Once()
		m.transactions.EXPECT().SaveTransaction(mock.Anything, mock.Anything).Return(nil).Once()
		m.stock.EXPECT().AdjustForOrder(mock.Anything, mock.Anything).Return(nil).Once()
		m.notifier.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Times(2)

		err := svc.HandlePaymentSucceeded(context.Background(), entities.PaymentEvent{
			TransactionID: "pi_4",
			Metadata:      map[string]string{"order_id": "A"},
		})
		require.NoError(t, err)
	})

	t.Run("event without order ids is an error", func(t *testing.T) {
		svc, _ := newReconciler(t)

		err := svc.HandlePaymentSucceeded(context.Background(), entities.PaymentEvent{
			TransactionID: "pi_5",
			Metadata:      map[string]string{},
		})
		assert.Error(t, err)
	})

	t.Run("inventory failure does not block notifications", func(t *testing.T) {
		svc, m := newReconciler(t)

		m.orders.EXPECT().GetOrderByID(mock.Anything, "A").Return(orderA, nil).Once()
		m.orders.EXPECT().MarkPaid(mock.Anything, "A", "pi_6", mock.Anything).Return(true, nil).Once()
		m.orders.EXPECT().AppendTracking(mock.Anything, "A", mock.Anything).Return(nil).Once()
		m.cache.EXPECT().Delete("A").Return().Once()
		m.transactions.EXPECT().SaveTransaction(mock.Anything, mock.Anything).Return(nil).Once()
		m.stock.EXPECT().AdjustForOrder(mock.Anything, mock.Anything).
			Return(errors.New("stock error")).Once()
		m.notifier.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Times(2)

		err := svc.HandlePaymentSucceeded(context.Background(), entities.PaymentEvent{
			TransactionID: "pi_6",
			Metadata:      map[string]string{"order_ids": "A"},
		})
		require.NoError(t, err)
	})
}

func TestReconcilerService_NotificationFanOut(t *testing.T) {
	// two line items from two sellers plus a repeat item: exactly one buyer
	// notification and two deduplicated seller notifications
	order := entities.Order{
		ID:         "A",
		Number:     "ORD-20250831-AAAAAA",
		CustomerID: "buyer-1",
		Status:     entities.StatusPending,
		Total:      9000,
		Items: []entities.Item{
			{ProductID: "p1", SellerID: "seller-1", Price: 2000, Quantity: 1},
			{ProductID: "p2", SellerID: "seller-2", Price: 3000, Quantity: 1},
			{ProductID: "p3", SellerID: "seller-1", Price: 4000, Quantity: 1},
		},
	}

	t.Run("distinct sellers each get one notification", func(t *testing.T) {
		svc, m := newReconciler(t)

		m.orders.EXPECT().GetOrderByID(mock.Anything, "A").Return(order, nil).Once()
		m.orders.EXPECT().MarkPaid(mock.Anything, "A", "pi_1", mock.Anything).Return(true, nil).Once()
		m.orders.EXPECT().AppendTracking(mock.Anything, "A", mock.Anything).Return(nil).Once()
		m.cache.EXPECT().Delete("A").Return().Once()
		m.transactions.EXPECT().SaveTransaction(mock.Anything, mock.Anything).Return(nil).Once()
		m.stock.EXPECT().AdjustForOrder(mock.Anything, mock.Anything).Return(nil).Once()

		var sellerSends []string
		m.notifier.EXPECT().Send(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, n entities.Notification) error {
				if n.Type == entities.NotificationNewOrder {
					sellerSends = append(sellerSends, n.UserID)
				}
				return nil
			}).Times(3)

		err := svc.HandlePaymentSucceeded(context.Background(), entities.PaymentEvent{
			TransactionID: "pi_1",
			Metadata:      map[string]string{"order_ids": "A"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"seller-1", "seller-2"}, sellerSends)
	})

	t.Run("one failing seller send does not block the other", func(t *testing.T) {
		svc, m := newReconciler(t)

		m.orders.EXPECT().GetOrderByID(mock.Anything, "A").Return(order, nil).Once()
		m.orders.EXPECT().MarkPaid(mock.Anything, "A", "pi_2", mock.Anything).Return(true, nil).Once()
		m.orders.EXPECT().AppendTracking(mock.Anything, "A", mock.Anything).Return(nil).Once()
		m.cache.EXPECT().Delete("A").Return().Once()
		m.transactions.EXPECT().SaveTransaction(mock.Anything, mock.Anything).Return(nil).Once()
		m.stock.EXPECT().AdjustForOrder(mock.Anything, mock.Anything).Return(nil).Once()

		var attempted []string
		m.notifier.EXPECT().Send(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, n entities.Notification) error {
				attempted = append(attempted, n.UserID)
				if n.UserID == "seller-1" {
					return errors.New("send failed")
				}
				return nil
			}).Times(3)

		err := svc.HandlePaymentSucceeded(context.Background(), entities.PaymentEvent{
			TransactionID: "pi_2",
			Metadata:      map[string]string{"order_ids": "A"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"buyer-1", "seller-1", "seller-2"}, attempted)
	})
}

func TestReconcilerService_HandleChargeRefunded(t *testing.T) {
	delivered := entities.Order{
		ID:         "A",
		Number:     "ORD-20250831-AAAAAA",
		CustomerID: "buyer-1",
		Status:     entities.StatusDelivered,
		Total:      5000,
	}

	t.Run("delivered order is refunded", func(t *testing.T) {
		svc, m := newReconciler(t)

		m.orders.EXPECT().GetOrderByID(mock.Anything, "A").Return(delivered, nil).Times(2)
		m.orders.EXPECT().UpdateStatus(mock.Anything, "A", entities.StatusRefunded).Return(nil).Once()
		m.orders.EXPECT().AppendTracking(mock.Anything, "A", mock.Anything).Return(nil).Once()
		m.orders.EXPECT().SetPaymentStatus(mock.Anything, "A", entities.PaymentRefunded).Return(nil).Once()
		m.cache.EXPECT().Delete("A").Return().Once()
		m.transactions.EXPECT().SaveTransaction(mock.Anything, mock.MatchedBy(func(tx entities.Transaction) bool {
			return tx.Kind == entities.TransactionRefund && tx.Status == entities.TransactionSucceeded
		})).Return(nil).Once()
		m.notifier.EXPECT().Send(mock.Anything, mock.MatchedBy(func(n entities.Notification) bool {
			return n.Type == entities.NotificationOrderRefunded
		})).Return(nil).Once()

		err := svc.HandleChargeRefunded(context.Background(), entities.PaymentEvent{
			TransactionID: "re_1",
			Metadata:      map[string]string{"order_id": "A"},
		})
		require.NoError(t, err)
	})

	t.Run("pending order cannot be refunded", func(t *testing.T) {
		svc, m := newReconciler(t)

		pending := delivered
		pending.Status = entities.StatusPending
		m.orders.EXPECT().GetOrderByID(mock.Anything, "A").Return(pending, nil).Times(2)

		err := svc.HandleChargeRefunded(context.Background(), entities.PaymentEvent{
			TransactionID: "re_2",
			Metadata:      map[string]string{"order_id": "A"},
		})
		require.NoError(t, err)

		m.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		m.transactions.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
	})
}

func TestReconcilerService_HandlePaymentCanceled(t *testing.T) {
	svc, m := newReconciler(t)

	pending := entities.Order{ID: "A", Status: entities.StatusPending}
	m.orders.EXPECT().GetOrderByID(mock.Anything, "A").Return(pending, nil).Once()
	m.orders.EXPECT().UpdateStatus(mock.Anything, "A", entities.StatusCancelled).Return(nil).Once()
	m.orders.EXPECT().AppendTracking(mock.Anything, "A", mock.Anything).Return(nil).Once()
	m.cache.EXPECT().Delete("A").Return().Once()

	err := svc.HandlePaymentCanceled(context.Background(), entities.PaymentEvent{
		TransactionID: "pi_9",
		Metadata:      map[string]string{"order_id": "A"},
	})
	require.NoError(t, err)
}

func TestReconcilerService_HandlePaymentFailed(t *testing.T) {
	svc, m := newReconciler(t)

	order := entities.Order{ID: "A", Number: "ORD-20250831-AAAAAA", CustomerID: "buyer-1"}
	m.orders.EXPECT().SetPaymentStatus(mock.Anything, "A", entities.PaymentFailed).Return(nil).Once()
	m.cache.EXPECT().Delete("A").Return().Once()
	m.transactions.EXPECT().SaveTransaction(mock.Anything, mock.MatchedBy(func(tx entities.Transaction) bool {
		return tx.Status == entities.TransactionFailed
	})).Return(nil).Once()
	m.orders.EXPECT().GetOrderByID(mock.Anything, "A").Return(order, nil).Once()
	m.notifier.EXPECT().Send(mock.Anything, mock.MatchedBy(func(n entities.Notification) bool {
		return n.UserID == "buyer-1" && n.Type == entities.NotificationPaymentFailed
	})).Return(nil).Once()

	err := svc.HandlePaymentFailed(context.Background(), entities.PaymentEvent{
		TransactionID: "pi_8",
		Amount:        5000,
		Metadata:      map[string]string{"order_id": "A"},
	})
	require.NoError(t, err)
}

func TestReconcilerService_HandleChargeSucceeded(t *testing.T) {
	t.Run("charge with order reference records a transaction per order", func(t *testing.T) {
		svc, m := newReconciler(t)

		m.transactions.EXPECT().SaveTransaction(mock.Anything, mock.MatchedBy(func(tx entities.Transaction) bool {
			return tx.ID == "ch_1" && tx.OrderID == "A" && tx.Kind == entities.TransactionCharge &&
				tx.Status == entities.TransactionSucceeded && tx.Amount == 5000
		})).Return(nil).Once()
		m.transactions.EXPECT().SaveTransaction(mock.Anything, mock.MatchedBy(func(tx entities.Transaction) bool {
			return tx.ID == "ch_1" && tx.OrderID == "B"
		})).Return(nil).Once()

		err := svc.HandleChargeSucceeded(context.Background(), entities.PaymentEvent{
			TransactionID: "ch_1",
			Amount:        5000,
			Metadata:      map[string]string{"order_ids": "A,B"},
		})
		require.NoError(t, err)
	})

	t.Run("charge without order reference flips the recorded transaction status", func(t *testing.T) {
		svc, m := newReconciler(t)

		m.transactions.EXPECT().
			UpdateTransactionStatus(mock.Anything, "ch_2", entities.TransactionSucceeded).
			Return(nil).Once()

		err := svc.HandleChargeSucceeded(context.Background(), entities.PaymentEvent{
			TransactionID: "ch_2",
			Amount:        5000,
		})
		require.NoError(t, err)
		m.transactions.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
	})

	t.Run("status update failure is swallowed", func(t *testing.T) {
		svc, m := newReconciler(t)

		m.transactions.EXPECT().
			UpdateTransactionStatus(mock.Anything, "ch_3", entities.TransactionFailed).
			Return(errors.New("db down")).Once()

		err := svc.HandleChargeFailed(context.Background(), entities.PaymentEvent{TransactionID: "ch_3"})
		require.NoError(t, err)
	})
}
