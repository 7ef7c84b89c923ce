package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/velesmarket/payment-service/internal/entities"
)

type TransactionRepo interface {
	SaveTransaction(ctx context.Context, t entities.Transaction) error
	UpdateTransactionStatus(ctx context.Context, transactionID string, status entities.TransactionStatus) error
}

type StockAdjuster interface {
	AdjustForOrder(ctx context.Context, order entities.Order) error
}

type Notifier interface {
	Send(ctx context.Context, n entities.Notification) error
}

// ReconcilerService matches gateway payment events to order state. A single
// event may reference several orders; each one is an independent unit of work
// and a failure on one never aborts the rest of the batch.
type ReconcilerService struct {
	logger       *slog.Logger
	orders       OrderRepo
	transactions TransactionRepo
	stock        StockAdjuster
	notifier     Notifier
	cache        Cache
}

func NewReconcilerService(
	logger *slog.Logger,
	orders OrderRepo,
	transactions TransactionRepo,
	stock StockAdjuster,
	notifier Notifier,
	cache Cache,
) *ReconcilerService {
	return &ReconcilerService{
		logger:       logger.With(slog.String("service", "reconciler")),
		orders:       orders,
		transactions: transactions,
		stock:        stock,
		notifier:     notifier,
		cache:        cache,
	}
}

// HandlePaymentSucceeded reconciles every order referenced by the event: an
// atomic mark-paid guards against duplicate deliveries, then the batch moves
// on to transaction audit, inventory decrement and notification fan-out.
func (s *ReconcilerService) HandlePaymentSucceeded(ctx context.Context, ev entities.PaymentEvent) error {
	orderIDs := resolveOrderIDs(ev.Metadata)
	if len(orderIDs) == 0 {
		return fmt.Errorf("payment event %s carries no order ids", ev.TransactionID)
	}

	paidAt := time.Now().UTC()
	reconciled := make([]entities.Order, 0, len(orderIDs))

	for _, orderID := range orderIDs {
		order, err := s.orders.GetOrderByID(ctx, orderID)
		if errors.Is(err, entities.ErrOrderNotFound) {
			s.logger.Warn("order referenced by payment event not found",
				slog.String("order_id", orderID),
				slog.String("transaction_id", ev.TransactionID),
			)
			continue
		}
		if err != nil {
			s.logger.Error("failed to load order", slog.String("order_id", orderID), slog.Any("error", err))
			continue
		}

		updated, err := s.orders.MarkPaid(ctx, orderID, ev.TransactionID, paidAt)
		if err != nil {
			s.logger.Error("failed to mark order paid", slog.String("order_id", orderID), slog.Any("error", err))
			continue
		}
		if !updated {
			s.logger.Info("duplicate webhook delivery, order already reconciled",
				slog.String("order_id", orderID),
				slog.String("transaction_id", ev.TransactionID),
			)
			continue
		}

		if err := s.orders.AppendTracking(ctx, orderID, entities.TrackingEntry{
			Status:      entities.StatusProcessing,
			Description: "payment received, order is being processed",
			CreatedAt:   paidAt,
		}); err != nil {
			s.logger.Error("failed to append tracking entry", slog.String("order_id", orderID), slog.Any("error", err))
		}
		s.cache.Delete(orderID)

		order.Status = entities.StatusProcessing
		order.PaymentStatus = entities.PaymentCompleted
		order.TransactionID = ev.TransactionID
		order.PaidAt = paidAt
		reconciled = append(reconciled, order)
	}

	for _, order := range reconciled {
		if err := s.transactions.SaveTransaction(ctx, entities.Transaction{
			ID:        ev.TransactionID,
			OrderID:   order.ID,
			Kind:      entities.TransactionCharge,
			Status:    entities.TransactionSucceeded,
			Amount:    order.Total,
			Currency:  ev.Currency,
			CreatedAt: paidAt,
		}); err != nil {
			s.logger.Error("failed to record transaction", slog.String("order_id", order.ID), slog.Any("error", err))
		}

		if err := s.stock.AdjustForOrder(ctx, order); err != nil {
			s.logger.Error("failed to adjust inventory", slog.String("order_id", order.ID), slog.Any("error", err))
		}

		s.notifyReconciled(ctx, order)
	}

	s.logger.Info("payment event reconciled",
		slog.String("transaction_id", ev.TransactionID),
		slog.Int("orders", len(reconciled)),
		slog.Int("referenced", len(orderIDs)),
	)
	return nil
}

func (s *ReconcilerService) HandlePaymentFailed(ctx context.Context, ev entities.PaymentEvent) error {
	for _, orderID := range resolveOrderIDs(ev.Metadata) {
		if err := s.orders.SetPaymentStatus(ctx, orderID, entities.PaymentFailed); err != nil {
			s.logger.Error("failed to set payment status", slog.String("order_id", orderID), slog.Any("error", err))
			continue
		}
		s.cache.Delete(orderID)

		if err := s.transactions.SaveTransaction(ctx, entities.Transaction{
			ID:        ev.TransactionID,
			OrderID:   orderID,
			Kind:      entities.TransactionCharge,
			Status:    entities.TransactionFailed,
			Amount:    ev.Amount,
			Currency:  ev.Currency,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			s.logger.Error("failed to record failed transaction", slog.String("order_id", orderID), slog.Any("error", err))
		}

		order, err := s.orders.GetOrderByID(ctx, orderID)
		if err != nil {
			s.logger.Error("failed to load order for notification", slog.String("order_id", orderID), slog.Any("error", err))
			continue
		}
		if err := s.notifier.Send(ctx, entities.Notification{
			UserID:    order.CustomerID,
			Type:      entities.NotificationPaymentFailed,
			Title:     "Payment failed",
			Message:   fmt.Sprintf("Payment for order %s could not be processed. Please try again.", order.Number),
			ActionURL: "/orders/" + order.ID,
			Meta:      map[string]string{"order_id": order.ID, "order_number": order.Number},
		}); err != nil {
			s.logger.Error("failed to notify buyer", slog.String("order_id", orderID), slog.Any("error", err))
		}
	}
	return nil
}

func (s *ReconcilerService) HandlePaymentCanceled(ctx context.Context, ev entities.PaymentEvent) error {
	for _, orderID := range resolveOrderIDs(ev.Metadata) {
		if err := s.transitionOrder(ctx, orderID, entities.StatusCancelled, "payment canceled by gateway"); err != nil {
			s.logger.Error("failed to cancel order", slog.String("order_id", orderID), slog.Any("error", err))
		}
	}
	return nil
}

func (s *ReconcilerService) HandleChargeSucceeded(ctx context.Context, ev entities.PaymentEvent) error {
	return s.recordCharge(ctx, ev, entities.TransactionSucceeded)
}

func (s *ReconcilerService) HandleChargeFailed(ctx context.Context, ev entities.PaymentEvent) error {
	return s.recordCharge(ctx, ev, entities.TransactionFailed)
}

// HandleChargeRefunded moves delivered orders to refunded and records the
// refund. Orders in any other state are logged and left alone: the lifecycle
// table only admits refunds after delivery.
func (s *ReconcilerService) HandleChargeRefunded(ctx context.Context, ev entities.PaymentEvent) error {
	for _, orderID := range resolveOrderIDs(ev.Metadata) {
		order, err := s.orders.GetOrderByID(ctx, orderID)
		if err != nil {
			s.logger.Error("failed to load order for refund", slog.String("order_id", orderID), slog.Any("error", err))
			continue
		}

		if err := s.transitionOrder(ctx, orderID, entities.StatusRefunded, "payment refunded"); err != nil {
			s.logger.Error("failed to mark order refunded", slog.String("order_id", orderID), slog.Any("error", err))
			continue
		}
		if err := s.orders.SetPaymentStatus(ctx, orderID, entities.PaymentRefunded); err != nil {
			s.logger.Error("failed to set payment status", slog.String("order_id", orderID), slog.Any("error", err))
		}

		if err := s.transactions.SaveTransaction(ctx, entities.Transaction{
			ID:        ev.TransactionID,
			OrderID:   orderID,
			Kind:      entities.TransactionRefund,
			Status:    entities.TransactionSucceeded,
			Amount:    order.Total,
			Currency:  ev.Currency,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			s.logger.Error("failed to record refund transaction", slog.String("order_id", orderID), slog.Any("error", err))
		}

		if err := s.notifier.Send(ctx, entities.Notification{
			UserID:    order.CustomerID,
			Type:      entities.NotificationOrderRefunded,
			Title:     "Order refunded",
			Message:   fmt.Sprintf("Order %s has been refunded.", order.Number),
			ActionURL: "/orders/" + order.ID,
			Meta:      map[string]string{"order_id": order.ID, "order_number": order.Number},
		}); err != nil {
			s.logger.Error("failed to notify buyer", slog.String("order_id", orderID), slog.Any("error", err))
		}
	}
	return nil
}

// notifyReconciled fans out one buyer confirmation and one alert per distinct
// seller. Sends are individually caught so one bad recipient cannot block the
// others.
func (s *ReconcilerService) notifyReconciled(ctx context.Context, order entities.Order) {
	if err := s.notifier.Send(ctx, entities.Notification{
		UserID:    order.CustomerID,
		Type:      entities.NotificationOrderConfirmed,
		Title:     "Order confirmed",
		Message:   fmt.Sprintf("Your order %s has been confirmed and is being processed.", order.Number),
		ActionURL: "/orders/" + order.ID,
		Meta:      map[string]string{"order_id": order.ID, "order_number": order.Number},
	}); err != nil {
		s.logger.Error("failed to notify buyer",
			slog.String("order_id", order.ID),
			slog.String("user_id", order.CustomerID),
			slog.Any("error", err),
		)
	}

	for _, sellerID := range order.SellerIDs() {
		if err := s.notifier.Send(ctx, entities.Notification{
			UserID:    sellerID,
			Type:      entities.NotificationNewOrder,
			Title:     "New order",
			Message:   fmt.Sprintf("You have a new order %s.", order.Number),
			ActionURL: "/orders/" + order.ID,
			Meta: map[string]string{
				"order_id":     order.ID,
				"order_number": order.Number,
				"order_total":  fmt.Sprintf("%.2f", float64(order.Total)/100),
			},
		}); err != nil {
			s.logger.Error("failed to notify seller",
				slog.String("order_id", order.ID),
				slog.String("seller_id", sellerID),
				slog.Any("error", err),
			)
		}
	}
}

func (s *ReconcilerService) recordCharge(ctx context.Context, ev entities.PaymentEvent, status entities.TransactionStatus) error {
	orderIDs := resolveOrderIDs(ev.Metadata)
	if len(orderIDs) == 0 {
		// Charge confirmations may arrive without order metadata; the
		// transaction rows were written when the intent settled, so only
		// their status changes here.
		s.logger.Info("charge event without order reference",
			slog.String("transaction_id", ev.TransactionID),
			slog.String("status", string(status)),
		)
		if err := s.transactions.UpdateTransactionStatus(ctx, ev.TransactionID, status); err != nil {
			s.logger.Error("failed to update transaction status",
				slog.String("transaction_id", ev.TransactionID),
				slog.Any("error", err),
			)
		}
		return nil
	}

	for _, orderID := range orderIDs {
		if err := s.transactions.SaveTransaction(ctx, entities.Transaction{
			ID:        ev.TransactionID,
			OrderID:   orderID,
			Kind:      entities.TransactionCharge,
			Status:    status,
			Amount:    ev.Amount,
			Currency:  ev.Currency,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			s.logger.Error("failed to record charge", slog.String("order_id", orderID), slog.Any("error", err))
		}
	}
	return nil
}

func (s *ReconcilerService) transitionOrder(ctx context.Context, orderID string, next entities.OrderStatus, description string) error {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := order.Transition(next, description, time.Now().UTC()); err != nil {
		return fmt.Errorf("order %s in status %s: %w", orderID, order.Status, err)
	}
	if err := s.orders.UpdateStatus(ctx, orderID, next); err != nil {
		return err
	}
	if err := s.orders.AppendTracking(ctx, orderID, order.Tracking[len(order.Tracking)-1]); err != nil {
		s.logger.Error("failed to append tracking entry", slog.String("order_id", orderID), slog.Any("error", err))
	}
	s.cache.Delete(orderID)
	return nil
}

// resolveOrderIDs reads the order list from event metadata. The current
// format is a comma-delimited "order_ids"; older events carry a single
// "order_id".
func resolveOrderIDs(metadata map[string]string) []string {
	if raw, ok := metadata["order_ids"]; ok && raw != "" {
		parts := strings.Split(raw, ",")
		ids := make([]string, 0, len(parts))
		for _, part := range parts {
			if id := strings.TrimSpace(part); id != "" {
				ids = append(ids, id)
			}
		}
		if len(ids) > 0 {
			return ids
		}
	}
	if id := metadata["order_id"]; id != "" {
		return []string{id}
	}
	return nil
}
