package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/velesmarket/payment-service/internal/entities"
	"github.com/velesmarket/payment-service/pkg/retry"
	"github.com/velesmarket/payment-service/pkg/trm"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
	SaveOrder(ctx context.Context, o entities.Order) error

	// MarkPaid is an atomic conditional update: it reports false without
	// touching the row when the order already carries this transaction id
	// with a completed payment status.
	MarkPaid(ctx context.Context, orderID, transactionID string, paidAt time.Time) (bool, error)
	SetPaymentStatus(ctx context.Context, orderID string, status entities.PaymentStatus) error
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error
	AppendTracking(ctx context.Context, orderID string, entry entities.TrackingEntry) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type OrderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache) *OrderService {
	return &OrderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
	}
}

var saveRetry = retry.Config{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// CreateOrder persists a checkout order in pending state. Missing ids and the
// order number are generated here; totals are recomputed server-side so the
// monetary invariant holds no matter what the client sent.
func (s *OrderService) CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	now := time.Now().UTC()
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Number == "" {
		order.Number = newOrderNumber(now)
	}
	order.Status = entities.StatusPending
	if order.PaymentStatus == "" {
		order.PaymentStatus = entities.PaymentPending
	}
	order.CreatedAt = now
	order.UpdatedAt = now
	order.Recalculate()
	order.Tracking = []entities.TrackingEntry{{
		Status:      entities.StatusPending,
		Description: "order placed",
		CreatedAt:   now,
	}}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			return nil
		})
	}
	if err := retry.Do(saveRetry, fn); err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order created", "order_id", order.ID, "order_number", order.Number)
	return order, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := retry.Do(saveRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", orderID), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(orderID, data)
	return order, nil
}

// TransitionStatus applies one fulfillment transition, enforcing the lifecycle
// table and appending the tracking entry in the same transaction. The cached
// copy is invalidated on success.
func (s *OrderService) TransitionStatus(ctx context.Context, orderID string, next entities.OrderStatus, description string) (entities.Order, error) {
	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := order.Transition(next, description, time.Now().UTC()); err != nil {
			return err
		}

		if err := s.repo.UpdateStatus(ctx, orderID, next); err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		return s.repo.AppendTracking(ctx, orderID, order.Tracking[len(order.Tracking)-1])
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(orderID)
	s.logger.Info("order status updated",
		slog.String("order_id", orderID),
		slog.String("status", string(next)),
	)
	return order, nil
}

func (s *OrderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}

	for _, order := range orders {
		data, err := order.Marshal()
		if err != nil {
			s.logger.Error("failed to marshal order for cache", slog.String("order_id", order.ID), slog.Any("error", err))
			continue
		}
		s.cache.Set(order.ID, data)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}
