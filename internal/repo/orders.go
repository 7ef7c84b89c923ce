package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/velesmarket/payment-service/internal/entities"
	"github.com/velesmarket/payment-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"order_id", "order_number", "customer_id", "seller_id", "driver_id",
	"status", "payment_method", "payment_status", "transaction_id", "paid_at",
	"subtotal", "shipping_fee", "marketplace_fee", "taxes", "total",
	"created_at", "updated_at",
}

type OrderRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewOrderRepo(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *OrderRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.orderItems(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	tracking, err := r.orderTracking(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items, tracking), nil
}

func (r *OrderRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.OrderID
	}

	query, args = r.qb.Select("order_id", "position", "product_id", "seller_id", "title", "price", "quantity", "color").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[string][]Item, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	query, args = r.qb.Select("order_id", "status", "description", "created_at").
		From("order_tracking").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "created_at").
		MustSql()

	var tracking []TrackingEntry
	if err := r.selectContext(ctx, &tracking, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order tracking: %w", err)
	}
	trackingMap := make(map[string][]TrackingEntry, len(ids))
	for _, entry := range tracking {
		trackingMap[entry.OrderID] = append(trackingMap[entry.OrderID], entry)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.OrderID], trackingMap[order.OrderID]))
	}
	return result, nil
}

func (r *OrderRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.Number, o.CustomerID, nullString(o.SellerID), nullString(o.DriverID),
			string(o.Status), o.PaymentMethod, string(o.PaymentStatus),
			nullString(o.TransactionID), nullTime(o.PaidAt),
			o.Subtotal, o.ShippingFee, o.MarketplaceFee, o.Taxes, o.Total,
			o.CreatedAt, o.UpdatedAt,
		).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if err := r.saveItems(ctx, o.ID, o.Items); err != nil {
		return err
	}

	for _, entry := range o.Tracking {
		if err := r.AppendTracking(ctx, o.ID, entry); err != nil {
			return err
		}
	}
	return nil
}

// MarkPaid transitions the order to processing/completed and stamps the
// gateway transaction id and paid-at in a single conditional UPDATE. The WHERE
// clause excludes orders that already carry this exact idempotency marker, so
// a duplicate webhook delivery affects zero rows and is reported as updated ==
// false. The caller must distinguish a missing order beforehand.
func (r *OrderRepo) MarkPaid(ctx context.Context, orderID, transactionID string, paidAt time.Time) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.StatusProcessing)).
		Set("payment_status", string(entities.PaymentCompleted)).
		Set("transaction_id", transactionID).
		Set("paid_at", paidAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"order_id": orderID}).
		Where(sq.Expr(
			"NOT (payment_status = ? AND transaction_id = ?)",
			string(entities.PaymentCompleted), transactionID,
		)).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to mark order paid: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *OrderRepo) SetPaymentStatus(ctx context.Context, orderID string, status entities.PaymentStatus) error {
	query, args := r.qb.Update("orders").
		Set("payment_status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set payment status: %w", err)
	}
	return nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepo) AppendTracking(ctx context.Context, orderID string, entry entities.TrackingEntry) error {
	query, args := r.qb.Insert("order_tracking").
		Columns("order_id", "status", "description", "created_at").
		Values(orderID, string(entry.Status), entry.Description, entry.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append tracking entry: %w", err)
	}
	return nil
}

func (r *OrderRepo) saveItems(ctx context.Context, orderID string, items []entities.Item) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "product_id", "seller_id", "title", "price", "quantity", "color").
		Suffix("ON CONFLICT (order_id, position) DO NOTHING")

	for i, item := range items {
		q = q.Values(
			orderID, i, item.ProductID, nullString(item.SellerID),
			item.Title, item.Price, item.Quantity, nullString(item.Color),
		)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *OrderRepo) orderItems(ctx context.Context, orderID string) ([]Item, error) {
	query, args := r.qb.Select("order_id", "position", "product_id", "seller_id", "title", "price", "quantity", "color").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	return items, nil
}

func (r *OrderRepo) orderTracking(ctx context.Context, orderID string) ([]TrackingEntry, error) {
	query, args := r.qb.Select("order_id", "status", "description", "created_at").
		From("order_tracking").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at").
		MustSql()

	var tracking []TrackingEntry
	if err := r.selectContext(ctx, &tracking, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get order tracking: %w", err)
	}
	return tracking, nil
}

func (r *OrderRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *OrderRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *OrderRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
