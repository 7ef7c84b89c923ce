package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/velesmarket/payment-service/internal/entities"
)

type Order struct {
	OrderID        string         `db:"order_id"`
	OrderNumber    string         `db:"order_number"`
	CustomerID     string         `db:"customer_id"`
	SellerID       sql.NullString `db:"seller_id"`
	DriverID       sql.NullString `db:"driver_id"`
	Status         string         `db:"status"`
	PaymentMethod  string         `db:"payment_method"`
	PaymentStatus  string         `db:"payment_status"`
	TransactionID  sql.NullString `db:"transaction_id"`
	PaidAt         sql.NullTime   `db:"paid_at"`
	Subtotal       int64          `db:"subtotal"`
	ShippingFee    int64          `db:"shipping_fee"`
	MarketplaceFee int64          `db:"marketplace_fee"`
	Taxes          int64          `db:"taxes"`
	Total          int64          `db:"total"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type Item struct {
	OrderID   string         `db:"order_id"`
	Position  int            `db:"position"`
	ProductID string         `db:"product_id"`
	SellerID  sql.NullString `db:"seller_id"`
	Title     string         `db:"title"`
	Price     int64          `db:"price"`
	Quantity  int            `db:"quantity"`
	Color     sql.NullString `db:"color"`
}

type TrackingEntry struct {
	OrderID     string    `db:"order_id"`
	Status      string    `db:"status"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

type Product struct {
	ProductID  string         `db:"product_id"`
	SellerID   string         `db:"seller_id"`
	Title      string         `db:"title"`
	Price      int64          `db:"price"`
	Quantity   int            `db:"quantity"`
	Sold       int            `db:"sold"`
	OutOfStock bool           `db:"out_of_stock"`
	Status     sql.NullString `db:"status"`
}

type Variant struct {
	ProductID  string `db:"product_id"`
	Color      string `db:"color"`
	Price      int64  `db:"price"`
	Quantity   int    `db:"quantity"`
	OutOfStock bool   `db:"out_of_stock"`
}

type Transaction struct {
	TransactionID string    `db:"transaction_id"`
	OrderID       string    `db:"order_id"`
	Kind          string    `db:"kind"`
	Status        string    `db:"status"`
	Amount        int64     `db:"amount"`
	Currency      string    `db:"currency"`
	CreatedAt     time.Time `db:"created_at"`
}

type Notification struct {
	NotificationID string         `db:"notification_id"`
	UserID         string         `db:"user_id"`
	Type           string         `db:"type"`
	Title          string         `db:"title"`
	Message        string         `db:"message"`
	ActionURL      sql.NullString `db:"action_url"`
	Meta           []byte         `db:"meta"`
	Read           bool           `db:"read"`
	CreatedAt      time.Time      `db:"created_at"`
}

func OrderToEntity(o Order, items []Item, tracking []TrackingEntry) entities.Order {
	order := entities.Order{
		ID:             o.OrderID,
		Number:         o.OrderNumber,
		CustomerID:     o.CustomerID,
		SellerID:       nullStringToString(o.SellerID),
		DriverID:       nullStringToString(o.DriverID),
		Status:         entities.OrderStatus(o.Status),
		PaymentMethod:  o.PaymentMethod,
		PaymentStatus:  entities.PaymentStatus(o.PaymentStatus),
		TransactionID:  nullStringToString(o.TransactionID),
		Subtotal:       o.Subtotal,
		ShippingFee:    o.ShippingFee,
		MarketplaceFee: o.MarketplaceFee,
		Taxes:          o.Taxes,
		Total:          o.Total,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	if o.PaidAt.Valid {
		order.PaidAt = o.PaidAt.Time
	}

	if len(items) > 0 {
		order.Items = make([]entities.Item, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}
	if len(tracking) > 0 {
		order.Tracking = make([]entities.TrackingEntry, 0, len(tracking))
		for _, tr := range tracking {
			order.Tracking = append(order.Tracking, entities.TrackingEntry{
				Status:      entities.OrderStatus(tr.Status),
				Description: tr.Description,
				CreatedAt:   tr.CreatedAt,
			})
		}
	}

	return order
}

func ItemToEntity(i Item) entities.Item {
	return entities.Item{
		ProductID: i.ProductID,
		SellerID:  nullStringToString(i.SellerID),
		Title:     i.Title,
		Price:     i.Price,
		Quantity:  i.Quantity,
		Color:     nullStringToString(i.Color),
	}
}

func ProductToEntity(p Product, variants []Variant) entities.Product {
	product := entities.Product{
		ID:         p.ProductID,
		SellerID:   p.SellerID,
		Title:      p.Title,
		Price:      p.Price,
		Quantity:   p.Quantity,
		Sold:       p.Sold,
		OutOfStock: p.OutOfStock,
		Status:     nullStringToString(p.Status),
	}
	if len(variants) > 0 {
		product.Variants = make([]entities.Variant, 0, len(variants))
		for _, v := range variants {
			product.Variants = append(product.Variants, entities.Variant{
				Color:      v.Color,
				Price:      v.Price,
				Quantity:   v.Quantity,
				OutOfStock: v.OutOfStock,
			})
		}
	}
	return product
}

func NotificationToEntity(n Notification) (entities.Notification, error) {
	notification := entities.Notification{
		ID:        n.NotificationID,
		UserID:    n.UserID,
		Type:      entities.NotificationType(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		ActionURL: nullStringToString(n.ActionURL),
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
	if len(n.Meta) > 0 {
		if err := json.Unmarshal(n.Meta, &notification.Meta); err != nil {
			return entities.Notification{}, err
		}
	}
	return notification, nil
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
