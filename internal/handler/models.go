package handler

import (
	"time"

	"github.com/velesmarket/payment-service/internal/entities"
)

// Order представляет заказ
type Order struct {
	ID             string          `json:"id"`
	OrderNumber    string          `json:"order_number"`
	CustomerID     string          `json:"customer_id" validate:"required"`
	Status         string          `json:"status"`
	PaymentMethod  string          `json:"payment_method,omitempty"`
	PaymentStatus  string          `json:"payment_status"`
	TransactionID  string          `json:"transaction_id,omitempty"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
	Subtotal       int64           `json:"subtotal"`
	ShippingFee    int64           `json:"shipping_fee" validate:"gte=0"`
	MarketplaceFee int64           `json:"marketplace_fee" validate:"gte=0"`
	Taxes          int64           `json:"taxes" validate:"gte=0"`
	Total          int64           `json:"total"`
	Items          []Item          `json:"items" validate:"required,min=1,dive"`
	Tracking       []TrackingEntry `json:"tracking,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Item товар в заказе
type Item struct {
	ProductID string `json:"product_id" validate:"required"`
	SellerID  string `json:"seller_id" validate:"required"`
	Title     string `json:"title,omitempty"`
	Price     int64  `json:"price" validate:"gte=0"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Color     string `json:"color,omitempty"`
}

// TrackingEntry запись истории статусов заказа
type TrackingEntry struct {
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notification уведомление пользователя
type Notification struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	ActionURL string            `json:"action_url,omitempty"`
	Meta      map[string]string `json:"meta,omitempty"`
	Read      bool              `json:"read"`
	CreatedAt time.Time         `json:"created_at"`
}

// UpdateStatusRequest запрос на смену статуса заказа
type UpdateStatusRequest struct {
	Status      string `json:"status" validate:"required,oneof=processing in_transit out_for_delivery delivered cancelled refunded"`
	Description string `json:"description,omitempty"`
}

// WebhookEvent событие платёжного шлюза
type WebhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type" validate:"required"`
	Data struct {
		Object WebhookObject `json:"object"`
	} `json:"data"`
}

// WebhookObject полезная нагрузка события
type WebhookObject struct {
	ID       string            `json:"id" validate:"required"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

func ItemEntityToJSON(i entities.Item) Item {
	return Item{
		ProductID: i.ProductID,
		SellerID:  i.SellerID,
		Title:     i.Title,
		Price:     i.Price,
		Quantity:  i.Quantity,
		Color:     i.Color,
	}
}

func ItemJSONToEntity(i Item) entities.Item {
	return entities.Item{
		ProductID: i.ProductID,
		SellerID:  i.SellerID,
		Title:     i.Title,
		Price:     i.Price,
		Quantity:  i.Quantity,
		Color:     i.Color,
	}
}

func TrackingEntityToJSON(e entities.TrackingEntry) TrackingEntry {
	return TrackingEntry{
		Status:      string(e.Status),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}
	tracking := make([]TrackingEntry, 0, len(o.Tracking))
	for _, e := range o.Tracking {
		tracking = append(tracking, TrackingEntityToJSON(e))
	}

	var paidAt *time.Time
	if !o.PaidAt.IsZero() {
		t := o.PaidAt
		paidAt = &t
	}

	return Order{
		ID:             o.ID,
		OrderNumber:    o.Number,
		CustomerID:     o.CustomerID,
		Status:         string(o.Status),
		PaymentMethod:  o.PaymentMethod,
		PaymentStatus:  string(o.PaymentStatus),
		TransactionID:  o.TransactionID,
		PaidAt:         paidAt,
		Subtotal:       o.Subtotal,
		ShippingFee:    o.ShippingFee,
		MarketplaceFee: o.MarketplaceFee,
		Taxes:          o.Taxes,
		Total:          o.Total,
		Items:          items,
		Tracking:       tracking,
		CreatedAt:      o.CreatedAt,
	}
}

func OrderJSONToEntity(o Order) entities.Order {
	items := make([]entities.Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemJSONToEntity(it))
	}

	return entities.Order{
		ID:             o.ID,
		Number:         o.OrderNumber,
		CustomerID:     o.CustomerID,
		PaymentMethod:  o.PaymentMethod,
		ShippingFee:    o.ShippingFee,
		MarketplaceFee: o.MarketplaceFee,
		Taxes:          o.Taxes,
		Items:          items,
	}
}

func NotificationEntityToJSON(n entities.Notification) Notification {
	return Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		ActionURL: n.ActionURL,
		Meta:      n.Meta,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func PaymentEventFromWebhook(obj WebhookObject) entities.PaymentEvent {
	return entities.PaymentEvent{
		TransactionID: obj.ID,
		Amount:        obj.Amount,
		Currency:      obj.Currency,
		Metadata:      obj.Metadata,
	}
}
