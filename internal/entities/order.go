package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusProcessing     OrderStatus = "processing"
	StatusInTransit      OrderStatus = "in_transit"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
	StatusRefunded       OrderStatus = "refunded"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrder         = errors.New("invalid order data")
	ErrInvalidTransition    = errors.New("invalid order status transition")
	ErrProductNotFound      = errors.New("product not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

// transitions is the full lifecycle table. Statuses not present as keys
// (delivered is reachable only to refunded, cancelled and refunded are terminal)
// allow nothing beyond what is listed.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:        {StatusProcessing, StatusCancelled},
	StatusProcessing:     {StatusInTransit, StatusCancelled},
	StatusInTransit:      {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered, StatusCancelled},
	StatusDelivered:      {StatusRefunded},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Item is a line item: a frozen copy of product title and price taken at
// checkout, so historical orders are stable against later product edits.
type Item struct {
	ProductID string
	SellerID  string
	Title     string
	Price     int64
	Quantity  int
	Color     string
}

func (i Item) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

type TrackingEntry struct {
	Status      OrderStatus
	Description string
	CreatedAt   time.Time
}

type Order struct {
	ID         string
	Number     string
	CustomerID string
	SellerID   string
	DriverID   string

	Status        OrderStatus
	PaymentMethod string
	PaymentStatus PaymentStatus
	TransactionID string
	PaidAt        time.Time

	// Money is kept in the smallest currency unit.
	Subtotal       int64
	ShippingFee    int64
	MarketplaceFee int64
	Taxes          int64
	Total          int64

	Items    []Item
	Tracking []TrackingEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Recalculate restores the monetary invariant: subtotal is the sum of line
// item subtotals and total is subtotal plus fees and taxes. Callers run it
// before every save.
func (o *Order) Recalculate() {
	var subtotal int64
	for _, item := range o.Items {
		subtotal += item.Subtotal()
	}
	o.Subtotal = subtotal
	o.Total = o.Subtotal + o.ShippingFee + o.MarketplaceFee + o.Taxes
}

// Transition moves the order to the next lifecycle status and appends a
// tracking entry. Returns ErrInvalidTransition for anything outside the table.
func (o *Order) Transition(next OrderStatus, description string, at time.Time) error {
	if !o.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	o.Status = next
	o.UpdatedAt = at
	o.Tracking = append(o.Tracking, TrackingEntry{
		Status:      next,
		Description: description,
		CreatedAt:   at,
	})
	return nil
}

// SellerIDs returns the distinct sellers across line items, in first-seen order.
func (o *Order) SellerIDs() []string {
	seen := make(map[string]struct{}, len(o.Items))
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		if item.SellerID == "" {
			continue
		}
		if _, ok := seen[item.SellerID]; ok {
			continue
		}
		seen[item.SellerID] = struct{}{}
		ids = append(ids, item.SellerID)
	}
	return ids
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(o); err != nil {
		return ErrInvalidOrder
	}
	return nil
}
