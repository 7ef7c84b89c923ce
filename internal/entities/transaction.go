package entities

import "time"

type TransactionKind string

const (
	TransactionCharge TransactionKind = "charge"
	TransactionRefund TransactionKind = "refund"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionSucceeded TransactionStatus = "succeeded"
	TransactionFailed    TransactionStatus = "failed"
)

// Transaction records one payment-gateway operation against an order. The
// gateway transaction id together with the order payment status forms the
// idempotency marker for duplicate webhook deliveries.
type Transaction struct {
	ID        string
	OrderID   string
	Kind      TransactionKind
	Status    TransactionStatus
	Amount    int64
	Currency  string
	CreatedAt time.Time
}

// PaymentEvent is the parsed payload of a gateway webhook event. Metadata
// carries the order ids: "order_ids" as a comma-delimited list in the current
// format, "order_id" as the legacy single-id fallback.
type PaymentEvent struct {
	TransactionID string
	Amount        int64
	Currency      string
	Metadata      map[string]string
}
