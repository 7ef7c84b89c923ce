package entities

import "time"

type NotificationType string

const (
	NotificationOrderConfirmed NotificationType = "order_confirmed"
	NotificationNewOrder       NotificationType = "new_order"
	NotificationPaymentFailed  NotificationType = "payment_failed"
	NotificationOrderRefunded  NotificationType = "order_refunded"
)

type Notification struct {
	ID        string
	UserID    string
	Type      NotificationType
	Title     string
	Message   string
	ActionURL string
	Meta      map[string]string
	Read      bool
	CreatedAt time.Time
}
