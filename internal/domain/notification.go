package domain

import "time"

// NotificationType classifies an admin notification.
type NotificationType string

const (
	NotifyOrder       NotificationType = "order"
	NotifyProduct     NotificationType = "product"
	NotifyCustomOrder NotificationType = "custom-order"
	NotifyCustomer    NotificationType = "customer"
	NotifySystem      NotificationType = "system"
)

// Notification is an admin inbox entry. Notifications are local-only.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}
