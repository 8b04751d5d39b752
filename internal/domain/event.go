package domain

import "time"

// OrderEvent is emitted to the analytics pipeline when an order is placed,
// cancelled or changes status.
type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	StoreID   string    `json:"store_id"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
