// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names used on the broker.  Both are durable.
const (
	BookingConfirmedQueue = "booking.confirmed"
	OrderPlacedQueue      = "order.placed"
)

// BookingConfirmedEvent is published after a booking commits.  It carries
// enough information for downstream consumers to log or notify without
// querying the primary database.
type BookingConfirmedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	UserID      uint64 `json:"user_id"`
	StaffID     uint64 `json:"staff_id"`
	StaffName   string `json:"staff_name"`
	ServiceID   uint64 `json:"service_id"`
	ServiceName string `json:"service_name"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
	ConfirmedAt string `json:"confirmed_at"`
}

// OrderPlacedEvent is published after a cart checkout commits.
type OrderPlacedEvent struct {
	OrderID    uint64 `json:"order_id"`
	Reference  string `json:"reference"`
	UserID     uint64 `json:"user_id"`
	ItemCount  int    `json:"item_count"`
	TotalCents uint32 `json:"total_cents"`
	PlacedAt   string `json:"placed_at"`
}
