package model

import "time"

// CartItem links a user to a product they intend to buy.  A user has at
// most one row per product; adding the same product again increments
// Quantity instead of inserting a duplicate.
type CartItem struct {
	ID        uint64    // cart_items.id
	UserID    uint64    // cart_items.user_id
	ProductID uint64    // cart_items.product_id
	Quantity  uint32    // cart_items.quantity (>= 1)
	CreatedAt time.Time // cart_items.created_at
}

// CartLine is a cart item joined with its product for display and for
// computing totals at checkout.
type CartLine struct {
	ProductID     uint64 `json:"product_id"`
	ProductName   string `json:"product_name"`
	UnitCents     uint32 `json:"unit_cents"`
	Quantity      uint32 `json:"quantity"`
	SubtotalCents uint32 `json:"subtotal_cents"`
}

// Order is the result of checking out a cart.  Checkout converts the
// user's cart items into an order plus its items and deletes the cart
// rows, all inside one transaction.
//
// Fields:
//  ID         – primary key identifier.
//  UserID     – user who placed the order.
//  Reference  – external order reference (UUID).
//  Status     – order state; new orders start as "PENDING".
//  TotalCents – grand total in cents.
//  OrderDate  – when the order was placed (UTC).
type Order struct {
	ID         uint64    // orders.id
	UserID     uint64    // orders.user_id
	Reference  string    // orders.reference
	Status     string    // orders.status
	TotalCents uint32    // orders.total_cents
	OrderDate  time.Time // orders.order_date
}

// OrderItem is a single line of an order, priced at checkout time.
type OrderItem struct {
	ID            uint64 // order_items.id
	OrderID       uint64 // order_items.order_id
	ProductID     uint64 // order_items.product_id
	Quantity      uint32 // order_items.quantity
	SubtotalCents uint32 // order_items.subtotal_cents
}
