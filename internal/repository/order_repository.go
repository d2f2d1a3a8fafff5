package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kaledaljebur/HairHubConnect/internal/model"
)

// ErrEmptyCart is returned by Checkout when the user has nothing to
// check out.
var ErrEmptyCart = errors.New("cart is empty")

// OrderRepo persists orders and performs checkout.
type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

// Checkout converts the user's cart into an order in one transaction:
// read the cart lines with their current product prices (locking the
// cart rows), sum the total, insert the order and its items, then
// delete the cart rows.  Either everything commits or nothing does, so
// no partial order is ever observable.  Prices are captured at checkout
// time; later product price changes do not affect placed orders.
func (r *OrderRepo) Checkout(ctx context.Context, userID uint64) (model.Order, []model.OrderItem, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Order{}, nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const sel = `SELECT ci.product_id, ci.quantity, p.price_cents
	             FROM cart_items ci
	             JOIN products p ON p.id = ci.product_id
	             WHERE ci.user_id = ?
	             FOR UPDATE`
	rows, err := tx.QueryContext(ctx, sel, userID)
	if err != nil {
		return model.Order{}, nil, err
	}
	type line struct {
		productID uint64
		qty       uint32
		unitCents uint32
	}
	var lines []line
	for rows.Next() {
		var l line
		if err := rows.Scan(&l.productID, &l.qty, &l.unitCents); err != nil {
			rows.Close()
			return model.Order{}, nil, err
		}
		lines = append(lines, l)
	}
	if err := rows.Close(); err != nil {
		return model.Order{}, nil, err
	}
	if len(lines) == 0 {
		return model.Order{}, nil, ErrEmptyCart
	}

	var total uint32
	for _, l := range lines {
		total += l.unitCents * l.qty
	}

	order := model.Order{
		UserID:     userID,
		Reference:  uuid.NewString(),
		Status:     "PENDING",
		TotalCents: total,
		OrderDate:  time.Now().UTC(),
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO orders (user_id, reference, status, total_cents, order_date) VALUES (?, ?, ?, ?, ?)`,
		order.UserID, order.Reference, order.Status, order.TotalCents, order.OrderDate)
	if err != nil {
		return model.Order{}, nil, err
	}
	oid, err := res.LastInsertId()
	if err != nil {
		return model.Order{}, nil, err
	}
	order.ID = uint64(oid)

	// Bulk insert the order items in a single statement.
	q := `INSERT INTO order_items (order_id, product_id, quantity, subtotal_cents) VALUES `
	args := make([]interface{}, 0, len(lines)*4)
	items := make([]model.OrderItem, 0, len(lines))
	for i, l := range lines {
		if i > 0 {
			q += ","
		}
		q += "(?, ?, ?, ?)"
		sub := l.unitCents * l.qty
		args = append(args, order.ID, l.productID, l.qty, sub)
		items = append(items, model.OrderItem{
			OrderID:       order.ID,
			ProductID:     l.productID,
			Quantity:      l.qty,
			SubtotalCents: sub,
		})
	}
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		return model.Order{}, nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = ?`, userID); err != nil {
		return model.Order{}, nil, err
	}

	if err := tx.Commit(); err != nil {
		return model.Order{}, nil, err
	}
	committed = true
	return order, items, nil
}

// ListByUser returns the user's placed orders, newest first.
func (r *OrderRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Order, error) {
	const q = `SELECT id, user_id, reference, status, total_cents, order_date
	           FROM orders WHERE user_id = ? ORDER BY order_date DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Reference, &o.Status, &o.TotalCents, &o.OrderDate); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
