package repository

import (
	"context"
	"database/sql"

	"github.com/kaledaljebur/HairHubConnect/internal/model"
)

// CartRepo manages the per-user shopping cart.  A user holds at most one
// row per product; AddItem relies on the (user_id, product_id) unique
// key to bump the quantity instead of inserting a duplicate.
type CartRepo struct {
	db *sql.DB
}

func NewCartRepo(db *sql.DB) *CartRepo { return &CartRepo{db: db} }

// AddItem puts qty units of a product into the user's cart, incrementing
// the existing line when one is present.  The product must exist; the
// foreign key rejects unknown ids and callers should pre-check with
// ProductRepo.GetByID to surface ErrProductNotFound cleanly.
func (r *CartRepo) AddItem(ctx context.Context, userID, productID uint64, qty uint32) error {
	const q = `INSERT INTO cart_items (user_id, product_id, quantity) VALUES (?, ?, ?)
	           ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)`
	_, err := r.db.ExecContext(ctx, q, userID, productID, qty)
	return err
}

// Lines returns the user's cart joined with product names and prices.
func (r *CartRepo) Lines(ctx context.Context, userID uint64) ([]model.CartLine, error) {
	const q = `SELECT ci.product_id, p.name, p.price_cents, ci.quantity, p.price_cents * ci.quantity
	           FROM cart_items ci
	           JOIN products p ON p.id = ci.product_id
	           WHERE ci.user_id = ?
	           ORDER BY p.name`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.CartLine, 0)
	for rows.Next() {
		var l model.CartLine
		if err := rows.Scan(&l.ProductID, &l.ProductName, &l.UnitCents, &l.Quantity, &l.SubtotalCents); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
