package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kaledaljebur/HairHubConnect/internal/model"
)

// ErrProductNotFound indicates that the referenced product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepo manages persistence for store products.
type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{db: db} }

// Create inserts a product and populates the generated id.
func (r *ProductRepo) Create(ctx context.Context, p *model.Product) error {
	const q = `INSERT INTO products (name, description, price_cents, image_path, stock) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, p.Name, p.Description, p.PriceCents, p.ImagePath, p.Stock)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// GetByID returns a product or ErrProductNotFound.
func (r *ProductRepo) GetByID(ctx context.Context, id uint64) (model.Product, error) {
	const q = `SELECT id, name, description, price_cents, image_path, stock, created_at FROM products WHERE id = ?`
	var p model.Product
	err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.ImagePath, &p.Stock, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Product{}, ErrProductNotFound
	}
	return p, err
}

// List returns all products ordered by name for the storefront.
func (r *ProductRepo) List(ctx context.Context) ([]model.Product, error) {
	const q = `SELECT id, name, description, price_cents, image_path, stock, created_at FROM products ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.ImagePath, &p.Stock, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
