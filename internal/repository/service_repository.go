package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kaledaljebur/HairHubConnect/internal/model"
)

// ErrServiceNotFound indicates that a service was not located in the DB.
var ErrServiceNotFound = errors.New("service not found")

// ErrInvalidDuration is returned when a service is created with a
// non-positive duration.  Booking end times are derived from the
// duration, so a zero duration would make an empty interval that can
// never conflict; the boundary rejects it instead.
var ErrInvalidDuration = errors.New("service duration must be positive")

// ServiceRepo manages persistence for salon services.
type ServiceRepo struct {
	db *sql.DB
}

func NewServiceRepo(db *sql.DB) *ServiceRepo { return &ServiceRepo{db: db} }

// Create inserts a service and populates the generated id.  Durations
// must be strictly positive.
func (r *ServiceRepo) Create(ctx context.Context, s *model.Service) error {
	if s.DurationMinutes == 0 {
		return ErrInvalidDuration
	}
	const q = `INSERT INTO services (name, duration_minutes, price_cents) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.DurationMinutes, s.PriceCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByID returns a service or ErrServiceNotFound.
func (r *ServiceRepo) GetByID(ctx context.Context, id uint64) (model.Service, error) {
	const q = `SELECT id, name, duration_minutes, price_cents, created_at FROM services WHERE id = ?`
	var s model.Service
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.PriceCents, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Service{}, ErrServiceNotFound
	}
	return s, err
}

// List returns all services ordered by name.
func (r *ServiceRepo) List(ctx context.Context) ([]model.Service, error) {
	const q = `SELECT id, name, duration_minutes, price_cents, created_at FROM services ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Service, 0)
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.PriceCents, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
