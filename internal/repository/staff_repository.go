// Package repository contains the data access layer over MySQL.  Each
// repository is a small struct bound to a *sql.DB; methods use raw SQL
// with placeholders and return sentinel errors that handlers translate
// into HTTP statuses.  All timestamps are stored and compared in UTC.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kaledaljebur/HairHubConnect/internal/model"
)

// ErrStaffNotFound indicates that the referenced staff member does not
// exist.
var ErrStaffNotFound = errors.New("staff member not found")

// StaffRepo manages persistence for salon staff.  Staff rows are created
// by an owner during seeding and read by the booking flow; the
// available_from/available_to working-hours columns are carried through
// untouched and never consulted for conflict checks.
type StaffRepo struct {
	db *sql.DB
}

func NewStaffRepo(db *sql.DB) *StaffRepo { return &StaffRepo{db: db} }

// Create inserts a staff member and populates the generated id.
func (r *StaffRepo) Create(ctx context.Context, s *model.Staff) error {
	const q = `INSERT INTO staff (name, available_from, available_to) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.AvailableFrom, s.AvailableTo)
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

// GetByID returns a staff member or ErrStaffNotFound.
func (r *StaffRepo) GetByID(ctx context.Context, id uint64) (model.Staff, error) {
	const q = `SELECT id, name, TIME_FORMAT(available_from, '%H:%i'), TIME_FORMAT(available_to, '%H:%i'), created_at
	           FROM staff WHERE id = ?`
	var s model.Staff
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Name, &s.AvailableFrom, &s.AvailableTo, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Staff{}, ErrStaffNotFound
	}
	return s, err
}

// List returns all staff members ordered by name for the booking form.
func (r *StaffRepo) List(ctx context.Context) ([]model.Staff, error) {
	const q = `SELECT id, name, TIME_FORMAT(available_from, '%H:%i'), TIME_FORMAT(available_to, '%H:%i'), created_at
	           FROM staff ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Staff, 0)
	for rows.Next() {
		var s model.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.AvailableFrom, &s.AvailableTo, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
