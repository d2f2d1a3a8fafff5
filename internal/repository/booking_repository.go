package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/kaledaljebur/HairHubConnect/internal/model"
)

// ErrSlotTaken is returned by Create when the requested interval overlaps
// a committed booking for the same staff member.
var ErrSlotTaken = errors.New("time slot is already booked")

// BookingRepo is the durable reservation store.  Bookings are keyed by
// staff member; for each staff member the committed [start_time,
// end_time) intervals are pairwise disjoint.  The repository guarantees
// that invariant itself: Create performs the overlap check and the
// insert inside one transaction while holding a row lock on the staff
// record, so two racing inserts for the same staff member are
// serialized and at most one of two overlapping candidates commits.
type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// overlapCond selects bookings intersecting [?, ?) under half-open
// semantics: existing.start < end AND existing.end > start.  A booking
// ending exactly when another starts does not match.
const overlapCond = `staff_id = ? AND start_time < ? AND end_time > ?`

// FindOverlapping returns every booking for staffID whose interval
// intersects [start, end), ordered by start time.  The result reflects
// all previously committed bookings; an empty slice means the interval
// is free at the moment of the query.
func (r *BookingRepo) FindOverlapping(ctx context.Context, staffID uint64, start, end time.Time) ([]model.Booking, error) {
	const q = `SELECT id, user_id, staff_id, service_id, start_time, end_time, created_at
	           FROM bookings WHERE ` + overlapCond + ` ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, q, staffID, end, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.StaffID, &b.ServiceID, &b.StartTime, &b.EndTime, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Create commits a booking if and only if its interval is free for the
// staff member.  The overlap re-check and the insert run in a single
// transaction that first locks the staff row with SELECT ... FOR UPDATE;
// concurrent Create calls for the same staff member therefore execute
// one at a time, while different staff members proceed in parallel.  On
// success the generated id and created_at are populated on b.  Returns
// ErrStaffNotFound when the staff row does not exist and ErrSlotTaken on
// overlap; in both cases nothing is persisted.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Serialize per staff member for the remainder of the transaction.
	var lockedID uint64
	err = tx.QueryRowContext(ctx, `SELECT id FROM staff WHERE id = ? FOR UPDATE`, b.StaffID).Scan(&lockedID)
	if err == sql.ErrNoRows {
		return ErrStaffNotFound
	}
	if err != nil {
		return err
	}

	var conflicts int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE `+overlapCond,
		b.StaffID, b.EndTime, b.StartTime).Scan(&conflicts)
	if err != nil {
		return err
	}
	if conflicts > 0 {
		return ErrSlotTaken
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (user_id, staff_id, service_id, start_time, end_time) VALUES (?, ?, ?, ?, ?)`,
		b.UserID, b.StaffID, b.ServiceID, b.StartTime, b.EndTime)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	// Query back the row to populate DB-side defaults.
	err = tx.QueryRowContext(ctx, `SELECT created_at FROM bookings WHERE id = ?`, b.ID).Scan(&b.CreatedAt)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// ListByUser returns the user's bookings joined with staff and service
// names, newest first, for the dashboard.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.BookingDetail, error) {
	const q = `SELECT b.id, b.staff_id, st.name, b.service_id, sv.name, sv.price_cents, b.start_time, b.end_time
	           FROM bookings b
	           JOIN staff st ON st.id = b.staff_id
	           JOIN services sv ON sv.id = b.service_id
	           WHERE b.user_id = ?
	           ORDER BY b.start_time DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.BookingDetail, 0)
	for rows.Next() {
		var d model.BookingDetail
		if err := rows.Scan(&d.ID, &d.StaffID, &d.StaffName, &d.ServiceID, &d.ServiceName, &d.PriceCents, &d.StartTime, &d.EndTime); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
