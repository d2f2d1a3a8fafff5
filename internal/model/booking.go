package model

import "time"

// Booking records a committed appointment of a staff member for a
// service on behalf of a user.  StartTime and EndTime form a half-open
// interval [StartTime, EndTime) in UTC; EndTime is always derived as
// StartTime plus the service duration.  For a given staff member no two
// bookings may overlap — that invariant is guaranteed by the repository,
// which checks and inserts inside a single transaction.  A booking has
// no status column: it either does not exist or is committed.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – user who made the booking.
//  StaffID   – staff member being booked.
//  ServiceID – service the booking is for.
//  StartTime – appointment start (UTC).
//  EndTime   – appointment end (UTC), start + service duration.
//  CreatedAt – creation timestamp.
type Booking struct {
	ID        uint64    // bookings.id
	UserID    uint64    // bookings.user_id
	StaffID   uint64    // bookings.staff_id
	ServiceID uint64    // bookings.service_id
	StartTime time.Time // bookings.start_time
	EndTime   time.Time // bookings.end_time
	CreatedAt time.Time // bookings.created_at
}

// BookingDetail is a booking joined with its staff and service names,
// as shown on the customer's dashboard.
type BookingDetail struct {
	ID          uint64    `json:"id"`
	StaffID     uint64    `json:"staff_id"`
	StaffName   string    `json:"staff_name"`
	ServiceID   uint64    `json:"service_id"`
	ServiceName string    `json:"service_name"`
	PriceCents  uint32    `json:"price_cents"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}
