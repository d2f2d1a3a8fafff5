package model

import "time"

// Service describes a bookable salon service such as a haircut or a
// colouring.  DurationMinutes drives the end time of every booking made
// for the service and must be strictly positive; the repository rejects
// inserts that violate this.  Prices are stored in integer cents.
//
// Fields:
//  ID              – primary key identifier.
//  Name            – service name.
//  DurationMinutes – length of the service in minutes (> 0).
//  PriceCents      – price in cents.
//  CreatedAt       – creation timestamp.
type Service struct {
	ID              uint64    // services.id
	Name            string    // services.name
	DurationMinutes uint32    // services.duration_minutes
	PriceCents      uint32    // services.price_cents
	CreatedAt       time.Time // services.created_at
}
