package model

import "time"

// Staff represents a salon employee who can be booked for services.
// Staff records are created by an owner and are immutable afterwards
// as far as booking is concerned.  AvailableFrom/AvailableTo describe
// the advertised working hours as times of day ("15:04"); they are
// stored for display and are not enforced by the booking flow.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – display name of the staff member.
//  AvailableFrom – start of the advertised working hours ("HH:MM").
//  AvailableTo   – end of the advertised working hours ("HH:MM").
//  CreatedAt     – creation timestamp.
type Staff struct {
	ID            uint64    // staff.id
	Name          string    // staff.name
	AvailableFrom string    // staff.available_from (TIME, "HH:MM")
	AvailableTo   string    // staff.available_to (TIME, "HH:MM")
	CreatedAt     time.Time // staff.created_at
}
