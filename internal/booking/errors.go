package booking

import "errors"

var (
	// ErrServiceNotFound is returned when the referenced service id does
	// not exist.  Nothing is written to the store in that case.
	ErrServiceNotFound = errors.New("service not found")

	// ErrStaffNotFound is returned when the referenced staff id does not
	// exist.
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrSlotUnavailable is returned when the requested interval overlaps
	// an existing booking for the same staff member.  The caller should
	// pick another time; the condition is never retried automatically.
	ErrSlotUnavailable = errors.New("time slot is already booked")

	// ErrInvalidStartTime is returned for a zero start time before any
	// store access happens.
	ErrInvalidStartTime = errors.New("invalid start time")
)
