// Package booking implements the appointment scheduling core: a pure
// interval conflict checker and a Service that validates requests,
// derives the appointment interval from the service duration and
// delegates the atomic conflict-check-and-insert to a Store.
package booking

import "time"

// Interval is a half-open [Start, End) time range.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.  Touching intervals — one ending exactly when
// the other begins — do not overlap, so back-to-back appointments are
// legal.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FirstConflict returns the first member of existing that overlaps
// [start, end), or nil when the candidate interval is free.  The SQL
// predicate in the MySQL store mirrors this function; keeping both in
// sync is what makes the in-memory store used in tests faithful.
func FirstConflict(existing []Interval, start, end time.Time) *Interval {
	for i := range existing {
		if Overlaps(existing[i].Start, existing[i].End, start, end) {
			return &existing[i]
		}
	}
	return nil
}
