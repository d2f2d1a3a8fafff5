package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kaledaljebur/HairHubConnect/internal/model"
	"github.com/kaledaljebur/HairHubConnect/internal/repository"
)

// Catalog resolves the staff and service records referenced by a booking
// request.  Implementations return repository.ErrServiceNotFound and
// repository.ErrStaffNotFound for unknown ids.
type Catalog interface {
	ServiceByID(ctx context.Context, id uint64) (model.Service, error)
	StaffByID(ctx context.Context, id uint64) (model.Staff, error)
}

// Store is the durable collection of committed bookings.  Create must
// perform the overlap check and the insert as one atomic unit so that of
// two racing calls for overlapping intervals on the same staff member
// exactly one succeeds; the loser observes repository.ErrSlotTaken.
type Store interface {
	Create(ctx context.Context, b *model.Booking) error
	FindOverlapping(ctx context.Context, staffID uint64, start, end time.Time) ([]model.Booking, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.BookingDetail, error)
}

// Service orchestrates booking creation.  It is constructed once at
// startup with its collaborators and carries no other state, so it is
// safe for concurrent use by request handlers.
type Service struct {
	catalog Catalog
	store   Store
}

// NewService wires a Service from its collaborators.
func NewService(catalog Catalog, store Store) *Service {
	if catalog == nil || store == nil {
		panic("nil dependency passed to booking.NewService")
	}
	return &Service{catalog: catalog, store: store}
}

// Create books staffID for serviceID on behalf of userID starting at
// start.  The appointment end is start plus the service duration, which
// is strictly positive by construction (enforced when services are
// created).  On success the persisted booking, including its generated
// id, is returned.  Failure modes are the sentinel errors of this
// package; anything else is a store failure passed through wrapped.
func (s *Service) Create(ctx context.Context, userID, staffID, serviceID uint64, start time.Time) (model.Booking, error) {
	if start.IsZero() {
		return model.Booking{}, ErrInvalidStartTime
	}
	svc, err := s.catalog.ServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return model.Booking{}, ErrServiceNotFound
		}
		return model.Booking{}, fmt.Errorf("resolve service: %w", err)
	}
	if _, err := s.catalog.StaffByID(ctx, staffID); err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return model.Booking{}, ErrStaffNotFound
		}
		return model.Booking{}, fmt.Errorf("resolve staff: %w", err)
	}

	start = start.UTC()
	b := model.Booking{
		UserID:    userID,
		StaffID:   staffID,
		ServiceID: serviceID,
		StartTime: start,
		EndTime:   start.Add(time.Duration(svc.DurationMinutes) * time.Minute),
	}
	if err := s.store.Create(ctx, &b); err != nil {
		switch {
		case errors.Is(err, repository.ErrSlotTaken):
			return model.Booking{}, ErrSlotUnavailable
		case errors.Is(err, repository.ErrStaffNotFound):
			// The staff row disappeared between the catalog lookup and the
			// insert; surface the same error kind as the lookup path.
			return model.Booking{}, ErrStaffNotFound
		default:
			return model.Booking{}, fmt.Errorf("commit booking: %w", err)
		}
	}
	return b, nil
}

// HasConflict reports whether [start, end) collides with a committed
// booking for the staff member.  It is a read-only convenience for
// availability display; Create never relies on it because the store
// re-checks inside its own transaction.
func (s *Service) HasConflict(ctx context.Context, staffID uint64, start, end time.Time) (bool, error) {
	overlapping, err := s.store.FindOverlapping(ctx, staffID, start.UTC(), end.UTC())
	if err != nil {
		return false, err
	}
	return len(overlapping) > 0, nil
}

// ListForUser returns the caller's bookings for the dashboard, newest
// first.
func (s *Service) ListForUser(ctx context.Context, userID uint64) ([]model.BookingDetail, error) {
	return s.store.ListByUser(ctx, userID)
}
