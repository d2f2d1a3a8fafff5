package booking

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/kaledaljebur/HairHubConnect/internal/model"
	"github.com/kaledaljebur/HairHubConnect/internal/repository"
)

// memCatalog serves fixed staff and service records, returning the same
// sentinels as the SQL repositories for unknown ids.
type memCatalog struct {
	services map[uint64]model.Service
	staff    map[uint64]model.Staff
}

func (m *memCatalog) ServiceByID(_ context.Context, id uint64) (model.Service, error) {
	s, ok := m.services[id]
	if !ok {
		return model.Service{}, repository.ErrServiceNotFound
	}
	return s, nil
}

func (m *memCatalog) StaffByID(_ context.Context, id uint64) (model.Staff, error) {
	s, ok := m.staff[id]
	if !ok {
		return model.Staff{}, repository.ErrStaffNotFound
	}
	return s, nil
}

// memStore keeps bookings per staff member behind a mutex so that, like
// the MySQL store, its check-and-insert is atomic.
type memStore struct {
	mu      sync.Mutex
	nextID  uint64
	byStaff map[uint64][]model.Booking
}

func newMemStore() *memStore {
	return &memStore{nextID: 1, byStaff: map[uint64][]model.Booking{}}
}

func (m *memStore) Create(_ context.Context, b *model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byStaff[b.StaffID] {
		if Overlaps(existing.StartTime, existing.EndTime, b.StartTime, b.EndTime) {
			return repository.ErrSlotTaken
		}
	}
	b.ID = m.nextID
	m.nextID++
	b.CreatedAt = time.Now().UTC()
	m.byStaff[b.StaffID] = append(m.byStaff[b.StaffID], *b)
	return nil
}

func (m *memStore) FindOverlapping(_ context.Context, staffID uint64, start, end time.Time) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Booking
	for _, b := range m.byStaff[staffID] {
		if Overlaps(b.StartTime, b.EndTime, start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) ListByUser(_ context.Context, userID uint64) ([]model.BookingDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.BookingDetail
	for _, bs := range m.byStaff {
		for _, b := range bs {
			if b.UserID == userID {
				out = append(out, model.BookingDetail{ID: b.ID, StaffID: b.StaffID,
					ServiceID: b.ServiceID, StartTime: b.StartTime, EndTime: b.EndTime})
			}
		}
	}
	return out, nil
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, bs := range m.byStaff {
		n += len(bs)
	}
	return n
}

func testService(store *memStore) *Service {
	cat := &memCatalog{
		services: map[uint64]model.Service{
			1: {ID: 1, Name: "Haircut", DurationMinutes: 45, PriceCents: 3500},
			2: {ID: 2, Name: "Coloring", DurationMinutes: 90, PriceCents: 9000},
		},
		staff: map[uint64]model.Staff{
			1: {ID: 1, Name: "Dana", AvailableFrom: "09:00", AvailableTo: "17:00"},
			2: {ID: 2, Name: "Rami", AvailableFrom: "10:00", AvailableTo: "18:00"},
		},
	}
	return NewService(cat, store)
}

func TestCreateDerivesEndFromDuration(t *testing.T) {
	svc := testService(newMemStore())

	start := at(9, 0)
	b, err := svc.Create(context.Background(), 7, 1, 1, start)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.ID == 0 {
		t.Fatal("booking id was not assigned")
	}
	if !b.StartTime.Equal(start) {
		t.Fatalf("start = %v, want %v", b.StartTime, start)
	}
	if want := at(9, 45); !b.EndTime.Equal(want) {
		t.Fatalf("end = %v, want %v (45 minute haircut)", b.EndTime, want)
	}
}

func TestCreateUnknownServiceOrStaff(t *testing.T) {
	store := newMemStore()
	svc := testService(store)
	ctx := context.Background()

	if _, err := svc.Create(ctx, 7, 1, 999, at(9, 0)); !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("unknown service: got %v, want ErrServiceNotFound", err)
	}
	if _, err := svc.Create(ctx, 7, 999, 1, at(9, 0)); !errors.Is(err, ErrStaffNotFound) {
		t.Fatalf("unknown staff: got %v, want ErrStaffNotFound", err)
	}
	if store.count() != 0 {
		t.Fatalf("failed creates must not write; store has %d bookings", store.count())
	}
}

func TestCreateRejectsZeroStart(t *testing.T) {
	svc := testService(newMemStore())
	if _, err := svc.Create(context.Background(), 7, 1, 1, time.Time{}); !errors.Is(err, ErrInvalidStartTime) {
		t.Fatalf("got %v, want ErrInvalidStartTime", err)
	}
}

func TestCreateRejectsOverlap(t *testing.T) {
	svc := testService(newMemStore())
	ctx := context.Background()

	if _, err := svc.Create(ctx, 7, 1, 1, at(9, 0)); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	// 09:30 falls inside the committed 09:00-09:45 appointment.
	if _, err := svc.Create(ctx, 8, 1, 1, at(9, 30)); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("overlapping booking: got %v, want ErrSlotUnavailable", err)
	}
}

func TestCreateAllowsBackToBack(t *testing.T) {
	svc := testService(newMemStore())
	ctx := context.Background()

	if _, err := svc.Create(ctx, 7, 1, 1, at(9, 0)); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	// Starts exactly when the previous one ends.
	if _, err := svc.Create(ctx, 8, 1, 1, at(9, 45)); err != nil {
		t.Fatalf("back-to-back booking rejected: %v", err)
	}
}

func TestCreateStaffIndependence(t *testing.T) {
	svc := testService(newMemStore())
	ctx := context.Background()

	if _, err := svc.Create(ctx, 7, 1, 1, at(9, 0)); err != nil {
		t.Fatalf("staff 1: %v", err)
	}
	// Same slot, different staff member: no conflict.
	if _, err := svc.Create(ctx, 7, 2, 1, at(9, 0)); err != nil {
		t.Fatalf("same slot on different staff rejected: %v", err)
	}
}

func TestHasConflict(t *testing.T) {
	svc := testService(newMemStore())
	ctx := context.Background()

	if _, err := svc.Create(ctx, 7, 1, 1, at(9, 0)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := svc.HasConflict(ctx, 1, at(9, 30), at(10, 0))
	if err != nil || !got {
		t.Fatalf("HasConflict(9:30-10:00) = %v, %v; want true", got, err)
	}
	got, err = svc.HasConflict(ctx, 1, at(9, 45), at(10, 30))
	if err != nil || got {
		t.Fatalf("HasConflict(9:45-10:30) = %v, %v; want false", got, err)
	}
}

// Two goroutines race to book the same staff member for the same slot.
// Exactly one must win; the other must see ErrSlotUnavailable.
func TestCreateConcurrentSameSlot(t *testing.T) {
	store := newMemStore()
	svc := testService(store)
	ctx := context.Background()

	results := make(chan error, 2)
	var ready sync.WaitGroup
	ready.Add(2)
	go func() {
		ready.Done()
		ready.Wait()
		_, err := svc.Create(ctx, 7, 1, 1, at(9, 0))
		results <- err
	}()
	go func() {
		ready.Done()
		ready.Wait()
		_, err := svc.Create(ctx, 8, 1, 1, at(9, 0))
		results <- err
	}()

	var wins, losses int
	for i := 0; i < 2; i++ {
		switch err := <-results; {
		case err == nil:
			wins++
		case errors.Is(err, ErrSlotUnavailable):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || losses != 1 {
		t.Fatalf("wins=%d losses=%d, want exactly one of each", wins, losses)
	}
	if store.count() != 1 {
		t.Fatalf("store holds %d bookings, want 1", store.count())
	}
}

// Sequentially book random slots; every accepted pair for the same staff
// member must be non-overlapping.
func TestCommittedScheduleNeverOverlaps(t *testing.T) {
	store := newMemStore()
	svc := testService(store)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		start := at(8, 0).Add(time.Duration(rng.Intn(600)) * time.Minute)
		svcID := uint64(1 + rng.Intn(2))
		staffID := uint64(1 + rng.Intn(2))
		_, err := svc.Create(ctx, 7, staffID, svcID, start)
		if err != nil && !errors.Is(err, ErrSlotUnavailable) {
			t.Fatalf("iteration %d: %v", i, err)
		}
	}

	for staffID, bs := range store.byStaff {
		for i := range bs {
			for j := i + 1; j < len(bs); j++ {
				if Overlaps(bs[i].StartTime, bs[i].EndTime, bs[j].StartTime, bs[j].EndTime) {
					t.Fatalf("staff %d: committed bookings %d and %d overlap", staffID, bs[i].ID, bs[j].ID)
				}
			}
		}
	}
}
