package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"

	"github.com/kaledaljebur/HairHubConnect/internal/booking"
	"github.com/kaledaljebur/HairHubConnect/internal/model"
	"github.com/kaledaljebur/HairHubConnect/internal/repository"
)

// fakeCatalog and fakeStore back the booking service in handler tests so
// no database is needed.
type fakeCatalog struct{}

func (fakeCatalog) ServiceByID(_ context.Context, id uint64) (model.Service, error) {
	if id != 1 {
		return model.Service{}, repository.ErrServiceNotFound
	}
	return model.Service{ID: 1, Name: "Haircut", DurationMinutes: 45, PriceCents: 3500}, nil
}

func (fakeCatalog) StaffByID(_ context.Context, id uint64) (model.Staff, error) {
	if id != 1 {
		return model.Staff{}, repository.ErrStaffNotFound
	}
	return model.Staff{ID: 1, Name: "Dana"}, nil
}

type fakeStore struct {
	mu       sync.Mutex
	bookings []model.Booking
}

func (f *fakeStore) Create(_ context.Context, b *model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.bookings {
		if e.StaffID == b.StaffID && e.StartTime.Before(b.EndTime) && b.StartTime.Before(e.EndTime) {
			return repository.ErrSlotTaken
		}
	}
	b.ID = uint64(len(f.bookings) + 1)
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeStore) FindOverlapping(_ context.Context, staffID uint64, start, end time.Time) ([]model.Booking, error) {
	return nil, nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID uint64) ([]model.BookingDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.BookingDetail
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, model.BookingDetail{ID: b.ID, StaffID: b.StaffID, ServiceID: b.ServiceID,
				StartTime: b.StartTime, EndTime: b.EndTime})
		}
	}
	return out, nil
}

// unreachableDB builds an *sql.DB that fails at query time; handlers only
// touch it on paths these tests do not assert on.
func unreachableDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("mysql", "test:test@tcp(127.0.0.1:1)/test?parseTime=true")
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	return db
}

func newBookingTestHandler(t *testing.T) (*BookingHandler, *fakeStore) {
	t.Helper()
	store := &fakeStore{}
	db := unreachableDB(t)
	t.Cleanup(func() { db.Close() })
	svc := booking.NewService(fakeCatalog{}, store)
	return NewBookingHandler(svc, repository.NewStaffRepo(db), repository.NewServiceRepo(db)), store
}

func doCreate(h *BookingHandler, body string, userID interface{}) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("user_id", userID)
	}
	_ = h.Create(c)
	return rec
}

func TestCreateBookingSuccess(t *testing.T) {
	h, store := newBookingTestHandler(t)

	rec := doCreate(h, `{"staff_id":1,"service_id":1,"start_time":"2026-03-02T09:00"}`, float64(7))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var resp bookingResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID == 0 {
		t.Fatal("response id is zero")
	}
	want := time.Date(2026, 3, 2, 9, 45, 0, 0, time.UTC)
	if !resp.EndTime.Equal(want) {
		t.Fatalf("end_time = %v, want %v", resp.EndTime, want)
	}
	if len(store.bookings) != 1 {
		t.Fatalf("store holds %d bookings, want 1", len(store.bookings))
	}
}

func TestCreateBookingConflictIs409(t *testing.T) {
	h, _ := newBookingTestHandler(t)

	if rec := doCreate(h, `{"staff_id":1,"service_id":1,"start_time":"2026-03-02T09:00"}`, float64(7)); rec.Code != http.StatusCreated {
		t.Fatalf("first booking: status %d", rec.Code)
	}
	rec := doCreate(h, `{"staff_id":1,"service_id":1,"start_time":"2026-03-02T09:30"}`, float64(8))
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("conflict body is not JSON: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("conflict body missing error field")
	}
}

func TestCreateBookingBackToBackAllowed(t *testing.T) {
	h, _ := newBookingTestHandler(t)

	if rec := doCreate(h, `{"staff_id":1,"service_id":1,"start_time":"2026-03-02T09:00"}`, float64(7)); rec.Code != http.StatusCreated {
		t.Fatalf("first booking: status %d", rec.Code)
	}
	rec := doCreate(h, `{"staff_id":1,"service_id":1,"start_time":"2026-03-02T09:45"}`, float64(8))
	if rec.Code != http.StatusCreated {
		t.Fatalf("back-to-back booking: status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateBookingBadRequests(t *testing.T) {
	h, _ := newBookingTestHandler(t)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"missing fields", `{}`, http.StatusBadRequest},
		{"malformed start", `{"staff_id":1,"service_id":1,"start_time":"tomorrow"}`, http.StatusBadRequest},
		{"date only", `{"staff_id":1,"service_id":1,"start_time":"2026-03-02"}`, http.StatusBadRequest},
		{"unknown service", `{"staff_id":1,"service_id":99,"start_time":"2026-03-02T09:00"}`, http.StatusNotFound},
		{"unknown staff", `{"staff_id":99,"service_id":1,"start_time":"2026-03-02T09:00"}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		if rec := doCreate(h, tc.body, float64(7)); rec.Code != tc.want {
			t.Errorf("%s: status = %d, want %d: %s", tc.name, rec.Code, tc.want, rec.Body.String())
		}
	}
}

func TestCreateBookingRequiresIdentity(t *testing.T) {
	h, _ := newBookingTestHandler(t)
	rec := doCreate(h, `{"staff_id":1,"service_id":1,"start_time":"2026-03-02T09:00"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestDashboardListsOwnBookingsOnly(t *testing.T) {
	h, _ := newBookingTestHandler(t)

	doCreate(h, `{"staff_id":1,"service_id":1,"start_time":"2026-03-02T09:00"}`, float64(7))
	doCreate(h, `{"staff_id":1,"service_id":1,"start_time":"2026-03-02T10:00"}`, float64(8))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", float64(7))
	_ = h.Dashboard(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Bookings []model.BookingDetail `json:"bookings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Bookings) != 1 {
		t.Fatalf("dashboard returned %d bookings, want only the caller's 1", len(body.Bookings))
	}
}
