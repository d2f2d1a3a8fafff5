package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kaledaljebur/HairHubConnect/internal/booking"
	"github.com/kaledaljebur/HairHubConnect/internal/queue"
	"github.com/kaledaljebur/HairHubConnect/internal/repository"
	queue_publisher "github.com/kaledaljebur/HairHubConnect/internal/service"
	"github.com/kaledaljebur/HairHubConnect/internal/utils"
)

// BookingHandler exposes appointment booking to authenticated customers.
// Conflict detection and the atomic commit live in the booking service
// and its store; the handler translates between HTTP and those error
// kinds.  A conflicting slot is a 409 with a JSON body so clients can
// distinguish it from validation failures.
type BookingHandler struct {
	Bookings *booking.Service
	Staff    *repository.StaffRepo
	Services *repository.ServiceRepo
}

func NewBookingHandler(b *booking.Service, staff *repository.StaffRepo, services *repository.ServiceRepo) *BookingHandler {
	if b == nil || staff == nil || services == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: b, Staff: staff, Services: services}
}

type createBookingReq struct {
	StaffID   uint64 `json:"staff_id" validate:"required"`
	ServiceID uint64 `json:"service_id" validate:"required"`
	StartTime string `json:"start_time" validate:"required"` // "YYYY-MM-DDTHH:MM"
}

type bookingResp struct {
	ID        uint64    `json:"id"`
	StaffID   uint64    `json:"staff_id"`
	ServiceID uint64    `json:"service_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// Create handles POST /v1/bookings.  It parses the form start time,
// delegates to the booking service and maps its sentinel errors onto
// HTTP statuses.  On success a booking.confirmed event is published;
// publish failures are logged and ignored because the booking has
// already committed.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if msg := bindAndValidate(c, &req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	start, err := utils.ParseStartTime(req.StartTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_time must be YYYY-MM-DDTHH:MM"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.Create(ctx, userID, req.StaffID, req.ServiceID, start)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrServiceNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		case errors.Is(err, booking.ErrStaffNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "staff member not found"})
		case errors.Is(err, booking.ErrSlotUnavailable):
			return c.JSON(http.StatusConflict, echo.Map{"error": "time slot is already booked"})
		case errors.Is(err, booking.ErrInvalidStartTime):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start time"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	go h.publishConfirmed(b.ID, userID, req.StaffID, req.ServiceID, b.StartTime, b.EndTime)

	return c.JSON(http.StatusCreated, bookingResp{
		ID:        b.ID,
		StaffID:   b.StaffID,
		ServiceID: b.ServiceID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	})
}

// Dashboard handles GET /v1/bookings and lists the caller's bookings.
func (h *BookingHandler) Dashboard(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Bookings.ListForUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list bookings failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": list})
}

// ListStaff handles GET /v1/staff, the booking form's staff picker.
func (h *BookingHandler) ListStaff(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	staff, err := h.Staff.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list staff failed"})
	}
	type staffResp struct {
		ID            uint64 `json:"id"`
		Name          string `json:"name"`
		AvailableFrom string `json:"available_from"`
		AvailableTo   string `json:"available_to"`
	}
	out := make([]staffResp, 0, len(staff))
	for _, s := range staff {
		out = append(out, staffResp{ID: s.ID, Name: s.Name, AvailableFrom: s.AvailableFrom, AvailableTo: s.AvailableTo})
	}
	return c.JSON(http.StatusOK, echo.Map{"staff": out})
}

// ListServices handles GET /v1/services.
func (h *BookingHandler) ListServices(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	services, err := h.Services.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list services failed"})
	}
	type serviceResp struct {
		ID              uint64 `json:"id"`
		Name            string `json:"name"`
		DurationMinutes uint32 `json:"duration_minutes"`
		PriceCents      uint32 `json:"price_cents"`
	}
	out := make([]serviceResp, 0, len(services))
	for _, s := range services {
		out = append(out, serviceResp{ID: s.ID, Name: s.Name, DurationMinutes: s.DurationMinutes, PriceCents: s.PriceCents})
	}
	return c.JSON(http.StatusOK, echo.Map{"services": out})
}

func (h *BookingHandler) publishConfirmed(bookingID, userID, staffID, serviceID uint64, start, end time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ev := queue.BookingConfirmedEvent{
		BookingID:   bookingID,
		UserID:      userID,
		StaffID:     staffID,
		ServiceID:   serviceID,
		StartsAt:    start.UTC().Format(time.RFC3339),
		EndsAt:      end.UTC().Format(time.RFC3339),
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if s, err := h.Staff.GetByID(ctx, staffID); err == nil {
		ev.StaffName = s.Name
	}
	if svc, err := h.Services.GetByID(ctx, serviceID); err == nil {
		ev.ServiceName = svc.Name
	}
	if err := queue_publisher.PublishBookingConfirmed(ctx, ev); err != nil {
		log.Printf("booking: publish confirmed event failed: %v", err)
	}
}
