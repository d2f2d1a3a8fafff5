package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kaledaljebur/HairHubConnect/internal/model"
	"github.com/kaledaljebur/HairHubConnect/internal/repository"
	"github.com/kaledaljebur/HairHubConnect/internal/utils"
)

// AdminHandler lets an OWNER seed the salon catalog: staff members,
// services and store products.  Records are immutable once created as
// far as this surface is concerned.
type AdminHandler struct {
	Staff    *repository.StaffRepo
	Services *repository.ServiceRepo
	Products *repository.ProductRepo
}

func NewAdminHandler(staff *repository.StaffRepo, services *repository.ServiceRepo, products *repository.ProductRepo) *AdminHandler {
	if staff == nil || services == nil || products == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Staff: staff, Services: services, Products: products}
}

type createStaffReq struct {
	Name          string `json:"name" validate:"required,max=100"`
	AvailableFrom string `json:"available_from" validate:"required"` // "HH:MM"
	AvailableTo   string `json:"available_to" validate:"required"`   // "HH:MM"
}

// CreateStaff handles POST /v1/staff.
func (h *AdminHandler) CreateStaff(c echo.Context) error {
	var req createStaffReq
	if msg := bindAndValidate(c, &req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	from, err := utils.ParseTimeOfDay(req.AvailableFrom)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "available_from must be HH:MM"})
	}
	to, err := utils.ParseTimeOfDay(req.AvailableTo)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "available_to must be HH:MM"})
	}
	if !from.Before(to) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "available_from must precede available_to"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := model.Staff{Name: req.Name, AvailableFrom: req.AvailableFrom, AvailableTo: req.AvailableTo}
	if err := h.Staff.Create(ctx, &s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create staff failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": s.ID, "name": s.Name,
		"available_from": s.AvailableFrom, "available_to": s.AvailableTo})
}

type createServiceReq struct {
	Name            string `json:"name" validate:"required,max=100"`
	DurationMinutes uint32 `json:"duration_minutes" validate:"required,gt=0"`
	PriceCents      uint32 `json:"price_cents"`
}

// CreateService handles POST /v1/services.  The positive-duration rule
// is enforced both here and in the repository; every booking's end time
// is derived from it.
func (h *AdminHandler) CreateService(c echo.Context) error {
	var req createServiceReq
	if msg := bindAndValidate(c, &req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := model.Service{Name: req.Name, DurationMinutes: req.DurationMinutes, PriceCents: req.PriceCents}
	if err := h.Services.Create(ctx, &s); err != nil {
		if errors.Is(err, repository.ErrInvalidDuration) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "duration_minutes must be positive"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create service failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": s.ID, "name": s.Name,
		"duration_minutes": s.DurationMinutes, "price_cents": s.PriceCents})
}

type createProductReq struct {
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description"`
	PriceCents  uint32 `json:"price_cents"`
	ImagePath   string `json:"image_path"`
	Stock       uint32 `json:"stock"`
}

// CreateProduct handles POST /v1/products.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req createProductReq
	if msg := bindAndValidate(c, &req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p := model.Product{Name: req.Name, Description: req.Description,
		PriceCents: req.PriceCents, ImagePath: req.ImagePath, Stock: req.Stock}
	if err := h.Products.Create(ctx, &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create product failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": p.ID, "name": p.Name, "price_cents": p.PriceCents})
}
