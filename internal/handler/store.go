package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kaledaljebur/HairHubConnect/internal/queue"
	"github.com/kaledaljebur/HairHubConnect/internal/repository"
	queue_publisher "github.com/kaledaljebur/HairHubConnect/internal/service"
)

// StoreHandler serves the product storefront, the cart and checkout.
type StoreHandler struct {
	Products *repository.ProductRepo
	Cart     *repository.CartRepo
	Orders   *repository.OrderRepo
}

func NewStoreHandler(p *repository.ProductRepo, cart *repository.CartRepo, orders *repository.OrderRepo) *StoreHandler {
	if p == nil || cart == nil || orders == nil {
		panic("nil repository passed to NewStoreHandler")
	}
	return &StoreHandler{Products: p, Cart: cart, Orders: orders}
}

// ListProducts handles GET /v1/products (public, cached).
func (h *StoreHandler) ListProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	products, err := h.Products.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list products failed"})
	}
	type productResp struct {
		ID          uint64 `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		PriceCents  uint32 `json:"price_cents"`
		ImagePath   string `json:"image_path,omitempty"`
		Stock       uint32 `json:"stock"`
	}
	out := make([]productResp, 0, len(products))
	for _, p := range products {
		out = append(out, productResp{
			ID: p.ID, Name: p.Name, Description: p.Description,
			PriceCents: p.PriceCents, ImagePath: p.ImagePath, Stock: p.Stock,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"products": out})
}

type addCartReq struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  uint32 `json:"quantity"` // 0 -> 1
}

// AddCartItem handles POST /v1/cart/items.  Adding a product already in
// the cart increments its quantity.
func (h *StoreHandler) AddCartItem(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req addCartReq
	if msg := bindAndValidate(c, &req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Products.GetByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.Cart.AddItem(ctx, userID, req.ProductID, req.Quantity); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add to cart failed"})
	}
	return h.cartJSON(c, ctx, userID, http.StatusCreated)
}

// GetCart handles GET /v1/cart.
func (h *StoreHandler) GetCart(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	return h.cartJSON(c, ctx, userID, http.StatusOK)
}

func (h *StoreHandler) cartJSON(c echo.Context, ctx context.Context, userID uint64, status int) error {
	lines, err := h.Cart.Lines(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load cart failed"})
	}
	var total uint32
	for _, l := range lines {
		total += l.SubtotalCents
	}
	return c.JSON(status, echo.Map{"items": lines, "total_cents": total})
}

// Checkout handles POST /v1/checkout.  The repository converts the cart
// into an order in one transaction; an order.placed event is published
// after the commit.
func (h *StoreHandler) Checkout(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	order, items, err := h.Orders.Checkout(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrEmptyCart) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "cart is empty"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "checkout failed"})
	}

	go func() {
		pctx, pcancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pcancel()
		ev := queue.OrderPlacedEvent{
			OrderID:    order.ID,
			Reference:  order.Reference,
			UserID:     order.UserID,
			ItemCount:  len(items),
			TotalCents: order.TotalCents,
			PlacedAt:   order.OrderDate.Format(time.RFC3339),
		}
		if err := queue_publisher.PublishOrderPlaced(pctx, ev); err != nil {
			log.Printf("store: publish order event failed: %v", err)
		}
	}()

	return c.JSON(http.StatusCreated, echo.Map{
		"order": echo.Map{
			"id":          order.ID,
			"reference":   order.Reference,
			"status":      order.Status,
			"total_cents": order.TotalCents,
			"order_date":  order.OrderDate,
		},
		"item_count": len(items),
	})
}

// ListOrders handles GET /v1/orders.
func (h *StoreHandler) ListOrders(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	orders, err := h.Orders.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list orders failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": orders})
}
