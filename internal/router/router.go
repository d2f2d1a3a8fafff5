package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/kaledaljebur/HairHubConnect/internal/config"
	"github.com/kaledaljebur/HairHubConnect/internal/handler"
	"github.com/kaledaljebur/HairHubConnect/internal/middleware"
)

// RegisterHealth registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check, which
// load balancers and monitoring systems use to verify the service is up.
func RegisterHealth(e *echo.Echo, h *handler.HealthHandler) {
	e.GET("/healthz", h.Check)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Operations that do not require an existing session: register, login,
	// refresh.  Each handler is responsible for generating or exchanging
	// tokens.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token: the presented token is revoked and
	// a new pair is issued.
	g.POST("/refresh", a.Refresh)
	// Logout accepts a JSON body containing a `refresh_token` and
	// invalidates that single session.  No JWT is required here.
	g.POST("/logout", a.Logout)

	// Routes that require a valid access token.  All handlers registered on
	// this group execute the JWTAuth middleware before being invoked.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	// Both roles may use the basic authenticated endpoints.  The middleware
	// rejects requests with missing or unknown roles.
	auth.Use(middleware.RequireRole("OWNER", "CUSTOMER"))
	auth.GET("/me", a.Me)

	// The same Logout handler is also reachable with a bearer token at
	// /v1/logout; in that mode it revokes every refresh token belonging to
	// the authenticated user.
	auth.POST("/logout", a.Logout)
}

// RegisterPublic registers unauthenticated browse endpoints: the service
// menu, the staff roster and the product catalogue.  These are read-only
// and safe to serve from the Redis response cache when one is configured.
func RegisterPublic(e *echo.Echo, b *handler.BookingHandler, s *handler.StoreHandler, cache echo.MiddlewareFunc) {
	mw := []echo.MiddlewareFunc{}
	if cache != nil {
		mw = append(mw, cache)
	}
	e.GET("/v1/services", b.ListServices, mw...)
	e.GET("/v1/staff", b.ListStaff, mw...)
	e.GET("/v1/products", s.ListProducts, mw...)
}

// RegisterBooking registers the appointment endpoints on a JWT-protected
// group.  Creating a booking is the conflict-checked write path; the
// dashboard lists the caller's upcoming and past appointments.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("OWNER", "CUSTOMER"))
	g.POST("/bookings", b.Create)
	g.GET("/bookings", b.Dashboard)
}

// RegisterStore registers the cart and order endpoints.  Every route here
// operates on the authenticated user's own cart and order history.
func RegisterStore(e *echo.Echo, s *handler.StoreHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("OWNER", "CUSTOMER"))
	g.GET("/cart", s.GetCart)
	g.POST("/cart/items", s.AddCartItem)
	g.POST("/checkout", s.Checkout)
	g.GET("/orders", s.ListOrders)
}

// RegisterAdmin registers the catalog-seeding endpoints.  Only the OWNER
// role may create staff members, services or products.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("OWNER"))
	g.POST("/staff", a.CreateStaff)
	g.POST("/services", a.CreateService)
	g.POST("/products", a.CreateProduct)
}

// RegisterRateLimit installs the Redis token-bucket limiter globally when a
// Redis client is available.  Without Redis the limiter is skipped rather
// than replaced with an in-process fallback.
func RegisterRateLimit(e *echo.Echo, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	cfg := config.LoadRateLimitConfig()
	if !cfg.Enabled {
		return
	}
	e.Use(middleware.NewTokenBucket(cfg, rdb))
}

// CacheMiddleware builds the optional read-path response cache.  Returns nil
// when Redis is unavailable or caching is disabled so callers can register
// routes without it.
func CacheMiddleware(rdb *redis.Client) echo.MiddlewareFunc {
	if rdb == nil {
		return nil
	}
	cfg := config.LoadCacheConfig()
	if !cfg.Enabled {
		return nil
	}
	return middleware.NewRedisCache(cfg, rdb)
}
