package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/kaledaljebur/HairHubConnect/internal/booking"
	"github.com/kaledaljebur/HairHubConnect/internal/config"
	"github.com/kaledaljebur/HairHubConnect/internal/database"
	"github.com/kaledaljebur/HairHubConnect/internal/handler"
	"github.com/kaledaljebur/HairHubConnect/internal/queue"
	"github.com/kaledaljebur/HairHubConnect/internal/repository"
	"github.com/kaledaljebur/HairHubConnect/internal/router"
)

func main() {
	// A missing .env is fine in containerized deployments where the
	// environment is injected directly.
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Repositories share the single pooled *sql.DB.
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	staff := repository.NewStaffRepo(db)
	services := repository.NewServiceRepo(db)
	bookings := repository.NewBookingRepo(db)
	products := repository.NewProductRepo(db)
	cart := repository.NewCartRepo(db)
	orders := repository.NewOrderRepo(db)

	bookingSvc := booking.NewService(repository.NewCatalog(db), bookings)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	bookingH := handler.NewBookingHandler(bookingSvc, staff, services)
	storeH := handler.NewStoreHandler(products, cart, orders)
	adminH := handler.NewAdminHandler(staff, services, products)
	healthH := handler.NewHealthHandler(db)

	// Redis is optional: without it the limiter and response cache are
	// simply not installed.
	rdb := config.NewRedisClient()

	e := echo.New()
	e.HideBanner = true

	router.RegisterRateLimit(e, rdb)
	router.RegisterHealth(e, healthH)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, bookingH, storeH, router.CacheMiddleware(rdb))
	router.RegisterBooking(e, bookingH, cfg.JWTSecret)
	router.RegisterStore(e, storeH, cfg.JWTSecret)
	router.RegisterAdmin(e, adminH, cfg.JWTSecret)

	// Consume booking and order events into the activity log.  The consumer
	// reconnects on broker failures and never takes the API down with it.
	go queue.StartActivityConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
