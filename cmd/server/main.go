package main // Entry point package

import (
	"context"
	"log" // Logging library
	"os"

	"github.com/joho/godotenv"    // .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/khobkhun/massage-booking/internal/booking"
	"github.com/khobkhun/massage-booking/internal/config"
	"github.com/khobkhun/massage-booking/internal/database"
	"github.com/khobkhun/massage-booking/internal/handler"
	"github.com/khobkhun/massage-booking/internal/mailer"
	appmw "github.com/khobkhun/massage-booking/internal/middleware"
	"github.com/khobkhun/massage-booking/internal/queue"
	"github.com/khobkhun/massage-booking/internal/router"
	"github.com/khobkhun/massage-booking/internal/schedule"
	"github.com/khobkhun/massage-booking/internal/store"
)

func main() {
	_ = godotenv.Load() // optional .env; real deployments set the environment directly

	cfg := config.Load() // Load environment config
	grid := schedule.New(cfg.OpenHour, cfg.CloseHour, cfg.Location)

	// Booking store: JSON file by default, MySQL when configured.
	var st store.Store
	switch cfg.StoreDriver {
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("mysql connect: %v", err)
		}
		ms := store.NewMySQLStore(db)
		if err := ms.Init(context.Background()); err != nil {
			log.Fatalf("mysql init: %v", err)
		}
		st = ms
	default:
		st = store.NewFileStore(cfg.BookingFile)
	}

	// SMTP sender is used by the queue consumer, or directly when no
	// broker is configured.
	var send mailer.Sender
	if cfg.SMTPHost != "" {
		send = mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.EmailFrom)
	}

	var notify booking.Notifier
	if os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "" {
		notify = booking.QueueNotifier{}
		go func() {
			if err := queue.StartBookingConsumer(send); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	} else if send != nil {
		notify = booking.MailNotifier{Sender: send}
	}

	admitter := booking.NewAdmitter(grid, st, notify)

	// Redis is optional; without it rate limiting and caching are no-ops.
	rdb := config.NewRedisClient()
	rlCfg := config.LoadRateLimitConfig()
	cacheCfg := config.LoadCacheConfig()
	limiter := appmw.NewTokenBucket(rlCfg, rdb)
	cache := appmw.NewAvailabilityCache(cacheCfg, rdb)

	availHandler := handler.NewAvailabilityHandler(grid, st)
	bookHandler := handler.NewBookingHandler(admitter, func(c echo.Context) {
		appmw.InvalidateCache(c.Request().Context(), rdb, cacheCfg.Prefix)
	})

	e := echo.New() // Create Echo instance
	e.Use(echomw.CORS())
	router.RegisterRoutes(e, availHandler, bookHandler,
		[]echo.MiddlewareFunc{limiter, cache},
		[]echo.MiddlewareFunc{limiter},
	)

	addr := ":" + cfg.Port // Address string with port
	log.Printf("listening on %s (env=%s tz=%s store=%s)", addr, cfg.Env, cfg.Timezone, cfg.StoreDriver)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
