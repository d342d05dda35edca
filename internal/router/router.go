package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/khobkhun/massage-booking/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes wires the public endpoints onto the Echo instance.
// availMW runs only on the availability query (rate limit, then response
// cache); bookMW runs on booking creation (rate limit only — a booking
// must never be served from cache).  Either slice may be empty.
//
// The two business routes keep the paths the deployed booking form calls:
// GET /available for slot queries and POST /send-email for bookings.
func RegisterRoutes(e *echo.Echo, avail *handler.AvailabilityHandler, book *handler.BookingHandler, availMW, bookMW []echo.MiddlewareFunc) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	e.GET("/available", avail.Available, availMW...)
	e.POST("/send-email", book.Create, bookMW...)

	// The booking form itself is static files; serve them when present.
	e.Static("/", "public")
}
