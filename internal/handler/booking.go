package handler

import (
    "net/http" // HTTP status codes

    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/khobkhun/massage-booking/internal/booking" // admission logic
    "github.com/khobkhun/massage-booking/internal/model"   // request payload
)

// BookingHandler accepts booking requests and hands them to the admitter.
// The response contract is a single success boolean: validation failure,
// scheduling conflict and storage failure are indistinguishable to the
// caller, matching the public API this service has always exposed.
type BookingHandler struct {
    Admitter   *booking.Admitter    // serialized check-and-commit
    AfterStore func(echo.Context)   // optional hook run after a commit (cache invalidation)
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(adm *booking.Admitter, afterStore func(echo.Context)) *BookingHandler {
    if adm == nil {
        panic("nil admitter passed to NewBookingHandler")
    }
    return &BookingHandler{Admitter: adm, AfterStore: afterStore}
}

// Create handles POST /send-email.  The route name is kept for
// compatibility with the deployed booking form.  A malformed body is an
// ordinary rejection, not an HTTP error; the status is always 200 and the
// body is {"success": bool}.
func (h *BookingHandler) Create(c echo.Context) error {
    var req model.BookingRequest
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusOK, echo.Map{"success": false})
    }

    ok := h.Admitter.Admit(c.Request().Context(), req)
    if ok && h.AfterStore != nil {
        h.AfterStore(c)
    }
    return c.JSON(http.StatusOK, echo.Map{"success": ok})
}
