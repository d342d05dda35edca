package handler

import (
    "net/http" // HTTP status codes
    "strconv"  // parsing query parameters
    "time"     // current instant for the cutoff

    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/khobkhun/massage-booking/internal/schedule" // slot grid and availability
    "github.com/khobkhun/massage-booking/internal/store"    // booking store
)

// AvailabilityHandler answers slot-availability queries.  It reads a
// snapshot of the booking store and asks the grid which start times are
// still free.  No lock is taken: queries never write, so they may run
// fully concurrently with each other and with admissions.
type AvailabilityHandler struct {
    Grid  schedule.Grid // business-day grid in the business timezone
    Store store.Store   // committed bookings
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(grid schedule.Grid, st store.Store) *AvailabilityHandler {
    if st == nil {
        panic("nil store passed to NewAvailabilityHandler")
    }
    return &AvailabilityHandler{Grid: grid, Store: st}
}

// Available handles GET /available?date=YYYY-MM-DD&minutes=N.  It responds
// with an ascending JSON array of decimal-hour start times.  Missing or
// malformed parameters and internal failures all yield an empty array with
// status 200; the endpoint never hard-fails toward the booking form.
func (h *AvailabilityHandler) Available(c echo.Context) error {
    empty := []float64{}
    date := c.QueryParam("date")
    minutesStr := c.QueryParam("minutes")
    if date == "" || minutesStr == "" {
        return c.JSON(http.StatusOK, empty)
    }
    minutes, err := strconv.Atoi(minutesStr)
    if err != nil || minutes <= 0 {
        return c.JSON(http.StatusOK, empty)
    }

    bookings, err := h.Store.LoadAll(c.Request().Context())
    if err != nil {
        // Lenient path: an unreadable store reads as no bookings.
        bookings = nil
    }

    slots := h.Grid.FreeSlots(date, minutes, time.Now(), bookings)
    return c.JSON(http.StatusOK, slots)
}
