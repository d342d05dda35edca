// Package booking implements admission: the atomic check-and-commit that
// either durably records a new booking or rejects it.
package booking

import (
    "context"
    "log"
    "sync"
    "time"

    "github.com/khobkhun/massage-booking/internal/model"
    "github.com/khobkhun/massage-booking/internal/queue"
    "github.com/khobkhun/massage-booking/internal/schedule"
    "github.com/khobkhun/massage-booking/internal/store"
)

// notifyTimeout bounds the detached notification attempt.  The customer's
// response never waits on it.
const notifyTimeout = 15 * time.Second

// Admitter validates booking requests, detects conflicts against the
// current store state and commits non-conflicting bookings.  The
// read-check-append sequence runs under a single mutex: two concurrent
// requests for overlapping slots must never both pass the conflict check
// against the same snapshot.  Availability reads do not take this lock.
type Admitter struct {
    mu     sync.Mutex
    grid   schedule.Grid
    store  store.Store
    notify Notifier
}

// NewAdmitter constructs an Admitter.  notify may be nil, in which case
// committed bookings simply produce no notification.
func NewAdmitter(grid schedule.Grid, st store.Store, notify Notifier) *Admitter {
    return &Admitter{grid: grid, store: st, notify: notify}
}

// Admit processes one booking request and reports whether the booking was
// committed.  Success is determined solely by the storage commit:
// validation failure and scheduling conflict both return false with no
// side effect, and notification failure never flips the result.  The
// caller cannot tell a bad request from a taken slot; the public contract
// is a single boolean.
func (a *Admitter) Admit(ctx context.Context, req model.BookingRequest) bool {
    if !req.Valid() {
        return false
    }
    start, ok := schedule.ParseClock(req.Time)
    if !ok {
        return false
    }
    blocks := schedule.BlocksFor(req.TotalMinutes)
    if blocks == 0 {
        return false
    }
    candidate := model.Booking{Date: req.Date, Start: start, Blocks: blocks}

    if !a.commit(ctx, candidate) {
        return false
    }

    // Commit is done; notification is fire-and-forget on its own context
    // so it neither delays the response nor holds the admission lock.
    if a.notify != nil {
        ev := queue.BookingCreatedEvent{
            SenderName:    req.SenderName,
            CustomerEmail: req.CustomerEmail,
            ReceiverEmail: req.ReceiverEmail,
            Telephone:     req.Telephone,
            Service:       req.Service,
            Date:          req.Date,
            Time:          req.Time,
            Total:         req.Total,
            BookedAt:      time.Now().In(a.grid.Location).Format(time.RFC3339),
        }
        go func() {
            nctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
            defer cancel()
            if err := a.notify.Notify(nctx, ev); err != nil {
                log.Printf("admitter: notification failed (ignored): %v", err)
            }
        }()
    }
    return true
}

// commit holds the admission lock across read, conflict check and append.
// A lenient LoadAll (corrupt store reads as empty) means admission can
// proceed even after data loss; that trade-off is deliberate.
func (a *Admitter) commit(ctx context.Context, candidate model.Booking) bool {
    a.mu.Lock()
    defer a.mu.Unlock()

    existing, err := a.store.LoadAll(ctx)
    if err != nil {
        log.Printf("admitter: load bookings failed, treating as empty: %v", err)
        existing = nil
    }
    for _, b := range existing {
        if candidate.Overlaps(b) {
            return false
        }
    }
    if err := a.store.Append(ctx, candidate); err != nil {
        // Not durable means not booked.
        log.Printf("admitter: append failed: %v", err)
        return false
    }
    return true
}
