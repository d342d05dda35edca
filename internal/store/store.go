// Package store holds committed bookings in a durable, append-only
// collection.  Two backends exist: a JSON file matching the original
// bookings.json layout, and a MySQL table for deployments that already
// run a database.  Neither backend updates or deletes records.
package store

import (
    "context"
    "errors"

    "github.com/khobkhun/massage-booking/internal/model"
)

// ErrNotStored is returned when a booking could not be durably persisted.
// Callers must treat it as fatal for the request: a booking that is not
// on disk is not confirmed.
var ErrNotStored = errors.New("store: booking not persisted")

// Store is the durable, ordered collection of committed bookings.
//
// LoadAll returns every booking oldest first.  A missing or unreadable
// backing store reads as empty, never as an error; availability must not
// hard-fail on corruption.  Append durably persists one booking and is
// atomic with respect to concurrent appends.
type Store interface {
    LoadAll(ctx context.Context) ([]model.Booking, error)
    Append(ctx context.Context, b model.Booking) error
}
