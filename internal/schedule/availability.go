package schedule

import (
    "time"

    "github.com/khobkhun/massage-booking/internal/model"
)

// FreeSlots returns the decimal-hour start times on date at which a
// service of the requested duration fits without overlapping any existing
// booking, in ascending order.  When date is today in the business
// timezone, starts at or before the current cutoff are dropped.  Malformed
// input (empty date, non-positive duration) yields an empty slice rather
// than an error; availability degrades leniently, matching the store's
// corruption policy.
//
// Candidates are drawn only from the day's grid, so every checked block
// is implicitly within business hours.  A start near Close whose blocks
// would run past closing is still offered; admission applies the same
// rule, so the two answers always agree.
func (g Grid) FreeSlots(date string, minutes int, now time.Time, existing []model.Booking) []float64 {
    slots := []float64{}
    totalBlocks := BlocksFor(minutes)
    if date == "" || totalBlocks == 0 {
        return slots
    }

    candidates := g.DayStarts()
    if date == g.Today(now) {
        cutoff := g.Cutoff(now)
        kept := candidates[:0]
        for _, h := range candidates {
            if h > cutoff {
                kept = append(kept, h)
            }
        }
        candidates = kept
    }

    // Expand same-date bookings into the set of occupied half-hours.
    occupied := make(map[float64]struct{})
    for _, b := range existing {
        if b.Date != date {
            continue
        }
        for i := 0; i < b.Blocks; i++ {
            occupied[b.Start+float64(i)*0.5] = struct{}{}
        }
    }

    for _, start := range candidates {
        free := true
        for i := 0; i < totalBlocks; i++ {
            if _, taken := occupied[start+float64(i)*0.5]; taken {
                free = false
                break
            }
        }
        if free {
            slots = append(slots, start)
        }
    }
    return slots
}
