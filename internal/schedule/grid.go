// Package schedule models the business day as a grid of 30-minute blocks
// and computes which slots are free for a requested service duration.
// All wall-clock reasoning happens in the configured business timezone.
package schedule

import (
    "fmt"
    "math"
    "strconv"
    "strings"
    "time"
)

// BlockMinutes is the width of one schedulable block.  Durations are
// rounded up to whole blocks, and slot times are expressed as decimal
// hours in half-hour steps (14:30 ⇔ 14.5).
const BlockMinutes = 30

// Grid describes one business day: opening and closing hours as decimal
// hours and the fixed timezone in which "today" and "now" are evaluated.
// The block index space is finite and contiguous; block 0 starts at Open
// and no block exists at or past Close.
type Grid struct {
    Open     float64        // first bookable decimal hour, inclusive
    Close    float64        // end of day, exclusive
    Location *time.Location // business timezone
}

// New returns a Grid for the given opening hours and business timezone.
func New(open, close float64, loc *time.Location) Grid {
    return Grid{Open: open, Close: close, Location: loc}
}

// BlocksFor converts a service duration in minutes into the number of
// 30-minute blocks it occupies, rounding up.  Zero or negative durations
// are invalid and yield 0.
func BlocksFor(minutes int) int {
    if minutes <= 0 {
        return 0
    }
    return int(math.Ceil(float64(minutes) / BlockMinutes))
}

// DayStarts returns every half-hour boundary of the business day in
// ascending order, from Open up to but excluding Close.
func (g Grid) DayStarts() []float64 {
    starts := make([]float64, 0, int((g.Close-g.Open)*2))
    for h := g.Open; h < g.Close; h += 0.5 {
        starts = append(starts, h)
    }
    return starts
}

// HourAt maps a block index back to its decimal hour.
func (g Grid) HourAt(block int) float64 {
    return g.Open + float64(block)*0.5
}

// BlockAt maps a decimal hour to its block index within the day.
func (g Grid) BlockAt(hour float64) int {
    return int(math.Round((hour - g.Open) * 2))
}

// Cutoff computes the earliest bookable decimal hour on the current day:
// the current hour, bumped to the next half-hour once the clock passes
// :30.  Slots at or before the cutoff are in the past.  now is evaluated
// in the business timezone regardless of where the process runs.
func (g Grid) Cutoff(now time.Time) float64 {
    local := now.In(g.Location)
    cutoff := float64(local.Hour())
    if local.Minute() >= 30 {
        cutoff += 0.5
    }
    return cutoff
}

// Today returns the business-timezone calendar date for the given instant
// in the same YYYY-MM-DD form bookings carry.
func (g Grid) Today(now time.Time) string {
    return now.In(g.Location).Format("2006-01-02")
}

// ParseClock converts a wall-clock start such as "14", "14:30" or
// "2:30 PM" into a decimal hour.  Only :00 and :30 are meaningful on the
// half-hour grid, so any "30" after the colon marks the half-hour; this
// coarse rule is inherited from the slot grid and is deliberately not a
// general time parser.  The boolean is false when the value is unusable.
func ParseClock(s string) (float64, bool) {
    s = strings.TrimSpace(s)
    if s == "" {
        return 0, false
    }
    if i := strings.IndexByte(s, ':'); i >= 0 {
        hour, err := strconv.Atoi(strings.TrimSpace(s[:i]))
        if err != nil {
            return 0, false
        }
        start := float64(hour)
        if strings.Contains(s[i:], "30") {
            start += 0.5
        }
        return start, true
    }
    start, err := strconv.ParseFloat(s, 64)
    if err != nil {
        return 0, false
    }
    return start, true
}

// FormatHour renders a decimal hour as HH:MM for notification mail and
// logs, e.g. 14.5 -> "14:30".
func FormatHour(h float64) string {
    hour := int(h)
    min := 0
    if h-float64(hour) >= 0.5 {
        min = 30
    }
    return fmt.Sprintf("%02d:%02d", hour, min)
}
