package model

// Booking is one committed reservation on the business calendar.
// A booking occupies the half-open block range [Start, Start+Blocks*0.5)
// on Date, where each block is 30 minutes expressed as 0.5 decimal hours.
// Committed bookings are immutable; the store only ever appends.
//
// Fields:
//  Date   – civil calendar day in the business timezone ("2006-01-02").
//  Start  – first occupied half-hour as a decimal hour (14:30 ⇔ 14.5).
//  Blocks – number of consecutive 30-minute blocks occupied.
type Booking struct {
    Date   string  `json:"date"`   // bookings.date
    Start  float64 `json:"start"`  // bookings.start
    Blocks int     `json:"blocks"` // bookings.blocks
}

// BookingRequest is the payload a customer submits to reserve a slot.
// Everything except the scheduling fields is opaque to the admission
// logic and only carried through to the notification mail.
//
// Fields:
//  SenderName    – customer's full name (required).
//  CustomerEmail – customer's contact address (required).
//  ReceiverEmail – where the notification mail is delivered.
//  Telephone     – customer's phone number.
//  Service       – free-text description of the booked services.
//  Date          – civil calendar day being booked (required).
//  Time          – wall-clock start, hour or hour:minute (required).
//  Total         – display amount in euros.
//  TotalMinutes  – requested duration in minutes.
type BookingRequest struct {
    SenderName    string `json:"senderName"`
    CustomerEmail string `json:"customerEmail"`
    ReceiverEmail string `json:"receiverEmail"`
    Telephone     string `json:"telephone"`
    Service       string `json:"service"`
    Date          string `json:"date"`
    Time          string `json:"time"`
    Total         string `json:"total"`
    TotalMinutes  int    `json:"totalMinutes"`
}

// Valid reports whether the request carries every required field.  The
// scheduling core rejects incomplete requests before touching the store.
func (r BookingRequest) Valid() bool {
    return r.SenderName != "" && r.CustomerEmail != "" && r.Time != "" && r.Date != ""
}

// Overlaps reports whether two bookings on the same date occupy at least
// one common block.  Ranges are half-open, so back-to-back bookings do
// not conflict.
func (b Booking) Overlaps(other Booking) bool {
    if b.Date != other.Date {
        return false
    }
    bEnd := b.Start + float64(b.Blocks)*0.5
    oEnd := other.Start + float64(other.Blocks)*0.5
    return b.Start < oEnd && other.Start < bEnd
}
