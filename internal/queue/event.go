// Package queue defines message payloads exchanged over the message broker.
package queue

import "fmt"

// BookingCreatedEvent is published after a booking has been durably
// committed to the store.  It carries everything the notification
// consumer needs to compose the mail without touching the booking store.
type BookingCreatedEvent struct {
    SenderName    string `json:"sender_name"`
    CustomerEmail string `json:"customer_email"`
    ReceiverEmail string `json:"receiver_email"`
    Telephone     string `json:"telephone"`
    Service       string `json:"service"`
    Date          string `json:"date"`
    Time          string `json:"time"`
    Total         string `json:"total"`
    BookedAt      string `json:"booked_at"`
}

// MailSubject is the subject line on every booking notification.
const MailSubject = "New Booking"

// MailBody renders the notification mail for the event, mirroring the
// message the shop has always received.
func (ev BookingCreatedEvent) MailBody() string {
    return fmt.Sprintf(
        "<p><b>Name:</b> %s</p>"+
            "<p><b>Email:</b> %s</p>"+
            "<p><b>Phone:</b> %s</p>"+
            "<p><b>Service:</b><br>%s</p>"+
            "<p><b>Date:</b> %s</p>"+
            "<p><b>Time:</b> %s (NL time)</p>"+
            "<p><b>Total:</b> €%s</p>",
        ev.SenderName, ev.CustomerEmail, ev.Telephone, ev.Service, ev.Date, ev.Time, ev.Total)
}
