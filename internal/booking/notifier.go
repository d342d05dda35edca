package booking

import (
    "context"

    "github.com/khobkhun/massage-booking/internal/mailer"
    "github.com/khobkhun/massage-booking/internal/queue"
    queue_publisher "github.com/khobkhun/massage-booking/internal/service"
)

// Notifier dispatches a booking notification after the store commit.
// Implementations must treat delivery as best-effort; the admitter logs
// and discards any error.
type Notifier interface {
    Notify(ctx context.Context, ev queue.BookingCreatedEvent) error
}

// QueueNotifier hands the event to RabbitMQ, where the background
// consumer picks it up for mail delivery and audit logging.  This is the
// default when a broker is configured.
type QueueNotifier struct{}

func (QueueNotifier) Notify(ctx context.Context, ev queue.BookingCreatedEvent) error {
    return queue_publisher.PublishBookingCreated(ctx, ev)
}

// MailNotifier sends the notification mail directly over SMTP.  Used when
// no broker is configured, keeping single-binary deployments working.
type MailNotifier struct {
    Sender mailer.Sender
}

func (n MailNotifier) Notify(ctx context.Context, ev queue.BookingCreatedEvent) error {
    if ev.ReceiverEmail == "" {
        return nil
    }
    return n.Sender.Send(ev.ReceiverEmail, queue.MailSubject, ev.MailBody())
}
