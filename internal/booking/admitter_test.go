package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/khobkhun/massage-booking/internal/model"
	"github.com/khobkhun/massage-booking/internal/queue"
	"github.com/khobkhun/massage-booking/internal/schedule"
)

// memStore is an in-memory Store for admission tests.
type memStore struct {
	mu         sync.Mutex
	bookings   []model.Booking
	failAppend bool
}

func (s *memStore) LoadAll(ctx context.Context) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *memStore) Append(ctx context.Context, b model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAppend {
		return errors.New("disk full")
	}
	s.bookings = append(s.bookings, b)
	return nil
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

// chanNotifier records events on a channel so tests can wait for the
// detached notification goroutine.
type chanNotifier struct {
	events chan queue.BookingCreatedEvent
	err    error
}

func newChanNotifier() *chanNotifier {
	return &chanNotifier{events: make(chan queue.BookingCreatedEvent, 4)}
}

func (n *chanNotifier) Notify(ctx context.Context, ev queue.BookingCreatedEvent) error {
	n.events <- ev
	return n.err
}

func testGrid() schedule.Grid {
	return schedule.New(11.5, 19, time.UTC)
}

func validRequest() model.BookingRequest {
	return model.BookingRequest{
		SenderName:    "Anna de Vries",
		CustomerEmail: "anna@example.com",
		ReceiverEmail: "shop@example.com",
		Telephone:     "+31 6 1234 5678",
		Service:       "Traditional massage: 60 min",
		Date:          "2030-06-01",
		Time:          "13:00",
		Total:         "65",
		TotalMinutes:  60,
	}
}

func TestAdmit_Success(t *testing.T) {
	st := &memStore{}
	notifier := newChanNotifier()
	adm := NewAdmitter(testGrid(), st, notifier)

	if !adm.Admit(context.Background(), validRequest()) {
		t.Fatal("expected admission to succeed")
	}
	if st.count() != 1 {
		t.Fatalf("expected 1 stored booking, got %d", st.count())
	}
	got := st.bookings[0]
	want := model.Booking{Date: "2030-06-01", Start: 13.0, Blocks: 2}
	if got != want {
		t.Errorf("stored booking = %+v, want %+v", got, want)
	}

	select {
	case ev := <-notifier.events:
		if ev.CustomerEmail != "anna@example.com" || ev.Date != "2030-06-01" {
			t.Errorf("unexpected event: %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never dispatched")
	}
}

func TestAdmit_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.BookingRequest)
	}{
		{"missing customerEmail", func(r *model.BookingRequest) { r.CustomerEmail = "" }},
		{"missing senderName", func(r *model.BookingRequest) { r.SenderName = "" }},
		{"missing time", func(r *model.BookingRequest) { r.Time = "" }},
		{"missing date", func(r *model.BookingRequest) { r.Date = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &memStore{}
			notifier := newChanNotifier()
			adm := NewAdmitter(testGrid(), st, notifier)

			req := validRequest()
			tt.mutate(&req)
			if adm.Admit(context.Background(), req) {
				t.Fatal("expected rejection")
			}
			if st.count() != 0 {
				t.Error("store must not change on a rejected request")
			}
			if len(notifier.events) != 0 {
				t.Error("no notification may be attempted for a rejected request")
			}
		})
	}
}

func TestAdmit_InvalidDuration(t *testing.T) {
	st := &memStore{}
	adm := NewAdmitter(testGrid(), st, nil)

	req := validRequest()
	req.TotalMinutes = 0
	if adm.Admit(context.Background(), req) {
		t.Fatal("zero-minute booking must be rejected")
	}
	if st.count() != 0 {
		t.Error("store must stay empty")
	}
}

func TestAdmit_Conflict(t *testing.T) {
	st := &memStore{bookings: []model.Booking{{Date: "2030-06-01", Start: 13.0, Blocks: 2}}}
	notifier := newChanNotifier()
	adm := NewAdmitter(testGrid(), st, notifier)

	// 13:30 for 30 minutes sits fully inside the existing 13:00-14:00 booking.
	req := validRequest()
	req.Time = "13:30"
	req.TotalMinutes = 30
	if adm.Admit(context.Background(), req) {
		t.Fatal("overlapping booking must be rejected")
	}
	if st.count() != 1 {
		t.Errorf("store must be unchanged, got %d bookings", st.count())
	}
	if len(notifier.events) != 0 {
		t.Error("no notification for a rejected booking")
	}
}

func TestAdmit_BackToBackAllowed(t *testing.T) {
	st := &memStore{bookings: []model.Booking{{Date: "2030-06-01", Start: 13.0, Blocks: 2}}}
	adm := NewAdmitter(testGrid(), st, nil)

	// 14:00 starts exactly where the existing booking ends.
	req := validRequest()
	req.Time = "14:00"
	req.TotalMinutes = 30
	if !adm.Admit(context.Background(), req) {
		t.Fatal("back-to-back booking must be admitted")
	}
	if st.count() != 2 {
		t.Errorf("expected 2 bookings, got %d", st.count())
	}
}

func TestAdmit_ConcurrentSameSlot(t *testing.T) {
	st := &memStore{}
	adm := NewAdmitter(testGrid(), st, nil)

	const attempts = 8
	results := make(chan bool, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- adm.Admit(context.Background(), validRequest())
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for ok := range results {
		if ok {
			wins++
		}
	}
	if wins != 1 {
		t.Errorf("exactly one concurrent attempt may win, got %d", wins)
	}
	if st.count() != 1 {
		t.Errorf("store must hold exactly one booking, got %d", st.count())
	}
}

func TestAdmit_AppendFailure(t *testing.T) {
	st := &memStore{failAppend: true}
	notifier := newChanNotifier()
	adm := NewAdmitter(testGrid(), st, notifier)

	if adm.Admit(context.Background(), validRequest()) {
		t.Fatal("a booking that was not persisted must not succeed")
	}
	if len(notifier.events) != 0 {
		t.Error("no notification when the commit failed")
	}
}

func TestAdmit_NotifierFailureDoesNotFailBooking(t *testing.T) {
	st := &memStore{}
	notifier := newChanNotifier()
	notifier.err = errors.New("smtp down")
	adm := NewAdmitter(testGrid(), st, notifier)

	if !adm.Admit(context.Background(), validRequest()) {
		t.Fatal("notification failure must never reverse the commit")
	}
	select {
	case <-notifier.events:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never attempted")
	}
	if st.count() != 1 {
		t.Errorf("booking must remain stored, got %d", st.count())
	}
}
