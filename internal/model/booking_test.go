package model

import "testing"

func TestBookingOverlaps(t *testing.T) {
	base := Booking{Date: "2024-06-01", Start: 13.0, Blocks: 2} // 13:00-14:00
	tests := []struct {
		name  string
		other Booking
		want  bool
	}{
		{"identical range", Booking{Date: "2024-06-01", Start: 13.0, Blocks: 2}, true},
		{"fully inside", Booking{Date: "2024-06-01", Start: 13.5, Blocks: 1}, true},
		{"overlaps tail", Booking{Date: "2024-06-01", Start: 13.5, Blocks: 2}, true},
		{"overlaps head", Booking{Date: "2024-06-01", Start: 12.5, Blocks: 2}, true},
		{"ends where base starts", Booking{Date: "2024-06-01", Start: 12.0, Blocks: 2}, false},
		{"starts where base ends", Booking{Date: "2024-06-01", Start: 14.0, Blocks: 1}, false},
		{"other date", Booking{Date: "2024-06-02", Start: 13.0, Blocks: 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("overlap must be symmetric: %+v", tt.other)
			}
		})
	}
}

func TestBookingRequestValid(t *testing.T) {
	full := BookingRequest{SenderName: "Anna", CustomerEmail: "a@b.nl", Date: "2024-06-01", Time: "13:00"}
	if !full.Valid() {
		t.Error("complete request must be valid")
	}
	for name, mutate := range map[string]func(*BookingRequest){
		"senderName":    func(r *BookingRequest) { r.SenderName = "" },
		"customerEmail": func(r *BookingRequest) { r.CustomerEmail = "" },
		"date":          func(r *BookingRequest) { r.Date = "" },
		"time":          func(r *BookingRequest) { r.Time = "" },
	} {
		r := full
		mutate(&r)
		if r.Valid() {
			t.Errorf("request missing %s must be invalid", name)
		}
	}
}
