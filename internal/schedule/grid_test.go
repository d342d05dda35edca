package schedule

import (
	"testing"
	"time"
)

func TestBlocksFor(t *testing.T) {
	tests := []struct {
		minutes int
		want    int
	}{
		{30, 1},
		{31, 2},
		{60, 2},
		{90, 3},
		{29, 1},
		{1, 1},
		{0, 0},
		{-15, 0},
	}
	for _, tt := range tests {
		if got := BlocksFor(tt.minutes); got != tt.want {
			t.Errorf("BlocksFor(%d) = %d, want %d", tt.minutes, got, tt.want)
		}
	}
}

func TestDayStarts(t *testing.T) {
	g := New(11.5, 19, time.UTC)
	starts := g.DayStarts()
	if len(starts) != 15 {
		t.Fatalf("expected 15 half-hour starts between 11:30 and 19:00, got %d", len(starts))
	}
	if starts[0] != 11.5 {
		t.Errorf("first start = %v, want 11.5", starts[0])
	}
	if last := starts[len(starts)-1]; last != 18.5 {
		t.Errorf("last start = %v, want 18.5 (close is exclusive)", last)
	}
	for i := 1; i < len(starts); i++ {
		if starts[i]-starts[i-1] != 0.5 {
			t.Fatalf("starts not ascending in half-hour steps at index %d: %v", i, starts)
		}
	}
}

func TestHourBlockRoundTrip(t *testing.T) {
	g := New(11.5, 19, time.UTC)
	for block := 0; block < 15; block++ {
		hour := g.HourAt(block)
		if got := g.BlockAt(hour); got != block {
			t.Errorf("BlockAt(HourAt(%d)) = %d", block, got)
		}
	}
	if got := g.HourAt(6); got != 14.5 {
		t.Errorf("HourAt(6) = %v, want 14.5", got)
	}
}

func TestCutoff(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Fatalf("load business timezone: %v", err)
	}
	g := New(11.5, 19, loc)

	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{"minutes below 30 keep the hour", time.Date(2024, 6, 1, 14, 10, 0, 0, loc), 14.0},
		{"minute 30 bumps to the half-hour", time.Date(2024, 6, 1, 14, 30, 0, 0, loc), 14.5},
		{"minutes past 30 bump to the half-hour", time.Date(2024, 6, 1, 14, 45, 0, 0, loc), 14.5},
		{"on the hour stays", time.Date(2024, 6, 1, 9, 0, 0, 0, loc), 9.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Cutoff(tt.now); got != tt.want {
				t.Errorf("Cutoff(%s) = %v, want %v", tt.now.Format("15:04"), got, tt.want)
			}
		})
	}
}

func TestCutoffUsesBusinessTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Fatalf("load business timezone: %v", err)
	}
	g := New(11.5, 19, loc)

	// 12:10 UTC on June 1st is 14:10 in Amsterdam (CEST, UTC+2).  The
	// cutoff must follow the business clock, not the instant's own zone.
	now := time.Date(2024, 6, 1, 12, 10, 0, 0, time.UTC)
	if got := g.Cutoff(now); got != 14.0 {
		t.Errorf("Cutoff(12:10 UTC) = %v, want 14.0 (Amsterdam time)", got)
	}
}

func TestTodayUsesBusinessTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Fatalf("load business timezone: %v", err)
	}
	g := New(11.5, 19, loc)

	// 23:30 UTC is already the next day in Amsterdam.
	now := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)
	if got := g.Today(now); got != "2024-06-02" {
		t.Errorf("Today(23:30 UTC) = %q, want 2024-06-02", got)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"14", 14, true},
		{"14:00", 14, true},
		{"14:30", 14.5, true},
		{"9.5", 9.5, true},
		{"2:30 PM", 2.5, true}, // coarse grid rule: hour prefix plus the "30" marker
		{" 11:30 ", 11.5, true},
		{"", 0, false},
		{"abc", 0, false},
		{"x:30", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseClock(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseClock(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseClock(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatHour(t *testing.T) {
	if got := FormatHour(14.5); got != "14:30" {
		t.Errorf("FormatHour(14.5) = %q, want 14:30", got)
	}
	if got := FormatHour(9); got != "09:00" {
		t.Errorf("FormatHour(9) = %q, want 09:00", got)
	}
}
