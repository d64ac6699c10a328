package service

import (
	"testing"
	"time"

	"decofilm_backend/internals/constants"
	bookingModel "decofilm_backend/internals/features/bookings/model"
	eventModel "decofilm_backend/internals/features/calendar/model"
)

func strPtr(s string) *string { return &s }

func TestFromBookingFixedDuration(t *testing.T) {
	b := bookingModel.Booking{
		BookingCustomerName: "김민수",
		BookingConsultDate:  time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
		BookingConsultTime:  "09:00",
		BookingStatus:       constants.BookingStatusConfirmed,
	}

	item, ok := FromBooking(&b)
	if !ok {
		t.Fatal("want ok=true for a well-formed booking")
	}

	wantStart := time.Date(2026, 6, 3, 9, 0, 0, 0, time.UTC)
	if !item.Start.Equal(wantStart) {
		t.Fatalf("Start = %v, want %v", item.Start, wantStart)
	}
	if !item.End.Equal(wantStart.Add(2 * time.Hour)) {
		t.Fatalf("End = %v, want start + 2h", item.End)
	}
	if item.Kind != "booking" {
		t.Fatalf("Kind = %q, want booking", item.Kind)
	}
}

func TestFromBookingStatusColors(t *testing.T) {
	base := bookingModel.Booking{
		BookingConsultDate: time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
		BookingConsultTime: "10:00",
	}

	seen := map[string]bool{}
	for _, status := range []string{
		constants.BookingStatusPending,
		constants.BookingStatusConfirmed,
		constants.BookingStatusCompleted,
		constants.BookingStatusCancelled,
	} {
		b := base
		b.BookingStatus = status
		item, ok := FromBooking(&b)
		if !ok {
			t.Fatalf("status %q: want ok", status)
		}
		if item.Color == "" {
			t.Fatalf("status %q: empty color", status)
		}
		if seen[item.Color] {
			t.Fatalf("status %q: color %q reused", status, item.Color)
		}
		seen[item.Color] = true
	}
}

func TestFromBookingMalformedTime(t *testing.T) {
	tests := []struct {
		name string
		b    bookingModel.Booking
	}{
		{"garbage time", bookingModel.Booking{
			BookingConsultDate: time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
			BookingConsultTime: "9 o'clock",
		}},
		{"zero date", bookingModel.Booking{
			BookingConsultTime: "09:00",
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := FromBooking(&tc.b); ok {
				t.Fatal("want ok=false")
			}
		})
	}
}

func TestFromEventEmphasisAndColors(t *testing.T) {
	d := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	e := eventModel.Event{
		EventTitle:     "자재 발주 미팅",
		EventType:      constants.EventTypeMeeting,
		EventPriority:  constants.PriorityUrgent,
		EventStartDate: d,
		EventStartTime: strPtr("09:30"),
		EventEndDate:   d,
		EventEndTime:   strPtr("11:00"),
	}

	item, ok := FromEvent(&e)
	if !ok {
		t.Fatal("want ok=true")
	}
	if !item.Emphasis {
		t.Fatal("urgent priority must set Emphasis")
	}
	if item.Color == fallbackColor {
		t.Fatal("meeting type must have its own color")
	}

	e.EventPriority = constants.PriorityLow
	item, _ = FromEvent(&e)
	if item.Emphasis {
		t.Fatal("low priority must not set Emphasis")
	}
}

func TestFromEventAllDaySpansDays(t *testing.T) {
	e := eventModel.Event{
		EventTitle:     "B2B 납품",
		EventType:      constants.EventTypeB2B,
		EventStartDate: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		EventEndDate:   time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
		EventAllDay:    true,
	}

	item, ok := FromEvent(&e)
	if !ok {
		t.Fatal("want ok=true")
	}
	if !item.AllDay {
		t.Fatal("AllDay flag lost")
	}
	if item.End.Before(item.Start.AddDate(0, 0, 2)) {
		t.Fatalf("End = %v, must cover the last day", item.End)
	}
}

func TestMergeSkipsUnmappable(t *testing.T) {
	good := bookingModel.Booking{
		BookingCustomerName: "김민수",
		BookingConsultDate:  time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
		BookingConsultTime:  "14:00",
		BookingStatus:       constants.BookingStatusPending,
	}
	bad := bookingModel.Booking{
		BookingCustomerName: "broken",
		BookingConsultDate:  time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC),
		BookingConsultTime:  "later",
	}
	d := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	event := eventModel.Event{
		EventTitle:     "미팅",
		EventType:      constants.EventTypeMeeting,
		EventStartDate: d,
		EventEndDate:   d,
		EventAllDay:    true,
	}

	items := Merge([]bookingModel.Booking{good, bad}, []eventModel.Event{event})
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (bad row skipped)", len(items))
	}
}
