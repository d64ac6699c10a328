// file: internals/features/calendar/service/adapter.go
package service

import (
	"fmt"
	"time"

	"decofilm_backend/internals/constants"
	bookingModel "decofilm_backend/internals/features/bookings/model"
	eventModel "decofilm_backend/internals/features/calendar/model"
)

// BookingDuration is the fixed span a consultation occupies on the calendar.
// Not configurable from data.
const BookingDuration = 2 * time.Hour

// Item is what the calendar widget renders.
type Item struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	AllDay   bool      `json:"all_day"`
	Color    string    `json:"color"`
	Emphasis bool      `json:"emphasis"` // border highlight for high/urgent priority
	Kind     string    `json:"kind"`     // "booking" | "event"
}

// status-keyed colors for bookings
var bookingColors = map[string]string{
	constants.BookingStatusPending:   "#f59e0b",
	constants.BookingStatusConfirmed: "#3b82f6",
	constants.BookingStatusCompleted: "#10b981",
	constants.BookingStatusCancelled: "#9ca3af",
}

// type-keyed colors for generic events
var eventColors = map[string]string{
	constants.EventTypeB2B:             "#8b5cf6",
	constants.EventTypePersonalSupport: "#ec4899",
	constants.EventTypeWorkSchedule:    "#0ea5e9",
	constants.EventTypeCompanyEvent:    "#f97316",
	constants.EventTypeMeeting:         "#14b8a6",
	constants.EventTypeOther:           "#6b7280",
}

const fallbackColor = "#6b7280"

// combineDateTime glues a date column and an "HH:MM" string into one instant.
func combineDateTime(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad time %q: %w", clock, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// FromBooking maps one booking to a calendar item. A malformed consult time
// degrades to ok=false so one bad record never breaks the whole calendar.
func FromBooking(b *bookingModel.Booking) (Item, bool) {
	if b.BookingConsultDate.IsZero() {
		return Item{}, false
	}
	start, err := combineDateTime(b.BookingConsultDate, b.BookingConsultTime)
	if err != nil {
		return Item{}, false
	}

	color, ok := bookingColors[b.BookingStatus]
	if !ok {
		color = fallbackColor
	}

	return Item{
		ID:    b.BookingID.String(),
		Title: b.BookingCustomerName,
		Start: start,
		End:   start.Add(BookingDuration),
		Color: color,
		Kind:  "booking",
	}, true
}

// FromEvent maps one generic event. Missing times fall back to day bounds;
// a malformed time degrades to ok=false.
func FromEvent(e *eventModel.Event) (Item, bool) {
	if e.EventStartDate.IsZero() || e.EventEndDate.IsZero() {
		return Item{}, false
	}

	start := e.EventStartDate
	end := e.EventEndDate.Add(24*time.Hour - time.Second)

	if !e.EventAllDay {
		if e.EventStartTime != nil {
			t, err := combineDateTime(e.EventStartDate, *e.EventStartTime)
			if err != nil {
				return Item{}, false
			}
			start = t
		}
		if e.EventEndTime != nil {
			t, err := combineDateTime(e.EventEndDate, *e.EventEndTime)
			if err != nil {
				return Item{}, false
			}
			end = t
		}
	}

	color, ok := eventColors[e.EventType]
	if !ok {
		color = fallbackColor
	}

	return Item{
		ID:       e.EventID.String(),
		Title:    e.EventTitle,
		Start:    start,
		End:      end,
		AllDay:   e.EventAllDay,
		Color:    color,
		Emphasis: e.EventPriority == constants.PriorityHigh || e.EventPriority == constants.PriorityUrgent,
		Kind:     "event",
	}, true
}

// Merge adapts bookings and events into one render list, silently skipping
// anything that fails to map.
func Merge(bookings []bookingModel.Booking, events []eventModel.Event) []Item {
	out := make([]Item, 0, len(bookings)+len(events))
	for i := range bookings {
		if it, ok := FromBooking(&bookings[i]); ok {
			out = append(out, it)
		}
	}
	for i := range events {
		if it, ok := FromEvent(&events[i]); ok {
			out = append(out, it)
		}
	}
	return out
}
