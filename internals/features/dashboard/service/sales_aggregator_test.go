package service

import (
	"testing"
	"time"

	"decofilm_backend/internals/constants"
	bookingModel "decofilm_backend/internals/features/bookings/model"
)

func i64(v int64) *int64 { return &v }

func bookingOn(day time.Time, status string, estimate, final *int64) bookingModel.Booking {
	return bookingModel.Booking{
		BookingCustomerName:   "tester",
		BookingConsultDate:    day,
		BookingConsultTime:    "10:00",
		BookingStatus:         status,
		BookingEstimateAmount: estimate,
		BookingFinalAmount:    final,
	}
}

func TestPeriodRange(t *testing.T) {
	// Wednesday 2026-03-18
	now := time.Date(2026, 3, 18, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		period    Period
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"daily", PeriodDaily,
			time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 19, 0, 0, 0, 0, time.UTC)},
		{"weekly starts sunday", PeriodWeekly,
			time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC)},
		{"monthly is the calendar month", PeriodMonthly,
			time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
		{"yearly", PeriodYearly,
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, end := PeriodRange(tc.period, now)
			if !start.Equal(tc.wantStart) || !end.Equal(tc.wantEnd) {
				t.Fatalf("got [%v, %v), want [%v, %v)", start, end, tc.wantStart, tc.wantEnd)
			}
			if end.Before(start) {
				t.Fatalf("end %v before start %v", end, start)
			}
		})
	}
}

func TestPeriodRangeWeeklySundayAnchor(t *testing.T) {
	// now already a Sunday: the week starts on that very day
	sunday := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	start, _ := PeriodRange(PeriodWeekly, sunday)
	if start.Weekday() != time.Sunday || start.Day() != 15 {
		t.Fatalf("want week start on the same Sunday, got %v", start)
	}
}

func TestAggregateTwoBookingScenario(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	mid := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)

	bookings := []bookingModel.Booking{
		bookingOn(mid, constants.BookingStatusConfirmed, i64(200000), nil),
		bookingOn(mid.AddDate(0, 0, 1), constants.BookingStatusConfirmed, i64(300000), nil),
	}

	got := Aggregate(bookings, PeriodMonthly, now)

	if got.ConfirmedCount != 2 {
		t.Fatalf("ConfirmedCount = %d, want 2", got.ConfirmedCount)
	}
	if got.ExpectedSales != 500000 {
		t.Fatalf("ExpectedSales = %d, want 500000", got.ExpectedSales)
	}
	if got.RealizedSales != 0 {
		t.Fatalf("RealizedSales = %d, want 0", got.RealizedSales)
	}
}

func TestAggregateNilFinalAmountCountsAsZero(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	mid := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)

	bookings := []bookingModel.Booking{
		bookingOn(mid, constants.BookingStatusCompleted, nil, i64(1000000)),
		bookingOn(mid, constants.BookingStatusCompleted, nil, nil), // amount never filled in
	}

	got := Aggregate(bookings, PeriodMonthly, now)

	if got.CompletedCount != 2 {
		t.Fatalf("CompletedCount = %d, want 2", got.CompletedCount)
	}
	if got.RealizedSales != 1000000 {
		t.Fatalf("RealizedSales = %d, want 1000000", got.RealizedSales)
	}
	if got.AverageDeal != 500000 {
		t.Fatalf("AverageDeal = %d, want 500000", got.AverageDeal)
	}
}

func TestAggregateEmptyPeriodHasZeroAverage(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	got := Aggregate(nil, PeriodDaily, now)
	if got.AverageDeal != 0 || got.TotalCount != 0 {
		t.Fatalf("empty input: AverageDeal = %d, TotalCount = %d, want both 0",
			got.AverageDeal, got.TotalCount)
	}
}

func TestAggregateIntervalIsHalfOpen(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	from, to := PeriodRange(PeriodMonthly, now)

	bookings := []bookingModel.Booking{
		bookingOn(from, constants.BookingStatusPending, nil, nil),                // first instant: in
		bookingOn(to, constants.BookingStatusPending, nil, nil),                  // end boundary: out
		bookingOn(from.AddDate(0, 0, -1), constants.BookingStatusPending, nil, nil), // previous month: out
	}

	got := Aggregate(bookings, PeriodMonthly, now)
	if got.TotalCount != 1 {
		t.Fatalf("TotalCount = %d, want 1 (only the interval start is inside)", got.TotalCount)
	}
}

func TestParsePeriod(t *testing.T) {
	if _, err := ParsePeriod("hourly"); err == nil {
		t.Fatal("want error for unknown period")
	}
	p, err := ParsePeriod("")
	if err != nil || p != PeriodMonthly {
		t.Fatalf("empty period: got (%q, %v), want monthly default", p, err)
	}
}
