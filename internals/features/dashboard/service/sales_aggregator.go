// file: internals/features/dashboard/service/sales_aggregator.go
package service

import (
	"fmt"
	"time"

	"decofilm_backend/internals/constants"
	bookingModel "decofilm_backend/internals/features/bookings/model"
)

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return Period(s), nil
	case "":
		return PeriodMonthly, nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}

// PeriodRange returns the half-open interval [start, end) that contains now.
// Weeks start on Sunday; monthly spans exactly the calendar month.
func PeriodRange(p Period, now time.Time) (start, end time.Time) {
	y, m, d := now.Date()
	loc := now.Location()
	switch p {
	case PeriodDaily:
		start = time.Date(y, m, d, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 0, 1)
	case PeriodWeekly:
		day := time.Date(y, m, d, 0, 0, 0, 0, loc)
		start = day.AddDate(0, 0, -int(day.Weekday()))
		end = start.AddDate(0, 0, 7)
	case PeriodYearly:
		start = time.Date(y, 1, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(1, 0, 0)
	default: // monthly
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0)
	}
	return start, end
}

// SalesSummary is the dashboard aggregate for one period.
type SalesSummary struct {
	Period Period    `json:"period"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`

	TotalCount     int `json:"total_count"`
	PendingCount   int `json:"pending_count"`
	ConfirmedCount int `json:"confirmed_count"`
	CompletedCount int `json:"completed_count"`
	CancelledCount int `json:"cancelled_count"`

	// realized: final amounts of completed bookings; expected: estimates of
	// confirmed ones. A missing amount counts as zero, never skips the row.
	RealizedSales int64 `json:"realized_sales"`
	ExpectedSales int64 `json:"expected_sales"`
	AverageDeal   int64 `json:"average_deal"`

	Pending   []bookingModel.Booking `json:"pending"`
	Confirmed []bookingModel.Booking `json:"confirmed"`
	Completed []bookingModel.Booking `json:"completed"`
	Cancelled []bookingModel.Booking `json:"cancelled"`
}

func amountOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

// Aggregate partitions the bookings whose consult date falls in the period's
// interval and sums up sales figures per status bucket.
func Aggregate(bookings []bookingModel.Booking, p Period, now time.Time) SalesSummary {
	from, to := PeriodRange(p, now)
	out := SalesSummary{
		Period:    p,
		From:      from,
		To:        to,
		Pending:   []bookingModel.Booking{},
		Confirmed: []bookingModel.Booking{},
		Completed: []bookingModel.Booking{},
		Cancelled: []bookingModel.Booking{},
	}

	for i := range bookings {
		b := bookings[i]
		d := b.BookingConsultDate
		if d.Before(from) || !d.Before(to) {
			continue
		}
		out.TotalCount++
		switch b.BookingStatus {
		case constants.BookingStatusPending:
			out.PendingCount++
			out.Pending = append(out.Pending, b)
		case constants.BookingStatusConfirmed:
			out.ConfirmedCount++
			out.Confirmed = append(out.Confirmed, b)
			out.ExpectedSales += amountOrZero(b.BookingEstimateAmount)
		case constants.BookingStatusCompleted:
			out.CompletedCount++
			out.Completed = append(out.Completed, b)
			out.RealizedSales += amountOrZero(b.BookingFinalAmount)
		case constants.BookingStatusCancelled:
			out.CancelledCount++
			out.Cancelled = append(out.Cancelled, b)
		}
	}

	if out.CompletedCount > 0 {
		out.AverageDeal = out.RealizedSales / int64(out.CompletedCount)
	}
	return out
}
