// file: internals/features/exports/service/csv_writer.go
package service

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	bookingModel "decofilm_backend/internals/features/bookings/model"
)

var bookingHeader = []string{
	"booking_id", "customer_name", "phone", "address", "building_type",
	"consult_date", "consult_time", "status", "payment_status",
	"estimate_amount", "final_amount", "created_at",
}

func amountCell(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

// BookingsCSV renders a snapshot of the bookings table as a CSV document.
func BookingsCSV(bookings []bookingModel.Booking) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(bookingHeader); err != nil {
		return nil, err
	}
	for i := range bookings {
		b := bookings[i]
		row := []string{
			b.BookingID.String(),
			b.BookingCustomerName,
			b.BookingPhone,
			strings.ReplaceAll(b.BookingAddress, "\n", " "),
			b.BookingBuildingType,
			b.BookingConsultDate.Format("2006-01-02"),
			b.BookingConsultTime,
			b.BookingStatus,
			b.BookingPaymentStatus,
			amountCell(b.BookingEstimateAmount),
			amountCell(b.BookingFinalAmount),
			b.BookingCreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
