package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"

	"decofilm_backend/internals/constants"
	bookingModel "decofilm_backend/internals/features/bookings/model"
)

func TestBookingsCSV(t *testing.T) {
	amount := int64(2_000_000)
	bookings := []bookingModel.Booking{
		{
			BookingID:           uuid.New(),
			BookingCustomerName: "김민수",
			BookingPhone:        "010-1234-5678",
			BookingAddress:      "서울시 강남구\n테헤란로 123",
			BookingBuildingType: constants.BuildingTypeApartment,
			BookingConsultDate:  time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
			BookingConsultTime:  "10:00",
			BookingStatus:       constants.BookingStatusCompleted,
			BookingFinalAmount:  &amount,
		},
	}

	out, err := BookingsCSV(bookings)
	if err != nil {
		t.Fatalf("BookingsCSV: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}
	if len(rows[0]) != len(bookingHeader) {
		t.Fatalf("header has %d cells, want %d", len(rows[0]), len(bookingHeader))
	}

	row := rows[1]
	if row[1] != "김민수" {
		t.Fatalf("customer cell = %q", row[1])
	}
	if row[3] != "서울시 강남구 테헤란로 123" {
		t.Fatalf("newline not flattened: %q", row[3])
	}
	if row[10] != "2000000" {
		t.Fatalf("final amount cell = %q", row[10])
	}
}

func TestBookingsCSVNilAmountsStayEmpty(t *testing.T) {
	bookings := []bookingModel.Booking{
		{
			BookingID:           uuid.New(),
			BookingCustomerName: "박지훈",
			BookingConsultDate:  time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC),
			BookingConsultTime:  "11:30",
			BookingStatus:       constants.BookingStatusPending,
		},
	}

	out, err := BookingsCSV(bookings)
	if err != nil {
		t.Fatalf("BookingsCSV: %v", err)
	}
	rows, _ := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if rows[1][9] != "" || rows[1][10] != "" {
		t.Fatalf("nil amounts must render empty, got %q and %q", rows[1][9], rows[1][10])
	}
}
