package service

import (
	"testing"

	"decofilm_backend/internals/constants"
	model "decofilm_backend/internals/features/bookings/model"
)

func filterFixture() []model.Booking {
	return []model.Booking{
		{BookingCustomerName: "김민수", BookingPhone: "010-1234-5678", BookingAddress: "서울 강남구", BookingStatus: constants.BookingStatusPending},
		{BookingCustomerName: "이서연", BookingPhone: "010-9876-5432", BookingAddress: "서울 송파구", BookingStatus: constants.BookingStatusConfirmed},
		{BookingCustomerName: "박지훈", BookingPhone: "010-5555-1111", BookingAddress: "성남 분당구", BookingStatus: constants.BookingStatusPending},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name      string
		term      string
		status    string
		wantNames []string
	}{
		{"no filters returns all", "", "", []string{"김민수", "이서연", "박지훈"}},
		{"search by name", "민수", "", []string{"김민수"}},
		{"search by phone fragment", "9876", "", []string{"이서연"}},
		{"search by address", "서울", "", []string{"김민수", "이서연"}},
		{"status only", "", constants.BookingStatusPending, []string{"김민수", "박지훈"}},
		{"search and status conjunctive", "서울", constants.BookingStatusPending, []string{"김민수"}},
		{"no match", "없는이름", "", []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(filterFixture(), tc.term, tc.status)
			if len(got) != len(tc.wantNames) {
				t.Fatalf("got %d rows, want %d", len(got), len(tc.wantNames))
			}
			for i, want := range tc.wantNames {
				if got[i].BookingCustomerName != want {
					t.Fatalf("row %d = %q, want %q", i, got[i].BookingCustomerName, want)
				}
			}
		})
	}
}

// filter order must not matter: searching then filtering by status has to
// produce the same rows as filtering by status then searching.
func TestFilterOrderIndependence(t *testing.T) {
	list := filterFixture()
	term, status := "서울", constants.BookingStatusConfirmed

	searchFirst := Filter(Filter(list, term, ""), "", status)
	statusFirst := Filter(Filter(list, "", status), term, "")

	if len(searchFirst) != len(statusFirst) {
		t.Fatalf("lengths differ: %d vs %d", len(searchFirst), len(statusFirst))
	}
	for i := range searchFirst {
		if searchFirst[i].BookingCustomerName != statusFirst[i].BookingCustomerName {
			t.Fatalf("row %d differs: %q vs %q",
				i, searchFirst[i].BookingCustomerName, statusFirst[i].BookingCustomerName)
		}
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	list := []model.Booking{
		{BookingCustomerName: "John Smith", BookingPhone: "010-1111-2222", BookingAddress: "Seoul"},
	}
	if got := Filter(list, "JOHN", ""); len(got) != 1 {
		t.Fatal("uppercase term must match lowercase data")
	}
	if got := Filter(list, "seoul", ""); len(got) != 1 {
		t.Fatal("lowercase term must match capitalized address")
	}
}
