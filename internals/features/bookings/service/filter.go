// file: internals/features/bookings/service/filter.go
package service

import (
	model "decofilm_backend/internals/features/bookings/model"
	helper "decofilm_backend/internals/helpers"
)

// Filter applies the list view's two filters conjunctively: case-insensitive
// substring search over name/phone/address AND an exact status match. Both
// are optional; order of application does not change the result.
func Filter(list []model.Booking, term, status string) []model.Booking {
	out := make([]model.Booking, 0, len(list))
	for _, b := range list {
		if status != "" && b.BookingStatus != status {
			continue
		}
		if !helper.MatchesSearch(term, b.BookingCustomerName, b.BookingPhone, b.BookingAddress) {
			continue
		}
		out = append(out, b)
	}
	return out
}
