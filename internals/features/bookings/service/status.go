// file: internals/features/bookings/service/status.go
package service

import (
	"context"

	"github.com/google/uuid"

	model "decofilm_backend/internals/features/bookings/model"
)

// Transition sets the status of exactly one booking. Any status is accepted
// from any prior state; the admin corrects mistakes by moving records back.
// An unknown id is a silent no-op: the collection stays untouched and no
// error is reported, matching the source behavior.
//
// The returned booking is the updated copy (nil when the id was unknown) so a
// detail view can refresh its own state instead of showing stale data.
func Transition(ctx context.Context, store Store, id uuid.UUID, status string) (*model.Booking, error) {
	b, err := store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	b.BookingStatus = status
	if err := store.Upsert(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
