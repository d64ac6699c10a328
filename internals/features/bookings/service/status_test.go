package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"decofilm_backend/internals/constants"
	model "decofilm_backend/internals/features/bookings/model"
)

func seedBooking(name, status string) model.Booking {
	return model.Booking{
		BookingID:           uuid.New(),
		BookingCustomerName: name,
		BookingPhone:        "010-0000-0000",
		BookingAddress:      "somewhere",
		BookingStatus:       status,
	}
}

func TestTransitionUpdatesStatus(t *testing.T) {
	ctx := context.Background()
	b := seedBooking("kim", constants.BookingStatusPending)
	store := NewMemoryStore(b)

	updated, err := Transition(ctx, store, b.BookingID, constants.BookingStatusConfirmed)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if updated == nil || updated.BookingStatus != constants.BookingStatusConfirmed {
		t.Fatalf("updated = %+v, want confirmed", updated)
	}

	got, _ := store.GetByID(ctx, b.BookingID)
	if got.BookingStatus != constants.BookingStatusConfirmed {
		t.Fatalf("store status = %q, want confirmed", got.BookingStatus)
	}
}

func TestTransitionAnyStatusReachable(t *testing.T) {
	// cancelled back to pending is allowed on purpose
	ctx := context.Background()
	b := seedBooking("lee", constants.BookingStatusCancelled)
	store := NewMemoryStore(b)

	updated, err := Transition(ctx, store, b.BookingID, constants.BookingStatusPending)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if updated.BookingStatus != constants.BookingStatusPending {
		t.Fatalf("status = %q, want pending", updated.BookingStatus)
	}
}

func TestTransitionUnknownIDIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	a := seedBooking("kim", constants.BookingStatusPending)
	b := seedBooking("lee", constants.BookingStatusConfirmed)
	store := NewMemoryStore(a, b)

	updated, err := Transition(ctx, store, uuid.New(), constants.BookingStatusCompleted)
	if err != nil {
		t.Fatalf("unknown id must not error, got %v", err)
	}
	if updated != nil {
		t.Fatalf("unknown id must return nil, got %+v", updated)
	}

	list, _ := store.List(ctx)
	if len(list) != 2 {
		t.Fatalf("collection length changed: %d", len(list))
	}
	if list[0].BookingStatus != constants.BookingStatusPending ||
		list[1].BookingStatus != constants.BookingStatusConfirmed {
		t.Fatal("existing rows were touched by a no-op transition")
	}
}
