// file: internals/features/bookings/service/store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "decofilm_backend/internals/features/bookings/model"
)

// Store is the single source of truth for booking records. The page state of
// the source app becomes an explicit object here so ownership stays visible.
type Store interface {
	List(ctx context.Context) ([]model.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) // (nil, nil) when absent
	Upsert(ctx context.Context, b *model.Booking) error
	Remove(ctx context.Context, id uuid.UUID) error
}

/* =========================
   GORM-backed store
   ========================= */

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) List(ctx context.Context) ([]model.Booking, error) {
	var out []model.Booking
	err := model.ScopeAlive(s.DB.WithContext(ctx)).
		Order("booking_consult_date DESC, booking_consult_time DESC").
		Find(&out).Error
	return out, err
}

func (s *GormStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var b model.Booking
	err := model.ScopeAlive(s.DB.WithContext(ctx)).
		First(&b, "booking_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *GormStore) Upsert(ctx context.Context, b *model.Booking) error {
	return s.DB.WithContext(ctx).Save(b).Error
}

func (s *GormStore) Remove(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Model(&model.Booking{}).
		Where("booking_id = ? AND booking_deleted_at IS NULL", id).
		Update("booking_deleted_at", gorm.Expr("NOW()")).Error
}

/* =========================
   In-memory store
   ========================= */

// MemoryStore keeps the collection ordered by insertion, mirroring the array
// the source page component owned. Used by tests and tooling.
type MemoryStore struct {
	items []model.Booking
}

func NewMemoryStore(seed ...model.Booking) *MemoryStore {
	return &MemoryStore{items: append([]model.Booking(nil), seed...)}
}

func (s *MemoryStore) List(ctx context.Context) ([]model.Booking, error) {
	return append([]model.Booking(nil), s.items...), nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	for i := range s.items {
		if s.items[i].BookingID == id {
			b := s.items[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) Upsert(ctx context.Context, b *model.Booking) error {
	for i := range s.items {
		if s.items[i].BookingID == b.BookingID {
			s.items[i] = *b
			return nil
		}
	}
	s.items = append(s.items, *b)
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, id uuid.UUID) error {
	for i := range s.items {
		if s.items[i].BookingID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}
