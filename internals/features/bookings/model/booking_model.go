// file: internals/features/bookings/model/booking_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"decofilm_backend/internals/constants"
)

/* =========================
   Model: bookings
   ========================= */

type Booking struct {
	BookingID uuid.UUID `json:"booking_id" gorm:"column:booking_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// intake form fields
	BookingCustomerName string  `json:"booking_customer_name" gorm:"column:booking_customer_name;type:varchar(80);not null"`
	BookingPhone        string  `json:"booking_phone"         gorm:"column:booking_phone;type:varchar(30);not null"`
	BookingAddress      string  `json:"booking_address"       gorm:"column:booking_address;type:text;not null"`
	BookingBuildingType string  `json:"booking_building_type" gorm:"column:booking_building_type;type:varchar(20);not null"`
	BookingAreaSize     *string `json:"booking_area_size,omitempty" gorm:"column:booking_area_size;type:varchar(40)"`

	// consultation slot ("HH:MM" time-of-day, date column separate)
	BookingConsultDate time.Time `json:"booking_consult_date" gorm:"column:booking_consult_date;type:date;not null"`
	BookingConsultTime string    `json:"booking_consult_time" gorm:"column:booking_consult_time;type:varchar(5);not null"`

	BookingReason         *string        `json:"booking_reason,omitempty"   gorm:"column:booking_reason;type:text"`
	BookingSpaces         pq.StringArray `json:"booking_spaces,omitempty"   gorm:"column:booking_spaces;type:text[]"`
	BookingBudget         *string        `json:"booking_budget,omitempty"   gorm:"column:booking_budget;type:varchar(40)"`
	BookingTimeline       *string        `json:"booking_timeline,omitempty" gorm:"column:booking_timeline;type:varchar(40)"`
	BookingPrivacyConsent bool           `json:"booking_privacy_consent"    gorm:"column:booking_privacy_consent;not null;default:false"`

	// lifecycle — any status is reachable from any other, on purpose
	BookingStatus string `json:"booking_status" gorm:"column:booking_status;type:varchar(20);not null;default:'pending'"`

	// sales tracking (filled in after the consultation)
	BookingConsultMemo     *string    `json:"booking_consult_memo,omitempty"     gorm:"column:booking_consult_memo;type:text"`
	BookingVisitDate       *time.Time `json:"booking_visit_date,omitempty"       gorm:"column:booking_visit_date;type:date"`
	BookingEstimateAmount  *int64     `json:"booking_estimate_amount,omitempty"  gorm:"column:booking_estimate_amount;type:bigint"`
	BookingEstimateDetails *string    `json:"booking_estimate_details,omitempty" gorm:"column:booking_estimate_details;type:text"`
	BookingFinalAmount     *int64     `json:"booking_final_amount,omitempty"     gorm:"column:booking_final_amount;type:bigint"`
	BookingPaymentStatus   string     `json:"booking_payment_status"             gorm:"column:booking_payment_status;type:varchar(20);not null;default:'unpaid'"`
	BookingWorkStartDate   *time.Time `json:"booking_work_start_date,omitempty"  gorm:"column:booking_work_start_date;type:date"`
	BookingWorkEndDate     *time.Time `json:"booking_work_end_date,omitempty"    gorm:"column:booking_work_end_date;type:date"`

	// timestamps (manual soft delete)
	BookingCreatedAt time.Time  `json:"booking_created_at"           gorm:"column:booking_created_at;type:timestamptz;not null;default:now()"`
	BookingUpdatedAt time.Time  `json:"booking_updated_at"           gorm:"column:booking_updated_at;type:timestamptz;not null;default:now()"`
	BookingDeletedAt *time.Time `json:"booking_deleted_at,omitempty" gorm:"column:booking_deleted_at;type:timestamptz"`
}

func (Booking) TableName() string { return "bookings" }

/* =========================
   Hooks: refresh updated_at
   ========================= */

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	b.BookingUpdatedAt = time.Now().UTC()
	if b.BookingStatus == "" {
		b.BookingStatus = constants.BookingStatusPending
	}
	if b.BookingPaymentStatus == "" {
		b.BookingPaymentStatus = constants.PaymentStatusUnpaid
	}
	return nil
}

func (b *Booking) BeforeUpdate(tx *gorm.DB) error {
	b.BookingUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("booking_deleted_at IS NULL")
}

func ScopeStatus(status string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == "" {
			return db
		}
		return db.Where("booking_status = ?", status)
	}
}

func ScopeSearch(pattern string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pattern == "%%" || pattern == "" {
			return db
		}
		return db.Where(
			"booking_customer_name ILIKE ? OR booking_phone ILIKE ? OR booking_address ILIKE ?",
			pattern, pattern, pattern,
		)
	}
}
