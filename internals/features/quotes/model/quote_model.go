// file: internals/features/quotes/model/quote_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"decofilm_backend/internals/constants"
)

/* =========================
   Line item payload (JSONB)
   ========================= */

type QuoteLineItem struct {
	Space    string `json:"space"`
	Material string `json:"material,omitempty"`
	Area     string `json:"area,omitempty"`
	Amount   int64  `json:"amount"`
}

/* =========================
   Model: quotes
   ========================= */

type Quote struct {
	QuoteID uuid.UUID `json:"quote_id" gorm:"column:quote_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// loose link to the originating booking (no FK enforcement, see DESIGN.md)
	QuoteBookingID *uuid.UUID `json:"quote_booking_id,omitempty" gorm:"column:quote_booking_id;type:uuid"`

	QuoteCustomerName string  `json:"quote_customer_name" gorm:"column:quote_customer_name;type:varchar(80);not null"`
	QuotePhone        string  `json:"quote_phone"         gorm:"column:quote_phone;type:varchar(30);not null"`
	QuoteAddress      *string `json:"quote_address,omitempty" gorm:"column:quote_address;type:text"`

	// cost breakdown; the sum is written into total at submit time
	QuoteMaterialCost   int64 `json:"quote_material_cost"   gorm:"column:quote_material_cost;type:bigint;not null;default:0"`
	QuoteLaborCost      int64 `json:"quote_labor_cost"      gorm:"column:quote_labor_cost;type:bigint;not null;default:0"`
	QuoteAdditionalFees int64 `json:"quote_additional_fees" gorm:"column:quote_additional_fees;type:bigint;not null;default:0"`
	QuoteTotalAmount    int64 `json:"quote_total_amount"    gorm:"column:quote_total_amount;type:bigint;not null;default:0"`

	QuoteLineItems datatypes.JSON `json:"quote_line_items,omitempty" gorm:"column:quote_line_items;type:jsonb"`
	QuoteNotes     *string        `json:"quote_notes,omitempty"      gorm:"column:quote_notes;type:text"`

	QuoteStatus string `json:"quote_status" gorm:"column:quote_status;type:varchar(20);not null;default:'quote_requested'"`

	QuoteCreatedAt time.Time  `json:"quote_created_at"           gorm:"column:quote_created_at;type:timestamptz;not null;default:now()"`
	QuoteUpdatedAt time.Time  `json:"quote_updated_at"           gorm:"column:quote_updated_at;type:timestamptz;not null;default:now()"`
	QuoteDeletedAt *time.Time `json:"quote_deleted_at,omitempty" gorm:"column:quote_deleted_at;type:timestamptz"`
}

func (Quote) TableName() string { return "quotes" }

func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	q.QuoteUpdatedAt = time.Now().UTC()
	if q.QuoteStatus == "" {
		q.QuoteStatus = constants.QuoteStatusRequested
	}
	return nil
}

func (q *Quote) BeforeUpdate(tx *gorm.DB) error {
	q.QuoteUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("quote_deleted_at IS NULL")
}

func ScopeStatus(status string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == "" {
			return db
		}
		return db.Where("quote_status = ?", status)
	}
}

func ScopeSearch(pattern string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pattern == "%%" || pattern == "" {
			return db
		}
		return db.Where("quote_customer_name ILIKE ? OR quote_phone ILIKE ?", pattern, pattern)
	}
}
