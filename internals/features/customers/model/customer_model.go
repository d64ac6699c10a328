// file: internals/features/customers/model/customer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"decofilm_backend/internals/constants"
)

/* =========================
   Model: customers
   ========================= */

type Customer struct {
	CustomerID uuid.UUID `json:"customer_id" gorm:"column:customer_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	CustomerName    string  `json:"customer_name"    gorm:"column:customer_name;type:varchar(80);not null"`
	CustomerPhone   string  `json:"customer_phone"   gorm:"column:customer_phone;type:varchar(30);not null;uniqueIndex:uq_customers_phone,where:customer_deleted_at IS NULL"`
	CustomerEmail   *string `json:"customer_email,omitempty"   gorm:"column:customer_email;type:varchar(120)"`
	CustomerAddress *string `json:"customer_address,omitempty" gorm:"column:customer_address;type:text"`

	CustomerBuildingType *string `json:"customer_building_type,omitempty" gorm:"column:customer_building_type;type:varchar(20)"`

	// aggregated relationship figures, maintained by hand in the admin UI
	CustomerTotalSpent  int64      `json:"customer_total_spent"  gorm:"column:customer_total_spent;type:bigint;not null;default:0"`
	CustomerOrderCount  int        `json:"customer_order_count"  gorm:"column:customer_order_count;type:int;not null;default:0"`
	CustomerLastService *time.Time `json:"customer_last_service,omitempty" gorm:"column:customer_last_service;type:date"`
	CustomerRating      int        `json:"customer_rating"       gorm:"column:customer_rating;type:int;not null;default:5"`

	CustomerStatus string  `json:"customer_status" gorm:"column:customer_status;type:varchar(20);not null;default:'active'"`
	CustomerMemo   *string `json:"customer_memo,omitempty" gorm:"column:customer_memo;type:text"`

	CustomerCreatedAt time.Time  `json:"customer_created_at"           gorm:"column:customer_created_at;type:timestamptz;not null;default:now()"`
	CustomerUpdatedAt time.Time  `json:"customer_updated_at"           gorm:"column:customer_updated_at;type:timestamptz;not null;default:now()"`
	CustomerDeletedAt *time.Time `json:"customer_deleted_at,omitempty" gorm:"column:customer_deleted_at;type:timestamptz"`
}

func (Customer) TableName() string { return "customers" }

func (cu *Customer) BeforeCreate(tx *gorm.DB) error {
	cu.CustomerUpdatedAt = time.Now().UTC()
	if cu.CustomerStatus == "" {
		cu.CustomerStatus = constants.CustomerStatusActive
	}
	return nil
}

func (cu *Customer) BeforeUpdate(tx *gorm.DB) error {
	cu.CustomerUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("customer_deleted_at IS NULL")
}

func ScopeStatus(status string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == "" {
			return db
		}
		return db.Where("customer_status = ?", status)
	}
}

func ScopeSearch(pattern string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pattern == "%%" || pattern == "" {
			return db
		}
		return db.Where(
			"customer_name ILIKE ? OR customer_phone ILIKE ? OR customer_address ILIKE ? OR customer_email ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
}
