// file: internals/features/projects/model/project_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"decofilm_backend/internals/constants"
)

/* =========================
   Model: projects
   ========================= */

type Project struct {
	ProjectID uuid.UUID `json:"project_id" gorm:"column:project_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// loose link to the confirmed booking (no FK enforcement)
	ProjectBookingID *uuid.UUID `json:"project_booking_id,omitempty" gorm:"column:project_booking_id;type:uuid"`

	ProjectCustomerName string  `json:"project_customer_name" gorm:"column:project_customer_name;type:varchar(80);not null"`
	ProjectPhone        string  `json:"project_phone"         gorm:"column:project_phone;type:varchar(30);not null"`
	ProjectAddress      *string `json:"project_address,omitempty" gorm:"column:project_address;type:text"`
	ProjectTitle        string  `json:"project_title"         gorm:"column:project_title;type:varchar(120);not null"`

	ProjectProgressPercentage int    `json:"project_progress_percentage" gorm:"column:project_progress_percentage;type:int;not null;default:0"`
	ProjectStatus             string `json:"project_status"              gorm:"column:project_status;type:varchar(20);not null;default:'scheduled'"`

	ProjectStartDate *time.Time `json:"project_start_date,omitempty" gorm:"column:project_start_date;type:date"`
	ProjectEndDate   *time.Time `json:"project_end_date,omitempty"   gorm:"column:project_end_date;type:date"`
	ProjectMemo      *string    `json:"project_memo,omitempty"       gorm:"column:project_memo;type:text"`

	ProjectCreatedAt time.Time  `json:"project_created_at"           gorm:"column:project_created_at;type:timestamptz;not null;default:now()"`
	ProjectUpdatedAt time.Time  `json:"project_updated_at"           gorm:"column:project_updated_at;type:timestamptz;not null;default:now()"`
	ProjectDeletedAt *time.Time `json:"project_deleted_at,omitempty" gorm:"column:project_deleted_at;type:timestamptz"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	p.ProjectUpdatedAt = time.Now().UTC()
	if p.ProjectStatus == "" {
		p.ProjectStatus = constants.ProjectStatusScheduled
	}
	return nil
}

func (p *Project) BeforeUpdate(tx *gorm.DB) error {
	p.ProjectUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("project_deleted_at IS NULL")
}

func ScopeStatus(status string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == "" {
			return db
		}
		return db.Where("project_status = ?", status)
	}
}

func ScopeSearch(pattern string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pattern == "%%" || pattern == "" {
			return db
		}
		return db.Where(
			"project_customer_name ILIKE ? OR project_phone ILIKE ? OR project_title ILIKE ?",
			pattern, pattern, pattern,
		)
	}
}
