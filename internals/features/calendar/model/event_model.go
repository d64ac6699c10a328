// file: internals/features/calendar/model/event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"decofilm_backend/internals/constants"
)

/* =========================
   Model: events
   ========================= */

type Event struct {
	EventID uuid.UUID `json:"event_id" gorm:"column:event_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	EventTitle    string `json:"event_title"    gorm:"column:event_title;type:varchar(120);not null"`
	EventType     string `json:"event_type"     gorm:"column:event_type;type:varchar(20);not null;default:'other'"`
	EventPriority string `json:"event_priority" gorm:"column:event_priority;type:varchar(10);not null;default:'medium'"`

	// "YYYY-MM-DD" dates plus optional "HH:MM" times
	EventStartDate time.Time `json:"event_start_date" gorm:"column:event_start_date;type:date;not null"`
	EventStartTime *string   `json:"event_start_time,omitempty" gorm:"column:event_start_time;type:varchar(5)"`
	EventEndDate   time.Time `json:"event_end_date"   gorm:"column:event_end_date;type:date;not null"`
	EventEndTime   *string   `json:"event_end_time,omitempty"   gorm:"column:event_end_time;type:varchar(5)"`
	EventAllDay    bool      `json:"event_all_day"    gorm:"column:event_all_day;not null;default:false"`

	EventMemo *string `json:"event_memo,omitempty" gorm:"column:event_memo;type:text"`

	EventCreatedAt time.Time  `json:"event_created_at"           gorm:"column:event_created_at;type:timestamptz;not null;default:now()"`
	EventUpdatedAt time.Time  `json:"event_updated_at"           gorm:"column:event_updated_at;type:timestamptz;not null;default:now()"`
	EventDeletedAt *time.Time `json:"event_deleted_at,omitempty" gorm:"column:event_deleted_at;type:timestamptz"`
}

func (Event) TableName() string { return "events" }

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	e.EventUpdatedAt = time.Now().UTC()
	if e.EventType == "" {
		e.EventType = constants.EventTypeOther
	}
	if e.EventPriority == "" {
		e.EventPriority = constants.PriorityMedium
	}
	return nil
}

func (e *Event) BeforeUpdate(tx *gorm.DB) error {
	e.EventUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("event_deleted_at IS NULL")
}

// ScopeOverlapping keeps events whose [start, end] date range touches the
// given window.
func ScopeOverlapping(from, to time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("event_start_date <= ? AND event_end_date >= ?", to, from)
	}
}
