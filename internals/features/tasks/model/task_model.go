// file: internals/features/tasks/model/task_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"decofilm_backend/internals/constants"
)

/* =========================
   Model: tasks
   ========================= */

type Task struct {
	TaskID uuid.UUID `json:"task_id" gorm:"column:task_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	TaskTitle       string  `json:"task_title"                 gorm:"column:task_title;type:varchar(120);not null"`
	TaskDescription *string `json:"task_description,omitempty" gorm:"column:task_description;type:text"`
	TaskCategory    *string `json:"task_category,omitempty"    gorm:"column:task_category;type:varchar(40)"`
	TaskPriority    string  `json:"task_priority"              gorm:"column:task_priority;type:varchar(10);not null;default:'medium'"`

	TaskDueDate *time.Time `json:"task_due_date,omitempty" gorm:"column:task_due_date;type:date"`
	TaskDone    bool       `json:"task_done"               gorm:"column:task_done;not null;default:false"`

	TaskCreatedAt time.Time  `json:"task_created_at"           gorm:"column:task_created_at;type:timestamptz;not null;default:now()"`
	TaskUpdatedAt time.Time  `json:"task_updated_at"           gorm:"column:task_updated_at;type:timestamptz;not null;default:now()"`
	TaskDeletedAt *time.Time `json:"task_deleted_at,omitempty" gorm:"column:task_deleted_at;type:timestamptz"`
}

func (Task) TableName() string { return "tasks" }

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	t.TaskUpdatedAt = time.Now().UTC()
	if t.TaskPriority == "" {
		t.TaskPriority = constants.PriorityMedium
	}
	return nil
}

func (t *Task) BeforeUpdate(tx *gorm.DB) error {
	t.TaskUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("task_deleted_at IS NULL")
}
