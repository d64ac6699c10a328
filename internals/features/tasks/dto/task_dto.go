// file: internals/features/tasks/dto/task_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "decofilm_backend/internals/features/tasks/model"
	helper "decofilm_backend/internals/helpers"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type TaskRequest struct {
	TaskTitle       string  `json:"task_title"       validate:"required,max=120"`
	TaskDescription *string `json:"task_description"`
	TaskCategory    *string `json:"task_category"    validate:"omitempty,max=40"`
	TaskPriority    *string `json:"task_priority"    validate:"omitempty,oneof=low medium high urgent"`
	TaskDueDate     *string `json:"task_due_date"    validate:"omitempty,datetime=2006-01-02"`
}

func (r *TaskRequest) ToModel() (*model.Task, error) {
	t := &model.Task{
		TaskTitle:       r.TaskTitle,
		TaskDescription: r.TaskDescription,
		TaskCategory:    r.TaskCategory,
	}
	if r.TaskPriority != nil {
		t.TaskPriority = *r.TaskPriority
	}
	if r.TaskDueDate != nil {
		due, err := time.Parse("2006-01-02", *r.TaskDueDate)
		if err != nil {
			return nil, err
		}
		t.TaskDueDate = &due
	}
	return t, nil
}

/* =========================================================
   REQUEST: Patch (tri-state fields, absent means untouched)
   ========================================================= */

type TaskPatchRequest struct {
	TaskTitle       helper.PatchField[string] `json:"task_title"`
	TaskDescription helper.PatchField[string] `json:"task_description"`
	TaskCategory    helper.PatchField[string] `json:"task_category"`
	TaskPriority    helper.PatchField[string] `json:"task_priority"`
	TaskDueDate     helper.PatchField[string] `json:"task_due_date"`
	TaskDone        helper.PatchField[bool]   `json:"task_done"`
}

func (r *TaskPatchRequest) ApplyTo(t *model.Task) error {
	if r.TaskTitle.Set && r.TaskTitle.Value != nil {
		t.TaskTitle = *r.TaskTitle.Value
	}
	if r.TaskDescription.Set {
		t.TaskDescription = r.TaskDescription.Value
	}
	if r.TaskCategory.Set {
		t.TaskCategory = r.TaskCategory.Value
	}
	if r.TaskPriority.Set && r.TaskPriority.Value != nil {
		t.TaskPriority = *r.TaskPriority.Value
	}
	if r.TaskDueDate.Set {
		if r.TaskDueDate.Null {
			t.TaskDueDate = nil
		} else if r.TaskDueDate.Value != nil {
			due, err := time.Parse("2006-01-02", *r.TaskDueDate.Value)
			if err != nil {
				return err
			}
			t.TaskDueDate = &due
		}
	}
	if r.TaskDone.Set && r.TaskDone.Value != nil {
		t.TaskDone = *r.TaskDone.Value
	}
	return nil
}

/* =========================================================
   RESPONSE
   ========================================================= */

type TaskResponse struct {
	TaskID uuid.UUID `json:"task_id"`

	TaskTitle       string  `json:"task_title"`
	TaskDescription *string `json:"task_description,omitempty"`
	TaskCategory    *string `json:"task_category,omitempty"`
	TaskPriority    string  `json:"task_priority"`

	TaskDueDate *string `json:"task_due_date,omitempty"`
	TaskDone    bool    `json:"task_done"`

	TaskCreatedAt time.Time `json:"task_created_at"`
	TaskUpdatedAt time.Time `json:"task_updated_at"`
}

func FromModel(t *model.Task) *TaskResponse {
	resp := &TaskResponse{
		TaskID:          t.TaskID,
		TaskTitle:       t.TaskTitle,
		TaskDescription: t.TaskDescription,
		TaskCategory:    t.TaskCategory,
		TaskPriority:    t.TaskPriority,
		TaskDone:        t.TaskDone,
		TaskCreatedAt:   t.TaskCreatedAt,
		TaskUpdatedAt:   t.TaskUpdatedAt,
	}
	if t.TaskDueDate != nil {
		due := t.TaskDueDate.Format("2006-01-02")
		resp.TaskDueDate = &due
	}
	return resp
}

func FromModels(list []model.Task) []*TaskResponse {
	out := make([]*TaskResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
