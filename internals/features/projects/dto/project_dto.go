// file: internals/features/projects/dto/project_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "decofilm_backend/internals/features/projects/model"
	service "decofilm_backend/internals/features/projects/service"
)

func parseDateYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

/* =========================================================
   REQUEST: Create / Update (whole-record replace)
   ========================================================= */

type ProjectRequest struct {
	ProjectBookingID *uuid.UUID `json:"project_booking_id"`

	ProjectCustomerName string  `json:"project_customer_name" validate:"required,max=80"`
	ProjectPhone        string  `json:"project_phone"         validate:"required,max=30"`
	ProjectAddress      *string `json:"project_address"`
	ProjectTitle        string  `json:"project_title"         validate:"required,max=120"`

	ProjectProgressPercentage int `json:"project_progress_percentage" validate:"min=0,max=100"`

	ProjectStartDate *string `json:"project_start_date" validate:"omitempty,datetime=2006-01-02"`
	ProjectEndDate   *string `json:"project_end_date"   validate:"omitempty,datetime=2006-01-02"`
	ProjectMemo      *string `json:"project_memo"`
}

func (r *ProjectRequest) apply(p *model.Project) error {
	p.ProjectBookingID = r.ProjectBookingID
	p.ProjectCustomerName = r.ProjectCustomerName
	p.ProjectPhone = r.ProjectPhone
	p.ProjectAddress = r.ProjectAddress
	p.ProjectTitle = r.ProjectTitle
	p.ProjectProgressPercentage = r.ProjectProgressPercentage
	// status always derives from progress, including on manual edits
	p.ProjectStatus = service.StatusFor(r.ProjectProgressPercentage)
	p.ProjectMemo = r.ProjectMemo

	if r.ProjectStartDate != nil {
		t, err := parseDateYMD(*r.ProjectStartDate)
		if err != nil {
			return err
		}
		p.ProjectStartDate = &t
	} else {
		p.ProjectStartDate = nil
	}
	if r.ProjectEndDate != nil {
		t, err := parseDateYMD(*r.ProjectEndDate)
		if err != nil {
			return err
		}
		p.ProjectEndDate = &t
	} else {
		p.ProjectEndDate = nil
	}
	return nil
}

func (r *ProjectRequest) ToModel() (*model.Project, error) {
	p := &model.Project{}
	if err := r.apply(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProjectRequest) ApplyTo(p *model.Project) error {
	return r.apply(p)
}

/* =========================================================
   RESPONSE
   ========================================================= */

type ProjectResponse struct {
	ProjectID        uuid.UUID  `json:"project_id"`
	ProjectBookingID *uuid.UUID `json:"project_booking_id,omitempty"`

	ProjectCustomerName string  `json:"project_customer_name"`
	ProjectPhone        string  `json:"project_phone"`
	ProjectAddress      *string `json:"project_address,omitempty"`
	ProjectTitle        string  `json:"project_title"`

	ProjectProgressPercentage int    `json:"project_progress_percentage"`
	ProjectStatus             string `json:"project_status"`

	ProjectStartDate *string `json:"project_start_date,omitempty"`
	ProjectEndDate   *string `json:"project_end_date,omitempty"`
	ProjectMemo      *string `json:"project_memo,omitempty"`

	ProjectCreatedAt time.Time `json:"project_created_at"`
	ProjectUpdatedAt time.Time `json:"project_updated_at"`
}

func fmtDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func FromModel(p *model.Project) *ProjectResponse {
	return &ProjectResponse{
		ProjectID:                 p.ProjectID,
		ProjectBookingID:          p.ProjectBookingID,
		ProjectCustomerName:       p.ProjectCustomerName,
		ProjectPhone:              p.ProjectPhone,
		ProjectAddress:            p.ProjectAddress,
		ProjectTitle:              p.ProjectTitle,
		ProjectProgressPercentage: p.ProjectProgressPercentage,
		ProjectStatus:             p.ProjectStatus,
		ProjectStartDate:          fmtDate(p.ProjectStartDate),
		ProjectEndDate:            fmtDate(p.ProjectEndDate),
		ProjectMemo:               p.ProjectMemo,
		ProjectCreatedAt:          p.ProjectCreatedAt,
		ProjectUpdatedAt:          p.ProjectUpdatedAt,
	}
}

func FromModels(list []model.Project) []*ProjectResponse {
	out := make([]*ProjectResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
