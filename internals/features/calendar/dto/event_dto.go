// file: internals/features/calendar/dto/event_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "decofilm_backend/internals/features/calendar/model"
)

func parseDateYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

/* =========================================================
   REQUEST: Create / Update (whole-record replace)
   ========================================================= */

type EventRequest struct {
	EventTitle    string  `json:"event_title"    validate:"required,max=120"`
	EventType     *string `json:"event_type"     validate:"omitempty,oneof=b2b personal_support work_schedule company_event meeting other"`
	EventPriority *string `json:"event_priority" validate:"omitempty,oneof=low medium high urgent"`

	EventStartDate string  `json:"event_start_date" validate:"required,datetime=2006-01-02"`
	EventStartTime *string `json:"event_start_time" validate:"omitempty,datetime=15:04"`
	EventEndDate   string  `json:"event_end_date"   validate:"required,datetime=2006-01-02"`
	EventEndTime   *string `json:"event_end_time"   validate:"omitempty,datetime=15:04"`
	EventAllDay    bool    `json:"event_all_day"`

	EventMemo *string `json:"event_memo"`
}

func (r *EventRequest) apply(e *model.Event) error {
	start, err := parseDateYMD(r.EventStartDate)
	if err != nil {
		return err
	}
	end, err := parseDateYMD(r.EventEndDate)
	if err != nil {
		return err
	}

	e.EventTitle = r.EventTitle
	if r.EventType != nil {
		e.EventType = *r.EventType
	}
	if r.EventPriority != nil {
		e.EventPriority = *r.EventPriority
	}
	e.EventStartDate = start
	e.EventStartTime = r.EventStartTime
	e.EventEndDate = end
	e.EventEndTime = r.EventEndTime
	e.EventAllDay = r.EventAllDay
	e.EventMemo = r.EventMemo
	return nil
}

func (r *EventRequest) ToModel() (*model.Event, error) {
	e := &model.Event{}
	if err := r.apply(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EventRequest) ApplyTo(e *model.Event) error {
	return r.apply(e)
}

/* =========================================================
   RESPONSE
   ========================================================= */

type EventResponse struct {
	EventID uuid.UUID `json:"event_id"`

	EventTitle    string `json:"event_title"`
	EventType     string `json:"event_type"`
	EventPriority string `json:"event_priority"`

	EventStartDate string  `json:"event_start_date"`
	EventStartTime *string `json:"event_start_time,omitempty"`
	EventEndDate   string  `json:"event_end_date"`
	EventEndTime   *string `json:"event_end_time,omitempty"`
	EventAllDay    bool    `json:"event_all_day"`

	EventMemo *string `json:"event_memo,omitempty"`

	EventCreatedAt time.Time `json:"event_created_at"`
	EventUpdatedAt time.Time `json:"event_updated_at"`
}

func FromModel(e *model.Event) *EventResponse {
	return &EventResponse{
		EventID:        e.EventID,
		EventTitle:     e.EventTitle,
		EventType:      e.EventType,
		EventPriority:  e.EventPriority,
		EventStartDate: e.EventStartDate.Format("2006-01-02"),
		EventStartTime: e.EventStartTime,
		EventEndDate:   e.EventEndDate.Format("2006-01-02"),
		EventEndTime:   e.EventEndTime,
		EventAllDay:    e.EventAllDay,
		EventMemo:      e.EventMemo,
		EventCreatedAt: e.EventCreatedAt,
		EventUpdatedAt: e.EventUpdatedAt,
	}
}

func FromModels(list []model.Event) []*EventResponse {
	out := make([]*EventResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
