// file: internals/features/quotes/dto/quote_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "decofilm_backend/internals/features/quotes/model"
)

/* =========================================================
   REQUEST: Create / Update (whole-record replace)
   ========================================================= */

type QuoteRequest struct {
	QuoteBookingID *uuid.UUID `json:"quote_booking_id"`

	QuoteCustomerName string  `json:"quote_customer_name" validate:"required,max=80"`
	QuotePhone        string  `json:"quote_phone"         validate:"required,max=30"`
	QuoteAddress      *string `json:"quote_address"`

	QuoteMaterialCost   int64 `json:"quote_material_cost"   validate:"min=0"`
	QuoteLaborCost      int64 `json:"quote_labor_cost"      validate:"min=0"`
	QuoteAdditionalFees int64 `json:"quote_additional_fees" validate:"min=0"`

	QuoteLineItems []model.QuoteLineItem `json:"quote_line_items" validate:"omitempty,dive"`
	QuoteNotes     *string               `json:"quote_notes"`

	QuoteStatus *string `json:"quote_status" validate:"omitempty,oneof=quote_requested quote_sent confirmed rejected"`
}

// Total recomputes the invariant sum. The client's total_amount is never
// trusted — the persisted total always equals material + labor + fees at the
// moment of save.
func (r *QuoteRequest) Total() int64 {
	return r.QuoteMaterialCost + r.QuoteLaborCost + r.QuoteAdditionalFees
}

func (r *QuoteRequest) ToModel() (*model.Quote, error) {
	q := &model.Quote{
		QuoteBookingID:      r.QuoteBookingID,
		QuoteCustomerName:   r.QuoteCustomerName,
		QuotePhone:          r.QuotePhone,
		QuoteAddress:        r.QuoteAddress,
		QuoteMaterialCost:   r.QuoteMaterialCost,
		QuoteLaborCost:      r.QuoteLaborCost,
		QuoteAdditionalFees: r.QuoteAdditionalFees,
		QuoteTotalAmount:    r.Total(),
		QuoteNotes:          r.QuoteNotes,
	}
	if r.QuoteStatus != nil {
		q.QuoteStatus = *r.QuoteStatus
	}
	if len(r.QuoteLineItems) > 0 {
		b, err := json.Marshal(r.QuoteLineItems)
		if err != nil {
			return nil, err
		}
		q.QuoteLineItems = datatypes.JSON(b)
	}
	return q, nil
}

func (r *QuoteRequest) ApplyTo(q *model.Quote) error {
	q.QuoteBookingID = r.QuoteBookingID
	q.QuoteCustomerName = r.QuoteCustomerName
	q.QuotePhone = r.QuotePhone
	q.QuoteAddress = r.QuoteAddress
	q.QuoteMaterialCost = r.QuoteMaterialCost
	q.QuoteLaborCost = r.QuoteLaborCost
	q.QuoteAdditionalFees = r.QuoteAdditionalFees
	q.QuoteTotalAmount = r.Total()
	q.QuoteNotes = r.QuoteNotes
	if r.QuoteStatus != nil {
		q.QuoteStatus = *r.QuoteStatus
	}
	if r.QuoteLineItems != nil {
		b, err := json.Marshal(r.QuoteLineItems)
		if err != nil {
			return err
		}
		q.QuoteLineItems = datatypes.JSON(b)
	} else {
		q.QuoteLineItems = nil
	}
	return nil
}

/* =========================================================
   REQUEST: Status transition
   ========================================================= */

type QuoteStatusRequest struct {
	QuoteStatus string `json:"quote_status" validate:"required,oneof=quote_requested quote_sent confirmed rejected"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type QuoteResponse struct {
	QuoteID        uuid.UUID  `json:"quote_id"`
	QuoteBookingID *uuid.UUID `json:"quote_booking_id,omitempty"`

	QuoteCustomerName string  `json:"quote_customer_name"`
	QuotePhone        string  `json:"quote_phone"`
	QuoteAddress      *string `json:"quote_address,omitempty"`

	QuoteMaterialCost   int64 `json:"quote_material_cost"`
	QuoteLaborCost      int64 `json:"quote_labor_cost"`
	QuoteAdditionalFees int64 `json:"quote_additional_fees"`
	QuoteTotalAmount    int64 `json:"quote_total_amount"`

	QuoteLineItems []model.QuoteLineItem `json:"quote_line_items,omitempty"`
	QuoteNotes     *string               `json:"quote_notes,omitempty"`
	QuoteStatus    string                `json:"quote_status"`

	QuoteCreatedAt time.Time `json:"quote_created_at"`
	QuoteUpdatedAt time.Time `json:"quote_updated_at"`
}

func FromModel(q *model.Quote) *QuoteResponse {
	resp := &QuoteResponse{
		QuoteID:             q.QuoteID,
		QuoteBookingID:      q.QuoteBookingID,
		QuoteCustomerName:   q.QuoteCustomerName,
		QuotePhone:          q.QuotePhone,
		QuoteAddress:        q.QuoteAddress,
		QuoteMaterialCost:   q.QuoteMaterialCost,
		QuoteLaborCost:      q.QuoteLaborCost,
		QuoteAdditionalFees: q.QuoteAdditionalFees,
		QuoteTotalAmount:    q.QuoteTotalAmount,
		QuoteNotes:          q.QuoteNotes,
		QuoteStatus:         q.QuoteStatus,
		QuoteCreatedAt:      q.QuoteCreatedAt,
		QuoteUpdatedAt:      q.QuoteUpdatedAt,
	}
	if len(q.QuoteLineItems) > 0 {
		_ = json.Unmarshal(q.QuoteLineItems, &resp.QuoteLineItems)
	}
	return resp
}

func FromModels(list []model.Quote) []*QuoteResponse {
	out := make([]*QuoteResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
