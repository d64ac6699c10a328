// file: internals/features/bookings/dto/booking_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "decofilm_backend/internals/features/bookings/model"
)

func parseDateYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

/* =========================================================
   REQUEST: Create / Update (whole-record replace)
   ========================================================= */

// BookingRequest carries the full intake form. Updates replace the whole
// record — the source app never sends partial booking edits.
type BookingRequest struct {
	BookingCustomerName string  `json:"booking_customer_name" validate:"required,max=80"`
	BookingPhone        string  `json:"booking_phone"         validate:"required,max=30"`
	BookingAddress      string  `json:"booking_address"       validate:"required"`
	BookingBuildingType string  `json:"booking_building_type" validate:"required,oneof=apartment villa house officetel phone_consult"`
	BookingAreaSize     *string `json:"booking_area_size"     validate:"omitempty,max=40"`

	// "YYYY-MM-DD" + "HH:MM"
	BookingConsultDate string `json:"booking_consult_date" validate:"required,datetime=2006-01-02"`
	BookingConsultTime string `json:"booking_consult_time" validate:"required,datetime=15:04"`

	BookingReason         *string  `json:"booking_reason"`
	BookingSpaces         []string `json:"booking_spaces"`
	BookingBudget         *string  `json:"booking_budget"   validate:"omitempty,max=40"`
	BookingTimeline       *string  `json:"booking_timeline" validate:"omitempty,max=40"`
	BookingPrivacyConsent bool     `json:"booking_privacy_consent"`

	BookingStatus *string `json:"booking_status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

func (r *BookingRequest) ToModel() (*model.Booking, error) {
	consultDate, err := parseDateYMD(r.BookingConsultDate)
	if err != nil {
		return nil, err
	}

	b := &model.Booking{
		BookingCustomerName:   r.BookingCustomerName,
		BookingPhone:          r.BookingPhone,
		BookingAddress:        r.BookingAddress,
		BookingBuildingType:   r.BookingBuildingType,
		BookingAreaSize:       r.BookingAreaSize,
		BookingConsultDate:    consultDate,
		BookingConsultTime:    r.BookingConsultTime,
		BookingReason:         r.BookingReason,
		BookingSpaces:         pq.StringArray(r.BookingSpaces),
		BookingBudget:         r.BookingBudget,
		BookingTimeline:       r.BookingTimeline,
		BookingPrivacyConsent: r.BookingPrivacyConsent,
	}
	if r.BookingStatus != nil {
		b.BookingStatus = *r.BookingStatus
	}
	return b, nil
}

// ApplyTo replaces every form field on an existing record, keeping the id,
// status (unless sent) and the sales-tracking block.
func (r *BookingRequest) ApplyTo(b *model.Booking) error {
	consultDate, err := parseDateYMD(r.BookingConsultDate)
	if err != nil {
		return err
	}

	b.BookingCustomerName = r.BookingCustomerName
	b.BookingPhone = r.BookingPhone
	b.BookingAddress = r.BookingAddress
	b.BookingBuildingType = r.BookingBuildingType
	b.BookingAreaSize = r.BookingAreaSize
	b.BookingConsultDate = consultDate
	b.BookingConsultTime = r.BookingConsultTime
	b.BookingReason = r.BookingReason
	b.BookingSpaces = pq.StringArray(r.BookingSpaces)
	b.BookingBudget = r.BookingBudget
	b.BookingTimeline = r.BookingTimeline
	b.BookingPrivacyConsent = r.BookingPrivacyConsent
	if r.BookingStatus != nil {
		b.BookingStatus = *r.BookingStatus
	}
	return nil
}

/* =========================================================
   REQUEST: Sales patch (PUT /api/bookings/:id/sales)
   ========================================================= */

type BookingSalesRequest struct {
	BookingConsultMemo     *string `json:"booking_consult_memo"`
	BookingVisitDate       *string `json:"booking_visit_date"      validate:"omitempty,datetime=2006-01-02"`
	BookingEstimateAmount  *int64  `json:"booking_estimate_amount" validate:"omitempty,min=0"`
	BookingEstimateDetails *string `json:"booking_estimate_details"`
	BookingFinalAmount     *int64  `json:"booking_final_amount"    validate:"omitempty,min=0"`
	BookingPaymentStatus   *string `json:"booking_payment_status"  validate:"omitempty,oneof=unpaid partial completed"`
	BookingWorkStartDate   *string `json:"booking_work_start_date" validate:"omitempty,datetime=2006-01-02"`
	BookingWorkEndDate     *string `json:"booking_work_end_date"   validate:"omitempty,datetime=2006-01-02"`
}

func (r *BookingSalesRequest) ApplyTo(b *model.Booking) error {
	if r.BookingConsultMemo != nil {
		b.BookingConsultMemo = r.BookingConsultMemo
	}
	if r.BookingVisitDate != nil {
		t, err := parseDateYMD(*r.BookingVisitDate)
		if err != nil {
			return err
		}
		b.BookingVisitDate = &t
	}
	if r.BookingEstimateAmount != nil {
		b.BookingEstimateAmount = r.BookingEstimateAmount
	}
	if r.BookingEstimateDetails != nil {
		b.BookingEstimateDetails = r.BookingEstimateDetails
	}
	if r.BookingFinalAmount != nil {
		b.BookingFinalAmount = r.BookingFinalAmount
	}
	if r.BookingPaymentStatus != nil {
		b.BookingPaymentStatus = *r.BookingPaymentStatus
	}
	if r.BookingWorkStartDate != nil {
		t, err := parseDateYMD(*r.BookingWorkStartDate)
		if err != nil {
			return err
		}
		b.BookingWorkStartDate = &t
	}
	if r.BookingWorkEndDate != nil {
		t, err := parseDateYMD(*r.BookingWorkEndDate)
		if err != nil {
			return err
		}
		b.BookingWorkEndDate = &t
	}
	return nil
}

/* =========================================================
   REQUEST: Status transition (PATCH /api/bookings/:id/status)
   ========================================================= */

type BookingStatusRequest struct {
	BookingStatus string `json:"booking_status" validate:"required,oneof=pending confirmed completed cancelled"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type BookingResponse struct {
	BookingID             uuid.UUID `json:"booking_id"`
	BookingCustomerName   string    `json:"booking_customer_name"`
	BookingPhone          string    `json:"booking_phone"`
	BookingAddress        string    `json:"booking_address"`
	BookingBuildingType   string    `json:"booking_building_type"`
	BookingAreaSize       *string   `json:"booking_area_size,omitempty"`
	BookingConsultDate    string    `json:"booking_consult_date"`
	BookingConsultTime    string    `json:"booking_consult_time"`
	BookingReason         *string   `json:"booking_reason,omitempty"`
	BookingSpaces         []string  `json:"booking_spaces,omitempty"`
	BookingBudget         *string   `json:"booking_budget,omitempty"`
	BookingTimeline       *string   `json:"booking_timeline,omitempty"`
	BookingPrivacyConsent bool      `json:"booking_privacy_consent"`
	BookingStatus         string    `json:"booking_status"`

	BookingConsultMemo     *string `json:"booking_consult_memo,omitempty"`
	BookingVisitDate       *string `json:"booking_visit_date,omitempty"`
	BookingEstimateAmount  *int64  `json:"booking_estimate_amount,omitempty"`
	BookingEstimateDetails *string `json:"booking_estimate_details,omitempty"`
	BookingFinalAmount     *int64  `json:"booking_final_amount,omitempty"`
	BookingPaymentStatus   string  `json:"booking_payment_status"`
	BookingWorkStartDate   *string `json:"booking_work_start_date,omitempty"`
	BookingWorkEndDate     *string `json:"booking_work_end_date,omitempty"`

	BookingCreatedAt time.Time `json:"booking_created_at"`
	BookingUpdatedAt time.Time `json:"booking_updated_at"`
}

func fmtDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func FromModel(b *model.Booking) *BookingResponse {
	return &BookingResponse{
		BookingID:             b.BookingID,
		BookingCustomerName:   b.BookingCustomerName,
		BookingPhone:          b.BookingPhone,
		BookingAddress:        b.BookingAddress,
		BookingBuildingType:   b.BookingBuildingType,
		BookingAreaSize:       b.BookingAreaSize,
		BookingConsultDate:    b.BookingConsultDate.Format("2006-01-02"),
		BookingConsultTime:    b.BookingConsultTime,
		BookingReason:         b.BookingReason,
		BookingSpaces:         []string(b.BookingSpaces),
		BookingBudget:         b.BookingBudget,
		BookingTimeline:       b.BookingTimeline,
		BookingPrivacyConsent: b.BookingPrivacyConsent,
		BookingStatus:         b.BookingStatus,

		BookingConsultMemo:     b.BookingConsultMemo,
		BookingVisitDate:       fmtDate(b.BookingVisitDate),
		BookingEstimateAmount:  b.BookingEstimateAmount,
		BookingEstimateDetails: b.BookingEstimateDetails,
		BookingFinalAmount:     b.BookingFinalAmount,
		BookingPaymentStatus:   b.BookingPaymentStatus,
		BookingWorkStartDate:   fmtDate(b.BookingWorkStartDate),
		BookingWorkEndDate:     fmtDate(b.BookingWorkEndDate),

		BookingCreatedAt: b.BookingCreatedAt,
		BookingUpdatedAt: b.BookingUpdatedAt,
	}
}

func FromModels(list []model.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
