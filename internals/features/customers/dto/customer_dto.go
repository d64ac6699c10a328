// file: internals/features/customers/dto/customer_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "decofilm_backend/internals/features/customers/model"
)

func parseDateYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

/* =========================================================
   REQUEST: Create / Update (whole-record replace)
   ========================================================= */

type CustomerRequest struct {
	CustomerName    string  `json:"customer_name"  validate:"required,max=80"`
	CustomerPhone   string  `json:"customer_phone" validate:"required,max=30"`
	CustomerEmail   *string `json:"customer_email" validate:"omitempty,email"`
	CustomerAddress *string `json:"customer_address"`

	CustomerBuildingType *string `json:"customer_building_type" validate:"omitempty,oneof=apartment villa house officetel phone_consult"`

	CustomerTotalSpent  int64   `json:"customer_total_spent"  validate:"min=0"`
	CustomerOrderCount  int     `json:"customer_order_count"  validate:"min=0"`
	CustomerLastService *string `json:"customer_last_service" validate:"omitempty,datetime=2006-01-02"`
	CustomerRating      int     `json:"customer_rating"       validate:"min=1,max=5"`

	CustomerStatus *string `json:"customer_status" validate:"omitempty,oneof=active inactive vip"`
	CustomerMemo   *string `json:"customer_memo"`
}

func (r *CustomerRequest) apply(cu *model.Customer) error {
	cu.CustomerName = r.CustomerName
	cu.CustomerPhone = r.CustomerPhone
	cu.CustomerEmail = r.CustomerEmail
	cu.CustomerAddress = r.CustomerAddress
	cu.CustomerBuildingType = r.CustomerBuildingType
	cu.CustomerTotalSpent = r.CustomerTotalSpent
	cu.CustomerOrderCount = r.CustomerOrderCount
	cu.CustomerRating = r.CustomerRating
	cu.CustomerMemo = r.CustomerMemo

	if r.CustomerLastService != nil {
		t, err := parseDateYMD(*r.CustomerLastService)
		if err != nil {
			return err
		}
		cu.CustomerLastService = &t
	} else {
		cu.CustomerLastService = nil
	}
	if r.CustomerStatus != nil {
		cu.CustomerStatus = *r.CustomerStatus
	}
	return nil
}

func (r *CustomerRequest) ToModel() (*model.Customer, error) {
	cu := &model.Customer{}
	if err := r.apply(cu); err != nil {
		return nil, err
	}
	return cu, nil
}

func (r *CustomerRequest) ApplyTo(cu *model.Customer) error {
	return r.apply(cu)
}

/* =========================================================
   RESPONSE
   ========================================================= */

type CustomerResponse struct {
	CustomerID uuid.UUID `json:"customer_id"`

	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerEmail   *string `json:"customer_email,omitempty"`
	CustomerAddress *string `json:"customer_address,omitempty"`

	CustomerBuildingType *string `json:"customer_building_type,omitempty"`

	CustomerTotalSpent  int64   `json:"customer_total_spent"`
	CustomerOrderCount  int     `json:"customer_order_count"`
	CustomerLastService *string `json:"customer_last_service,omitempty"`
	CustomerRating      int     `json:"customer_rating"`

	CustomerStatus string  `json:"customer_status"`
	CustomerMemo   *string `json:"customer_memo,omitempty"`

	CustomerCreatedAt time.Time `json:"customer_created_at"`
	CustomerUpdatedAt time.Time `json:"customer_updated_at"`
}

func FromModel(cu *model.Customer) *CustomerResponse {
	var last *string
	if cu.CustomerLastService != nil {
		s := cu.CustomerLastService.Format("2006-01-02")
		last = &s
	}
	return &CustomerResponse{
		CustomerID:           cu.CustomerID,
		CustomerName:         cu.CustomerName,
		CustomerPhone:        cu.CustomerPhone,
		CustomerEmail:        cu.CustomerEmail,
		CustomerAddress:      cu.CustomerAddress,
		CustomerBuildingType: cu.CustomerBuildingType,
		CustomerTotalSpent:   cu.CustomerTotalSpent,
		CustomerOrderCount:   cu.CustomerOrderCount,
		CustomerLastService:  last,
		CustomerRating:       cu.CustomerRating,
		CustomerStatus:       cu.CustomerStatus,
		CustomerMemo:         cu.CustomerMemo,
		CustomerCreatedAt:    cu.CustomerCreatedAt,
		CustomerUpdatedAt:    cu.CustomerUpdatedAt,
	}
}

func FromModels(list []model.Customer) []*CustomerResponse {
	out := make([]*CustomerResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
