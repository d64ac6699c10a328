// file: internals/features/bookings/controller/booking_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "decofilm_backend/internals/features/bookings/dto"
	model "decofilm_backend/internals/features/bookings/model"
	service "decofilm_backend/internals/features/bookings/service"
	helper "decofilm_backend/internals/helpers"
)

type BookingController struct {
	DB        *gorm.DB
	Store     service.Store
	Validator *validator.Validate
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{
		DB:        db,
		Store:     service.NewGormStore(db),
		Validator: validator.New(),
	}
}

var bookingSortColumns = map[string]string{
	"created_at":   "booking_created_at",
	"consult_date": "booking_consult_date",
	"name":         "booking_customer_name",
	"status":       "booking_status",
}

// ========== List ==========
func (ctl *BookingController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "consult_date", "desc", helper.AdminOpts)

	q := model.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		Model(&model.Booking{}).
		Scopes(
			model.ScopeStatus(strings.TrimSpace(c.Query("status"))),
			model.ScopeSearch(helper.LikePattern(c.Query("search"))),
		)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(bookingSortColumns, "consult_date")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var list []model.Booking
	if err := q.Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"data": dto.FromModels(list),
		"meta": helper.BuildMeta(total, p),
	})
}

// ========== Get ==========
func (ctl *BookingController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "booking_id invalid")
	}

	b, err := ctl.Store.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if b == nil {
		return helper.Error(c, fiber.StatusNotFound, "Booking not found")
	}
	return c.JSON(dto.FromModel(b))
}

// ========== Create ==========
func (ctl *BookingController) Create(c *fiber.Ctx) error {
	var req dto.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	b, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(b).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromModel(b))
}

// ========== Update (whole-record replace) ==========
func (ctl *BookingController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "booking_id invalid")
	}

	var b model.Booking
	if err := model.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		First(&b, "booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Booking not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyTo(&b); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.Store.Upsert(c.UserContext(), &b); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dto.FromModel(&b))
}

// ========== Sales patch ==========
func (ctl *BookingController) UpdateSales(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "booking_id invalid")
	}

	b, err := ctl.Store.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if b == nil {
		return helper.Error(c, fiber.StatusNotFound, "Booking not found")
	}

	var req dto.BookingSalesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyTo(b); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.Store.Upsert(c.UserContext(), b); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dto.FromModel(b))
}

// ========== Status transition ==========
func (ctl *BookingController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "booking_id invalid")
	}

	var req dto.BookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	b, err := service.Transition(c.UserContext(), ctl.Store, id, req.BookingStatus)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if b == nil {
		// the service treats an unknown id as a no-op; HTTP still says 404
		return helper.Error(c, fiber.StatusNotFound, "Booking not found")
	}
	return c.JSON(dto.FromModel(b))
}

// ========== Delete (soft) ==========
func (ctl *BookingController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "booking_id invalid")
	}

	// no cascade: customer records are never touched here
	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.Booking{}).
		Where("booking_id = ? AND booking_deleted_at IS NULL", id).
		Update("booking_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Booking not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
