// file: internals/features/calendar/controller/event_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingModel "decofilm_backend/internals/features/bookings/model"
	dto "decofilm_backend/internals/features/calendar/dto"
	model "decofilm_backend/internals/features/calendar/model"
	service "decofilm_backend/internals/features/calendar/service"
	helper "decofilm_backend/internals/helpers"
)

type EventController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Validator: validator.New()}
}

func (ctl *EventController) loadAlive(c *fiber.Ctx, id uuid.UUID, e *model.Event) (responded bool, err error) {
	dbErr := model.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		First(e, "event_id = ?", id).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		return true, helper.Error(c, fiber.StatusNotFound, "Event not found")
	}
	if dbErr != nil {
		return true, helper.Error(c, fiber.StatusInternalServerError, dbErr.Error())
	}
	return false, nil
}

// ========== List events ==========
func (ctl *EventController) List(c *fiber.Ctx) error {
	var list []model.Event
	if err := model.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		Order("event_start_date ASC").
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"data": dto.FromModels(list)})
}

// ========== Create ==========
func (ctl *EventController) Create(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	e, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(e).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromModel(e))
}

// ========== Update (whole-record replace) ==========
func (ctl *EventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "event_id invalid")
	}
	var e model.Event
	if responded, err := ctl.loadAlive(c, id, &e); responded {
		return err
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyTo(&e); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&e).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dto.FromModel(&e))
}

// ========== Delete (soft) ==========
func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "event_id invalid")
	}

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.Event{}).
		Where("event_id = ? AND event_deleted_at IS NULL", id).
		Update("event_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Event not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ========== Calendar view (bookings + events merged) ==========
// GET /api/calendar?month=YYYY-MM
func (ctl *EventController) CalendarView(c *fiber.Ctx) error {
	monthStr := strings.TrimSpace(c.Query("month"))
	var anchor time.Time
	if monthStr == "" {
		anchor = time.Now()
	} else {
		t, err := time.Parse("2006-01", monthStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "month must be YYYY-MM")
		}
		anchor = t
	}
	from := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	to := from.AddDate(0, 1, 0).Add(-time.Second)

	var bookings []bookingModel.Booking
	if err := bookingModel.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		Where("booking_consult_date BETWEEN ? AND ?", from, to).
		Find(&bookings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var events []model.Event
	if err := model.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		Scopes(model.ScopeOverlapping(from, to)).
		Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"data": service.Merge(bookings, events)})
}
