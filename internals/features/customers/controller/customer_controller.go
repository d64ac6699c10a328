// file: internals/features/customers/controller/customer_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "decofilm_backend/internals/features/customers/dto"
	model "decofilm_backend/internals/features/customers/model"
	helper "decofilm_backend/internals/helpers"
)

type CustomerController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db, Validator: validator.New()}
}

var customerSortColumns = map[string]string{
	"created_at":   "customer_created_at",
	"name":         "customer_name",
	"total_spent":  "customer_total_spent",
	"last_service": "customer_last_service",
	"rating":       "customer_rating",
}

func (ctl *CustomerController) loadAlive(c *fiber.Ctx, id uuid.UUID, cu *model.Customer) (responded bool, err error) {
	dbErr := model.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		First(cu, "customer_id = ?", id).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		return true, helper.Error(c, fiber.StatusNotFound, "Customer not found")
	}
	if dbErr != nil {
		return true, helper.Error(c, fiber.StatusInternalServerError, dbErr.Error())
	}
	return false, nil
}

// ========== List ==========
func (ctl *CustomerController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := model.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		Model(&model.Customer{}).
		Scopes(
			model.ScopeStatus(strings.TrimSpace(c.Query("status"))),
			model.ScopeSearch(helper.LikePattern(c.Query("search"))),
		)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(customerSortColumns, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var list []model.Customer
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
func (ctl *CustomerController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "customer_id invalid")
	}
	var cu model.Customer
	if responded, err := ctl.loadAlive(c, id, &cu); responded {
		return err
	}
	return c.JSON(dto.FromModel(&cu))
}

// ========== Create ==========
func (ctl *CustomerController) Create(c *fiber.Ctx) error {
	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	cu, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(cu).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "A customer with this phone already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromModel(cu))
}

// ========== Update (whole-record replace) ==========
func (ctl *CustomerController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "customer_id invalid")
	}
	var cu model.Customer
	if responded, err := ctl.loadAlive(c, id, &cu); responded {
		return err
	}

	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyTo(&cu); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&cu).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "A customer with this phone already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dto.FromModel(&cu))
}

// ========== Delete (soft) ==========
// Deleting a customer never cascades to bookings; the records are independent.
func (ctl *CustomerController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "customer_id invalid")
	}

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.Customer{}).
		Where("customer_id = ? AND customer_deleted_at IS NULL", id).
		Update("customer_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Customer not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
