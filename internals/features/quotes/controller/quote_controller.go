// file: internals/features/quotes/controller/quote_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "decofilm_backend/internals/features/quotes/dto"
	model "decofilm_backend/internals/features/quotes/model"
	pdfgen "decofilm_backend/internals/features/quotes/pdf"
	helper "decofilm_backend/internals/helpers"
)

type QuoteController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuoteController(db *gorm.DB) *QuoteController {
	return &QuoteController{DB: db, Validator: validator.New()}
}

var quoteSortColumns = map[string]string{
	"created_at": "quote_created_at",
	"total":      "quote_total_amount",
	"name":       "quote_customer_name",
	"status":     "quote_status",
}

// loadAlive fills q and reports whether the handler already responded.
func (ctl *QuoteController) loadAlive(c *fiber.Ctx, id uuid.UUID, q *model.Quote) (responded bool, err error) {
	dbErr := model.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		First(q, "quote_id = ?", id).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		return true, helper.Error(c, fiber.StatusNotFound, "Quote not found")
	}
	if dbErr != nil {
		return true, helper.Error(c, fiber.StatusInternalServerError, dbErr.Error())
	}
	return false, nil
}

// ========== List ==========
func (ctl *QuoteController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := model.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		Model(&model.Quote{}).
		Scopes(
			model.ScopeStatus(strings.TrimSpace(c.Query("status"))),
			model.ScopeSearch(helper.LikePattern(c.Query("search"))),
		)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(quoteSortColumns, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var list []model.Quote
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
func (ctl *QuoteController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "quote_id invalid")
	}
	var q model.Quote
	if responded, err := ctl.loadAlive(c, id, &q); responded {
		return err
	}
	return c.JSON(dto.FromModel(&q))
}

// ========== Create ==========
func (ctl *QuoteController) Create(c *fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	q, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(q).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromModel(q))
}

// ========== Update (whole-record replace) ==========
func (ctl *QuoteController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "quote_id invalid")
	}
	var q model.Quote
	if responded, err := ctl.loadAlive(c, id, &q); responded {
		return err
	}

	var req dto.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyTo(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&q).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dto.FromModel(&q))
}

// ========== Status transition ==========
func (ctl *QuoteController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "quote_id invalid")
	}
	var q model.Quote
	if responded, err := ctl.loadAlive(c, id, &q); responded {
		return err
	}

	var req dto.QuoteStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	q.QuoteStatus = req.QuoteStatus
	if err := ctl.DB.WithContext(c.UserContext()).Save(&q).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dto.FromModel(&q))
}

// ========== PDF ==========
func (ctl *QuoteController) DownloadPDF(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "quote_id invalid")
	}
	var q model.Quote
	if responded, err := ctl.loadAlive(c, id, &q); responded {
		return err
	}

	out, err := pdfgen.New().Generate(&q)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="estimate-%s.pdf"`, q.QuoteID.String()[:8]))
	return c.Send(out)
}

// ========== Delete (soft) ==========
func (ctl *QuoteController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "quote_id invalid")
	}

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.Quote{}).
		Where("quote_id = ? AND quote_deleted_at IS NULL", id).
		Update("quote_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Quote not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
