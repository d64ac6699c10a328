// file: internals/features/portfolio/controller/portfolio_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "decofilm_backend/internals/features/portfolio/dto"
	model "decofilm_backend/internals/features/portfolio/model"
	helper "decofilm_backend/internals/helpers"
	ossHelper "decofilm_backend/internals/helpers/oss"
)

type PortfolioController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPortfolioController(db *gorm.DB) *PortfolioController {
	return &PortfolioController{DB: db, Validator: validator.New()}
}

var portfolioSortColumns = map[string]string{
	"created_at":     "portfolio_created_at",
	"title":          "portfolio_title",
	"completed_date": "portfolio_completed_date",
}

func (ctl *PortfolioController) loadAlive(c *fiber.Ctx, id uuid.UUID, p *model.PortfolioItem) (responded bool, err error) {
	dbErr := model.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		First(p, "portfolio_id = ?", id).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		return true, helper.Error(c, fiber.StatusNotFound, "Portfolio item not found")
	}
	if dbErr != nil {
		return true, helper.Error(c, fiber.StatusInternalServerError, dbErr.Error())
	}
	return false, nil
}

// ========== List ==========
func (ctl *PortfolioController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := model.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		Model(&model.PortfolioItem{}).
		Scopes(
			model.ScopeCategory(strings.TrimSpace(c.Query("category"))),
			model.ScopeSearch(helper.LikePattern(c.Query("search"))),
		)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(portfolioSortColumns, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var list []model.PortfolioItem
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
func (ctl *PortfolioController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "portfolio_id invalid")
	}
	var item model.PortfolioItem
	if responded, err := ctl.loadAlive(c, id, &item); responded {
		return err
	}
	return c.JSON(dto.FromModel(&item))
}

// ========== Create ==========
func (ctl *PortfolioController) Create(c *fiber.Ctx) error {
	var req dto.PortfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	item, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(item).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromModel(item))
}

// ========== Update (whole-record replace) ==========
func (ctl *PortfolioController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "portfolio_id invalid")
	}
	var item model.PortfolioItem
	if responded, err := ctl.loadAlive(c, id, &item); responded {
		return err
	}

	var req dto.PortfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyTo(&item); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&item).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dto.FromModel(&item))
}

// ========== Upload (multipart image → webp → OSS) ==========
func (ctl *PortfolioController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "file field missing")
	}

	url, err := ossHelper.UploadImageWebP("portfolio", fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, err.Error())
	}
	return c.JSON(fiber.Map{"url": url})
}

// ========== Delete (soft) ==========
func (ctl *PortfolioController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "portfolio_id invalid")
	}

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.PortfolioItem{}).
		Where("portfolio_id = ? AND portfolio_deleted_at IS NULL", id).
		Update("portfolio_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Portfolio item not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
