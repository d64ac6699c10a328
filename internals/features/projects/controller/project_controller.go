// file: internals/features/projects/controller/project_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "decofilm_backend/internals/features/projects/dto"
	model "decofilm_backend/internals/features/projects/model"
	service "decofilm_backend/internals/features/projects/service"
	helper "decofilm_backend/internals/helpers"
)

type ProjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db, Validator: validator.New()}
}

var projectSortColumns = map[string]string{
	"created_at": "project_created_at",
	"progress":   "project_progress_percentage",
	"name":       "project_customer_name",
	"status":     "project_status",
}

func (ctl *ProjectController) loadAlive(c *fiber.Ctx, id uuid.UUID, p *model.Project) (responded bool, err error) {
	dbErr := model.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		First(p, "project_id = ?", id).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		return true, helper.Error(c, fiber.StatusNotFound, "Project not found")
	}
	if dbErr != nil {
		return true, helper.Error(c, fiber.StatusInternalServerError, dbErr.Error())
	}
	return false, nil
}

// ========== List ==========
func (ctl *ProjectController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := model.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		Model(&model.Project{}).
		Scopes(
			model.ScopeStatus(strings.TrimSpace(c.Query("status"))),
			model.ScopeSearch(helper.LikePattern(c.Query("search"))),
		)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(projectSortColumns, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var list []model.Project
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
func (ctl *ProjectController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "project_id invalid")
	}
	var p model.Project
	if responded, err := ctl.loadAlive(c, id, &p); responded {
		return err
	}
	return c.JSON(dto.FromModel(&p))
}

// ========== Create ==========
func (ctl *ProjectController) Create(c *fiber.Ctx) error {
	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	p, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(p).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromModel(p))
}

// ========== Update (whole-record replace) ==========
func (ctl *ProjectController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "project_id invalid")
	}
	var p model.Project
	if responded, err := ctl.loadAlive(c, id, &p); responded {
		return err
	}

	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyTo(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&p).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dto.FromModel(&p))
}

// ========== Advance progress (+25, clamped) ==========
func (ctl *ProjectController) AdvanceProgress(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "project_id invalid")
	}
	var p model.Project
	if responded, err := ctl.loadAlive(c, id, &p); responded {
		return err
	}

	p.ProjectProgressPercentage = service.Advance(p.ProjectProgressPercentage)
	p.ProjectStatus = service.StatusFor(p.ProjectProgressPercentage)

	if err := ctl.DB.WithContext(c.UserContext()).Save(&p).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dto.FromModel(&p))
}

// ========== Delete (soft) ==========
func (ctl *ProjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "project_id invalid")
	}

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.Project{}).
		Where("project_id = ? AND project_deleted_at IS NULL", id).
		Update("project_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Project not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
