// file: internals/features/tasks/controller/task_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "decofilm_backend/internals/features/tasks/dto"
	model "decofilm_backend/internals/features/tasks/model"
	service "decofilm_backend/internals/features/tasks/service"
	helper "decofilm_backend/internals/helpers"
)

type TaskController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db, Validator: validator.New()}
}

func (ctl *TaskController) loadAlive(c *fiber.Ctx, id uuid.UUID, t *model.Task) (responded bool, err error) {
	dbErr := model.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		First(t, "task_id = ?", id).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		return true, helper.Error(c, fiber.StatusNotFound, "Task not found")
	}
	if dbErr != nil {
		return true, helper.Error(c, fiber.StatusInternalServerError, dbErr.Error())
	}
	return false, nil
}

// ========== List (sorted by priority score, open tasks first) ==========
func (ctl *TaskController) List(c *fiber.Ctx) error {
	var list []model.Task
	if err := model.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	service.SortByScore(list, time.Now())
	return c.JSON(fiber.Map{"data": dto.FromModels(list)})
}

// ========== Create ==========
func (ctl *TaskController) Create(c *fiber.Ctx) error {
	var req dto.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	t, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(t).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromModel(t))
}

// ========== Patch (partial update) ==========
func (ctl *TaskController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "task_id invalid")
	}
	var t model.Task
	if responded, err := ctl.loadAlive(c, id, &t); responded {
		return err
	}

	var req dto.TaskPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if req.TaskPriority.Set && req.TaskPriority.Value != nil {
		if err := ctl.Validator.Var(*req.TaskPriority.Value, "oneof=low medium high urgent"); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "task_priority must be one of low, medium, high, urgent")
		}
	}
	if err := req.ApplyTo(&t); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&t).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dto.FromModel(&t))
}

// ========== Delete (soft) ==========
func (ctl *TaskController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "task_id invalid")
	}

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.Task{}).
		Where("task_id = ? AND task_deleted_at IS NULL", id).
		Update("task_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Task not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
