package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	projectController "decofilm_backend/internals/features/projects/controller"
)

func ProjectRoutes(api fiber.Router, db *gorm.DB) {
	ctl := projectController.NewProjectController(db)
	r := api.Group("/projects")

	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Post("/:id/advance", ctl.AdvanceProgress)
	r.Delete("/:id", ctl.Delete)
}
