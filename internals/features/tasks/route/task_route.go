package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	taskController "decofilm_backend/internals/features/tasks/controller"
)

func TaskRoutes(api fiber.Router, db *gorm.DB) {
	ctl := taskController.NewTaskController(db)

	r := api.Group("/tasks")
	r.Get("/", ctl.List)
	r.Post("/", ctl.Create)
	r.Patch("/:id", ctl.Patch)
	r.Delete("/:id", ctl.Delete)
}
