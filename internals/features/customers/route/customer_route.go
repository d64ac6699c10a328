package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	customerController "decofilm_backend/internals/features/customers/controller"
)

func CustomerRoutes(api fiber.Router, db *gorm.DB) {
	ctl := customerController.NewCustomerController(db)
	r := api.Group("/customers")

	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
