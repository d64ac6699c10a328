package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	exportController "decofilm_backend/internals/features/exports/controller"
)

func ExportRoutes(api fiber.Router, db *gorm.DB) {
	ctl := exportController.NewExportController(db)

	r := api.Group("/exports")
	r.Get("/bookings", ctl.Bookings)
}
