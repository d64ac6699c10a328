package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingController "decofilm_backend/internals/features/bookings/controller"
)

func BookingRoutes(api fiber.Router, db *gorm.DB) {
	ctl := bookingController.NewBookingController(db)
	r := api.Group("/bookings")

	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Put("/:id/sales", ctl.UpdateSales)
	r.Patch("/:id/status", ctl.UpdateStatus)
	r.Delete("/:id", ctl.Delete)
}
