package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "decofilm_backend/internals/features/calendar/controller"
)

func EventRoutes(api fiber.Router, db *gorm.DB) {
	ctl := eventController.NewEventController(db)

	r := api.Group("/events")
	r.Get("/", ctl.List)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)

	api.Get("/calendar", ctl.CalendarView)
}
