package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quoteController "decofilm_backend/internals/features/quotes/controller"
)

func QuoteRoutes(api fiber.Router, db *gorm.DB) {
	ctl := quoteController.NewQuoteController(db)
	r := api.Group("/quotes")

	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Get("/:id/pdf", ctl.DownloadPDF)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Patch("/:id/status", ctl.UpdateStatus)
	r.Delete("/:id", ctl.Delete)
}
