package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	portfolioController "decofilm_backend/internals/features/portfolio/controller"
	middlewares "decofilm_backend/internals/middlewares"
)

func PortfolioRoutes(api fiber.Router, db *gorm.DB) {
	ctl := portfolioController.NewPortfolioController(db)
	r := api.Group("/portfolio")

	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)

	// kept at the top level to match the frontend's /api/upload call
	api.Post("/upload", middlewares.UploadRateLimiter(), ctl.Upload)
}
