package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "decofilm_backend/internals/features/dashboard/controller"
	dashboardService "decofilm_backend/internals/features/dashboard/service"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB, counters *dashboardService.LiveCounters) {
	ctl := dashboardController.NewDashboardController(db, counters)

	r := api.Group("/dashboard")
	r.Get("/sales", ctl.Sales)
	r.Get("/live", ctl.Live)
}
