// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingRoutes "decofilm_backend/internals/features/bookings/route"
	eventRoutes "decofilm_backend/internals/features/calendar/route"
	customerRoutes "decofilm_backend/internals/features/customers/route"
	dashboardRoutes "decofilm_backend/internals/features/dashboard/route"
	dashboardService "decofilm_backend/internals/features/dashboard/service"
	exportRoutes "decofilm_backend/internals/features/exports/route"
	notificationRoutes "decofilm_backend/internals/features/notifications/route"
	portfolioRoutes "decofilm_backend/internals/features/portfolio/route"
	projectRoutes "decofilm_backend/internals/features/projects/route"
	quoteRoutes "decofilm_backend/internals/features/quotes/route"
	taskRoutes "decofilm_backend/internals/features/tasks/route"
	"decofilm_backend/internals/middlewares"
)

// SetupRoutes mounts every feature under /api. The whole group sits behind
// RequireDatabase so a misconfigured instance answers with the 503 sentinel
// instead of panicking on a nil DB.
func SetupRoutes(app *fiber.App, db *gorm.DB, counters *dashboardService.LiveCounters) {
	api := app.Group("/api", middlewares.RequireDatabase())

	bookingRoutes.BookingRoutes(api, db)
	quoteRoutes.QuoteRoutes(api, db)
	projectRoutes.ProjectRoutes(api, db)
	customerRoutes.CustomerRoutes(api, db)
	portfolioRoutes.PortfolioRoutes(api, db)
	eventRoutes.EventRoutes(api, db)
	dashboardRoutes.DashboardRoutes(api, db, counters)
	taskRoutes.TaskRoutes(api, db)
	notificationRoutes.NotificationRoutes(api)
	exportRoutes.ExportRoutes(api, db)
}
