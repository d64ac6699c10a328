// file: internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingModel "decofilm_backend/internals/features/bookings/model"
	service "decofilm_backend/internals/features/dashboard/service"
	helper "decofilm_backend/internals/helpers"
)

type DashboardController struct {
	DB       *gorm.DB
	Counters *service.LiveCounters
}

func NewDashboardController(db *gorm.DB, counters *service.LiveCounters) *DashboardController {
	return &DashboardController{DB: db, Counters: counters}
}

// GET /api/dashboard/sales?period=daily|weekly|monthly|yearly
func (ctl *DashboardController) Sales(c *fiber.Ctx) error {
	period, err := service.ParsePeriod(strings.TrimSpace(c.Query("period")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	now := time.Now()
	from, to := service.PeriodRange(period, now)

	// the aggregator re-checks the interval; the WHERE just keeps the load sane
	var bookings []bookingModel.Booking
	if err := bookingModel.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		Where("booking_consult_date >= ? AND booking_consult_date < ?", from, to).
		Find(&bookings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"data": service.Aggregate(bookings, period, now)})
}

// GET /api/dashboard/live
func (ctl *DashboardController) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": ctl.Counters.Snapshot()})
}
