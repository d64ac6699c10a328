// file: internals/features/exports/controller/export_controller.go
package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingDto "decofilm_backend/internals/features/bookings/dto"
	bookingModel "decofilm_backend/internals/features/bookings/model"
	bookingService "decofilm_backend/internals/features/bookings/service"
	service "decofilm_backend/internals/features/exports/service"
	helper "decofilm_backend/internals/helpers"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// ========== GET /api/exports/bookings?format=json|csv ==========
func (ctl *ExportController) Bookings(c *fiber.Ctx) error {
	format := strings.ToLower(strings.TrimSpace(c.Query("format", "json")))
	if format != "json" && format != "csv" {
		return helper.Error(c, fiber.StatusBadRequest, "format must be json or csv")
	}

	var list []bookingModel.Booking
	if err := bookingModel.ScopeAlive(ctl.DB.WithContext(c.UserContext())).
		Order("booking_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	list = bookingService.Filter(list,
		strings.TrimSpace(c.Query("search")),
		strings.TrimSpace(c.Query("status")))

	stamp := time.Now().Format("20060102")

	if format == "csv" {
		body, err := service.BookingsCSV(list)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="bookings_%s.csv"`, stamp))
		return c.Send(body)
	}

	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="bookings_%s.json"`, stamp))
	return c.JSON(fiber.Map{"data": bookingDto.FromModels(list)})
}
