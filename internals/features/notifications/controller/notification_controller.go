// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"decofilm_backend/internals/configs"
	dto "decofilm_backend/internals/features/notifications/dto"
	service "decofilm_backend/internals/features/notifications/service"
	helper "decofilm_backend/internals/helpers"
)

type NotificationController struct {
	Validator *validator.Validate
	Mail      *service.ProviderClient
	Kakao     *service.ProviderClient
}

func NewNotificationController() *NotificationController {
	return &NotificationController{
		Validator: validator.New(),
		Mail:      service.NewProviderClient(configs.MailProviderURL),
		Kakao:     service.NewProviderClient(configs.KakaoProviderURL),
	}
}

func (ctl *NotificationController) dispatch(c *fiber.Ctx, client *service.ProviderClient, payload any) error {
	if err := client.Send(c.UserContext(), payload); err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			return helper.Error(c, fiber.StatusServiceUnavailable, "notification provider not configured")
		}
		return helper.Error(c, fiber.StatusBadGateway, err.Error())
	}
	return helper.Success(c, "Notification accepted by provider", fiber.Map{"sent": true})
}

// ========== POST /api/send-email ==========
func (ctl *NotificationController) SendEmail(c *fiber.Ctx) error {
	var req dto.EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	return ctl.dispatch(c, ctl.Mail, req)
}

// ========== POST /api/send-kakao ==========
func (ctl *NotificationController) SendKakao(c *fiber.Ctx) error {
	var req dto.KakaoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	return ctl.dispatch(c, ctl.Kakao, req)
}
