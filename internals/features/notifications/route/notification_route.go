package routes

import (
	"github.com/gofiber/fiber/v2"

	notificationController "decofilm_backend/internals/features/notifications/controller"
	"decofilm_backend/internals/middlewares"
)

func NotificationRoutes(api fiber.Router) {
	ctl := notificationController.NewNotificationController()

	api.Post("/send-email", middlewares.NotifyRateLimiter(), ctl.SendEmail)
	api.Post("/send-kakao", middlewares.NotifyRateLimiter(), ctl.SendKakao)
}
