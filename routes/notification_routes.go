package routes

import (
	"github.com/gin-gonic/gin"

	"yatra/internal/handlers"
	"yatra/internal/middleware"
)

func SetupNotificationRoutes(r *gin.RouterGroup, notificationHandler *handlers.NotificationHandler, jwtSecret string) {
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		protected.GET("/notifications", notificationHandler.ListNotifications)
		protected.POST("/notifications/read/:id", notificationHandler.MarkRead)
	}

	admin := r.Group("")
	admin.Use(middleware.AuthMiddleware(jwtSecret), middleware.AdminMiddleware())
	{
		admin.POST("/send-notification", notificationHandler.SendNotification)
	}
}
