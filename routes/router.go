package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/handlers"
	"yatra/internal/utils"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Profile      *handlers.ProfileHandler
	Vehicle      *handlers.VehicleHandler
	Feedback     *handlers.FeedbackHandler
	Notification *handlers.NotificationHandler
	Payment      *handlers.PaymentHandler
	Admin        *handlers.AdminHandler
}

// Setup mounts all API routes under /api/v1 plus the health endpoint.
func Setup(router *gin.Engine, h *Handlers, jwtSecret string) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": utils.AppName,
			"version": utils.AppVersion,
		})
	})

	api := router.Group("/api/v1")

	SetupAuthRoutes(api, h.Auth, h.Profile, jwtSecret)
	SetupVehicleRoutes(api, h.Vehicle, jwtSecret)
	SetupFeedbackRoutes(api, h.Feedback, jwtSecret)
	SetupNotificationRoutes(api, h.Notification, jwtSecret)
	SetupPaymentRoutes(api, h.Payment, jwtSecret)
	SetupAdminRoutes(api, h.Admin, jwtSecret)
}
