package routes

import (
	"github.com/gin-gonic/gin"

	"yatra/internal/handlers"
	"yatra/internal/middleware"
)

func SetupAdminRoutes(r *gin.RouterGroup, adminHandler *handlers.AdminHandler, jwtSecret string) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtSecret), middleware.AdminMiddleware())
	{
		admin.GET("/pending-vehicles", adminHandler.PendingVehicles)
		admin.POST("/approve-vehicle/:id", adminHandler.ApproveVehicle)
	}
}
