package routes

import (
	"github.com/gin-gonic/gin"

	"yatra/internal/handlers"
	"yatra/internal/middleware"
)

func SetupVehicleRoutes(r *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler, jwtSecret string) {
	// Public browse routes; optional auth so admins get unredacted records
	public := r.Group("")
	public.Use(middleware.OptionalAuthMiddleware(jwtSecret))
	{
		public.GET("/list-vehicles", vehicleHandler.ListVehicles)
		public.GET("/vehicle/:id", vehicleHandler.GetVehicle)
		public.POST("/check-availability", vehicleHandler.CheckAvailability)
	}

	// Owner routes
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		protected.POST("/add-vehicle", vehicleHandler.AddVehicle)
		protected.GET("/user-vehicles", vehicleHandler.UserVehicles)
		protected.PUT("/update-vehicle/:id", vehicleHandler.UpdateVehicle)
		protected.DELETE("/delete-vehicle/:id", vehicleHandler.DeleteVehicle)
		protected.POST("/mark-vehicle-unavailable", vehicleHandler.MarkUnavailable)
	}
}
