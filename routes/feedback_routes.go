package routes

import (
	"github.com/gin-gonic/gin"

	"yatra/internal/handlers"
	"yatra/internal/middleware"
)

func SetupFeedbackRoutes(r *gin.RouterGroup, feedbackHandler *handlers.FeedbackHandler, jwtSecret string) {
	r.GET("/feedback/list/:vehicleId", feedbackHandler.ListFeedback)

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		protected.POST("/feedback/add/:vehicleId", feedbackHandler.AddFeedback)
		protected.GET("/my-vehicles-feedbacks", feedbackHandler.MyVehiclesFeedbacks)
	}
}
