package routes

import (
	"github.com/gin-gonic/gin"

	"yatra/internal/handlers"
	"yatra/internal/middleware"
)

func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler, profileHandler *handlers.ProfileHandler, jwtSecret string) {
	// Public routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.Refresh)
	// A locked-out user has no token, so the reset request is public.
	r.POST("/password-reset-request", authHandler.PasswordResetRequest)

	// Protected routes
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		protected.GET("/protected", authHandler.Protected)
		protected.POST("/change-password", authHandler.ChangePassword)
		protected.GET("/user-profile", profileHandler.GetProfile)
		protected.POST("/user-profile", profileHandler.UpdateProfileImage)
	}
}
