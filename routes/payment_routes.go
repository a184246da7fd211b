package routes

import (
	"github.com/gin-gonic/gin"

	"yatra/internal/handlers"
	"yatra/internal/middleware"
)

func SetupPaymentRoutes(r *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, jwtSecret string) {
	// The gateway redirects here after checkout.
	r.GET("/payment/success", paymentHandler.PaymentSuccess)

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		protected.POST("/verify-khalti-epayment", paymentHandler.VerifyKhaltiEPayment)
		protected.GET("/user-transactions", paymentHandler.UserTransactions)
		protected.GET("/bookings/my", paymentHandler.MyBookings)
	}
}
