package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/services"
	"yatra/internal/utils"
	"yatra/pkg/logger"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
	logger         *logger.Logger
}

func NewPaymentHandler(paymentService *services.PaymentService, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

type verifyPaymentRequest struct {
	Pidx      string `json:"pidx" binding:"required"`
	VehicleID string `json:"vehicle_id" binding:"required"`
}

func (h *PaymentHandler) VerifyKhaltiEPayment(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "pidx and vehicle_id are required")
		return
	}

	vehicleID, err := primitive.ObjectIDFromHex(req.VehicleID)
	if err != nil {
		utils.BadRequestResponse(c, "invalid vehicle_id")
		return
	}

	transactionID, err := h.paymentService.VerifyEPayment(c.Request.Context(), userID, c.GetString("email"), req.Pidx, vehicleID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "payment verified and booking confirmed", gin.H{
		"transaction_id": transactionID,
	})
}

func (h *PaymentHandler) UserTransactions(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	transactions, err := h.paymentService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", transactions)
}

func (h *PaymentHandler) MyBookings(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	bookings, err := h.paymentService.ListBookings(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", bookings)
}

const paymentSuccessPage = `<!DOCTYPE html>
<html>
<head>
<title>Payment Successful</title>
<style>
body { font-family: sans-serif; text-align: center; padding-top: 4rem; }
h1 { color: #2e7d32; }
</style>
</head>
<body>
<h1>Payment Successful</h1>
<p>Your booking has been confirmed. You can close this window.</p>
</body>
</html>`

// PaymentSuccess is the static confirmation page the gateway redirects to.
func (h *PaymentHandler) PaymentSuccess(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, paymentSuccessPage)
}
