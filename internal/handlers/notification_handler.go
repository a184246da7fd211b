package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/services"
	"yatra/internal/utils"
	"yatra/pkg/logger"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
	logger              *logger.Logger
}

func NewNotificationHandler(notificationService *services.NotificationService, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

type sendNotificationRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message" binding:"required"`
}

// SendNotification targets a single user when user_id is given, otherwise
// broadcasts to everyone. Admin only.
func (h *NotificationHandler) SendNotification(c *gin.Context) {
	var req sendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "message is required")
		return
	}

	targetID := primitive.NilObjectID
	if req.UserID != "" {
		id, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			utils.BadRequestResponse(c, "invalid user_id")
			return
		}
		targetID = id
	}

	if err := h.notificationService.Send(c.Request.Context(), targetID, req.Message); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "notification sent", nil)
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	notifications, err := h.notificationService.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id, userID); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "notification marked as read", nil)
}
