package handlers

import (
	"github.com/gin-gonic/gin"

	"yatra/internal/services"
	"yatra/internal/utils"
	"yatra/pkg/logger"
)

type FeedbackHandler struct {
	feedbackService *services.FeedbackService
	logger          *logger.Logger
}

func NewFeedbackHandler(feedbackService *services.FeedbackService, logger *logger.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

type addFeedbackRequest struct {
	Comment string `json:"comment" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
}

func (h *FeedbackHandler) AddFeedback(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	vehicleID, ok := parseObjectID(c, "vehicleId")
	if !ok {
		return
	}

	var req addFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "comment and rating are required")
		return
	}

	feedback, err := h.feedbackService.Add(c.Request.Context(), vehicleID, userID, c.GetString("username"), req.Comment, req.Rating)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "feedback added", feedback)
}

func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	vehicleID, ok := parseObjectID(c, "vehicleId")
	if !ok {
		return
	}

	feedbacks, err := h.feedbackService.List(c.Request.Context(), vehicleID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", feedbacks)
}

func (h *FeedbackHandler) MyVehiclesFeedbacks(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	feedbacks, err := h.feedbackService.ListForOwner(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", feedbacks)
}
