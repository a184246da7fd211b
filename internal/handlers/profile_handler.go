package handlers

import (
	"github.com/gin-gonic/gin"

	"yatra/internal/services"
	"yatra/internal/utils"
	"yatra/pkg/logger"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	logger         *logger.Logger
}

func NewProfileHandler(profileService *services.ProfileService, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", profile)
}

func (h *ProfileHandler) UpdateProfileImage(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	header, err := c.FormFile("profile_image")
	if err != nil {
		utils.BadRequestResponse(c, "profile_image file is required")
		return
	}

	file, closeFile, err := fileInput(header)
	if err != nil {
		utils.BadRequestResponse(c, "could not read uploaded file")
		return
	}
	defer closeFile()

	profile, err := h.profileService.UpdateImage(c.Request.Context(), userID, file)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "profile image updated", profile)
}
