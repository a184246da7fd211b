package handlers

import (
	"github.com/gin-gonic/gin"

	"yatra/internal/services"
	"yatra/internal/utils"
	"yatra/pkg/logger"
)

type AdminHandler struct {
	adminService *services.AdminService
	logger       *logger.Logger
}

func NewAdminHandler(adminService *services.AdminService, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

func (h *AdminHandler) PendingVehicles(c *gin.Context) {
	vehicles, err := h.adminService.ListPending(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", vehicles)
}

func (h *AdminHandler) ApproveVehicle(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.Approve(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "vehicle approved", nil)
}
