package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/services"
	"yatra/internal/utils"
	"yatra/pkg/logger"
)

type VehicleHandler struct {
	vehicleService *services.VehicleService
	logger         *logger.Logger
}

func NewVehicleHandler(vehicleService *services.VehicleService, logger *logger.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		logger:         logger,
	}
}

// AddVehicle accepts a multipart form: model, location, address, phone_number,
// price, time_period, vehicle_image (required), license_document (optional).
func (h *VehicleHandler) AddVehicle(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	req := &services.CreateVehicleRequest{
		Model:       c.PostForm("model"),
		Location:    c.PostForm("location"),
		Address:     c.PostForm("address"),
		PhoneNumber: c.PostForm("phone_number"),
		Price:       c.PostForm("price"),
		TimePeriod:  c.PostForm("time_period"),
	}
	if req.Model == "" || req.Location == "" || req.Address == "" || req.PhoneNumber == "" || req.Price == "" || req.TimePeriod == "" {
		utils.BadRequestResponse(c, "model, location, address, phone_number, price and time_period are required")
		return
	}

	imageHeader, err := c.FormFile("vehicle_image")
	if err != nil {
		utils.BadRequestResponse(c, "vehicle_image file is required")
		return
	}
	image, closeImage, err := fileInput(imageHeader)
	if err != nil {
		utils.BadRequestResponse(c, "could not read vehicle image")
		return
	}
	defer closeImage()
	req.Image = image

	if documentHeader, err := c.FormFile("license_document"); err == nil {
		document, closeDocument, err := fileInput(documentHeader)
		if err != nil {
			utils.BadRequestResponse(c, "could not read license document")
			return
		}
		defer closeDocument()
		req.Document = document
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "vehicle submitted for approval", vehicle.Response(isAdmin(c)))
}

func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.ListPublic(c.Request.Context(), isAdmin(c))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", vehicles)
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.Get(c.Request.Context(), id, isAdmin(c))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", vehicle)
}

func (h *VehicleHandler) UserVehicles(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	vehicles, err := h.vehicleService.ListOwn(c.Request.Context(), userID, isAdmin(c))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", vehicles)
}

func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	req := &services.UpdateVehicleRequest{
		Model:       c.PostForm("model"),
		Location:    c.PostForm("location"),
		Address:     c.PostForm("address"),
		PhoneNumber: c.PostForm("phone_number"),
		Price:       c.PostForm("price"),
		TimePeriod:  c.PostForm("time_period"),
	}

	if imageHeader, err := c.FormFile("vehicle_image"); err == nil {
		image, closeImage, err := fileInput(imageHeader)
		if err != nil {
			utils.BadRequestResponse(c, "could not read vehicle image")
			return
		}
		defer closeImage()
		req.Image = image
	}
	if documentHeader, err := c.FormFile("license_document"); err == nil {
		document, closeDocument, err := fileInput(documentHeader)
		if err != nil {
			utils.BadRequestResponse(c, "could not read license document")
			return
		}
		defer closeDocument()
		req.Document = document
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), id, userID, req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "vehicle updated", vehicle.Response(isAdmin(c)))
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), id, userID); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "vehicle deleted", nil)
}

type markUnavailableRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
}

func (h *VehicleHandler) MarkUnavailable(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req markUnavailableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "vehicle_id is required")
		return
	}

	id, err := primitive.ObjectIDFromHex(req.VehicleID)
	if err != nil {
		utils.BadRequestResponse(c, "invalid vehicle_id")
		return
	}

	if err := h.vehicleService.MarkUnavailable(c.Request.Context(), id, userID); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "vehicle marked unavailable", nil)
}

type checkAvailabilityRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

func (h *VehicleHandler) CheckAvailability(c *gin.Context) {
	var req checkAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "vehicle_id, start_date and end_date are required")
		return
	}

	id, err := primitive.ObjectIDFromHex(req.VehicleID)
	if err != nil {
		utils.BadRequestResponse(c, "invalid vehicle_id")
		return
	}

	result, err := h.vehicleService.CheckAvailability(c.Request.Context(), id, req.StartDate, req.EndDate)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", result)
}
