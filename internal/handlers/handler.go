package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/services"
	"yatra/internal/utils"
	"yatra/internal/validators"
	"yatra/pkg/logger"
	"yatra/pkg/payment"
)

func getUserID(c *gin.Context) (primitive.ObjectID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return primitive.NilObjectID, false
	}
	userID, ok := value.(primitive.ObjectID)
	return userID, ok
}

func isAdmin(c *gin.Context) bool {
	return c.GetBool("is_admin")
}

func parseObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		utils.BadRequestResponse(c, "invalid id")
		return primitive.NilObjectID, false
	}
	return id, true
}

// fileInput opens an uploaded multipart file. The returned closer must be
// called after the service is done reading.
func fileInput(header *multipart.FileHeader) (*services.FileInput, func(), error) {
	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return &services.FileInput{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      file,
	}, func() { file.Close() }, nil
}

// respondServiceError maps service and validator errors onto the HTTP error
// taxonomy. Anything unrecognized is logged and reported as a 500.
func respondServiceError(c *gin.Context, log *logger.Logger, err error) {
	var incomplete *services.PaymentIncompleteError
	var gatewayErr *payment.GatewayError

	switch {
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUserExists),
		errors.Is(err, services.ErrDuplicateTransaction):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		utils.UnauthorizedResponse(c)
	case errors.Is(err, services.ErrSelfBooking):
		utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		utils.NotFoundResponse(c, "User")
	case errors.Is(err, services.ErrVehicleNotFound):
		utils.NotFoundResponse(c, "Vehicle")
	case errors.Is(err, services.ErrNotificationNotFound):
		utils.NotFoundResponse(c, "Notification")
	case errors.Is(err, services.ErrImageRequired),
		errors.Is(err, services.ErrInvalidImageType),
		errors.Is(err, services.ErrInvalidDocumentType),
		errors.Is(err, services.ErrFileTooLarge),
		errors.Is(err, validators.ErrInvalidPhoneNumber),
		errors.Is(err, validators.ErrInvalidPrice),
		errors.Is(err, validators.ErrInvalidTimePeriod),
		errors.Is(err, validators.ErrInvalidDate):
		utils.BadRequestResponse(c, err.Error())
	case errors.As(err, &incomplete):
		utils.BadRequestResponse(c, incomplete.Error())
	case errors.As(err, &gatewayErr):
		utils.ErrorResponse(c, http.StatusBadGateway, "GATEWAY_ERROR", gatewayErr.Error())
	default:
		log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		utils.InternalServerErrorResponse(c)
	}
}
