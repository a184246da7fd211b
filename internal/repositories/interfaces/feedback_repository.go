package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/models"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	GetByVehicleID(ctx context.Context, vehicleID primitive.ObjectID) ([]*models.Feedback, error)
	GetByVehicleIDs(ctx context.Context, vehicleIDs []primitive.ObjectID) ([]*models.Feedback, error)
}
