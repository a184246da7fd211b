package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/models"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error)
	UpdateImage(ctx context.Context, userID primitive.ObjectID, imageURL string) error
}
