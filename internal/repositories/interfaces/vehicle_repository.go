package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/models"
)

type VehicleRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Vehicle, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Listings
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error)
	ListAvailableApproved(ctx context.Context) ([]*models.Vehicle, error)
	ListPending(ctx context.Context) ([]*models.Vehicle, error)
}
