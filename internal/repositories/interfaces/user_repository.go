package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	List(ctx context.Context) ([]*models.User, error)
}
