package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/models"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	CreateMany(ctx context.Context, notifications []*models.Notification) error
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, userID primitive.ObjectID) error
}
