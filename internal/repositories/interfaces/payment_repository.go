package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/models"
)

type PaymentRepository interface {
	// Create inserts the payment. It returns ErrDuplicateKey when the
	// transaction_id unique index rejects the insert.
	Create(ctx context.Context, payment *models.Payment) error
	ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Payment, error)
}
