package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"yatra/internal/models"
	"yatra/internal/repositories/interfaces"
)

type paymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) interfaces.PaymentRepository {
	return &paymentRepository{
		collection: db.Collection("payments"),
	}
}

// Create relies on the unique transaction_id index; concurrent inserts with
// the same reference surface as ErrDuplicateKey rather than a second row.
func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	payment.ID = primitive.NewObjectID()
	payment.PaidAt = time.Now()

	_, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return interfaces.ErrDuplicateKey
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"transaction_id": transactionID})
	if err != nil {
		return false, fmt.Errorf("failed to count payments: %w", err)
	}
	return count > 0, nil
}

func (r *paymentRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Payment, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "paid_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []*models.Payment
	for cursor.Next(ctx) {
		var payment models.Payment
		if err := cursor.Decode(&payment); err != nil {
			return nil, fmt.Errorf("failed to decode payment: %w", err)
		}
		payments = append(payments, &payment)
	}

	return payments, cursor.Err()
}
