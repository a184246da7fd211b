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

type feedbackRepository struct {
	collection *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) interfaces.FeedbackRepository {
	return &feedbackRepository{
		collection: db.Collection("feedbacks"),
	}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.ID = primitive.NewObjectID()
	feedback.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	return nil
}

func (r *feedbackRepository) GetByVehicleID(ctx context.Context, vehicleID primitive.ObjectID) ([]*models.Feedback, error) {
	return r.find(ctx, bson.M{"vehicle_id": vehicleID})
}

func (r *feedbackRepository) GetByVehicleIDs(ctx context.Context, vehicleIDs []primitive.ObjectID) ([]*models.Feedback, error) {
	if len(vehicleIDs) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"vehicle_id": bson.M{"$in": vehicleIDs}})
}

func (r *feedbackRepository) find(ctx context.Context, filter bson.M) ([]*models.Feedback, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find feedbacks: %w", err)
	}
	defer cursor.Close(ctx)

	var feedbacks []*models.Feedback
	for cursor.Next(ctx) {
		var feedback models.Feedback
		if err := cursor.Decode(&feedback); err != nil {
			return nil, fmt.Errorf("failed to decode feedback: %w", err)
		}
		feedbacks = append(feedbacks, &feedback)
	}

	return feedbacks, cursor.Err()
}
