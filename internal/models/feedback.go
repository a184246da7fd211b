package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is immutable once created. Username is denormalized at creation so
// listings don't need a user lookup per entry.
type Feedback struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id" validate:"required"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id" validate:"required"`
	Username  string             `json:"username" bson:"username"`
	Comment   string             `json:"comment" bson:"comment" validate:"required"`
	Rating    int                `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

type FeedbackResponse struct {
	ID        primitive.ObjectID `json:"id"`
	User      string             `json:"user"`
	Comment   string             `json:"comment"`
	Rating    int                `json:"rating"`
	CreatedAt time.Time          `json:"created_at"`
}

func (f *Feedback) Response() *FeedbackResponse {
	return &FeedbackResponse{
		ID:        f.ID,
		User:      f.Username,
		Comment:   f.Comment,
		Rating:    f.Rating,
		CreatedAt: f.CreatedAt,
	}
}
