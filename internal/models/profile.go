package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is created lazily on first profile access.
type Profile struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID       primitive.ObjectID `json:"user_id" bson:"user_id" validate:"required"`
	ProfileImage string             `json:"profile_image" bson:"profile_image"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

type ProfileResponse struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image"`
	CreatedAt    string `json:"created_at"`
}
