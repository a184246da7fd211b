package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a confirmed booking. Amount is in paisa (minor currency
// unit) exactly as reported by the gateway; divide by 100 only for display.
// TransactionID carries a unique index, which is the idempotency gate against
// replayed gateway references.
type Payment struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"user_id" bson:"user_id" validate:"required"`
	VehicleID     primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id" validate:"required"`
	Amount        int64              `json:"amount" bson:"amount" validate:"required"`
	TransactionID string             `json:"transaction_id" bson:"transaction_id" validate:"required"`
	Mobile        string             `json:"mobile" bson:"mobile"`
	PaidAt        time.Time          `json:"paid_at" bson:"paid_at"`
}

type TransactionResponse struct {
	VehicleID     primitive.ObjectID `json:"vehicle_id"`
	Vehicle       string             `json:"vehicle"`
	Amount        float64            `json:"amount"`
	TransactionID string             `json:"transaction_id"`
	Mobile        string             `json:"mobile"`
	PaidAt        string             `json:"paid_at"`
}

type BookingResponse struct {
	VehicleModel  string  `json:"vehicle_model"`
	VehicleImage  string  `json:"vehicle_image"`
	Location      string  `json:"location"`
	Address       string  `json:"address"`
	AmountPaid    float64 `json:"amount_paid"`
	TransactionID string  `json:"transaction_id"`
	PaidAt        string  `json:"paid_at"`
}
