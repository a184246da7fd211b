package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vehicle is a rental listing. New listings start unapproved and stay out of
// the public catalog until an admin approves them.
type Vehicle struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID          primitive.ObjectID `json:"user_id" bson:"user_id" validate:"required"`
	Model           string             `json:"model" bson:"model" validate:"required"`
	Location        string             `json:"location" bson:"location" validate:"required"`
	Address         string             `json:"address" bson:"address" validate:"required"`
	PhoneNumber     string             `json:"phone_number" bson:"phone_number" validate:"required"`
	Price           float64            `json:"price" bson:"price" validate:"required,gt=0"`
	TimePeriod      string             `json:"time_period" bson:"time_period" validate:"required"`
	VehicleImage    string             `json:"vehicle_image" bson:"vehicle_image"`
	LicenseDocument string             `json:"license_document" bson:"license_document"`
	IsAvailable     bool               `json:"is_available" bson:"is_available"`
	IsApproved      bool               `json:"is_approved" bson:"is_approved"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// VehicleResponse is the serialized listing. LicenseDocument is only filled
// in for admin callers.
type VehicleResponse struct {
	ID              primitive.ObjectID  `json:"id"`
	Model           string              `json:"model"`
	Location        string              `json:"location"`
	Address         string              `json:"address"`
	PhoneNumber     string              `json:"phone_number"`
	Price           float64             `json:"price"`
	TimePeriod      string              `json:"time_period"`
	VehicleImage    string              `json:"vehicle_image"`
	LicenseDocument string              `json:"license_document,omitempty"`
	IsAvailable     bool                `json:"is_available"`
	IsApproved      bool                `json:"is_approved"`
	Feedbacks       []*FeedbackResponse `json:"feedbacks,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

func (v *Vehicle) Response(includeLicense bool) *VehicleResponse {
	resp := &VehicleResponse{
		ID:           v.ID,
		Model:        v.Model,
		Location:     v.Location,
		Address:      v.Address,
		PhoneNumber:  v.PhoneNumber,
		Price:        v.Price,
		TimePeriod:   v.TimePeriod,
		VehicleImage: v.VehicleImage,
		IsAvailable:  v.IsAvailable,
		IsApproved:   v.IsApproved,
		CreatedAt:    v.CreatedAt,
	}
	if includeLicense {
		resp.LicenseDocument = v.LicenseDocument
	}
	return resp
}
