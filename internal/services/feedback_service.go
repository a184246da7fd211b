package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/models"
	"yatra/internal/repositories/interfaces"
	"yatra/internal/validators"
)

// VehicleFeedbacks groups an owned vehicle's feedback for the owner view.
type VehicleFeedbacks struct {
	VehicleID primitive.ObjectID         `json:"vehicle_id"`
	Model     string                     `json:"model"`
	Feedbacks []*models.FeedbackResponse `json:"feedbacks"`
}

type FeedbackService struct {
	feedbackRepo interfaces.FeedbackRepository
	vehicleRepo  interfaces.VehicleRepository
}

func NewFeedbackService(feedbackRepo interfaces.FeedbackRepository, vehicleRepo interfaces.VehicleRepository) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		vehicleRepo:  vehicleRepo,
	}
}

func (s *FeedbackService) Add(ctx context.Context, vehicleID, userID primitive.ObjectID, username, comment string, rating int) (*models.FeedbackResponse, error) {
	if err := validators.ValidateRating(rating); err != nil {
		return nil, err
	}

	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	feedback := &models.Feedback{
		VehicleID: vehicleID,
		UserID:    userID,
		Username:  username,
		Comment:   comment,
		Rating:    rating,
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	return feedback.Response(), nil
}

func (s *FeedbackService) List(ctx context.Context, vehicleID primitive.ObjectID) ([]*models.FeedbackResponse, error) {
	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	feedbacks, err := s.feedbackRepo.GetByVehicleID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedbacks: %w", err)
	}

	responses := make([]*models.FeedbackResponse, 0, len(feedbacks))
	for _, feedback := range feedbacks {
		responses = append(responses, feedback.Response())
	}
	return responses, nil
}

// ListForOwner aggregates feedback across every vehicle the caller owns.
func (s *FeedbackService) ListForOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*VehicleFeedbacks, error) {
	vehicles, err := s.vehicleRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list own vehicles: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(vehicles))
	for _, vehicle := range vehicles {
		ids = append(ids, vehicle.ID)
	}

	feedbacks, err := s.feedbackRepo.GetByVehicleIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedbacks: %w", err)
	}

	byVehicle := make(map[primitive.ObjectID][]*models.FeedbackResponse)
	for _, feedback := range feedbacks {
		byVehicle[feedback.VehicleID] = append(byVehicle[feedback.VehicleID], feedback.Response())
	}

	result := make([]*VehicleFeedbacks, 0, len(vehicles))
	for _, vehicle := range vehicles {
		result = append(result, &VehicleFeedbacks{
			VehicleID: vehicle.ID,
			Model:     vehicle.Model,
			Feedbacks: byVehicle[vehicle.ID],
		})
	}

	return result, nil
}
