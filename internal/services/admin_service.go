package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/models"
	"yatra/internal/repositories/interfaces"
	"yatra/pkg/logger"
)

type AdminService struct {
	vehicleRepo      interfaces.VehicleRepository
	notificationRepo interfaces.NotificationRepository
	logger           *logger.Logger
}

func NewAdminService(vehicleRepo interfaces.VehicleRepository, notificationRepo interfaces.NotificationRepository, logger *logger.Logger) *AdminService {
	return &AdminService{
		vehicleRepo:      vehicleRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (s *AdminService) ListPending(ctx context.Context) ([]*models.VehicleResponse, error) {
	vehicles, err := s.vehicleRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending vehicles: %w", err)
	}

	responses := make([]*models.VehicleResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		responses = append(responses, vehicle.Response(true))
	}
	return responses, nil
}

// Approve makes a listing publicly visible and tells the owner.
func (s *AdminService) Approve(ctx context.Context, id primitive.ObjectID) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("failed to get vehicle: %w", err)
	}

	if err := s.vehicleRepo.Update(ctx, id, map[string]interface{}{"is_approved": true}); err != nil {
		return fmt.Errorf("failed to approve vehicle: %w", err)
	}

	notification := &models.Notification{
		UserID:  vehicle.UserID,
		Message: fmt.Sprintf("Your vehicle '%s' has been approved!", vehicle.Model),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.WithError(err).WithField("vehicle_id", id.Hex()).Error("failed to create approval notification")
	}

	s.logger.WithField("vehicle_id", id.Hex()).Info("vehicle approved")

	return nil
}
