package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/models"
	"yatra/internal/repositories/interfaces"
	"yatra/internal/validators"
	"yatra/pkg/logger"
	"yatra/pkg/storage"
)

const (
	vehicleImagePrefix    = "vehicles/images/"
	vehicleDocumentPrefix = "vehicles/documents/"
)

type CreateVehicleRequest struct {
	Model       string
	Location    string
	Address     string
	PhoneNumber string
	Price       string
	TimePeriod  string
	Image       *FileInput
	Document    *FileInput
}

// UpdateVehicleRequest carries a partial update; empty fields keep their
// prior value.
type UpdateVehicleRequest struct {
	Model       string
	Location    string
	Address     string
	PhoneNumber string
	Price       string
	TimePeriod  string
	Image       *FileInput
	Document    *FileInput
}

type AvailabilityResult struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type VehicleService struct {
	vehicleRepo  interfaces.VehicleRepository
	feedbackRepo interfaces.FeedbackRepository
	storage      storage.StorageProvider
	logger       *logger.Logger
}

func NewVehicleService(vehicleRepo interfaces.VehicleRepository, feedbackRepo interfaces.FeedbackRepository, store storage.StorageProvider, logger *logger.Logger) *VehicleService {
	return &VehicleService{
		vehicleRepo:  vehicleRepo,
		feedbackRepo: feedbackRepo,
		storage:      store,
		logger:       logger,
	}
}

// Create stores a new listing pending admin approval. The image is mandatory,
// the license document optional.
func (s *VehicleService) Create(ctx context.Context, ownerID primitive.ObjectID, req *CreateVehicleRequest) (*models.Vehicle, error) {
	if err := validators.ValidatePhoneNumber(req.PhoneNumber); err != nil {
		return nil, err
	}

	price, err := validators.ParsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	if _, _, err := validators.ParseTimePeriod(req.TimePeriod); err != nil {
		return nil, err
	}

	if req.Image == nil {
		return nil, ErrImageRequired
	}

	imageURL, err := uploadImage(ctx, s.storage, vehicleImagePrefix, req.Image)
	if err != nil {
		return nil, err
	}

	var documentURL string
	if req.Document != nil {
		documentURL, err = uploadDocument(ctx, s.storage, vehicleDocumentPrefix, req.Document)
		if err != nil {
			return nil, err
		}
	}

	vehicle := &models.Vehicle{
		UserID:          ownerID,
		Model:           req.Model,
		Location:        req.Location,
		Address:         req.Address,
		PhoneNumber:     req.PhoneNumber,
		Price:           price,
		TimePeriod:      req.TimePeriod,
		VehicleImage:    imageURL,
		LicenseDocument: documentURL,
		IsAvailable:     true,
		IsApproved:      false,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"vehicle_id": vehicle.ID.Hex(),
		"owner_id":   ownerID.Hex(),
	}).Info("vehicle listed, pending approval")

	return vehicle, nil
}

// ListPublic returns approved and available listings with their feedback
// attached.
func (s *VehicleService) ListPublic(ctx context.Context, isAdmin bool) ([]*models.VehicleResponse, error) {
	vehicles, err := s.vehicleRepo.ListAvailableApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return s.withFeedbacks(ctx, vehicles, isAdmin)
}

func (s *VehicleService) Get(ctx context.Context, id primitive.ObjectID, isAdmin bool) (*models.VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	// Unapproved or unavailable listings are invisible to the public.
	if !isAdmin && (!vehicle.IsApproved || !vehicle.IsAvailable) {
		return nil, ErrVehicleNotFound
	}

	resp := vehicle.Response(isAdmin)

	feedbacks, err := s.feedbackRepo.GetByVehicleID(ctx, vehicle.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedbacks: %w", err)
	}
	for _, feedback := range feedbacks {
		resp.Feedbacks = append(resp.Feedbacks, feedback.Response())
	}

	return resp, nil
}

func (s *VehicleService) ListOwn(ctx context.Context, ownerID primitive.ObjectID, isAdmin bool) ([]*models.VehicleResponse, error) {
	vehicles, err := s.vehicleRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list own vehicles: %w", err)
	}

	responses := make([]*models.VehicleResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		responses = append(responses, vehicle.Response(isAdmin))
	}
	return responses, nil
}

func (s *VehicleService) Update(ctx context.Context, id, ownerID primitive.ObjectID, req *UpdateVehicleRequest) (*models.Vehicle, error) {
	if _, err := s.vehicleRepo.GetByIDAndOwner(ctx, id, ownerID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	updates := make(map[string]interface{})

	if req.Model != "" {
		updates["model"] = req.Model
	}
	if req.Location != "" {
		updates["location"] = req.Location
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.PhoneNumber != "" {
		if err := validators.ValidatePhoneNumber(req.PhoneNumber); err != nil {
			return nil, err
		}
		updates["phone_number"] = req.PhoneNumber
	}
	if req.Price != "" {
		price, err := validators.ParsePrice(req.Price)
		if err != nil {
			return nil, err
		}
		updates["price"] = price
	}
	if req.TimePeriod != "" {
		if _, _, err := validators.ParseTimePeriod(req.TimePeriod); err != nil {
			return nil, err
		}
		updates["time_period"] = req.TimePeriod
	}
	if req.Image != nil {
		imageURL, err := uploadImage(ctx, s.storage, vehicleImagePrefix, req.Image)
		if err != nil {
			return nil, err
		}
		updates["vehicle_image"] = imageURL
	}
	if req.Document != nil {
		documentURL, err := uploadDocument(ctx, s.storage, vehicleDocumentPrefix, req.Document)
		if err != nil {
			return nil, err
		}
		updates["license_document"] = documentURL
	}

	if len(updates) > 0 {
		if err := s.vehicleRepo.Update(ctx, id, updates); err != nil {
			return nil, fmt.Errorf("failed to update vehicle: %w", err)
		}
	}

	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *VehicleService) Delete(ctx context.Context, id, ownerID primitive.ObjectID) error {
	if _, err := s.vehicleRepo.GetByIDAndOwner(ctx, id, ownerID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("failed to get vehicle: %w", err)
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	return nil
}

// MarkUnavailable takes the listing out of the public catalog. Only the owner
// may do it.
func (s *VehicleService) MarkUnavailable(ctx context.Context, id, ownerID primitive.ObjectID) error {
	if _, err := s.vehicleRepo.GetByIDAndOwner(ctx, id, ownerID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("failed to get vehicle: %w", err)
	}

	if err := s.vehicleRepo.Update(ctx, id, map[string]interface{}{"is_available": false}); err != nil {
		return fmt.Errorf("failed to mark vehicle unavailable: %w", err)
	}

	return nil
}

// CheckAvailability reports whether the requested date range falls entirely
// within the vehicle's availability window. Read-only.
func (s *VehicleService) CheckAvailability(ctx context.Context, id primitive.ObjectID, startDate, endDate string) (*AvailabilityResult, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	reqStart, err := validators.ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	reqEnd, err := validators.ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	if reqStart.After(reqEnd) {
		return nil, validators.ErrInvalidTimePeriod
	}

	if !vehicle.IsAvailable {
		return &AvailabilityResult{Available: false, Reason: "vehicle is currently unavailable"}, nil
	}

	windowStart, windowEnd, err := validators.ParseTimePeriod(vehicle.TimePeriod)
	if err != nil {
		return nil, fmt.Errorf("stored time period is malformed: %w", err)
	}

	if reqStart.Before(windowStart) || reqEnd.After(windowEnd) {
		return &AvailabilityResult{
			Available: false,
			Reason:    fmt.Sprintf("requested dates are outside the availability window (%s)", vehicle.TimePeriod),
		}, nil
	}

	return &AvailabilityResult{Available: true}, nil
}

func (s *VehicleService) withFeedbacks(ctx context.Context, vehicles []*models.Vehicle, includeLicense bool) ([]*models.VehicleResponse, error) {
	ids := make([]primitive.ObjectID, 0, len(vehicles))
	for _, vehicle := range vehicles {
		ids = append(ids, vehicle.ID)
	}

	feedbacks, err := s.feedbackRepo.GetByVehicleIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedbacks: %w", err)
	}

	byVehicle := make(map[primitive.ObjectID][]*models.FeedbackResponse)
	for _, feedback := range feedbacks {
		byVehicle[feedback.VehicleID] = append(byVehicle[feedback.VehicleID], feedback.Response())
	}

	responses := make([]*models.VehicleResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		resp := vehicle.Response(includeLicense)
		resp.Feedbacks = byVehicle[vehicle.ID]
		responses = append(responses, resp)
	}

	return responses, nil
}
