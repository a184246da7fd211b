package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/models"
	"yatra/internal/repositories/interfaces"
	"yatra/pkg/logger"
	"yatra/pkg/storage"
)

type ProfileService struct {
	profileRepo interfaces.ProfileRepository
	userRepo    interfaces.UserRepository
	storage     storage.StorageProvider
	logger      *logger.Logger
}

func NewProfileService(profileRepo interfaces.ProfileRepository, userRepo interfaces.UserRepository, store storage.StorageProvider, logger *logger.Logger) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		storage:     store,
		logger:      logger,
	}
}

// GetProfile returns the caller's profile, creating an empty one on first
// access.
func (s *ProfileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	profile, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.ProfileResponse{
		Username:     user.Username,
		Email:        user.Email,
		ProfileImage: profile.ProfileImage,
		CreatedAt:    profile.CreatedAt.Format("2006-01-02"),
	}, nil
}

func (s *ProfileService) UpdateImage(ctx context.Context, userID primitive.ObjectID, file *FileInput) (*models.ProfileResponse, error) {
	if _, err := s.getOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	url, err := uploadImage(ctx, s.storage, "profiles/", file)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.UpdateImage(ctx, userID, url); err != nil {
		return nil, fmt.Errorf("failed to update profile image: %w", err)
	}

	return s.GetProfile(ctx, userID)
}

func (s *ProfileService) getOrCreate(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, interfaces.ErrNotFound) {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile = &models.Profile{UserID: userID}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		// Another request created it first.
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return s.profileRepo.GetByUserID(ctx, userID)
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}
