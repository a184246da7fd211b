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

type NotificationService struct {
	notificationRepo interfaces.NotificationRepository
	userRepo         interfaces.UserRepository
	logger           *logger.Logger
}

func NewNotificationService(notificationRepo interfaces.NotificationRepository, userRepo interfaces.UserRepository, logger *logger.Logger) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// Send delivers a message to one user, or to every user when targetUserID is
// the zero ObjectID.
func (s *NotificationService) Send(ctx context.Context, targetUserID primitive.ObjectID, message string) error {
	if !targetUserID.IsZero() {
		if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
			if errors.Is(err, interfaces.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}
		return s.Notify(ctx, targetUserID, message)
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	notifications := make([]*models.Notification, 0, len(users))
	for _, user := range users {
		notifications = append(notifications, &models.Notification{
			UserID:  user.ID,
			Message: message,
		})
	}

	if err := s.notificationRepo.CreateMany(ctx, notifications); err != nil {
		return fmt.Errorf("failed to broadcast notification: %w", err)
	}

	s.logger.WithField("recipients", len(notifications)).Info("notification broadcast")

	return nil
}

// Notify creates a single notification for a user. Used by system events.
func (s *NotificationService) Notify(ctx context.Context, userID primitive.ObjectID, message string) error {
	notification := &models.Notification{
		UserID:  userID,
		Message: message,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (s *NotificationService) List(ctx context.Context, userID primitive.ObjectID) ([]*models.Notification, error) {
	notifications, err := s.notificationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID primitive.ObjectID) error {
	if err := s.notificationRepo.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
