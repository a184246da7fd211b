package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"yatra/internal/config"
	"yatra/internal/models"
	"yatra/internal/repositories/interfaces"
	"yatra/internal/utils"
	"yatra/pkg/email"
	"yatra/pkg/logger"
)

type AuthService struct {
	userRepo interfaces.UserRepository
	mailer   email.Mailer
	security *config.SecurityConfig
	logger   *logger.Logger
}

func NewAuthService(userRepo interfaces.UserRepository, mailer email.Mailer, security *config.SecurityConfig, logger *logger.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		mailer:   mailer,
		security: security,
		logger:   logger,
	}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost the race between the existence checks and the insert.
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.WithField("username", user.Username).Info("user registered")

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*utils.TokenPair, *models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := utils.GenerateTokenPair(
		user.ID, user.Username, user.Email, user.IsAdmin,
		s.security.JWTSecret, s.security.JWTAccessTokenTTL, s.security.JWTRefreshTokenTTL,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return tokens, user, nil
}

func (s *AuthService) RefreshToken(refreshToken string) (*utils.TokenPair, error) {
	tokens, err := utils.RefreshAccessToken(
		refreshToken,
		s.security.JWTSecret, s.security.JWTAccessTokenTTL, s.security.JWTRefreshTokenTTL,
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return tokens, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID primitive.ObjectID, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, userID, string(hash))
}

// RequestPasswordReset replaces the user's password with a random temporary
// one and mails it out. The mail send is best-effort; the reset itself is
// already committed when it runs.
func (s *AuthService) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	tempPassword := utils.GenerateTemporaryPassword()

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	body := fmt.Sprintf(
		"Hello %s,\n\nYour temporary password is: %s\n\nPlease log in and change it immediately.",
		user.Username, tempPassword,
	)
	if err := s.mailer.Send(ctx, user.Email, "Your temporary password", body); err != nil {
		s.logger.WithError(err).WithField("email", user.Email).Error("failed to send password reset email")
	}

	return nil
}
