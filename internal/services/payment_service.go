package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/models"
	"yatra/internal/repositories/interfaces"
	"yatra/pkg/email"
	"yatra/pkg/logger"
	"yatra/pkg/payment"
)

const paidAtLayout = "2006-01-02 15:04:05"

type PaymentService struct {
	paymentRepo      interfaces.PaymentRepository
	vehicleRepo      interfaces.VehicleRepository
	notificationRepo interfaces.NotificationRepository
	gateway          payment.Gateway
	mailer           email.Mailer
	logger           *logger.Logger
}

func NewPaymentService(
	paymentRepo interfaces.PaymentRepository,
	vehicleRepo interfaces.VehicleRepository,
	notificationRepo interfaces.NotificationRepository,
	gateway payment.Gateway,
	mailer email.Mailer,
	logger *logger.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo:      paymentRepo,
		vehicleRepo:      vehicleRepo,
		notificationRepo: notificationRepo,
		gateway:          gateway,
		mailer:           mailer,
		logger:           logger,
	}
}

// VerifyEPayment confirms a gateway payment reference and records the
// booking. The payment insert under the unique transaction_id index is the
// commit point; everything after it is best-effort.
func (s *PaymentService) VerifyEPayment(ctx context.Context, userID primitive.ObjectID, userEmail, pidx string, vehicleID primitive.ObjectID) (string, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return "", ErrVehicleNotFound
		}
		return "", fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.UserID == userID {
		return "", ErrSelfBooking
	}

	lookup, err := s.gateway.LookupPayment(ctx, pidx)
	if err != nil {
		return "", err
	}

	if lookup.Status != payment.StatusCompleted {
		return "", &PaymentIncompleteError{Status: lookup.Status}
	}

	transactionID := lookup.TransactionReference(pidx)

	// Pre-check for the friendly error; the unique index still backstops
	// concurrent requests racing on the same reference.
	exists, err := s.paymentRepo.ExistsByTransactionID(ctx, transactionID)
	if err != nil {
		return "", fmt.Errorf("failed to check transaction: %w", err)
	}
	if exists {
		return "", ErrDuplicateTransaction
	}

	record := &models.Payment{
		UserID:        userID,
		VehicleID:     vehicleID,
		Amount:        lookup.TotalAmount,
		TransactionID: transactionID,
		Mobile:        lookup.Mobile,
	}
	if err := s.paymentRepo.Create(ctx, record); err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return "", ErrDuplicateTransaction
		}
		return "", fmt.Errorf("failed to record payment: %w", err)
	}

	// The booking is committed. Notification and email failures are logged
	// and swallowed.
	notification := &models.Notification{
		UserID:  userID,
		Message: fmt.Sprintf("Booking confirmed for vehicle: %s!", vehicle.Model),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.WithError(err).WithField("transaction_id", transactionID).Error("failed to create booking notification")
	}

	s.sendConfirmationEmail(ctx, userEmail, vehicle, record)

	s.logger.WithFields(map[string]interface{}{
		"transaction_id": transactionID,
		"vehicle_id":     vehicleID.Hex(),
		"user_id":        userID.Hex(),
		"amount":         record.Amount,
	}).Info("booking recorded")

	return transactionID, nil
}

func (s *PaymentService) ListTransactions(ctx context.Context, userID primitive.ObjectID) ([]*models.TransactionResponse, error) {
	payments, err := s.paymentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	responses := make([]*models.TransactionResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, &models.TransactionResponse{
			VehicleID:     p.VehicleID,
			Vehicle:       s.vehicleModel(ctx, p.VehicleID),
			Amount:        float64(p.Amount) / 100,
			TransactionID: p.TransactionID,
			Mobile:        p.Mobile,
			PaidAt:        p.PaidAt.Format(paidAtLayout),
		})
	}
	return responses, nil
}

func (s *PaymentService) ListBookings(ctx context.Context, userID primitive.ObjectID) ([]*models.BookingResponse, error) {
	payments, err := s.paymentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	responses := make([]*models.BookingResponse, 0, len(payments))
	for _, p := range payments {
		booking := &models.BookingResponse{
			AmountPaid:    float64(p.Amount) / 100,
			TransactionID: p.TransactionID,
			PaidAt:        p.PaidAt.Format(paidAtLayout),
		}
		if vehicle, err := s.vehicleRepo.GetByID(ctx, p.VehicleID); err == nil {
			booking.VehicleModel = vehicle.Model
			booking.VehicleImage = vehicle.VehicleImage
			booking.Location = vehicle.Location
			booking.Address = vehicle.Address
		}
		responses = append(responses, booking)
	}
	return responses, nil
}

func (s *PaymentService) vehicleModel(ctx context.Context, vehicleID primitive.ObjectID) string {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return ""
	}
	return vehicle.Model
}

func (s *PaymentService) sendConfirmationEmail(ctx context.Context, to string, vehicle *models.Vehicle, record *models.Payment) {
	if to == "" {
		return
	}

	amount := float64(record.Amount) / 100
	textBody := fmt.Sprintf(
		"Your booking for %s is confirmed.\n\nLocation: %s, %s\nAmount paid: Rs. %.2f\nTransaction ID: %s",
		vehicle.Model, vehicle.Location, vehicle.Address, amount, record.TransactionID,
	)
	htmlBody := fmt.Sprintf(
		`<h2>Booking Confirmed</h2>
<p>Your booking for <strong>%s</strong> is confirmed.</p>
<ul>
<li>Location: %s, %s</li>
<li>Amount paid: Rs. %.2f</li>
<li>Transaction ID: %s</li>
</ul>`,
		vehicle.Model, vehicle.Location, vehicle.Address, amount, record.TransactionID,
	)

	if err := s.mailer.SendHTML(ctx, to, "Booking Confirmation", textBody, htmlBody); err != nil {
		s.logger.WithError(err).WithField("email", to).Error("failed to send booking confirmation email")
	}
}
