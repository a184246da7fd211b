package services

import (
	"errors"
	"fmt"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrUserNotFound         = errors.New("user not found")
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrSelfBooking          = errors.New("you cannot book your own vehicle")
	ErrDuplicateTransaction = errors.New("this transaction has already been recorded")
)

// PaymentIncompleteError is returned when the gateway reports any status
// other than Completed. The reported status is surfaced to the caller.
type PaymentIncompleteError struct {
	Status string
}

func (e *PaymentIncompleteError) Error() string {
	return fmt.Sprintf("payment not completed, current status: %s", e.Status)
}
