package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

var (
	ErrInvalidPhoneNumber = errors.New("invalid phone number format")
	ErrInvalidPrice       = errors.New("invalid price, price must be a positive number")
	ErrInvalidTimePeriod  = errors.New("invalid time period format, it must be 'YYYY-MM-DD to YYYY-MM-DD'")
	ErrInvalidDate        = errors.New("invalid date format, expected YYYY-MM-DD")
)

func ValidatePhoneNumber(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return ErrInvalidPhoneNumber
	}
	return nil
}

// ParsePrice accepts the raw form value and enforces a positive number.
func ParsePrice(raw string) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, errors.New("price is required")
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price <= 0 {
		return 0, ErrInvalidPrice
	}

	return price, nil
}

// ParseTimePeriod parses the availability window string
// "YYYY-MM-DD to YYYY-MM-DD" and enforces start < end.
func ParseTimePeriod(period string) (time.Time, time.Time, error) {
	parts := strings.Split(period, " to ")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, ErrInvalidTimePeriod
	}

	start, err := time.Parse(dateLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTimePeriod
	}

	end, err := time.Parse(dateLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTimePeriod
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, ErrInvalidTimePeriod
	}

	return start, end, nil
}

// ParseDate parses a single "YYYY-MM-DD" value, used by the availability
// check endpoint.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, value)
	}
	return t, nil
}

func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}
