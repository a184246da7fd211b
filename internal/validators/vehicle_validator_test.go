package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{"9812345678", "+9779812345678", "015550123456"}
	for _, phone := range valid {
		assert.NoError(t, ValidatePhoneNumber(phone), phone)
	}

	invalid := []string{"", "12345", "98-123-45678", "+977 9812345678", "abcdefghij", "12345678901234567"}
	for _, phone := range invalid {
		assert.ErrorIs(t, ValidatePhoneNumber(phone), ErrInvalidPhoneNumber, phone)
	}
}

func TestParsePrice(t *testing.T) {
	price, err := ParsePrice("2500.50")
	require.NoError(t, err)
	assert.Equal(t, 2500.50, price)

	for _, raw := range []string{"0", "-10", "abc"} {
		_, err := ParsePrice(raw)
		assert.ErrorIs(t, err, ErrInvalidPrice, raw)
	}

	_, err = ParsePrice("  ")
	assert.Error(t, err)
}

func TestParseTimePeriod(t *testing.T) {
	start, end, err := ParseTimePeriod("2025-01-01 to 2025-01-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), end)

	bad := []string{
		"2025-01-01",
		"2025-01-01 - 2025-01-10",
		"01/01/2025 to 10/01/2025",
		"2025-01-10 to 2025-01-01",
		"2025-01-01 to 2025-01-01",
	}
	for _, period := range bad {
		_, _, err := ParseTimePeriod(period)
		assert.ErrorIs(t, err, ErrInvalidTimePeriod, period)
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate(" 2025-01-05 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDate("05-01-2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, ValidateRating(rating))
	}
	assert.Error(t, ValidateRating(0))
	assert.Error(t, ValidateRating(6))
}
