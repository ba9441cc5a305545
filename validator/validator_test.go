package validator

import (
	"testing"
	"time"

	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	apperrors "github.com/bwubca23694-eng/Brainware-Rooms/errors"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegister(t *testing.T) {
	valid := dto.RegisterInput{Name: "Ankit", Email: "ankit@example.com", Password: "secret1", Role: "student"}

	t.Run("Valid", func(t *testing.T) {
		input := valid
		assert.NoError(t, ValidateRegister(&input))
	})

	t.Run("BadEmail", func(t *testing.T) {
		input := valid
		input.Email = "not-an-email"
		assert.True(t, apperrors.HasCode(ValidateRegister(&input), apperrors.ErrCodeInvalidFormat))
	})

	t.Run("ShortPassword", func(t *testing.T) {
		input := valid
		input.Password = "abc"
		assert.True(t, apperrors.HasCode(ValidateRegister(&input), apperrors.ErrCodeValidation))
	})

	t.Run("AdminRoleNotSelfAssignable", func(t *testing.T) {
		input := valid
		input.Role = "admin"
		assert.True(t, apperrors.HasCode(ValidateRegister(&input), apperrors.ErrCodeValidation))
	})

	t.Run("BadPhone", func(t *testing.T) {
		input := valid
		input.Phone = "12345"
		assert.True(t, apperrors.HasCode(ValidateRegister(&input), apperrors.ErrCodeInvalidFormat))
	})
}

func TestValidateCreateRoom(t *testing.T) {
	valid := dto.CreateRoomInput{
		Title:       "Room",
		Description: "desc",
		Type:        "single",
		Rent:        6000,
		Address:     models.Address{Street: "NH-34", Area: "Barasat", Pincode: "700125"},
	}

	t.Run("Valid", func(t *testing.T) {
		input := valid
		assert.NoError(t, ValidateCreateRoom(&input))
	})

	t.Run("MissingTitle", func(t *testing.T) {
		input := valid
		input.Title = ""
		assert.True(t, apperrors.HasCode(ValidateCreateRoom(&input), apperrors.ErrCodeRequiredField))
	})

	t.Run("BadPincode", func(t *testing.T) {
		input := valid
		input.Address.Pincode = "70012"
		assert.True(t, apperrors.HasCode(ValidateCreateRoom(&input), apperrors.ErrCodeInvalidFormat))
	})

	t.Run("UnknownAmenity", func(t *testing.T) {
		input := valid
		input.Amenities = []string{"wifi", "helipad"}
		assert.True(t, apperrors.HasCode(ValidateCreateRoom(&input), apperrors.ErrCodeValidation))
	})

	t.Run("AvailableExceedsTotal", func(t *testing.T) {
		input := valid
		input.TotalRooms = 2
		input.AvailableRooms = 3
		assert.True(t, apperrors.HasCode(ValidateCreateRoom(&input), apperrors.ErrCodeValidation))
	})
}

func TestValidateBookingRequest(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		moveIn, err := ValidateBookingRequest(&dto.BookingRequest{MoveInDate: "2026-10-01", Duration: 6})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), moveIn)
	})

	t.Run("MissingDate", func(t *testing.T) {
		_, err := ValidateBookingRequest(&dto.BookingRequest{Duration: 6})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRequiredField))
	})

	t.Run("WrongDateFormat", func(t *testing.T) {
		_, err := ValidateBookingRequest(&dto.BookingRequest{MoveInDate: "01/10/2026", Duration: 6})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidFormat))
	})

	t.Run("NonPositiveDuration", func(t *testing.T) {
		_, err := ValidateBookingRequest(&dto.BookingRequest{MoveInDate: "2026-10-01", Duration: 0})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
	})
}

func TestValidateReview(t *testing.T) {
	assert.NoError(t, ValidateReview(&dto.ReviewInput{Rating: 3, Comment: "fine"}))
	assert.Error(t, ValidateReview(&dto.ReviewInput{Rating: 0, Comment: "fine"}))
	assert.Error(t, ValidateReview(&dto.ReviewInput{Rating: 6, Comment: "fine"}))
	assert.Error(t, ValidateReview(&dto.ReviewInput{Rating: 3}))
}
