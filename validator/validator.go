package validator

import (
	"regexp"
	"time"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/errors"
)

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodeRegex = regexp.MustCompile(`^[0-9]{6}$`)
)

// ValidateRegister checks the signup payload
func ValidateRegister(input *dto.RegisterInput) error {
	if input.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Name is required", nil)
	}
	if input.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}
	if !emailRegex.MatchString(input.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid email", nil)
	}
	if len(input.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}
	if input.Phone != "" && !phoneRegex.MatchString(input.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid phone number", nil)
	}
	switch input.Role {
	case "", constants.RoleStudent, constants.RoleOwner:
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid role", nil)
	}
	return nil
}

// ValidateCreateRoom checks an owner's listing payload
func ValidateCreateRoom(input *dto.CreateRoomInput) error {
	if input.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Title is required", nil)
	}
	if input.Description == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Description is required", nil)
	}
	if !constants.IsValidRoomType(input.Type) {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid room type", nil)
	}
	if input.Rent < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Rent must not be negative", nil)
	}
	if input.Deposit < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Deposit must not be negative", nil)
	}
	if input.Address.Street == "" || input.Address.Area == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Street and area are required", nil)
	}
	if input.Address.Pincode == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Pincode is required", nil)
	}
	if !pincodeRegex.MatchString(input.Address.Pincode) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid pincode", nil)
	}
	for _, amenity := range input.Amenities {
		if !constants.IsValidAmenity(amenity) {
			return errors.NewAppError(errors.ErrCodeValidation, "Invalid amenity: "+amenity, nil)
		}
	}
	if input.Rules != nil && !constants.IsValidGender(input.Rules.GenderAllowed) {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid gender policy", nil)
	}
	if input.TotalRooms < 0 || input.AvailableRooms < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Room counts must not be negative", nil)
	}
	if input.TotalRooms > 0 && input.AvailableRooms > input.TotalRooms {
		return errors.NewAppError(errors.ErrCodeValidation, "Available rooms cannot exceed total rooms", nil)
	}
	return nil
}

// ValidateUpdateRoom checks the partial fields of an owner's edit
func ValidateUpdateRoom(input *dto.UpdateRoomInput) error {
	if input.Type != nil && !constants.IsValidRoomType(*input.Type) {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid room type", nil)
	}
	if input.Rent != nil && *input.Rent < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Rent must not be negative", nil)
	}
	if input.Deposit != nil && *input.Deposit < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Deposit must not be negative", nil)
	}
	for _, amenity := range input.Amenities {
		if !constants.IsValidAmenity(amenity) {
			return errors.NewAppError(errors.ErrCodeValidation, "Invalid amenity: "+amenity, nil)
		}
	}
	if input.Rules != nil && !constants.IsValidGender(input.Rules.GenderAllowed) {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid gender policy", nil)
	}
	return nil
}

// ValidateBookingRequest checks the student's booking payload and returns
// the parsed move-in date.
func ValidateBookingRequest(input *dto.BookingRequest) (time.Time, error) {
	if input.MoveInDate == "" {
		return time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "Move-in date is required", nil)
	}
	moveIn, err := time.Parse("2006-01-02", input.MoveInDate)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid move-in date, use YYYY-MM-DD", err)
	}
	if input.Duration <= 0 {
		return time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Duration must be a positive number of months", nil)
	}
	return moveIn, nil
}

// ValidateReview checks the student's review payload
func ValidateReview(input *dto.ReviewInput) error {
	if input.Rating < 1 || input.Rating > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Rating must be between 1 and 5", nil)
	}
	if input.Comment == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Comment is required", nil)
	}
	return nil
}

// ValidateEmail checks an email address
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid email", nil)
	}
	return nil
}
