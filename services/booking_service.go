package services

import (
	"context"
	"time"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/errors"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"
	"github.com/bwubca23694-eng/Brainware-Rooms/services/logger"
	"github.com/bwubca23694-eng/Brainware-Rooms/services/notification"
	"github.com/bwubca23694-eng/Brainware-Rooms/validator"
)

// BookingService owns the booking lifecycle
type BookingService struct {
	bookings repository.BookingRepository
	rooms    repository.RoomRepository
	users    repository.UserRepository
	notifier notification.Service // nil disables email
	log      logger.Logger
}

func NewBookingService(bookings repository.BookingRepository, rooms repository.RoomRepository,
	users repository.UserRepository, notifier notification.Service, log logger.Logger) *BookingService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{bookings: bookings, rooms: rooms, users: users, notifier: notifier, log: log}
}

// CreateBooking files a booking request for the student. At most one
// pending-or-confirmed booking may exist per (room, student) pair; the
// repository enforces that atomically.
func (s *BookingService) CreateBooking(ctx context.Context, student *models.User, roomID uint, input *dto.BookingRequest) (*models.Booking, error) {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.Status != constants.RoomStatusApproved || !room.Availability {
		return nil, errors.NewAppError(errors.ErrCodeUnavailable, "Room is not available for booking", errors.ErrRoomNotAvailable)
	}

	moveIn, err := validator.ValidateBookingRequest(input)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		RoomID:     room.ID,
		StudentID:  student.ID,
		OwnerID:    room.OwnerID,
		Status:     constants.BookingStatusPending,
		MoveInDate: moveIn,
		Duration:   input.Duration,
		// rent x duration at request time; later rent edits don't touch it
		TotalAmount: room.Rent * input.Duration,
		Message:     input.Message,
	}

	if err := s.bookings.CreateIfNoActive(ctx, booking); err != nil {
		return nil, err
	}

	s.notifyOwner(ctx, room, student)
	return booking, nil
}

func (s *BookingService) notifyOwner(ctx context.Context, room *models.Room, student *models.User) {
	if s.notifier == nil {
		return
	}
	owner, err := s.users.FindByID(ctx, room.OwnerID)
	if err != nil {
		s.log.Error("booking notification: owner %d lookup failed: %v", room.OwnerID, err)
		return
	}
	go func() {
		err := s.notifier.SendBookingNotification(owner.Email, owner.Name, notification.EventNewBooking, map[string]string{
			"roomTitle":   room.Title,
			"studentName": student.Name,
		})
		if err != nil {
			s.log.Error("booking notification: %v", err)
		}
	}()
}

// CancelBooking lets the requesting student withdraw a pending or
// confirmed booking.
func (s *BookingService) CancelBooking(ctx context.Context, caller *models.User, bookingID uint) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !CanCancelBooking(caller, booking) {
		return nil, errors.NewAppError(errors.ErrCodeForbidden, "You cannot cancel this booking", nil)
	}

	state := models.GetBookingState(booking.Status)
	if err := state.Cancel(booking); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeConflict, err.Error(), err)
	}

	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to update booking", err)
	}
	return booking, nil
}

// UpdateStatus records the owner's decision: confirm or reject a pending
// booking, or mark a confirmed one completed.
func (s *BookingService) UpdateStatus(ctx context.Context, caller *models.User, bookingID uint, input *dto.BookingStatusUpdate) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !CanDecideBooking(caller, booking) {
		return nil, errors.NewAppError(errors.ErrCodeForbidden, "You cannot update this booking", nil)
	}

	state := models.GetBookingState(booking.Status)
	var transition error
	switch input.Status {
	case constants.BookingStatusConfirmed:
		transition = state.Confirm(booking)
	case constants.BookingStatusRejected:
		transition = state.Reject(booking)
	case constants.BookingStatusCompleted:
		transition = state.Complete(booking)
	default:
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Status must be confirmed, rejected or completed", nil)
	}
	if transition != nil {
		return nil, errors.NewAppError(errors.ErrCodeConflict, transition.Error(), transition)
	}

	if input.Note != "" {
		booking.OwnerNote = input.Note
	}
	if input.VisitDate != "" {
		visit, err := time.Parse("2006-01-02", input.VisitDate)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid visit date, use YYYY-MM-DD", err)
		}
		booking.VisitDate = &visit
	}

	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to update booking", err)
	}

	s.notifyStudent(ctx, booking, input.Status)
	return booking, nil
}

func (s *BookingService) notifyStudent(ctx context.Context, booking *models.Booking, status string) {
	if s.notifier == nil {
		return
	}
	var event notification.Event
	switch status {
	case constants.BookingStatusConfirmed:
		event = notification.EventBookingConfirmed
	case constants.BookingStatusRejected:
		event = notification.EventBookingRejected
	default:
		return
	}

	student, err := s.users.FindByID(ctx, booking.StudentID)
	if err != nil {
		s.log.Error("booking notification: student %d lookup failed: %v", booking.StudentID, err)
		return
	}
	room, err := s.rooms.FindByID(ctx, booking.RoomID)
	if err != nil {
		s.log.Error("booking notification: room %d lookup failed: %v", booking.RoomID, err)
		return
	}
	go func() {
		err := s.notifier.SendBookingNotification(student.Email, student.Name, event, map[string]string{
			"roomTitle": room.Title,
			"note":      booking.OwnerNote,
		})
		if err != nil {
			s.log.Error("booking notification: %v", err)
		}
	}()
}

// MyBookings lists the student's bookings, newest first
func (s *BookingService) MyBookings(ctx context.Context, studentID uint) ([]models.Booking, error) {
	bookings, err := s.bookings.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load bookings", err)
	}
	return bookings, nil
}

// RecentBookings lists the latest bookings across the platform
func (s *BookingService) RecentBookings(ctx context.Context, limit int) ([]models.Booking, error) {
	if limit < 1 {
		limit = 50
	}
	bookings, err := s.bookings.Recent(ctx, limit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load bookings", err)
	}
	return bookings, nil
}

// OwnerBookings lists every booking against the owner's listings
func (s *BookingService) OwnerBookings(ctx context.Context, ownerID uint) ([]models.Booking, error) {
	bookings, err := s.bookings.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load bookings", err)
	}
	return bookings, nil
}
