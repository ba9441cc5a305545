package repository

import (
	"context"
	"errors"

	apperrors "github.com/bwubca23694-eng/Brainware-Rooms/errors"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// CreateIfNoActive serializes the existence check and the insert on the room
// row so two concurrent requests for the same pair cannot both pass the
// check. A partial unique index on (room_id, student_id) for active statuses
// backs this up at the schema level (see config.ConnectDB).
func (r *GormBookingRepository) CreateIfNoActive(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&room, booking.RoomID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewAppError(apperrors.ErrCodeNotFound, "Room not found", err)
		}
		if err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not lock room", err)
		}

		var active int64
		err = tx.Model(&models.Booking{}).
			Where("room_id = ? AND student_id = ? AND status IN ?",
				booking.RoomID, booking.StudentID,
				[]string{constants.BookingStatusPending, constants.BookingStatusConfirmed}).
			Count(&active).Error
		if err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not check active bookings", err)
		}
		if active > 0 {
			return apperrors.NewAppError(apperrors.ErrCodeConflict,
				"Already have an active booking for this room", apperrors.ErrActiveBooking)
		}

		if err := tx.Create(booking).Error; err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not create booking", err)
		}
		return nil
	})
}

func (r *GormBookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").Preload("Student").Preload("Owner").
		First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Booking not found", err)
	}
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not load booking", err)
	}
	return &booking, nil
}

func (r *GormBookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	if err := r.db.WithContext(ctx).Save(booking).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not update booking", err)
	}
	return nil
}

func (r *GormBookingRepository) FindByStudent(ctx context.Context, studentID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Preload("Room").Preload("Owner").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not load bookings", err)
	}
	return bookings, nil
}

func (r *GormBookingRepository) FindByOwner(ctx context.Context, ownerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Preload("Room").Preload("Student").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not load bookings", err)
	}
	return bookings, nil
}

func (r *GormBookingRepository) CountByOwner(ctx context.Context, ownerID uint, status string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.Booking{}).Where("owner_id = ?", ownerID)
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not count bookings", err)
	}
	return total, nil
}

func (r *GormBookingRepository) Recent(ctx context.Context, limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").Preload("Student").
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not load bookings", err)
	}
	return bookings, nil
}

func (r *GormBookingRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Booking{}).Count(&total).Error; err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not count bookings", err)
	}
	return total, nil
}

func (r *GormBookingRepository) MonthlyTotals(ctx context.Context, months int) ([]dto.MonthlyBookingStat, error) {
	var stats []dto.MonthlyBookingStat
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Select("EXTRACT(YEAR FROM created_at)::int AS year, " +
			"EXTRACT(MONTH FROM created_at)::int AS month, " +
			"COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS revenue").
		Group("year, month").
		Order("year DESC, month DESC").
		Limit(months).
		Scan(&stats).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not aggregate bookings", err)
	}
	return stats, nil
}
