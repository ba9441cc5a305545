package repository

import (
	"context"
	"errors"

	apperrors "github.com/bwubca23694-eng/Brainware-Rooms/errors"

	"github.com/bwubca23694-eng/Brainware-Rooms/models"

	"gorm.io/gorm"
)

type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Create relies on the unique (room_id, student_id) index to reject a second
// review from the same student; the pre-check keeps the common path's error
// message friendly.
func (r *GormReviewRepository) Create(ctx context.Context, review *models.Review) error {
	var existing int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("room_id = ? AND student_id = ?", review.RoomID, review.StudentID).
		Count(&existing).Error
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not check existing review", err)
	}
	if existing > 0 {
		return apperrors.NewAppError(apperrors.ErrCodeConflict, "Already reviewed", apperrors.ErrAlreadyReviewed)
	}

	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(apperrors.ErrCodeConflict, "Already reviewed", err)
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not create review", err)
	}
	return nil
}

func (r *GormReviewRepository) FindApprovedByRoom(ctx context.Context, roomID uint, limit int) ([]models.Review, error) {
	tx := r.db.WithContext(ctx).
		Where("room_id = ? AND is_approved = ?", roomID, true).
		Preload("Student").
		Order("created_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var reviews []models.Review
	if err := tx.Find(&reviews).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not load reviews", err)
	}
	return reviews, nil
}

func isUniqueViolation(err error) bool {
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
