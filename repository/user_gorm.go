package repository

import (
	"context"
	"errors"

	apperrors "github.com/bwubca23694-eng/Brainware-Rooms/errors"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"

	"gorm.io/gorm"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(apperrors.ErrCodeConflict, "Email already registered", err)
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not create user", err)
	}
	return nil
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "User not found", err)
	}
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not load user", err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "User not found", err)
	}
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not load user", err)
	}
	return &user, nil
}

func (r *GormUserRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not update user", err)
	}
	return nil
}

func (r *GormUserRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if tx.Error != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not delete user", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, "User not found", nil)
	}
	return nil
}

func (r *GormUserRepository) Search(ctx context.Context, q dto.AdminUserQuery) ([]models.User, int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.User{})
	if q.Role != "" {
		tx = tx.Where("role = ?", q.Role)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("(name ILIKE ? OR email ILIKE ?)", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not count users", err)
	}

	var users []models.User
	err := tx.Order("created_at DESC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not load users", err)
	}
	return users, total, nil
}

func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not count users", err)
	}
	return total, nil
}

func (r *GormUserRepository) CountPendingOwners(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ? AND is_owner_approved = ?", constants.RoleOwner, false).
		Count(&total).Error
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not count pending owners", err)
	}
	return total, nil
}
