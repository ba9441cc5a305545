package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/bwubca23694-eng/Brainware-Rooms/errors"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// haversineSQL computes distance in km from (?, ?) = (lat, lng) to the row's
// stored point. least() clamps float drift out of acos' domain.
const haversineSQL = "(6371 * acos(least(1.0, " +
	"cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?)) + " +
	"sin(radians(?)) * sin(radians(latitude)))))"

type GormRoomRepository struct {
	db *gorm.DB
}

func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

func (r *GormRoomRepository) Create(ctx context.Context, room *models.Room) error {
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not create room", err)
	}
	return nil
}

func (r *GormRoomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Preload("Owner").First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Room not found", err)
	}
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not load room", err)
	}
	return &room, nil
}

func (r *GormRoomRepository) Update(ctx context.Context, room *models.Room) error {
	if err := r.db.WithContext(ctx).Save(room).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not update room", err)
	}
	return nil
}

func (r *GormRoomRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.Room{}, id)
	if tx.Error != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not delete room", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, "Room not found", nil)
	}
	return nil
}

func (r *GormRoomRepository) Search(ctx context.Context, q dto.RoomQuery) ([]models.Room, int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.Room{}).
		Where("status = ? AND availability = ?", constants.RoomStatusApproved, true)

	if q.Type != "" {
		tx = tx.Where("type = ?", q.Type)
	}
	if q.MinRent != nil {
		tx = tx.Where("rent >= ?", *q.MinRent)
	}
	if q.MaxRent != nil {
		tx = tx.Where("rent <= ?", *q.MaxRent)
	}
	if len(q.Amenities) > 0 {
		tx = tx.Where("amenities @> ?", pq.Array(q.Amenities))
	}
	if q.Gender != "" {
		tx = tx.Where("rule_gender_allowed IN ?", []string{q.Gender, constants.GenderAny})
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	if q.HasGeo() {
		// Rooms with the unset zero point have no usable location
		tx = tx.Where("NOT (longitude = 0 AND latitude = 0)").
			Where(haversineSQL+" <= ?", *q.Lat, *q.Lng, *q.Lat, q.RadiusKm)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not count rooms", err)
	}

	order := "created_at DESC"
	switch q.Sort {
	case "rent":
		order = "rent ASC"
	case "-rent":
		order = "rent DESC"
	case "rating":
		order = "rating DESC"
	case "distance":
		if q.HasGeo() {
			tx = tx.Select("*, "+haversineSQL+" AS distance", *q.Lat, *q.Lng, *q.Lat)
			order = "distance ASC"
		}
	}

	tx = tx.Preload("Owner").Order(order).Offset(q.Offset()).Limit(q.Limit)

	var rooms []models.Room
	if err := tx.Find(&rooms).Error; err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not search rooms", err)
	}
	return rooms, total, nil
}

func (r *GormRoomRepository) Nearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).Model(&models.Room{}).
		Select("*, "+haversineSQL+" AS distance", lat, lng, lat).
		Where("status = ? AND availability = ?", constants.RoomStatusApproved, true).
		Where("NOT (longitude = 0 AND latitude = 0)").
		Where(haversineSQL+" <= ?", lat, lng, lat, radiusKm).
		Preload("Owner").
		Order("distance ASC").
		Limit(limit).
		Find(&rooms).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not search nearby rooms", err)
	}
	return rooms, nil
}

func (r *GormRoomRepository) FindByOwner(ctx context.Context, ownerID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not load owner rooms", err)
	}
	return rooms, nil
}

func (r *GormRoomRepository) FindByStatus(ctx context.Context, status string, page, limit int) ([]models.Room, int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.Room{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not count rooms", err)
	}

	var rooms []models.Room
	err := tx.Preload("Owner").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rooms).Error
	if err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not load rooms", err)
	}
	return rooms, total, nil
}

func (r *GormRoomRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Room, error) {
	if len(ids) == 0 {
		return []models.Room{}, nil
	}
	var rooms []models.Room
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rooms).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not load rooms", err)
	}
	return rooms, nil
}

func (r *GormRoomRepository) IncrementViews(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&models.Room{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not increment views", err)
	}
	return nil
}

func (r *GormRoomRepository) UpdateRating(ctx context.Context, id uint, rating float64, count int) error {
	err := r.db.WithContext(ctx).Model(&models.Room{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "review_count": count}).Error
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not update rating", err)
	}
	return nil
}

func (r *GormRoomRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Room{}).Count(&total).Error; err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not count rooms", err)
	}
	return total, nil
}

func (r *GormRoomRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Room{}).
		Where("status = ?", status).
		Count(&total).Error
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeDBError,
			fmt.Sprintf("Could not count %s rooms", status), err)
	}
	return total, nil
}
