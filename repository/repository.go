// Package repository defines the persistence surface for each entity.
// The gorm implementations back the live service; the in-memory ones keep
// the core testable without a database.
package repository

import (
	"context"

	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"
)

// RoomRepository persists listings and executes search descriptors
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	FindByID(ctx context.Context, id uint) (*models.Room, error)
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id uint) error

	// Search executes a normalized query descriptor over listings with
	// status=approved AND availability=true and returns one page plus the
	// total match count.
	Search(ctx context.Context, q dto.RoomQuery) ([]models.Room, int64, error)

	// Nearby returns approved, available listings within radiusKm of the
	// point, nearest first. Listings without usable coordinates are skipped.
	Nearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]models.Room, error)

	FindByOwner(ctx context.Context, ownerID uint) ([]models.Room, error)
	FindByStatus(ctx context.Context, status string, page, limit int) ([]models.Room, int64, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Room, error)

	// IncrementViews bumps the approximate view counter; losing an
	// increment is acceptable.
	IncrementViews(ctx context.Context, id uint) error

	// UpdateRating persists the derived rating aggregate
	UpdateRating(ctx context.Context, id uint, rating float64, count int) error

	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// BookingRepository persists booking requests
type BookingRepository interface {
	// CreateIfNoActive atomically checks that no booking for the same
	// (room, student) pair is pending or confirmed and inserts the new
	// booking. Returns an AppError with code CONFLICT when one exists.
	CreateIfNoActive(ctx context.Context, booking *models.Booking) error

	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	FindByStudent(ctx context.Context, studentID uint) ([]models.Booking, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]models.Booking, error)
	CountByOwner(ctx context.Context, ownerID uint, status string) (int64, error)
	Recent(ctx context.Context, limit int) ([]models.Booking, error)
	Count(ctx context.Context) (int64, error)
	MonthlyTotals(ctx context.Context, months int) ([]dto.MonthlyBookingStat, error)
}

// ReviewRepository persists reviews; one review per (room, student)
type ReviewRepository interface {
	// Create inserts a review. Returns an AppError with code CONFLICT when
	// the student already reviewed the room.
	Create(ctx context.Context, review *models.Review) error

	// FindApprovedByRoom returns approved reviews newest first; limit <= 0
	// means no cap.
	FindApprovedByRoom(ctx context.Context, roomID uint, limit int) ([]models.Review, error)
}

// UserRepository persists accounts
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, q dto.AdminUserQuery) ([]models.User, int64, error)
	Count(ctx context.Context) (int64, error)
	CountPendingOwners(ctx context.Context) (int64, error)
}
