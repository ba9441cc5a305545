package services

import (
	"context"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/errors"
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"
)

const (
	dashboardRecentLimit = 5
	dashboardMonths      = 6
)

// DashboardService aggregates the owner and admin overview payloads
type DashboardService struct {
	rooms    repository.RoomRepository
	bookings repository.BookingRepository
	users    repository.UserRepository
}

func NewDashboardService(rooms repository.RoomRepository, bookings repository.BookingRepository,
	users repository.UserRepository) *DashboardService {
	return &DashboardService{rooms: rooms, bookings: bookings, users: users}
}

// OwnerDashboard tallies the owner's listings and booking pipeline
func (s *DashboardService) OwnerDashboard(ctx context.Context, ownerID uint) (*dto.OwnerDashboard, error) {
	rooms, err := s.rooms.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load rooms", err)
	}

	stats := dto.OwnerStats{TotalRooms: len(rooms)}
	for _, room := range rooms {
		switch room.Status {
		case constants.RoomStatusApproved:
			stats.ApprovedRooms++
		case constants.RoomStatusPending:
			stats.PendingRooms++
		}
		stats.TotalViews += room.Views
	}

	if stats.TotalBookings, err = s.bookings.CountByOwner(ctx, ownerID, ""); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to count bookings", err)
	}
	if stats.PendingBookings, err = s.bookings.CountByOwner(ctx, ownerID, constants.BookingStatusPending); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to count bookings", err)
	}
	if stats.ConfirmedBookings, err = s.bookings.CountByOwner(ctx, ownerID, constants.BookingStatusConfirmed); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to count bookings", err)
	}

	return &dto.OwnerDashboard{Stats: stats, Rooms: rooms}, nil
}

// AdminDashboard tallies platform-wide counts plus recent activity
func (s *DashboardService) AdminDashboard(ctx context.Context) (*dto.AdminDashboard, error) {
	var stats dto.AdminStats
	var err error

	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to count users", err)
	}
	if stats.TotalRooms, err = s.rooms.Count(ctx); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to count rooms", err)
	}
	if stats.TotalBookings, err = s.bookings.Count(ctx); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to count bookings", err)
	}
	if stats.PendingRooms, err = s.rooms.CountByStatus(ctx, constants.RoomStatusPending); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to count pending rooms", err)
	}
	if stats.PendingOwners, err = s.users.CountPendingOwners(ctx); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to count pending owners", err)
	}

	recentRooms, _, err := s.rooms.FindByStatus(ctx, constants.RoomStatusPending, 1, dashboardRecentLimit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load pending rooms", err)
	}

	recentBookings, err := s.bookings.Recent(ctx, dashboardRecentLimit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load recent bookings", err)
	}

	monthly, err := s.bookings.MonthlyTotals(ctx, dashboardMonths)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load monthly stats", err)
	}

	return &dto.AdminDashboard{
		Stats:          stats,
		RecentRooms:    recentRooms,
		RecentBookings: recentBookings,
		MonthlyStats:   monthly,
	}, nil
}
