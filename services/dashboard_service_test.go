package services

import (
	"context"
	"testing"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerDashboard(t *testing.T) {
	ctx := context.Background()
	rooms := repository.NewMemoryRoomRepository()
	bookings := repository.NewMemoryBookingRepository()
	users := repository.NewMemoryUserRepository()
	svc := NewDashboardService(rooms, bookings, users)

	seedRoom(t, rooms, func(r *models.Room) { r.Views = 10 })
	seedRoom(t, rooms, func(r *models.Room) { r.Status = constants.RoomStatusPending; r.Views = 5 })
	seedRoom(t, rooms, func(r *models.Room) { r.OwnerID = 99 })

	require.NoError(t, bookings.CreateIfNoActive(ctx, &models.Booking{RoomID: 1, StudentID: 3, OwnerID: 7, Status: constants.BookingStatusPending}))
	require.NoError(t, bookings.CreateIfNoActive(ctx, &models.Booking{RoomID: 1, StudentID: 4, OwnerID: 7, Status: constants.BookingStatusConfirmed}))

	dashboard, err := svc.OwnerDashboard(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, 2, dashboard.Stats.TotalRooms)
	assert.Equal(t, 1, dashboard.Stats.ApprovedRooms)
	assert.Equal(t, 1, dashboard.Stats.PendingRooms)
	assert.Equal(t, int64(15), dashboard.Stats.TotalViews)
	assert.Equal(t, int64(2), dashboard.Stats.TotalBookings)
	assert.Equal(t, int64(1), dashboard.Stats.PendingBookings)
	assert.Equal(t, int64(1), dashboard.Stats.ConfirmedBookings)
	assert.Len(t, dashboard.Rooms, 2)
}

func TestAdminDashboard(t *testing.T) {
	ctx := context.Background()
	rooms := repository.NewMemoryRoomRepository()
	bookings := repository.NewMemoryBookingRepository()
	users := repository.NewMemoryUserRepository()
	svc := NewDashboardService(rooms, bookings, users)

	require.NoError(t, users.Create(ctx, &models.User{Name: "S", Email: "s@example.com", Role: constants.RoleStudent}))
	require.NoError(t, users.Create(ctx, &models.User{Name: "O", Email: "o@example.com", Role: constants.RoleOwner}))

	seedRoom(t, rooms, nil)
	seedRoom(t, rooms, func(r *models.Room) { r.Status = constants.RoomStatusPending })

	require.NoError(t, bookings.CreateIfNoActive(ctx, &models.Booking{RoomID: 1, StudentID: 1, OwnerID: 2, Status: constants.BookingStatusPending, TotalAmount: 36000}))

	dashboard, err := svc.AdminDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), dashboard.Stats.TotalUsers)
	assert.Equal(t, int64(2), dashboard.Stats.TotalRooms)
	assert.Equal(t, int64(1), dashboard.Stats.TotalBookings)
	assert.Equal(t, int64(1), dashboard.Stats.PendingRooms)
	assert.Equal(t, int64(1), dashboard.Stats.PendingOwners)
	assert.Len(t, dashboard.RecentRooms, 1)
	assert.Len(t, dashboard.RecentBookings, 1)
	require.Len(t, dashboard.MonthlyStats, 1)
	assert.Equal(t, int64(36000), dashboard.MonthlyStats[0].Revenue)
}
