package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	apperrors "github.com/bwubca23694-eng/Brainware-Rooms/errors"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoomRepository(t *testing.T) {
	repo := NewMemoryRoomRepository()
	ctx := context.Background()

	t.Run("CreateAssignsID", func(t *testing.T) {
		room := &models.Room{Title: "A", Status: constants.RoomStatusApproved, Availability: true}
		require.NoError(t, repo.Create(ctx, room))
		assert.NotZero(t, room.ID)

		got, err := repo.FindByID(ctx, room.ID)
		require.NoError(t, err)
		assert.Equal(t, "A", got.Title)
	})

	t.Run("CopiesDoNotAliasStore", func(t *testing.T) {
		room := &models.Room{Title: "B", Status: constants.RoomStatusApproved, Availability: true}
		require.NoError(t, repo.Create(ctx, room))

		got, err := repo.FindByID(ctx, room.ID)
		require.NoError(t, err)
		got.Title = "mutated"

		again, err := repo.FindByID(ctx, room.ID)
		require.NoError(t, err)
		assert.Equal(t, "B", again.Title)
	})

	t.Run("DeleteUnknownIsNotFound", func(t *testing.T) {
		err := repo.Delete(ctx, 9999)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
	})
}

func TestMemoryBookingConcurrency(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	// Two racing requests for the same (room, student) pair: exactly one
	// must win and the other must conflict.
	const attempts = 2
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.CreateIfNoActive(ctx, &models.Booking{
				RoomID:    1,
				StudentID: 3,
				OwnerID:   7,
				Status:    constants.BookingStatusPending,
			})
		}(i)
	}
	wg.Wait()

	var conflicts, successes int
	for _, err := range errs {
		if err == nil {
			successes++
		} else if apperrors.HasCode(err, apperrors.ErrCodeConflict) {
			conflicts++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryBookingLifecycle(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	booking := &models.Booking{RoomID: 1, StudentID: 3, OwnerID: 7, Status: constants.BookingStatusPending, TotalAmount: 36000}
	require.NoError(t, repo.CreateIfNoActive(ctx, booking))

	// A cancelled booking no longer blocks the pair
	booking.Status = constants.BookingStatusCancelled
	require.NoError(t, repo.Update(ctx, booking))

	next := &models.Booking{RoomID: 1, StudentID: 3, OwnerID: 7, Status: constants.BookingStatusPending}
	assert.NoError(t, repo.CreateIfNoActive(ctx, next))

	mine, err := repo.FindByStudent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	pending, err := repo.CountByOwner(ctx, 7, constants.BookingStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)
}

func TestMemoryReviewRepository(t *testing.T) {
	repo := NewMemoryReviewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Review{RoomID: 1, StudentID: 3, Rating: 4, IsApproved: true}))

	err := repo.Create(ctx, &models.Review{RoomID: 1, StudentID: 3, Rating: 5, IsApproved: true})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConflict))

	// Unapproved reviews stay out of the public list
	require.NoError(t, repo.Create(ctx, &models.Review{RoomID: 1, StudentID: 4, Rating: 1, IsApproved: false}))

	reviews, err := repo.FindApprovedByRoom(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestMemoryUserRepository(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Name: "Ankit", Email: "ankit@example.com", Role: constants.RoleStudent}))

	t.Run("EmailIsUniqueCaseInsensitive", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{Name: "Dup", Email: "ANKIT@example.com"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConflict))
	})

	t.Run("FindByEmail", func(t *testing.T) {
		user, err := repo.FindByEmail(ctx, "ankit@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Ankit", user.Name)
	})

	t.Run("PendingOwnerCount", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &models.User{Name: "O1", Email: "o1@example.com", Role: constants.RoleOwner}))
		require.NoError(t, repo.Create(ctx, &models.User{Name: "O2", Email: "o2@example.com", Role: constants.RoleOwner, IsOwnerApproved: true}))

		count, err := repo.CountPendingOwners(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
