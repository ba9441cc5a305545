package services

import (
	"context"
	"testing"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	apperrors "github.com/bwubca23694-eng/Brainware-Rooms/errors"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewService(t *testing.T) (*ReviewService, *repository.MemoryRoomRepository) {
	t.Helper()
	rooms := repository.NewMemoryRoomRepository()
	reviews := repository.NewMemoryReviewRepository()
	return NewReviewService(reviews, rooms), rooms
}

func TestAddReview(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownRoomIsNotFound", func(t *testing.T) {
		svc, _ := newReviewService(t)
		_, err := svc.AddReview(ctx, student, 42, &dto.ReviewInput{Rating: 4, Comment: "nice"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
	})

	t.Run("RatingBecomesMeanOfReviews", func(t *testing.T) {
		svc, rooms := newReviewService(t)
		room := seedRoom(t, rooms, nil)

		_, err := svc.AddReview(ctx, &models.User{ID: 3, Role: constants.RoleStudent}, room.ID,
			&dto.ReviewInput{Rating: 4, Comment: "good"})
		require.NoError(t, err)
		_, err = svc.AddReview(ctx, &models.User{ID: 4, Role: constants.RoleStudent}, room.ID,
			&dto.ReviewInput{Rating: 5, Comment: "great"})
		require.NoError(t, err)

		updated, err := rooms.FindByID(ctx, room.ID)
		require.NoError(t, err)
		assert.InDelta(t, 4.5, updated.Rating, 1e-9)
		assert.Equal(t, 2, updated.ReviewCount)
	})

	t.Run("DuplicateReviewConflictsAndLeavesAggregateAlone", func(t *testing.T) {
		svc, rooms := newReviewService(t)
		room := seedRoom(t, rooms, nil)

		_, err := svc.AddReview(ctx, student, room.ID, &dto.ReviewInput{Rating: 4, Comment: "good"})
		require.NoError(t, err)

		_, err = svc.AddReview(ctx, student, room.ID, &dto.ReviewInput{Rating: 1, Comment: "changed my mind"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConflict))

		updated, err := rooms.FindByID(ctx, room.ID)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, updated.Rating, 1e-9)
		assert.Equal(t, 1, updated.ReviewCount)
	})

	t.Run("OutOfRangeRatingRejected", func(t *testing.T) {
		svc, rooms := newReviewService(t)
		room := seedRoom(t, rooms, nil)

		_, err := svc.AddReview(ctx, student, room.ID, &dto.ReviewInput{Rating: 6, Comment: "!"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))

		_, err = svc.AddReview(ctx, student, room.ID, &dto.ReviewInput{Rating: 0, Comment: "!"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
	})
}

func TestRecomputeRating(t *testing.T) {
	ctx := context.Background()

	t.Run("NoReviewsMeansZero", func(t *testing.T) {
		svc, rooms := newReviewService(t)
		room := seedRoom(t, rooms, func(r *models.Room) {
			r.Rating = 4.2
			r.ReviewCount = 3
		})

		require.NoError(t, svc.RecomputeRating(ctx, room.ID))

		updated, err := rooms.FindByID(ctx, room.ID)
		require.NoError(t, err)
		assert.Zero(t, updated.Rating)
		assert.Zero(t, updated.ReviewCount)
	})
}
