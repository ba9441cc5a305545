package services

import (
	"context"

	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/errors"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"
	"github.com/bwubca23694-eng/Brainware-Rooms/validator"
)

// ReviewService records reviews and keeps the room's rating aggregate in
// step with them.
type ReviewService struct {
	reviews repository.ReviewRepository
	rooms   repository.RoomRepository
}

func NewReviewService(reviews repository.ReviewRepository, rooms repository.RoomRepository) *ReviewService {
	return &ReviewService{reviews: reviews, rooms: rooms}
}

// AddReview stores the student's review and recomputes the room's rating.
// One review per student per room; a second attempt conflicts.
func (s *ReviewService) AddReview(ctx context.Context, student *models.User, roomID uint, input *dto.ReviewInput) (*models.Review, error) {
	if _, err := s.rooms.FindByID(ctx, roomID); err != nil {
		return nil, err
	}
	if err := validator.ValidateReview(input); err != nil {
		return nil, err
	}

	review := &models.Review{
		RoomID:     roomID,
		StudentID:  student.ID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		IsApproved: true,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	// Recompute from scratch rather than increment so the aggregate
	// self-heals after moderation changes. Concurrent writers converge on
	// the last recompute.
	if err := s.RecomputeRating(ctx, roomID); err != nil {
		return nil, err
	}
	return review, nil
}

// RoomReviews lists a room's approved reviews, newest first
func (s *ReviewService) RoomReviews(ctx context.Context, roomID uint) ([]models.Review, error) {
	reviews, err := s.reviews.FindApprovedByRoom(ctx, roomID, 0)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load reviews", err)
	}
	return reviews, nil
}

// RecomputeRating sets the room's rating to the mean of its approved
// reviews, 0 when there are none.
func (s *ReviewService) RecomputeRating(ctx context.Context, roomID uint) error {
	reviews, err := s.reviews.FindApprovedByRoom(ctx, roomID, 0)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Failed to load reviews", err)
	}

	var rating float64
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		rating = float64(sum) / float64(len(reviews))
	}

	if err := s.rooms.UpdateRating(ctx, roomID, rating, len(reviews)); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Failed to update rating", err)
	}
	return nil
}
