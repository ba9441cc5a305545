package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	apperrors "github.com/bwubca23694-eng/Brainware-Rooms/errors"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"
)

// MemoryReviewRepository implements ReviewRepository on maps
type MemoryReviewRepository struct {
	mu      sync.Mutex
	nextID  uint
	reviews map[uint]*models.Review
}

func NewMemoryReviewRepository() *MemoryReviewRepository {
	return &MemoryReviewRepository{nextID: 1, reviews: make(map[uint]*models.Review)}
}

func (r *MemoryReviewRepository) Create(ctx context.Context, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reviews {
		if existing.RoomID == review.RoomID && existing.StudentID == review.StudentID {
			return apperrors.NewAppError(apperrors.ErrCodeConflict, "Already reviewed", apperrors.ErrAlreadyReviewed)
		}
	}

	review.ID = r.nextID
	r.nextID++
	cp := *review
	r.reviews[review.ID] = &cp
	return nil
}

func (r *MemoryReviewRepository) FindApprovedByRoom(ctx context.Context, roomID uint, limit int) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reviews := make([]models.Review, 0)
	for _, review := range r.reviews {
		if review.RoomID == roomID && review.IsApproved {
			reviews = append(reviews, *review)
		}
	}
	sort.Slice(reviews, func(i, j int) bool {
		if reviews[i].CreatedAt.Equal(reviews[j].CreatedAt) {
			return reviews[i].ID > reviews[j].ID
		}
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	if limit > 0 && len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}

// MemoryUserRepository implements UserRepository on maps
type MemoryUserRepository struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1, users: make(map[uint]*models.User)}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return apperrors.NewAppError(apperrors.ErrCodeConflict, "Email already registered", nil)
		}
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "User not found", nil)
	}
	cp := *user
	return &cp, nil
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			cp := *user
			return &cp, nil
		}
	}
	return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "User not found", nil)
}

func (r *MemoryUserRepository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, "User not found", nil)
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *MemoryUserRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, "User not found", nil)
	}
	delete(r.users, id)
	return nil
}

func (r *MemoryUserRepository) Search(ctx context.Context, q dto.AdminUserQuery) ([]models.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]models.User, 0)
	needle := strings.ToLower(q.Search)
	for _, user := range r.users {
		if q.Role != "" && user.Role != q.Role {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(user.Name), needle) &&
			!strings.Contains(strings.ToLower(user.Email), needle) {
			continue
		}
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID > users[j].ID
		}
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})

	total := int64(len(users))
	start := (q.Page - 1) * q.Limit
	if start >= len(users) {
		return []models.User{}, total, nil
	}
	end := start + q.Limit
	if end > len(users) {
		end = len(users)
	}
	return users[start:end], total, nil
}

func (r *MemoryUserRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *MemoryUserRepository) CountPendingOwners(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, user := range r.users {
		if user.Role == constants.RoleOwner && !user.IsOwnerApproved {
			total++
		}
	}
	return total, nil
}
