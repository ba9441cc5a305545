package repository

import (
	"context"
	"sort"
	"sync"

	apperrors "github.com/bwubca23694-eng/Brainware-Rooms/errors"

	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"
)

// MemoryBookingRepository implements BookingRepository on maps. The single
// mutex makes the check-and-insert in CreateIfNoActive atomic, mirroring
// the transaction the gorm implementation uses.
type MemoryBookingRepository struct {
	mu       sync.Mutex
	nextID   uint
	bookings map[uint]*models.Booking
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{nextID: 1, bookings: make(map[uint]*models.Booking)}
}

func (r *MemoryBookingRepository) CreateIfNoActive(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.RoomID == booking.RoomID && b.StudentID == booking.StudentID && b.IsActive() {
			return apperrors.NewAppError(apperrors.ErrCodeConflict,
				"Already have an active booking for this room", apperrors.ErrActiveBooking)
		}
	}

	booking.ID = r.nextID
	r.nextID++
	cp := *booking
	r.bookings[booking.ID] = &cp
	return nil
}

func (r *MemoryBookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Booking not found", nil)
	}
	cp := *booking
	return &cp, nil
}

func (r *MemoryBookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[booking.ID]; !ok {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, "Booking not found", nil)
	}
	cp := *booking
	r.bookings[booking.ID] = &cp
	return nil
}

func (r *MemoryBookingRepository) FindByStudent(ctx context.Context, studentID uint) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(func(b *models.Booking) bool { return b.StudentID == studentID }), nil
}

func (r *MemoryBookingRepository) FindByOwner(ctx context.Context, ownerID uint) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(func(b *models.Booking) bool { return b.OwnerID == ownerID }), nil
}

func (r *MemoryBookingRepository) collect(keep func(*models.Booking) bool) []models.Booking {
	bookings := make([]models.Booking, 0)
	for _, b := range r.bookings {
		if keep(b) {
			bookings = append(bookings, *b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].ID > bookings[j].ID
		}
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings
}

func (r *MemoryBookingRepository) CountByOwner(ctx context.Context, ownerID uint, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, b := range r.bookings {
		if b.OwnerID == ownerID && (status == "" || b.Status == status) {
			total++
		}
	}
	return total, nil
}

func (r *MemoryBookingRepository) Recent(ctx context.Context, limit int) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bookings := r.collect(func(*models.Booking) bool { return true })
	if limit > 0 && len(bookings) > limit {
		bookings = bookings[:limit]
	}
	return bookings, nil
}

func (r *MemoryBookingRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.bookings)), nil
}

func (r *MemoryBookingRepository) MonthlyTotals(ctx context.Context, months int) ([]dto.MonthlyBookingStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	type key struct{ year, month int }
	totals := make(map[key]*dto.MonthlyBookingStat)
	for _, b := range r.bookings {
		k := key{b.CreatedAt.Year(), int(b.CreatedAt.Month())}
		stat, ok := totals[k]
		if !ok {
			stat = &dto.MonthlyBookingStat{Year: k.year, Month: k.month}
			totals[k] = stat
		}
		stat.Count++
		stat.Revenue += int64(b.TotalAmount)
	}

	stats := make([]dto.MonthlyBookingStat, 0, len(totals))
	for _, stat := range totals {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Year != stats[j].Year {
			return stats[i].Year > stats[j].Year
		}
		return stats[i].Month > stats[j].Month
	})
	if months > 0 && len(stats) > months {
		stats = stats[:months]
	}
	return stats, nil
}
