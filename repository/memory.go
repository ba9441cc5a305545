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
	"github.com/bwubca23694-eng/Brainware-Rooms/services/geo"
)

// MemoryRoomRepository implements RoomRepository on maps; used in tests
// and anywhere a live database is unavailable.
type MemoryRoomRepository struct {
	mu     sync.Mutex
	nextID uint
	rooms  map[uint]*models.Room
}

func NewMemoryRoomRepository() *MemoryRoomRepository {
	return &MemoryRoomRepository{nextID: 1, rooms: make(map[uint]*models.Room)}
}

func (r *MemoryRoomRepository) Create(ctx context.Context, room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	room.ID = r.nextID
	r.nextID++
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *MemoryRoomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Room not found", nil)
	}
	cp := *room
	return &cp, nil
}

func (r *MemoryRoomRepository) Update(ctx context.Context, room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[room.ID]; !ok {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, "Room not found", nil)
	}
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *MemoryRoomRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[id]; !ok {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, "Room not found", nil)
	}
	delete(r.rooms, id)
	return nil
}

func matchesQuery(room *models.Room, q dto.RoomQuery) bool {
	if room.Status != constants.RoomStatusApproved || !room.Availability {
		return false
	}
	if q.Type != "" && room.Type != q.Type {
		return false
	}
	if q.MinRent != nil && room.Rent < *q.MinRent {
		return false
	}
	if q.MaxRent != nil && room.Rent > *q.MaxRent {
		return false
	}
	for _, want := range q.Amenities {
		found := false
		for _, have := range room.Amenities {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if q.Gender != "" &&
		room.Rules.GenderAllowed != q.Gender &&
		room.Rules.GenderAllowed != constants.GenderAny {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(room.Title), needle) &&
			!strings.Contains(strings.ToLower(room.Description), needle) {
			return false
		}
	}
	if q.HasGeo() {
		if !room.HasCoordinates() {
			return false
		}
		if !geo.WithinRadius(*q.Lat, *q.Lng, room.Latitude, room.Longitude, q.RadiusKm) {
			return false
		}
	}
	return true
}

func (r *MemoryRoomRepository) Search(ctx context.Context, q dto.RoomQuery) ([]models.Room, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]models.Room, 0)
	for _, room := range r.rooms {
		if matchesQuery(room, q) {
			matched = append(matched, *room)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch q.Sort {
		case "rent":
			return a.Rent < b.Rent
		case "-rent":
			return a.Rent > b.Rent
		case "rating":
			return a.Rating > b.Rating
		case "distance":
			if q.HasGeo() {
				return geo.Haversine(*q.Lat, *q.Lng, a.Latitude, a.Longitude) <
					geo.Haversine(*q.Lat, *q.Lng, b.Latitude, b.Longitude)
			}
		}
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID > b.ID
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	total := int64(len(matched))
	start := q.Offset()
	if start >= len(matched) {
		return []models.Room{}, total, nil
	}
	end := start + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *MemoryRoomRepository) Nearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]models.Room, 0)
	for _, room := range r.rooms {
		if room.Status != constants.RoomStatusApproved || !room.Availability {
			continue
		}
		if !room.HasCoordinates() {
			continue
		}
		if geo.WithinRadius(lat, lng, room.Latitude, room.Longitude, radiusKm) {
			matched = append(matched, *room)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return geo.Haversine(lat, lng, matched[i].Latitude, matched[i].Longitude) <
			geo.Haversine(lat, lng, matched[j].Latitude, matched[j].Longitude)
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *MemoryRoomRepository) FindByOwner(ctx context.Context, ownerID uint) ([]models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rooms := make([]models.Room, 0)
	for _, room := range r.rooms {
		if room.OwnerID == ownerID {
			rooms = append(rooms, *room)
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].CreatedAt.After(rooms[j].CreatedAt) })
	return rooms, nil
}

func (r *MemoryRoomRepository) FindByStatus(ctx context.Context, status string, page, limit int) ([]models.Room, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rooms := make([]models.Room, 0)
	for _, room := range r.rooms {
		if status == "" || room.Status == status {
			rooms = append(rooms, *room)
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].CreatedAt.After(rooms[j].CreatedAt) })

	total := int64(len(rooms))
	start := (page - 1) * limit
	if start >= len(rooms) {
		return []models.Room{}, total, nil
	}
	end := start + limit
	if end > len(rooms) {
		end = len(rooms)
	}
	return rooms[start:end], total, nil
}

func (r *MemoryRoomRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rooms := make([]models.Room, 0)
	for _, id := range ids {
		if room, ok := r.rooms[id]; ok {
			rooms = append(rooms, *room)
		}
	}
	return rooms, nil
}

func (r *MemoryRoomRepository) IncrementViews(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, "Room not found", nil)
	}
	room.Views++
	return nil
}

func (r *MemoryRoomRepository) UpdateRating(ctx context.Context, id uint, rating float64, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, "Room not found", nil)
	}
	room.Rating = rating
	room.ReviewCount = count
	return nil
}

func (r *MemoryRoomRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rooms)), nil
}

func (r *MemoryRoomRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, room := range r.rooms {
		if room.Status == status {
			total++
		}
	}
	return total, nil
}
