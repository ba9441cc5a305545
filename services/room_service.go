package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/errors"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"
	"github.com/bwubca23694-eng/Brainware-Rooms/services/geo"
	"github.com/bwubca23694-eng/Brainware-Rooms/validator"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyNearbyCampus = "rooms:nearby:campus"
	nearbyCacheTTL       = 5 * time.Minute
)

// RoomService owns the listing lifecycle and search
type RoomService struct {
	rooms   repository.RoomRepository
	reviews repository.ReviewRepository
	cache   *redis.Client // nil disables caching
}

func NewRoomService(rooms repository.RoomRepository, reviews repository.ReviewRepository, cache *redis.Client) *RoomService {
	return &RoomService{rooms: rooms, reviews: reviews, cache: cache}
}

// BuildRoomQuery normalizes raw search filters into the descriptor the
// repository executes. Unknown values fall back to defaults rather than
// erroring so a stale frontend link still returns results.
func BuildRoomQuery(f *dto.SearchFilters) dto.RoomQuery {
	q := dto.RoomQuery{
		MinRent: f.MinRent,
		MaxRent: f.MaxRent,
		Search:  strings.TrimSpace(f.Search),
		Sort:    f.Sort,
		Page:    f.Page,
		Limit:   f.Limit,
	}

	if constants.IsValidRoomType(f.Type) {
		q.Type = f.Type
	}

	for _, raw := range strings.Split(f.Amenities, ",") {
		amenity := strings.ToLower(strings.TrimSpace(raw))
		if constants.IsValidAmenity(amenity) {
			q.Amenities = append(q.Amenities, amenity)
		}
	}

	// "any" is not a filter: every listing admits at least "any"
	if f.Gender == constants.GenderMale || f.Gender == constants.GenderFemale {
		q.Gender = f.Gender
	}

	if f.Lat != nil && f.Lng != nil {
		q.Lat = f.Lat
		q.Lng = f.Lng
		q.RadiusKm = constants.DefaultSearchRadiusKm
		if f.RadiusKm != nil && *f.RadiusKm > 0 {
			q.RadiusKm = *f.RadiusKm
		}
	}

	if q.Page < 1 {
		q.Page = constants.DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = constants.DefaultPageSize
	}
	return q
}

// Search runs the public listing search and returns one page of matches
func (s *RoomService) Search(ctx context.Context, filters *dto.SearchFilters) (*dto.RoomSearchResult, error) {
	q := BuildRoomQuery(filters)

	rooms, total, err := s.rooms.Search(ctx, q)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to search rooms", err)
	}

	if q.Search != "" {
		RankRoomsByQuery(q.Search, rooms)
	}

	return &dto.RoomSearchResult{
		Rooms:       rooms,
		Total:       total,
		Pages:       int(math.Ceil(float64(total) / float64(q.Limit))),
		CurrentPage: q.Page,
	}, nil
}

// Nearby returns listings close to a point, nearest first. With no point
// given it serves the campus neighbourhood, cached for a few minutes since
// every visitor lands on it.
func (s *RoomService) Nearby(ctx context.Context, lat, lng, radiusKm *float64) ([]models.Room, error) {
	pLat, pLng := constants.CampusLatitude, constants.CampusLongitude
	radius := float64(constants.NearbyRadiusKm)
	campusDefault := lat == nil && lng == nil && radiusKm == nil

	if lat != nil && lng != nil {
		pLat, pLng = *lat, *lng
	}
	if radiusKm != nil && *radiusKm > 0 {
		radius = *radiusKm
	}

	if campusDefault && s.cache != nil {
		var cached []models.Room
		if err := GetFromRedis(ctx, s.cache, cacheKeyNearbyCampus, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	rooms, err := s.rooms.Nearby(ctx, pLat, pLng, radius, constants.NearbyLimit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load nearby rooms", err)
	}

	if campusDefault && s.cache != nil {
		SetToRedis(ctx, s.cache, cacheKeyNearbyCampus, rooms, nearbyCacheTTL)
	}
	return rooms, nil
}

// Detail loads one listing with its latest approved reviews and bumps the
// view counter. The bump is best-effort.
func (s *RoomService) Detail(ctx context.Context, id uint) (*models.Room, []models.Review, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if err := s.rooms.IncrementViews(ctx, id); err == nil {
		room.Views++
	}

	reviews, err := s.reviews.FindApprovedByRoom(ctx, id, constants.DetailReviewLimit)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load reviews", err)
	}
	return room, reviews, nil
}

// Create registers a new listing for the owner. Every new listing starts
// pending and stays off search until an admin approves it.
func (s *RoomService) Create(ctx context.Context, owner *models.User, input *dto.CreateRoomInput) (*models.Room, error) {
	if err := validator.ValidateCreateRoom(input); err != nil {
		return nil, err
	}

	room := &models.Room{
		OwnerID:         owner.ID,
		Title:           input.Title,
		Description:     input.Description,
		Type:            input.Type,
		Rent:            input.Rent,
		Deposit:         input.Deposit,
		Address:         input.Address,
		Longitude:       constants.CampusLongitude,
		Latitude:        constants.CampusLatitude,
		Images:          input.Images,
		Amenities:       input.Amenities,
		Availability:    true,
		TotalRooms:      input.TotalRooms,
		AvailableRooms:  input.AvailableRooms,
		Status:          constants.RoomStatusPending,
		ContactPhone:    input.ContactPhone,
		ContactWhatsapp: input.ContactWhatsapp,
	}
	if room.TotalRooms == 0 {
		room.TotalRooms = 1
	}
	if room.AvailableRooms == 0 {
		room.AvailableRooms = room.TotalRooms
	}
	if input.Longitude != nil && input.Latitude != nil {
		room.Longitude = *input.Longitude
		room.Latitude = *input.Latitude
	}
	if input.Rules != nil {
		room.Rules = *input.Rules
	} else {
		room.Rules = models.Rules{GenderAllowed: constants.GenderAny, NonVeg: true, Visitors: true}
	}
	if input.AvailableFrom != "" {
		from, err := time.Parse("2006-01-02", input.AvailableFrom)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid availableFrom date, use YYYY-MM-DD", err)
		}
		room.AvailableFrom = from
	} else {
		room.AvailableFrom = time.Now()
	}

	// Distance is frozen here; later edits never recompute it
	if room.HasCoordinates() {
		room.DistanceFromCollege = geo.DistanceFromCampus(room.Latitude, room.Longitude)
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to create room", err)
	}
	return room, nil
}

// Update applies a partial edit. An owner's edit sends the listing back to
// pending review; an admin's edit does not.
func (s *RoomService) Update(ctx context.Context, caller *models.User, id uint, input *dto.UpdateRoomInput) (*models.Room, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutateRoom(caller, room) {
		return nil, errors.NewAppError(errors.ErrCodeForbidden, "You cannot edit this room", nil)
	}
	if err := validator.ValidateUpdateRoom(input); err != nil {
		return nil, err
	}

	applyRoomUpdate(room, input)

	if !IsAdmin(caller) {
		room.Status = constants.RoomStatusPending
		room.AdminNote = ""
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to update room", err)
	}
	s.invalidateNearbyCache(ctx)
	return room, nil
}

func applyRoomUpdate(room *models.Room, input *dto.UpdateRoomInput) {
	if input.Title != nil {
		room.Title = *input.Title
	}
	if input.Description != nil {
		room.Description = *input.Description
	}
	if input.Type != nil {
		room.Type = *input.Type
	}
	if input.Rent != nil {
		room.Rent = *input.Rent
	}
	if input.Deposit != nil {
		room.Deposit = *input.Deposit
	}
	if input.Address != nil {
		room.Address = *input.Address
	}
	if input.Longitude != nil && input.Latitude != nil {
		room.Longitude = *input.Longitude
		room.Latitude = *input.Latitude
	}
	if len(input.Images) > 0 {
		room.Images = append(room.Images, input.Images...)
	}
	if input.Amenities != nil {
		room.Amenities = input.Amenities
	}
	if input.Rules != nil {
		room.Rules = *input.Rules
	}
	if input.Availability != nil {
		room.Availability = *input.Availability
	}
	if input.TotalRooms != nil {
		room.TotalRooms = *input.TotalRooms
	}
	if input.AvailableRooms != nil {
		room.AvailableRooms = *input.AvailableRooms
	}
	if input.ContactPhone != nil {
		room.ContactPhone = *input.ContactPhone
	}
	if input.ContactWhatsapp != nil {
		room.ContactWhatsapp = *input.ContactWhatsapp
	}
}

// Delete removes a listing
func (s *RoomService) Delete(ctx context.Context, caller *models.User, id uint) error {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanMutateRoom(caller, room) {
		return errors.NewAppError(errors.ErrCodeForbidden, "You cannot delete this room", nil)
	}
	if err := s.rooms.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Failed to delete room", err)
	}
	s.invalidateNearbyCache(ctx)
	return nil
}

// ToggleAvailability flips the availability flag on the owner's listing
func (s *RoomService) ToggleAvailability(ctx context.Context, caller *models.User, id uint) (*models.Room, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutateRoom(caller, room) {
		return nil, errors.NewAppError(errors.ErrCodeForbidden, "You cannot edit this room", nil)
	}

	room.Availability = !room.Availability
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to update room", err)
	}
	s.invalidateNearbyCache(ctx)
	return room, nil
}

// OwnerRooms lists every listing of one owner, whatever its status
func (s *RoomService) OwnerRooms(ctx context.Context, ownerID uint) ([]models.Room, error) {
	rooms, err := s.rooms.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load rooms", err)
	}
	return rooms, nil
}

// RoomsByStatus pages through listings in one moderation status
func (s *RoomService) RoomsByStatus(ctx context.Context, status string, page, limit int) ([]models.Room, int64, error) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit < 1 {
		limit = constants.DefaultPageSize
	}
	rooms, total, err := s.rooms.FindByStatus(ctx, status, page, limit)
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Failed to load rooms", err)
	}
	return rooms, total, nil
}

// ReviewListing records the admin's approve/reject decision on a listing
func (s *RoomService) ReviewListing(ctx context.Context, id uint, input *dto.AdminRoomReviewInput) (*models.Room, error) {
	switch input.Status {
	case constants.RoomStatusApproved, constants.RoomStatusRejected, constants.RoomStatusInactive:
	default:
		return nil, errors.NewAppError(errors.ErrCodeValidation,
			fmt.Sprintf("Invalid status %q", input.Status), nil)
	}

	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	room.Status = input.Status
	room.AdminNote = input.AdminNote
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to update room", err)
	}
	s.invalidateNearbyCache(ctx)
	return room, nil
}

func (s *RoomService) invalidateNearbyCache(ctx context.Context) {
	if s.cache != nil {
		DeleteFromRedis(ctx, s.cache, cacheKeyNearbyCampus)
	}
}
