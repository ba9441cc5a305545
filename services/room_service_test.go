package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	apperrors "github.com/bwubca23694-eng/Brainware-Rooms/errors"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoomService() (*RoomService, *repository.MemoryRoomRepository, *repository.MemoryReviewRepository) {
	rooms := repository.NewMemoryRoomRepository()
	reviews := repository.NewMemoryReviewRepository()
	return NewRoomService(rooms, reviews, nil), rooms, reviews
}

func seedRoom(t *testing.T, repo *repository.MemoryRoomRepository, mutate func(*models.Room)) *models.Room {
	t.Helper()
	room := &models.Room{
		OwnerID:      7,
		Title:        "Single room near campus",
		Description:  "Quiet room for students",
		Type:         "single",
		Rent:         6000,
		Address:      models.Address{Street: "NH-34", Area: "Barasat", Pincode: "700125"},
		Longitude:    constants.CampusLongitude,
		Latitude:     constants.CampusLatitude,
		Amenities:    []string{"wifi"},
		Rules:        models.Rules{GenderAllowed: constants.GenderAny},
		Availability: true,
		Status:       constants.RoomStatusApproved,
		TotalRooms:   1,
	}
	if mutate != nil {
		mutate(room)
	}
	require.NoError(t, repo.Create(context.Background(), room))
	return room
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestRoomSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("OnlyApprovedAvailableListings", func(t *testing.T) {
		svc, repo, _ := newRoomService()
		seedRoom(t, repo, nil)
		seedRoom(t, repo, func(r *models.Room) { r.Status = constants.RoomStatusPending })
		seedRoom(t, repo, func(r *models.Room) { r.Availability = false })

		result, err := svc.Search(ctx, &dto.SearchFilters{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
	})

	t.Run("RentBoundsAreInclusive", func(t *testing.T) {
		svc, repo, _ := newRoomService()
		seedRoom(t, repo, func(r *models.Room) { r.Rent = 5000 })
		seedRoom(t, repo, func(r *models.Room) { r.Rent = 8000 })
		seedRoom(t, repo, func(r *models.Room) { r.Rent = 4999 })
		seedRoom(t, repo, func(r *models.Room) { r.Rent = 8001 })

		result, err := svc.Search(ctx, &dto.SearchFilters{MinRent: intPtr(5000), MaxRent: intPtr(8000)})
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Total)
	})

	t.Run("AmenitiesMatchAsSuperset", func(t *testing.T) {
		svc, repo, _ := newRoomService()
		seedRoom(t, repo, func(r *models.Room) { r.Amenities = []string{"wifi", "ac", "parking"} })
		seedRoom(t, repo, func(r *models.Room) { r.Amenities = []string{"wifi"} })

		result, err := svc.Search(ctx, &dto.SearchFilters{Amenities: "wifi,ac"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
	})

	t.Run("GenderFilterAdmitsAnyPolicy", func(t *testing.T) {
		svc, repo, _ := newRoomService()
		seedRoom(t, repo, func(r *models.Room) { r.Rules.GenderAllowed = constants.GenderFemale })
		seedRoom(t, repo, func(r *models.Room) { r.Rules.GenderAllowed = constants.GenderAny })
		seedRoom(t, repo, func(r *models.Room) { r.Rules.GenderAllowed = constants.GenderMale })

		result, err := svc.Search(ctx, &dto.SearchFilters{Gender: constants.GenderFemale})
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Total)
	})

	t.Run("FreeTextIsCaseInsensitive", func(t *testing.T) {
		svc, repo, _ := newRoomService()
		seedRoom(t, repo, func(r *models.Room) { r.Title = "Deluxe PG near Gate 2" })
		seedRoom(t, repo, func(r *models.Room) { r.Title = "Budget room"; r.Description = "basic stay" })

		result, err := svc.Search(ctx, &dto.SearchFilters{Search: "DELUXE"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
	})

	t.Run("Pagination", func(t *testing.T) {
		svc, repo, _ := newRoomService()
		for i := 0; i < 25; i++ {
			seedRoom(t, repo, func(r *models.Room) { r.Title = fmt.Sprintf("Room %d", i) })
		}

		first, err := svc.Search(ctx, &dto.SearchFilters{})
		require.NoError(t, err)
		assert.Len(t, first.Rooms, 12)
		assert.Equal(t, int64(25), first.Total)
		assert.Equal(t, 3, first.Pages)
		assert.Equal(t, 1, first.CurrentPage)

		last, err := svc.Search(ctx, &dto.SearchFilters{Page: 3})
		require.NoError(t, err)
		assert.Len(t, last.Rooms, 1)
		assert.Equal(t, 3, last.CurrentPage)
	})

	t.Run("GeoFilterUsesRadius", func(t *testing.T) {
		svc, repo, _ := newRoomService()
		near := seedRoom(t, repo, func(r *models.Room) {
			r.Title = "Near"
			r.Latitude = constants.CampusLatitude + 1.2/111.2
		})
		seedRoom(t, repo, func(r *models.Room) {
			r.Title = "Far"
			r.Latitude = constants.CampusLatitude + 3.5/111.2
		})
		seedRoom(t, repo, func(r *models.Room) {
			// Unusable zero point never matches a geo query
			r.Title = "NoCoords"
			r.Latitude = 0
			r.Longitude = 0
		})

		result, err := svc.Search(ctx, &dto.SearchFilters{
			Lat:      floatPtr(constants.CampusLatitude),
			Lng:      floatPtr(constants.CampusLongitude),
			RadiusKm: floatPtr(2),
		})
		require.NoError(t, err)
		require.Equal(t, int64(1), result.Total)
		assert.Equal(t, near.ID, result.Rooms[0].ID)
	})
}

func TestRoomNearby(t *testing.T) {
	ctx := context.Background()

	svc, repo, _ := newRoomService()
	near := seedRoom(t, repo, func(r *models.Room) {
		r.Latitude = constants.CampusLatitude + 1.2/111.2
	})
	seedRoom(t, repo, func(r *models.Room) {
		r.Latitude = constants.CampusLatitude + 3.5/111.2
	})

	rooms, err := svc.Nearby(ctx, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, near.ID, rooms[0].ID)

	// Wider radius picks up both, nearest first
	rooms, err = svc.Nearby(ctx, floatPtr(constants.CampusLatitude), floatPtr(constants.CampusLongitude), floatPtr(5))
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, near.ID, rooms[0].ID)
}

func TestRoomDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("BumpsViewCounter", func(t *testing.T) {
		svc, repo, _ := newRoomService()
		seeded := seedRoom(t, repo, nil)

		room, reviews, err := svc.Detail(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), room.Views)
		assert.Empty(t, reviews)

		room, _, err = svc.Detail(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), room.Views)
	})

	t.Run("UnknownRoomIsNotFound", func(t *testing.T) {
		svc, _, _ := newRoomService()
		_, _, err := svc.Detail(ctx, 999)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
	})
}

func TestRoomCreate(t *testing.T) {
	ctx := context.Background()
	owner := &models.User{ID: 7, Role: constants.RoleOwner}

	t.Run("NewListingStartsPending", func(t *testing.T) {
		svc, _, _ := newRoomService()
		room, err := svc.Create(ctx, owner, &dto.CreateRoomInput{
			Title:       "Fresh listing",
			Description: "desc",
			Type:        "single",
			Rent:        5500,
			Address:     models.Address{Street: "Jessore Rd", Area: "Barasat", Pincode: "700125"},
		})
		require.NoError(t, err)
		assert.Equal(t, constants.RoomStatusPending, room.Status)
		assert.Equal(t, owner.ID, room.OwnerID)
	})

	t.Run("DistanceComputedFromCoordinates", func(t *testing.T) {
		svc, _, _ := newRoomService()
		room, err := svc.Create(ctx, owner, &dto.CreateRoomInput{
			Title:       "Room with point",
			Description: "desc",
			Type:        "single",
			Rent:        5500,
			Address:     models.Address{Street: "Jessore Rd", Area: "Barasat", Pincode: "700125"},
			Latitude:    floatPtr(constants.CampusLatitude + 0.01),
			Longitude:   floatPtr(constants.CampusLongitude),
		})
		require.NoError(t, err)
		assert.InDelta(t, 1.11, room.DistanceFromCollege, 0.05)
	})

	t.Run("InvalidTypeRejected", func(t *testing.T) {
		svc, _, _ := newRoomService()
		_, err := svc.Create(ctx, owner, &dto.CreateRoomInput{
			Title:       "Bad",
			Description: "desc",
			Type:        "penthouse",
			Address:     models.Address{Street: "s", Area: "a", Pincode: "700125"},
		})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
	})
}

func TestRoomUpdate(t *testing.T) {
	ctx := context.Background()
	owner := &models.User{ID: 7, Role: constants.RoleOwner}
	admin := &models.User{ID: 1, Role: constants.RoleAdmin}
	stranger := &models.User{ID: 99, Role: constants.RoleOwner}

	t.Run("OwnerEditSendsListingBackToPending", func(t *testing.T) {
		svc, repo, _ := newRoomService()
		seeded := seedRoom(t, repo, nil)

		updated, err := svc.Update(ctx, owner, seeded.ID, &dto.UpdateRoomInput{Rent: intPtr(6500)})
		require.NoError(t, err)
		assert.Equal(t, 6500, updated.Rent)
		assert.Equal(t, constants.RoomStatusPending, updated.Status)
	})

	t.Run("AdminEditKeepsStatus", func(t *testing.T) {
		svc, repo, _ := newRoomService()
		seeded := seedRoom(t, repo, nil)

		updated, err := svc.Update(ctx, admin, seeded.ID, &dto.UpdateRoomInput{Rent: intPtr(6500)})
		require.NoError(t, err)
		assert.Equal(t, constants.RoomStatusApproved, updated.Status)
	})

	t.Run("DistanceStaysFrozenAfterMove", func(t *testing.T) {
		svc, repo, _ := newRoomService()
		seeded := seedRoom(t, repo, func(r *models.Room) { r.DistanceFromCollege = 1.5 })

		updated, err := svc.Update(ctx, owner, seeded.ID, &dto.UpdateRoomInput{
			Latitude:  floatPtr(constants.CampusLatitude + 0.05),
			Longitude: floatPtr(constants.CampusLongitude),
		})
		require.NoError(t, err)
		assert.Equal(t, 1.5, updated.DistanceFromCollege)
	})

	t.Run("ImagesAreAppended", func(t *testing.T) {
		svc, repo, _ := newRoomService()
		seeded := seedRoom(t, repo, func(r *models.Room) { r.Images = []string{"a.jpg"} })

		updated, err := svc.Update(ctx, owner, seeded.ID, &dto.UpdateRoomInput{Images: []string{"b.jpg"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, []string(updated.Images))
	})

	t.Run("StrangerIsForbidden", func(t *testing.T) {
		svc, repo, _ := newRoomService()
		seeded := seedRoom(t, repo, nil)

		_, err := svc.Update(ctx, stranger, seeded.ID, &dto.UpdateRoomInput{Title: strPtr("mine now")})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeForbidden))
	})
}

func TestRoomModeration(t *testing.T) {
	ctx := context.Background()

	t.Run("ApproveListing", func(t *testing.T) {
		svc, repo, _ := newRoomService()
		seeded := seedRoom(t, repo, func(r *models.Room) { r.Status = constants.RoomStatusPending })

		room, err := svc.ReviewListing(ctx, seeded.ID, &dto.AdminRoomReviewInput{Status: constants.RoomStatusApproved})
		require.NoError(t, err)
		assert.Equal(t, constants.RoomStatusApproved, room.Status)
	})

	t.Run("RejectWithNote", func(t *testing.T) {
		svc, repo, _ := newRoomService()
		seeded := seedRoom(t, repo, func(r *models.Room) { r.Status = constants.RoomStatusPending })

		room, err := svc.ReviewListing(ctx, seeded.ID, &dto.AdminRoomReviewInput{
			Status:    constants.RoomStatusRejected,
			AdminNote: "photos missing",
		})
		require.NoError(t, err)
		assert.Equal(t, constants.RoomStatusRejected, room.Status)
		assert.Equal(t, "photos missing", room.AdminNote)
	})

	t.Run("ArbitraryStatusRejected", func(t *testing.T) {
		svc, repo, _ := newRoomService()
		seeded := seedRoom(t, repo, nil)

		_, err := svc.ReviewListing(ctx, seeded.ID, &dto.AdminRoomReviewInput{Status: "archived"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
	})
}

func TestToggleAvailability(t *testing.T) {
	ctx := context.Background()
	owner := &models.User{ID: 7, Role: constants.RoleOwner}

	svc, repo, _ := newRoomService()
	seeded := seedRoom(t, repo, nil)

	room, err := svc.ToggleAvailability(ctx, owner, seeded.ID)
	require.NoError(t, err)
	assert.False(t, room.Availability)

	room, err = svc.ToggleAvailability(ctx, owner, seeded.ID)
	require.NoError(t, err)
	assert.True(t, room.Availability)
}

func TestBuildRoomQuery(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		q := BuildRoomQuery(&dto.SearchFilters{})
		assert.Equal(t, constants.DefaultPage, q.Page)
		assert.Equal(t, constants.DefaultPageSize, q.Limit)
		assert.False(t, q.HasGeo())
	})

	t.Run("AnyGenderIsNoFilter", func(t *testing.T) {
		q := BuildRoomQuery(&dto.SearchFilters{Gender: constants.GenderAny})
		assert.Empty(t, q.Gender)
	})

	t.Run("UnknownAmenitiesDropped", func(t *testing.T) {
		q := BuildRoomQuery(&dto.SearchFilters{Amenities: "wifi, jacuzzi ,AC"})
		assert.Equal(t, []string{"wifi", "ac"}, q.Amenities)
	})

	t.Run("GeoDefaultsRadius", func(t *testing.T) {
		q := BuildRoomQuery(&dto.SearchFilters{Lat: floatPtr(22.7), Lng: floatPtr(88.4)})
		assert.True(t, q.HasGeo())
		assert.Equal(t, float64(constants.DefaultSearchRadiusKm), q.RadiusKm)
	})
}
