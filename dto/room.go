package dto

import (
	"github.com/bwubca23694-eng/Brainware-Rooms/models"
)

// SearchFilters is the raw filter request bound from query parameters
type SearchFilters struct {
	Type      string   `form:"type"`
	MinRent   *int     `form:"minRent"`
	MaxRent   *int     `form:"maxRent"`
	Amenities string   `form:"amenities"` // comma separated
	Gender    string   `form:"gender"`
	Search    string   `form:"search"`
	Lat       *float64 `form:"lat"`
	Lng       *float64 `form:"lng"`
	RadiusKm  *float64 `form:"radius"`
	Page      int      `form:"page"`
	Limit     int      `form:"limit"`
	Sort      string   `form:"sort"`
}

// RoomQuery is the validated, normalized query descriptor executed by the
// room repository. Eligibility (status=approved AND availability=true) is a
// base predicate of every search and is not represented here.
type RoomQuery struct {
	Type      string
	MinRent   *int
	MaxRent   *int
	Amenities []string
	Gender    string // "" means no gender filter
	Search    string
	Lat       *float64
	Lng       *float64
	RadiusKm  float64
	Page      int
	Limit     int
	Sort      string
}

// HasGeo reports whether the query carries a near-point constraint
func (q *RoomQuery) HasGeo() bool {
	return q.Lat != nil && q.Lng != nil
}

// Offset returns the row offset for the normalized page/limit pair
func (q *RoomQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// RoomSearchResult carries one page of matches plus the counts a caller
// needs to render pagination without a second round trip.
type RoomSearchResult struct {
	Rooms       []models.Room `json:"rooms"`
	Total       int64         `json:"total"`
	Pages       int           `json:"pages"`
	CurrentPage int           `json:"currentPage"`
}

// CreateRoomInput is the owner-supplied listing payload
type CreateRoomInput struct {
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Type            string         `json:"type"`
	Rent            int            `json:"rent"`
	Deposit         int            `json:"deposit"`
	Address         models.Address `json:"address"`
	Longitude       *float64       `json:"longitude"`
	Latitude        *float64       `json:"latitude"`
	Images          []string       `json:"images"`
	Amenities       []string       `json:"amenities"`
	Rules           *models.Rules  `json:"rules"`
	TotalRooms      int            `json:"totalRooms"`
	AvailableRooms  int            `json:"availableRooms"`
	AvailableFrom   string         `json:"availableFrom"`
	ContactPhone    string         `json:"contactPhone"`
	ContactWhatsapp string         `json:"contactWhatsapp"`
}

// UpdateRoomInput is a partial listing payload; nil fields are untouched
type UpdateRoomInput struct {
	Title           *string         `json:"title"`
	Description     *string         `json:"description"`
	Type            *string         `json:"type"`
	Rent            *int            `json:"rent"`
	Deposit         *int            `json:"deposit"`
	Address         *models.Address `json:"address"`
	Longitude       *float64        `json:"longitude"`
	Latitude        *float64        `json:"latitude"`
	Images          []string        `json:"images"` // appended, not replaced
	Amenities       []string        `json:"amenities"`
	Rules           *models.Rules   `json:"rules"`
	Availability    *bool           `json:"availability"`
	TotalRooms      *int            `json:"totalRooms"`
	AvailableRooms  *int            `json:"availableRooms"`
	ContactPhone    *string         `json:"contactPhone"`
	ContactWhatsapp *string         `json:"contactWhatsapp"`
}

// AdminRoomReviewInput is the admin approve/reject decision
type AdminRoomReviewInput struct {
	Status    string `json:"status"`
	AdminNote string `json:"adminNote"`
}
