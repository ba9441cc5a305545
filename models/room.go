package models

import (
	"fmt"
	"time"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"

	"github.com/lib/pq"
)

// Address is the structured postal address of a room
type Address struct {
	Street   string `json:"street"`
	Area     string `json:"area"`
	City     string `gorm:"default:Barasat" json:"city"`
	State    string `gorm:"default:West Bengal" json:"state"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark,omitempty"`
}

// Rules is the house-rule set attached to a room
type Rules struct {
	GenderAllowed string `gorm:"default:any" json:"genderAllowed"`
	NonVeg        bool   `gorm:"default:true" json:"nonVeg"`
	Smoking       bool   `gorm:"default:false" json:"smoking"`
	Pets          bool   `gorm:"default:false" json:"pets"`
	Visitors      bool   `gorm:"default:true" json:"visitors"`
}

type Room struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     uint      `gorm:"index" json:"ownerId"`
	Owner       User      `gorm:"foreignKey:OwnerID" json:"owner"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Rent        int       `json:"rent"`
	Deposit     int       `gorm:"default:0" json:"deposit"`

	Address Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	// Geographic point; campus coordinates are the default
	Longitude float64 `gorm:"default:88.4821" json:"longitude"`
	Latitude  float64 `gorm:"default:22.7225" json:"latitude"`

	// Great-circle distance to campus in km, computed once at creation
	// and never recomputed on update.
	DistanceFromCollege float64 `json:"distanceFromCollege"`

	Images    pq.StringArray `gorm:"type:text[]" json:"images"`
	Amenities pq.StringArray `gorm:"type:text[]" json:"amenities"`

	Rules Rules `gorm:"embedded;embeddedPrefix:rule_" json:"rules"`

	Availability   bool      `gorm:"default:true" json:"availability"`
	AvailableFrom  time.Time `json:"availableFrom"`
	TotalRooms     int       `gorm:"default:1" json:"totalRooms"`
	AvailableRooms int       `gorm:"default:1" json:"availableRooms"`

	Status    string `gorm:"default:pending;index:idx_rooms_status_availability" json:"status"`
	AdminNote string `json:"adminNote,omitempty"`

	Views       int64   `gorm:"default:0" json:"views"`
	Rating      float64 `gorm:"default:0" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"reviewCount"`

	ContactPhone    string `json:"contactPhone,omitempty"`
	ContactWhatsapp string `json:"contactWhatsapp,omitempty"`
}

func (r *Room) ValidateType() error {
	if !constants.IsValidRoomType(r.Type) {
		return fmt.Errorf("invalid type: %q", r.Type)
	}
	return nil
}

func (r *Room) ValidateStatus() error {
	switch r.Status {
	case constants.RoomStatusPending, constants.RoomStatusApproved,
		constants.RoomStatusRejected, constants.RoomStatusInactive:
		return nil
	}
	return fmt.Errorf("invalid status: %q", r.Status)
}

// HasCoordinates reports whether the stored point is usable for geo queries
func (r *Room) HasCoordinates() bool {
	if r.Longitude == 0 && r.Latitude == 0 {
		return false
	}
	return r.Longitude >= -180 && r.Longitude <= 180 && r.Latitude >= -90 && r.Latitude <= 90
}
