package constants

// User roles
const (
	RoleStudent = "student"
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
)

// Room status
const (
	RoomStatusPending  = "pending"
	RoomStatusApproved = "approved"
	RoomStatusRejected = "rejected"
	RoomStatusInactive = "inactive"
)

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusRejected  = "rejected"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Gender policy
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderAny    = "any"
)

// Search defaults
const (
	DefaultPage           = 1
	DefaultPageSize       = 12
	DefaultSearchRadiusKm = 5
	NearbyRadiusKm        = 3
	NearbyLimit           = 20
	DetailReviewLimit     = 10
)

// Campus reference point (Brainware University, Barasat): [lng, lat]
const (
	CampusLongitude = 88.4821
	CampusLatitude  = 22.7225
)

// RoomTypes is the set of accepted room categories.
var RoomTypes = []string{"single", "double", "triple", "dormitory", "studio", "hostel", "1bhk", "2bhk"}

// Amenities is the set of accepted amenity tags.
var Amenities = []string{
	"wifi", "ac", "parking", "laundry", "mess", "security", "cctv", "gym",
	"lift", "powerbackup", "furnished", "semifurnished", "kitchen",
	"bathroom", "balcony", "tv", "geyser", "purifier",
}

func IsValidRoomType(t string) bool {
	for _, v := range RoomTypes {
		if v == t {
			return true
		}
	}
	return false
}

func IsValidAmenity(a string) bool {
	for _, v := range Amenities {
		if v == a {
			return true
		}
	}
	return false
}

func IsValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderAny
}
