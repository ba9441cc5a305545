package dto

import "github.com/bwubca23694-eng/Brainware-Rooms/models"

// OwnerStats are the tallies on the owner dashboard
type OwnerStats struct {
	TotalRooms        int   `json:"totalRooms"`
	ApprovedRooms     int   `json:"approvedRooms"`
	PendingRooms      int   `json:"pendingRooms"`
	TotalBookings     int64 `json:"totalBookings"`
	PendingBookings   int64 `json:"pendingBookings"`
	ConfirmedBookings int64 `json:"confirmedBookings"`
	TotalViews        int64 `json:"totalViews"`
}

// OwnerDashboard is the owner dashboard payload
type OwnerDashboard struct {
	Stats OwnerStats    `json:"stats"`
	Rooms []models.Room `json:"rooms"`
}

// AdminStats are the platform-wide tallies on the admin dashboard
type AdminStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalRooms    int64 `json:"totalRooms"`
	TotalBookings int64 `json:"totalBookings"`
	PendingRooms  int64 `json:"pendingRooms"`
	PendingOwners int64 `json:"pendingOwners"`
}

// AdminDashboard is the admin dashboard payload
type AdminDashboard struct {
	Stats          AdminStats           `json:"stats"`
	RecentRooms    []models.Room        `json:"recentRooms"`
	RecentBookings []models.Booking     `json:"recentBookings"`
	MonthlyStats   []MonthlyBookingStat `json:"monthlyStats"`
}
