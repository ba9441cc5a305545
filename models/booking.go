package models

import (
	"time"
)

type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	RoomID    uint `gorm:"index:idx_bookings_room_student" json:"roomId"`
	Room      Room `gorm:"foreignKey:RoomID" json:"room"`
	StudentID uint `gorm:"index:idx_bookings_room_student" json:"studentId"`
	Student   User `gorm:"foreignKey:StudentID" json:"student"`

	// Denormalized from the room at creation so owner dashboards never join
	OwnerID uint `gorm:"index" json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"owner"`

	Status     string    `gorm:"default:pending" json:"status"`
	MoveInDate time.Time `json:"moveInDate"`
	Duration   int       `json:"duration"` // months

	// rent x duration, frozen at creation
	TotalAmount int `json:"totalAmount"`

	Message   string     `json:"message,omitempty"`
	OwnerNote string     `json:"ownerNote,omitempty"`
	VisitDate *time.Time `json:"visitDate,omitempty"`
}

// IsActive reports whether the booking blocks a new request for the
// same (room, student) pair.
func (b *Booking) IsActive() bool {
	return b.Status == "pending" || b.Status == "confirmed"
}
