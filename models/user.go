package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name      string    `json:"name"`
	Email     string    `gorm:"unique" json:"email"`
	Password  string    `json:"-"`
	GoogleID  string    `json:"-"`
	Role      string    `gorm:"default:student" json:"role"`
	Avatar    string    `json:"avatar"`
	Phone     string    `json:"phone"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`

	// Student specific
	StudentID  string `json:"studentId,omitempty"`
	Department string `json:"department,omitempty"`
	Year       string `json:"year,omitempty"`

	// Owner specific
	BusinessName    string `json:"businessName,omitempty"`
	BusinessAddress string `json:"businessAddress,omitempty"`
	IsOwnerApproved bool   `gorm:"default:false" json:"isOwnerApproved"`

	SavedRoomIDs pq.Int64Array `gorm:"type:integer[]" json:"savedRooms"`
}

// HasSavedRoom reports whether roomID is in the student's saved set
func (u *User) HasSavedRoom(roomID uint) bool {
	for _, id := range u.SavedRoomIDs {
		if uint(id) == roomID {
			return true
		}
	}
	return false
}
