package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	RoomID    uint `gorm:"uniqueIndex:idx_reviews_room_student" json:"roomId"`
	StudentID uint `gorm:"uniqueIndex:idx_reviews_room_student" json:"studentId"`
	Student   User `gorm:"foreignKey:StudentID" json:"student"`

	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	IsApproved bool   `gorm:"default:true" json:"isApproved"`
}
