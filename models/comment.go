package models

import "time"

type Comment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ApartmentID uint      `json:"apartmentId"`
	UserID      uint      `json:"userId"`
	User        User      `json:"user" gorm:"foreignKey:UserID"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
