package models

import "time"

type ApartmentImage struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ApartmentID uint      `json:"apartmentId"`
	URL         string    `json:"url"` // Secure URL trên Cloudinary
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
