package models

import (
	"time"
)

// DateLayout là định dạng ngày dùng cho arrival/departure
const DateLayout = "2006-01-02"

type Booking struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ApartmentID   uint      `json:"apartmentId"`
	Apartment     Apartment `json:"-" gorm:"foreignKey:ApartmentID"`
	ArrivalDate   string    `json:"arrivalDate"`
	DepartureDate string    `json:"departureDate"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
