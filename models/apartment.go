package models

import (
	"encoding/json"
	"time"
)

type Apartment struct {
	ID                 uint             `json:"id" gorm:"primaryKey"`
	UserID             uint             `json:"userId"` // Chủ sở hữu
	User               User             `json:"user" gorm:"foreignKey:UserID"`
	LocationID         uint             `json:"locationId"`
	Location           Location         `json:"location" gorm:"foreignKey:LocationID"` // 1:1 với apartment
	Price              int              `json:"price"`
	CurrencyID         uint             `json:"currencyId"`
	TotalArea          float64          `json:"totalArea"`
	TypeID             uint             `json:"typeId"`
	RoomID             uint             `json:"roomId"`
	FloorID            uint             `json:"floorId"`
	ConstructionTypeID uint             `json:"constructionTypeId"`
	StateID            uint             `json:"stateId"`
	ObjectsInApartment string           `json:"objectsInApartment"`
	NearbyObjects      string           `json:"nearbyObjects"`
	Description        string           `json:"description"`
	Img                json.RawMessage  `json:"img" gorm:"type:json"`
	PubDate            time.Time        `json:"pubDate" gorm:"autoCreateTime"`
	Status             bool             `json:"status" gorm:"default:true"` // Cờ còn trống, tính lại khi đọc chi tiết
	Bookings           []Booking        `json:"bookings" gorm:"foreignKey:ApartmentID"`
	Images             []ApartmentImage `json:"images" gorm:"foreignKey:ApartmentID"`
}
