package models

type Location struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RegionID  uint    `json:"regionId"`
	CityID    uint    `json:"cityId"`
}
