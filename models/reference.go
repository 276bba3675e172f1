package models

// Các bảng tham chiếu phẳng, chỉ đọc qua API

type Region struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

type City struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	RegionID uint   `json:"regionId"`
	Name     string `json:"name"`
}

type ApartmentType struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

type RoomCount struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

type Floor struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

type ConstructionType struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

type ApartmentState struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

type Currency struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}
