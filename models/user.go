package models

import (
	"time"

	"github.com/lib/pq"
)

// Role constants
const (
	RoleUser  = 0
	RoleAdmin = 1
)

type User struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name         string        `gorm:"default:New User" json:"name"`
	Email        string        `gorm:"unique" json:"email"`
	Password     string        `json:"password"`
	PhoneNumber  string        `gorm:"type:varchar(11)" json:"phoneNumber"`
	Avatar       string        `json:"avatar"`
	Role         int           `gorm:"default:0" json:"role"`
	ApartmentIDs pq.Int64Array `json:"apartmentIds" gorm:"type:integer[]"`
}
