package models

import "gorm.io/gorm"

// Migrate tạo schema cho toàn bộ model
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Location{},
		&Apartment{},
		&Booking{},
		&ApartmentImage{},
		&Comment{},
		&Region{},
		&City{},
		&ApartmentType{},
		&RoomCount{},
		&Floor{},
		&ConstructionType{},
		&ApartmentState{},
		&Currency{},
	)
}
