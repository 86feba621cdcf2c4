package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table the application owns. The model
// structs live in this package, so migration does too.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&sessionModel{},
		&customerModel{},
		&deviceModel{},
		&repairModel{},
		&serviceModel{},
		&partModel{},
		&repairServiceModel{},
		&servicePartModel{},
	)
}
