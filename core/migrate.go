package core

import (
	"asistapp.com/asistapp/attendance/model"
	"gorm.io/gorm"
)

// Migrate creates or updates the app tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Group{},
		&model.ScheduleWindow{},
		&model.Enrollment{},
		&model.AttendanceRecord{},
	)
}
