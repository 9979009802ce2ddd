package model

import (
	"time"

	"gorm.io/datatypes"
)

// AttendanceRecord is one student's attendance for one group on one date.
// Records are append-only; the unique index makes the second attempt for
// the same day fail at the database as well as in the recorder.
type AttendanceRecord struct {
	ID        uint           `gorm:"primaryKey;column:id" json:"id"`
	PublicID  string         `gorm:"column:public_id;type:varchar(36);uniqueIndex;not null" json:"publicId"`
	StudentID uint           `gorm:"column:student_id;not null;uniqueIndex:idx_student_group_date" json:"studentId"`
	GroupID   uint           `gorm:"column:group_id;not null;uniqueIndex:idx_student_group_date" json:"groupId"`
	Date      datatypes.Date `gorm:"column:date;not null;uniqueIndex:idx_student_group_date" json:"date"`

	CheckInTime *string `gorm:"column:check_in_time;type:varchar(5)" json:"checkInTime,omitempty"`
	Status      string  `gorm:"column:status;type:varchar(10);not null" json:"status"`

	Student User  `gorm:"foreignKey:StudentID;references:ID" json:"-"`
	Group   Group `gorm:"foreignKey:GroupID;references:ID" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
