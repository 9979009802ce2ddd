package model

import "time"

type Subject struct {
	ID   uint   `gorm:"primaryKey;column:id" json:"id"`
	Code string `gorm:"column:code;type:varchar(20);uniqueIndex;not null" json:"code"`
	Name string `gorm:"column:name;type:varchar(200);not null" json:"name"`
}

func (Subject) TableName() string {
	return "subjects"
}

// Group is a taught section of a subject. It owns the attendance policy
// configuration: how many minutes of lateness still count as on time and
// which evaluation policy applies.
type Group struct {
	ID           uint   `gorm:"primaryKey;column:id" json:"id"`
	Code         string `gorm:"column:code;type:varchar(20);not null" json:"code"`
	SubjectID    uint   `gorm:"column:subject_id;not null" json:"subjectId"`
	InstructorID uint   `gorm:"column:instructor_id;not null" json:"instructorId"`

	ToleranceMinutes int    `gorm:"column:tolerance_minutes;not null;default:10" json:"toleranceMinutes"`
	PolicyKind       string `gorm:"column:policy_kind;type:varchar(20);not null;default:LATE" json:"policyKind"`

	Subject    Subject `gorm:"foreignKey:SubjectID;references:ID" json:"-"`
	Instructor User    `gorm:"foreignKey:InstructorID;references:ID" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Group) TableName() string {
	return "groups"
}

// ScheduleWindow is one weekly interval during which the group's students
// may mark attendance. DayOfWeek is stored as the lowercase english day
// name so stored schedules never depend on a device locale. Windows are
// replaced as a set when the instructor saves the schedule, never updated
// in place.
type ScheduleWindow struct {
	ID        uint   `gorm:"primaryKey;column:id" json:"id"`
	GroupID   uint   `gorm:"column:group_id;not null;index" json:"groupId"`
	DayOfWeek string `gorm:"column:day_of_week;type:varchar(10);not null" json:"dayOfWeek"`
	StartTime string `gorm:"column:start_time;type:varchar(5);not null" json:"startTime"`
	EndTime   string `gorm:"column:end_time;type:varchar(5);not null" json:"endTime"`

	Group Group `gorm:"foreignKey:GroupID;references:ID" json:"-"`
}

func (ScheduleWindow) TableName() string {
	return "schedule_windows"
}

// Enrollment relates a student to a group. It is the authorization
// boundary: a student may only mark attendance for enrolled groups.
type Enrollment struct {
	ID        uint `gorm:"primaryKey;column:id" json:"id"`
	StudentID uint `gorm:"column:student_id;not null;uniqueIndex:idx_student_group" json:"studentId"`
	GroupID   uint `gorm:"column:group_id;not null;uniqueIndex:idx_student_group" json:"groupId"`

	Student User  `gorm:"foreignKey:StudentID;references:ID" json:"-"`
	Group   Group `gorm:"foreignKey:GroupID;references:ID" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
