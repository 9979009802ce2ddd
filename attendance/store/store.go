// Package store adapts the database to the collaborator interfaces the
// attendance core is built against.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	core "asistapp.com/asistapp/attendance/core"
	"asistapp.com/asistapp/attendance/model"
	"asistapp.com/asistapp/utils"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) IsEnrolled(ctx context.Context, studentID, groupID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("student_id = ? AND group_id = ?", studentID, groupID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment: %w", err)
	}
	return count > 0, nil
}

func (s *Store) GetScheduleWindows(ctx context.Context, groupID uint) ([]core.ScheduleWindow, error) {
	var rows []model.ScheduleWindow
	err := s.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("day_of_week ASC, start_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule windows: %w", err)
	}

	windows := make([]core.ScheduleWindow, 0, len(rows))
	for _, row := range rows {
		day, err := core.ParseWeekday(row.DayOfWeek)
		if err != nil {
			return nil, fmt.Errorf("schedule window %d: %w", row.ID, err)
		}
		windows = append(windows, core.ScheduleWindow{
			Day:   day,
			Start: row.StartTime,
			End:   row.EndTime,
		})
	}
	return windows, nil
}

func (s *Store) GetGroupConfig(ctx context.Context, groupID uint) (core.GroupConfig, error) {
	var group model.Group
	if err := s.db.WithContext(ctx).First(&group, groupID).Error; err != nil {
		return core.GroupConfig{}, fmt.Errorf("failed to fetch group %d: %w", groupID, err)
	}

	kind, err := core.ParsePolicyKind(group.PolicyKind)
	if err != nil {
		// Hand the raw value through so the recorder reports it as an
		// invalid-config failure instead of a storage failure.
		kind = core.PolicyKind(group.PolicyKind)
	}
	return core.GroupConfig{
		ToleranceMinutes: group.ToleranceMinutes,
		PolicyKind:       kind,
	}, nil
}

func (s *Store) HasRecord(ctx context.Context, studentID, groupID uint, date time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.AttendanceRecord{}).
		Where("student_id = ? AND group_id = ? AND date = ?", studentID, groupID, datatypes.Date(date)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check attendance record: %w", err)
	}
	return count > 0, nil
}

func (s *Store) SaveAttendanceRecord(ctx context.Context, studentID, groupID uint, date time.Time, checkIn string, status core.Status) error {
	rec := model.AttendanceRecord{
		PublicID:    uuid.NewString(),
		StudentID:   studentID,
		GroupID:     groupID,
		Date:        datatypes.Date(date),
		CheckInTime: utils.Ptr(checkIn),
		Status:      string(status),
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to save attendance record: %w", err)
	}
	return nil
}
