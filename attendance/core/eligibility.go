package core

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ScheduleWindow is one (day, start, end) interval during which a group's
// students may mark attendance. Times are "HH:mm".
type ScheduleWindow struct {
	Day   time.Weekday
	Start string
	End   string
}

// Contains reports whether the window covers the given day and clock time.
// Both bounds are inclusive. The comparison is lexicographic, which is
// correct for fixed-width zero-padded 24h times.
func (w ScheduleWindow) Contains(day time.Weekday, clock string) bool {
	return w.Day == day && w.Start <= clock && clock <= w.End
}

// ParseWeekday maps a stored day name to a time.Weekday, case-insensitively.
// The canonical stored form is the lowercase english name, so schedule data
// never depends on the device locale.
func ParseWeekday(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return 0, fmt.Errorf("unknown day of week %q", s)
}

// EnrollmentStore answers whether a student is enrolled in a group.
// Enrollment is the authorization boundary: no enrollment, no marking.
type EnrollmentStore interface {
	IsEnrolled(ctx context.Context, studentID, groupID uint) (bool, error)
}

// ScheduleStore returns a group's configured windows.
type ScheduleStore interface {
	GetScheduleWindows(ctx context.Context, groupID uint) ([]ScheduleWindow, error)
}

// Eligibility gates marking attempts: the student must be enrolled and the
// current day/time must fall inside one of the group's windows.
type Eligibility struct {
	Enrollments EnrollmentStore
	Schedules   ScheduleStore
}

// CanMark returns the matched window when marking is permitted right now.
// The matched window's start time is the reference the policies grade
// against. A nil window with a nil error means the attempt is simply not
// eligible (not enrolled, wrong day, or outside every window).
func (e Eligibility) CanMark(ctx context.Context, studentID, groupID uint, day time.Weekday, clock string) (*ScheduleWindow, error) {
	enrolled, err := e.Enrollments.IsEnrolled(ctx, studentID, groupID)
	if err != nil {
		return nil, fmt.Errorf("check enrollment: %w", err)
	}
	if !enrolled {
		return nil, nil
	}

	windows, err := e.Schedules.GetScheduleWindows(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule windows: %w", err)
	}
	for _, w := range windows {
		if w.Contains(day, clock) {
			return &w, nil
		}
	}
	return nil, nil
}
