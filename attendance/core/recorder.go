package core

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotEligible means the student is not enrolled or the current time is
	// outside every schedule window. Nothing is written.
	ErrNotEligible = errors.New("attendance cannot be marked right now")

	// ErrAlreadyMarked means a record already exists for the same student,
	// group and date.
	ErrAlreadyMarked = errors.New("attendance already marked for this date")

	// ErrInvalidConfig means the group's stored tolerance or policy kind is
	// out of range. Configuration writes validate, so hitting this at
	// marking time indicates corrupted data.
	ErrInvalidConfig = errors.New("group attendance configuration is invalid")
)

// GroupConfig is the per-group attendance policy configuration.
type GroupConfig struct {
	ToleranceMinutes int
	PolicyKind       PolicyKind
}

// GroupConfigStore reads a group's configured tolerance and policy kind.
type GroupConfigStore interface {
	GetGroupConfig(ctx context.Context, groupID uint) (GroupConfig, error)
}

// AttendanceStore persists attendance records and answers whether one
// already exists for a (student, group, date) tuple.
type AttendanceStore interface {
	HasRecord(ctx context.Context, studentID, groupID uint, date time.Time) (bool, error)
	SaveAttendanceRecord(ctx context.Context, studentID, groupID uint, date time.Time, checkIn string, status Status) error
}

// Clock supplies the current day of week and clock time. Injected so tests
// and the token of trust (device time vs server time) stay explicit.
type Clock interface {
	Now() (time.Weekday, string)
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() (time.Weekday, string) {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	now := time.Now().In(loc)
	return now.Weekday(), FormatClock(now)
}

// Recorder orchestrates one marking attempt: eligibility gate, duplicate
// gate, policy resolution, status computation, persistence.
type Recorder struct {
	groups      GroupConfigStore
	attendances AttendanceStore
	eligibility Eligibility
	clock       Clock
}

func NewRecorder(groups GroupConfigStore, enrollments EnrollmentStore, schedules ScheduleStore, attendances AttendanceStore, clock Clock) *Recorder {
	return &Recorder{
		groups:      groups,
		attendances: attendances,
		eligibility: Eligibility{Enrollments: enrollments, Schedules: schedules},
		clock:       clock,
	}
}

// MarkResult is the outcome of a successful marking attempt. CheckInTime is
// the clock value that was graded and persisted, so callers echo exactly
// what the record holds.
type MarkResult struct {
	Status      Status
	CheckInTime string
}

// MarkAttendance records the student's attendance for the group on the given
// date, grading the current clock time against the start of the schedule
// window that made the attempt eligible.
func (r *Recorder) MarkAttendance(ctx context.Context, studentID, groupID uint, date time.Time) (MarkResult, error) {
	day, clock := r.clock.Now()

	window, err := r.eligibility.CanMark(ctx, studentID, groupID, day, clock)
	if err != nil {
		return MarkResult{}, err
	}
	if window == nil {
		return MarkResult{}, ErrNotEligible
	}

	exists, err := r.attendances.HasRecord(ctx, studentID, groupID, date)
	if err != nil {
		return MarkResult{}, fmt.Errorf("check existing record: %w", err)
	}
	if exists {
		return MarkResult{}, ErrAlreadyMarked
	}

	cfg, err := r.groups.GetGroupConfig(ctx, groupID)
	if err != nil {
		return MarkResult{}, fmt.Errorf("fetch group config: %w", err)
	}
	if err := ValidateTolerance(cfg.ToleranceMinutes); err != nil {
		return MarkResult{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	policy, err := SelectPolicy(cfg.PolicyKind)
	if err != nil {
		return MarkResult{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	status := policy.Evaluate(clock, window.Start, cfg.ToleranceMinutes)

	if err := r.attendances.SaveAttendanceRecord(ctx, studentID, groupID, date, clock, status); err != nil {
		return MarkResult{}, fmt.Errorf("save attendance record: %w", err)
	}
	return MarkResult{Status: status, CheckInTime: clock}, nil
}
