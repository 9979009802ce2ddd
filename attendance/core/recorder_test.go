package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGroups struct {
	configs map[uint]GroupConfig
}

func (f fakeGroups) GetGroupConfig(_ context.Context, groupID uint) (GroupConfig, error) {
	return f.configs[groupID], nil
}

type savedRecord struct {
	studentID uint
	groupID   uint
	date      time.Time
	checkIn   string
	status    Status
}

type fakeAttendances struct {
	saved []savedRecord
}

func (f *fakeAttendances) HasRecord(_ context.Context, studentID, groupID uint, date time.Time) (bool, error) {
	for _, r := range f.saved {
		if r.studentID == studentID && r.groupID == groupID && r.date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAttendances) SaveAttendanceRecord(_ context.Context, studentID, groupID uint, date time.Time, checkIn string, status Status) error {
	f.saved = append(f.saved, savedRecord{studentID, groupID, date, checkIn, status})
	return nil
}

type fixedClock struct {
	day   time.Weekday
	clock string
}

func (c fixedClock) Now() (time.Weekday, string) { return c.day, c.clock }

func newTestRecorder(cfg GroupConfig, clock fixedClock) (*Recorder, *fakeAttendances) {
	const (
		student uint = 1
		group   uint = 7
	)
	attendances := &fakeAttendances{}
	rec := NewRecorder(
		fakeGroups{configs: map[uint]GroupConfig{group: cfg}},
		fakeEnrollments{enrolled: map[[2]uint]bool{{student, group}: true}},
		fakeSchedules{windows: map[uint][]ScheduleWindow{
			group: {{Day: time.Monday, Start: "08:00", End: "10:00"}},
		}},
		attendances,
		clock,
	)
	return rec, attendances
}

func TestRecorderMarkAttendance(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a monday

	tests := []struct {
		name     string
		cfg      GroupConfig
		clock    fixedClock
		expected Status
	}{
		{
			name:     "Present within tolerance",
			cfg:      GroupConfig{ToleranceMinutes: 10, PolicyKind: PolicyKindLate},
			clock:    fixedClock{day: time.Monday, clock: "08:05"},
			expected: StatusPresent,
		},
		{
			name:     "Late past tolerance",
			cfg:      GroupConfig{ToleranceMinutes: 10, PolicyKind: PolicyKindLate},
			clock:    fixedClock{day: time.Monday, clock: "08:15"},
			expected: StatusLate,
		},
		{
			name:     "Absent past three times tolerance",
			cfg:      GroupConfig{ToleranceMinutes: 10, PolicyKind: PolicyKindLate},
			clock:    fixedClock{day: time.Monday, clock: "08:45"},
			expected: StatusAbsent,
		},
		{
			name:     "Lenient group is always present",
			cfg:      GroupConfig{ToleranceMinutes: 10, PolicyKind: PolicyKindPresent},
			clock:    fixedClock{day: time.Monday, clock: "09:55"},
			expected: StatusPresent,
		},
		{
			name:     "Margin policy grades on fixed margins",
			cfg:      GroupConfig{ToleranceMinutes: 60, PolicyKind: PolicyKindAbsent},
			clock:    fixedClock{day: time.Monday, clock: "08:20"},
			expected: StatusLate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, attendances := newTestRecorder(tt.cfg, tt.clock)

			result, err := rec.MarkAttendance(ctx, 1, 7, date)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Status)

			require.Len(t, attendances.saved, 1)
			saved := attendances.saved[0]
			assert.Equal(t, tt.clock.clock, saved.checkIn)
			assert.Equal(t, tt.expected, saved.status)
			assert.Equal(t, saved.checkIn, result.CheckInTime, "returned check-in must be the persisted one")
		})
	}
}

func TestRecorderNotEligible(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	cfg := GroupConfig{ToleranceMinutes: 10, PolicyKind: PolicyKindLate}

	t.Run("Outside window", func(t *testing.T) {
		rec, attendances := newTestRecorder(cfg, fixedClock{day: time.Monday, clock: "10:01"})
		_, err := rec.MarkAttendance(ctx, 1, 7, date)
		assert.ErrorIs(t, err, ErrNotEligible)
		assert.Empty(t, attendances.saved, "denied attempts must not write")
	})

	t.Run("Wrong day", func(t *testing.T) {
		rec, attendances := newTestRecorder(cfg, fixedClock{day: time.Tuesday, clock: "08:05"})
		_, err := rec.MarkAttendance(ctx, 1, 7, date)
		assert.ErrorIs(t, err, ErrNotEligible)
		assert.Empty(t, attendances.saved)
	})

	t.Run("Not enrolled", func(t *testing.T) {
		rec, attendances := newTestRecorder(cfg, fixedClock{day: time.Monday, clock: "08:05"})
		_, err := rec.MarkAttendance(ctx, 99, 7, date)
		assert.ErrorIs(t, err, ErrNotEligible)
		assert.Empty(t, attendances.saved)
	})
}

func TestRecorderDuplicate(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	cfg := GroupConfig{ToleranceMinutes: 10, PolicyKind: PolicyKindLate}

	rec, attendances := newTestRecorder(cfg, fixedClock{day: time.Monday, clock: "08:05"})

	_, err := rec.MarkAttendance(ctx, 1, 7, date)
	require.NoError(t, err)

	_, err = rec.MarkAttendance(ctx, 1, 7, date)
	assert.ErrorIs(t, err, ErrAlreadyMarked)
	assert.Len(t, attendances.saved, 1)

	// A different date is a fresh attempt.
	_, err = rec.MarkAttendance(ctx, 1, 7, date.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Len(t, attendances.saved, 2)
}

func TestRecorderInvalidConfig(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	clock := fixedClock{day: time.Monday, clock: "08:05"}

	t.Run("Tolerance out of range", func(t *testing.T) {
		rec, attendances := newTestRecorder(GroupConfig{ToleranceMinutes: 90, PolicyKind: PolicyKindLate}, clock)
		_, err := rec.MarkAttendance(ctx, 1, 7, date)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Empty(t, attendances.saved)
	})

	t.Run("Unknown policy kind", func(t *testing.T) {
		rec, attendances := newTestRecorder(GroupConfig{ToleranceMinutes: 10, PolicyKind: PolicyKind("WHENEVER")}, clock)
		_, err := rec.MarkAttendance(ctx, 1, 7, date)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Empty(t, attendances.saved)
	})
}
