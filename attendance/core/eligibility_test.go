package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnrollments struct {
	enrolled map[[2]uint]bool
}

func (f fakeEnrollments) IsEnrolled(_ context.Context, studentID, groupID uint) (bool, error) {
	return f.enrolled[[2]uint{studentID, groupID}], nil
}

type fakeSchedules struct {
	windows map[uint][]ScheduleWindow
}

func (f fakeSchedules) GetScheduleWindows(_ context.Context, groupID uint) ([]ScheduleWindow, error) {
	return f.windows[groupID], nil
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in       string
		expected time.Weekday
	}{
		{in: "monday", expected: time.Monday},
		{in: "Monday", expected: time.Monday},
		{in: "SATURDAY", expected: time.Saturday},
		{in: " friday ", expected: time.Friday},
		{in: "sunday", expected: time.Sunday},
	}
	for _, tt := range tests {
		got, err := ParseWeekday(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}

	_, err := ParseWeekday("lunes")
	assert.Error(t, err)
	_, err = ParseWeekday("")
	assert.Error(t, err)
}

func TestScheduleWindowContains(t *testing.T) {
	w := ScheduleWindow{Day: time.Monday, Start: "08:00", End: "10:00"}

	tests := []struct {
		name     string
		day      time.Weekday
		clock    string
		expected bool
	}{
		{name: "Inside", day: time.Monday, clock: "09:59", expected: true},
		{name: "At start", day: time.Monday, clock: "08:00", expected: true},
		{name: "At end", day: time.Monday, clock: "10:00", expected: true},
		{name: "After end", day: time.Monday, clock: "10:01", expected: false},
		{name: "Before start", day: time.Monday, clock: "07:59", expected: false},
		{name: "Wrong day", day: time.Tuesday, clock: "09:00", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, w.Contains(tt.day, tt.clock))
		})
	}
}

func TestEligibilityCanMark(t *testing.T) {
	const (
		student uint = 1
		group   uint = 7
	)

	monday := ScheduleWindow{Day: time.Monday, Start: "08:00", End: "10:00"}
	mondayLate := ScheduleWindow{Day: time.Monday, Start: "14:00", End: "16:00"}

	e := Eligibility{
		Enrollments: fakeEnrollments{enrolled: map[[2]uint]bool{{student, group}: true}},
		Schedules:   fakeSchedules{windows: map[uint][]ScheduleWindow{group: {monday, mondayLate}}},
	}

	ctx := context.Background()

	t.Run("Inside first window", func(t *testing.T) {
		w, err := e.CanMark(ctx, student, group, time.Monday, "09:59")
		require.NoError(t, err)
		require.NotNil(t, w)
		assert.Equal(t, monday, *w)
	})

	t.Run("Inside second window same day", func(t *testing.T) {
		w, err := e.CanMark(ctx, student, group, time.Monday, "15:00")
		require.NoError(t, err)
		require.NotNil(t, w)
		assert.Equal(t, mondayLate, *w)
	})

	t.Run("Between windows", func(t *testing.T) {
		w, err := e.CanMark(ctx, student, group, time.Monday, "12:00")
		require.NoError(t, err)
		assert.Nil(t, w)
	})

	t.Run("Just after window", func(t *testing.T) {
		w, err := e.CanMark(ctx, student, group, time.Monday, "10:01")
		require.NoError(t, err)
		assert.Nil(t, w)
	})

	t.Run("Wrong day", func(t *testing.T) {
		w, err := e.CanMark(ctx, student, group, time.Wednesday, "09:00")
		require.NoError(t, err)
		assert.Nil(t, w)
	})

	t.Run("Not enrolled", func(t *testing.T) {
		w, err := e.CanMark(ctx, 99, group, time.Monday, "09:00")
		require.NoError(t, err)
		assert.Nil(t, w, "unenrolled student is never eligible regardless of schedule")
	})

	t.Run("Group without windows", func(t *testing.T) {
		empty := Eligibility{
			Enrollments: fakeEnrollments{enrolled: map[[2]uint]bool{{student, group}: true}},
			Schedules:   fakeSchedules{},
		}
		w, err := empty.CanMark(ctx, student, group, time.Monday, "09:00")
		require.NoError(t, err)
		assert.Nil(t, w)
	})
}
