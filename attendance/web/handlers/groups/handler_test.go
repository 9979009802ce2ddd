package groups

import (
	"testing"
	"time"

	attendance "asistapp.com/asistapp/attendance/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWindow(t *testing.T) {
	tests := []struct {
		name          string
		window        ScheduleWindowDTO
		expectedDay   string
		expectedStart string
		expectedEnd   string
		wantErr       bool
	}{
		{
			name:          "Canonical window",
			window:        ScheduleWindowDTO{DayOfWeek: "monday", StartTime: "08:00", EndTime: "10:00"},
			expectedDay:   "monday",
			expectedStart: "08:00",
			expectedEnd:   "10:00",
		},
		{
			name:          "Unpadded times are normalized",
			window:        ScheduleWindowDTO{DayOfWeek: "monday", StartTime: "8:00", EndTime: "10:00"},
			expectedDay:   "monday",
			expectedStart: "08:00",
			expectedEnd:   "10:00",
		},
		{
			name:          "Mixed case day is stored lowercase",
			window:        ScheduleWindowDTO{DayOfWeek: "Friday", StartTime: "14:30", EndTime: "16:00"},
			expectedDay:   "friday",
			expectedStart: "14:30",
			expectedEnd:   "16:00",
		},
		{
			name:    "Hour out of range",
			window:  ScheduleWindowDTO{DayOfWeek: "monday", StartTime: "99:00", EndTime: "10:00"},
			wantErr: true,
		},
		{
			name:    "Minute out of range",
			window:  ScheduleWindowDTO{DayOfWeek: "monday", StartTime: "08:00", EndTime: "10:61"},
			wantErr: true,
		},
		{
			name:    "Missing colon",
			window:  ScheduleWindowDTO{DayOfWeek: "monday", StartTime: "0800", EndTime: "10:00"},
			wantErr: true,
		},
		{
			name:    "Ends before it starts",
			window:  ScheduleWindowDTO{DayOfWeek: "monday", StartTime: "10:00", EndTime: "08:00"},
			wantErr: true,
		},
		{
			name:    "Sunday is rejected",
			window:  ScheduleWindowDTO{DayOfWeek: "sunday", StartTime: "08:00", EndTime: "10:00"},
			wantErr: true,
		},
		{
			name:    "Unknown day",
			window:  ScheduleWindowDTO{DayOfWeek: "someday", StartTime: "08:00", EndTime: "10:00"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := validateWindow(tt.window)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedDay, row.DayOfWeek)
			assert.Equal(t, tt.expectedStart, row.StartTime)
			assert.Equal(t, tt.expectedEnd, row.EndTime)
		})
	}
}

// A window saved through validation must be matchable by the eligibility
// check. Unpadded input used to be stored as is, and since windows are
// compared lexicographically no check-in could ever land inside it.
func TestValidateWindowStoredFormIsMatchable(t *testing.T) {
	row, err := validateWindow(ScheduleWindowDTO{DayOfWeek: "monday", StartTime: "8:00", EndTime: "10:00"})
	require.NoError(t, err)

	window := attendance.ScheduleWindow{Day: time.Monday, Start: row.StartTime, End: row.EndTime}
	assert.True(t, window.Contains(time.Monday, "08:30"))
	assert.True(t, window.Contains(time.Monday, "09:00"))
	assert.False(t, window.Contains(time.Monday, "07:59"))
}
