package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAttendanceWorkbook(t *testing.T) {
	rows := []Row{
		{StudentCode: "S1001", StudentName: "Ana Lopez", Date: "2026-03-02", CheckIn: "08:05", Status: "PRESENT"},
		{StudentCode: "S1002", StudentName: "Bruno Diaz", Date: "2026-03-02", CheckIn: "08:20", Status: "LATE"},
		{StudentCode: "S1003", StudentName: "Carla Ruiz", Date: "2026-03-02", CheckIn: "09:00", Status: "ABSENT"},
	}

	f, err := BuildAttendanceWorkbook("MATH-101-A", rows)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Attendance MATH-101-A"
	got, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, got, 4, "header plus one row per record")

	assert.Equal(t, []string{"Student code", "Student", "Date", "Check-in", "Status"}, got[0])
	assert.Equal(t, []string{"S1001", "Ana Lopez", "2026-03-02", "08:05", "PRESENT"}, got[1])
	assert.Equal(t, []string{"S1003", "Carla Ruiz", "2026-03-02", "09:00", "ABSENT"}, got[3])
}

func TestBuildAttendanceWorkbookEmpty(t *testing.T) {
	f, err := BuildAttendanceWorkbook("FIS-201-B", nil)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Attendance FIS-201-B")
	require.NoError(t, err)
	require.Len(t, got, 1)
}
