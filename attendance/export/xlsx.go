// Package export builds spreadsheet exports of attendance data for
// instructors.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Row is one line of the exported attendance sheet.
type Row struct {
	StudentCode string
	StudentName string
	Date        string // yyyy-MM-dd
	CheckIn     string // HH:mm, empty when none recorded
	Status      string
}

var headers = []string{"Student code", "Student", "Date", "Check-in", "Status"}

// BuildAttendanceWorkbook renders the rows into a single-sheet workbook
// named after the group. The caller is responsible for closing the file.
func BuildAttendanceWorkbook(groupCode string, rows []Row) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := "Attendance " + groupCode
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			f.Close()
			return nil, err
		}
	}

	for i, row := range rows {
		values := []string{row.StudentCode, row.StudentName, row.Date, row.CheckIn, row.Status}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	// Wide enough for names and the header row.
	if err := f.SetColWidth(sheet, "A", "E", 18); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}
