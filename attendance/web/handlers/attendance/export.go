package attendance

import (
	"fmt"
	"net/http"
	"strconv"

	"asistapp.com/asistapp/attendance/export"
	"asistapp.com/asistapp/attendance/model"
	"asistapp.com/asistapp/utils"
	web "asistapp.com/asistapp/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type exportRow struct {
	Code        string
	FirstName   string
	LastName    string
	Date        string
	CheckInTime *string
	Status      string
}

// Export streams the group's attendance for a date range as an xlsx
// workbook.
func (ep *Endpoint) Export(c *gin.Context) {
	idParam := c.Param("id")
	groupID, err := strconv.Atoi(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return
	}

	start, err := web.ParseDateOnly(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}
	end, err := web.ParseDateOnly(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	if !instructorOwnsGroup(c, db, uint(groupID)) {
		c.JSON(http.StatusForbidden, web.NewErrorResponse("You do not teach this group"))
		return
	}

	var group model.Group
	if err := db.First(&group, groupID).Error; err != nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Group not found"))
		return
	}

	var rows []exportRow
	err = db.Model(&model.AttendanceRecord{}).
		Joins("JOIN users ON users.id = attendance_records.student_id").
		Select(`users.code AS code,
				users.first_name AS first_name,
				users.last_name AS last_name,
				attendance_records.date AS date,
				attendance_records.check_in_time AS check_in_time,
				attendance_records.status AS status`).
		Where("attendance_records.group_id = ?", groupID).
		Where("attendance_records.date >= ? AND attendance_records.date <= ?",
			datatypes.Date(start), datatypes.Date(end)).
		Order("attendance_records.date ASC, users.code ASC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	exportRows := utils.Map(rows, func(r exportRow) export.Row {
		checkIn := ""
		if r.CheckInTime != nil {
			checkIn = *r.CheckInTime
		}
		return export.Row{
			StudentCode: r.Code,
			StudentName: r.FirstName + " " + r.LastName,
			Date:        r.Date,
			CheckIn:     checkIn,
			Status:      r.Status,
		}
	})

	f, err := export.BuildAttendanceWorkbook(group.Code, exportRows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("attendance-%s-%s-%s.xlsx",
		group.Code, start.Format("2006-01-02"), end.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
}
