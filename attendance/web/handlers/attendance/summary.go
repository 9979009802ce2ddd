package attendance

import (
	"net/http"
	"strconv"

	attendance "asistapp.com/asistapp/attendance/core"
	"asistapp.com/asistapp/attendance/model"
	"asistapp.com/asistapp/utils"
	web "asistapp.com/asistapp/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type StudentSummaryDTO struct {
	StudentID uint `json:"studentId"`
	Present   int  `json:"present"`
	Late      int  `json:"late"`
	Absent    int  `json:"absent"`
}

// Summary aggregates a group's records into per-student status counts for
// the instructor dashboard.
func (ep *Endpoint) Summary(c *gin.Context) {
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

	var records []model.AttendanceRecord
	if err := db.Where("group_id = ?", groupID).
		Where("date >= ? AND date <= ?", datatypes.Date(start), datatypes.Date(end)).
		Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	byStudent := utils.GroupBy(records, func(r model.AttendanceRecord) uint { return r.StudentID })

	summaries := make([]StudentSummaryDTO, 0, len(byStudent))
	for studentID, recs := range byStudent {
		s := StudentSummaryDTO{StudentID: studentID}
		for _, r := range recs {
			switch attendance.Status(r.Status) {
			case attendance.StatusPresent:
				s.Present++
			case attendance.StatusLate:
				s.Late++
			case attendance.StatusAbsent:
				s.Absent++
			}
		}
		summaries = append(summaries, s)
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(summaries))
}
