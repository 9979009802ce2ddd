package attendance

import (
	"net/http"
	"strconv"

	"asistapp.com/asistapp/attendance/model"
	"asistapp.com/asistapp/web/middlewares"
	web "asistapp.com/asistapp/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// History returns the calling student's own attendance records, newest
// first, optionally filtered by group and date range.
func (ep *Endpoint) History(c *gin.Context) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	tx := db.Model(&model.AttendanceRecord{}).
		Where("student_id = ?", middlewares.UserID(c))

	if groupParam := c.Query("groupId"); groupParam != "" {
		groupID, err := strconv.Atoi(groupParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid groupId"))
			return
		}
		tx = tx.Where("group_id = ?", groupID)
	}
	if start := c.Query("start"); start != "" {
		t, err := web.ParseDateOnly(start)
		if err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
			return
		}
		tx = tx.Where("date >= ?", datatypes.Date(t))
	}
	if end := c.Query("end"); end != "" {
		t, err := web.ParseDateOnly(end)
		if err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
			return
		}
		tx = tx.Where("date <= ?", datatypes.Date(t))
	}

	var records []model.AttendanceRecord
	if err := tx.Order("date DESC, id DESC").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(records))
}
