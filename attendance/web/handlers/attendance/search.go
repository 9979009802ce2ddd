package attendance

import (
	"net/http"
	"strconv"

	attendance "asistapp.com/asistapp/attendance/core"
	"asistapp.com/asistapp/attendance/model"
	"asistapp.com/asistapp/web/middlewares"
	web "asistapp.com/asistapp/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SearchParams struct {
	GroupID   uint          `json:"groupId" binding:"required"`
	StartDate *web.DateOnly `json:"startDate" binding:"required"`
	EndDate   *web.DateOnly `json:"endDate" binding:"required"`
	Students  []uint        `json:"students"`
	Statuses  []string      `json:"statuses"`
}

// Search lists a group's attendance records for instructors. Instructors
// only see groups they teach; admins see everything.
func (ep *Endpoint) Search(c *gin.Context) {
	var searchParams SearchParams

	// Parse JSON body
	if err := c.ShouldBindJSON(&searchParams); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	statuses := make([]string, 0, len(searchParams.Statuses))
	for _, s := range searchParams.Statuses {
		status, err := attendance.ParseStatus(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
			return
		}
		statuses = append(statuses, string(status))
	}

	// get limit, offset from query params
	limit := 1000
	offset := 0
	if val, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = val
	}
	if val, err := strconv.Atoi(c.Query("offset")); err == nil {
		offset = val
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	if !instructorOwnsGroup(c, db, searchParams.GroupID) {
		c.JSON(http.StatusForbidden, web.NewErrorResponse("You do not teach this group"))
		return
	}

	tx := db.Model(&model.AttendanceRecord{}).
		Where("group_id = ?", searchParams.GroupID).
		Where("date >= ? AND date <= ?",
			datatypes.Date(searchParams.StartDate.Time),
			datatypes.Date(searchParams.EndDate.Time))
	if len(searchParams.Students) > 0 {
		tx = tx.Where("student_id IN ?", searchParams.Students)
	}
	if len(statuses) > 0 {
		tx = tx.Where("status IN ?", statuses)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	var records []model.AttendanceRecord
	if err := tx.Order("date ASC, check_in_time ASC, id ASC").
		Limit(limit).Offset(offset).
		Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSearchResponse(records, total))
}

// instructorOwnsGroup allows admins through and otherwise checks the group
// is taught by the caller.
func instructorOwnsGroup(c *gin.Context, db *gorm.DB, groupID uint) bool {
	if c.GetString("role") == model.RoleAdmin {
		return true
	}
	var group model.Group
	if err := db.First(&group, groupID).Error; err != nil {
		return false
	}
	return group.InstructorID == middlewares.UserID(c)
}
