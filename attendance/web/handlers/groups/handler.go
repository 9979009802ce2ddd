// Package groups exposes the instructor-facing configuration endpoints:
// the group's attendance policy and its weekly schedule windows.
package groups

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	attendance "asistapp.com/asistapp/attendance/core"
	"asistapp.com/asistapp/attendance/model"
	common "asistapp.com/asistapp/attendance/web/common"
	"asistapp.com/asistapp/core"
	"asistapp.com/asistapp/web/middlewares"
	web "asistapp.com/asistapp/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Endpoint struct {
	base common.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: common.Handler{Dm: dm}}

	staff := r.Group("", middlewares.RequireRole(model.RoleInstructor, model.RoleAdmin))
	staff.GET("/groups/:id/config", endpoint.GetConfig)
	staff.PUT("/groups/:id/config", endpoint.UpdateConfig)
	staff.GET("/groups/:id/schedule", endpoint.GetSchedule)
	staff.PUT("/groups/:id/schedule", endpoint.ReplaceSchedule)
	staff.POST("/groups/:id/enrollments/import", endpoint.ImportEnrollments)
}

func (ep *Endpoint) loadOwnGroup(c *gin.Context) (*gorm.DB, *model.Group, func(), bool) {
	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return nil, nil, nil, false
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return nil, nil, nil, false
	}
	cleanup := func() { conn.Close() }

	var group model.Group
	if err := db.First(&group, id).Error; err != nil {
		cleanup()
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Group not found"))
		return nil, nil, nil, false
	}

	if c.GetString("role") != model.RoleAdmin && group.InstructorID != middlewares.UserID(c) {
		cleanup()
		c.JSON(http.StatusForbidden, web.NewErrorResponse("You do not teach this group"))
		return nil, nil, nil, false
	}
	return db, &group, cleanup, true
}

type GroupConfigDTO struct {
	ToleranceMinutes int    `json:"toleranceMinutes" binding:"min=0,max=60"`
	PolicyKind       string `json:"policyKind" binding:"required,oneof=PRESENT LATE ABSENT"`
}

func (ep *Endpoint) GetConfig(c *gin.Context) {
	_, group, cleanup, ok := ep.loadOwnGroup(c)
	if !ok {
		return
	}
	defer cleanup()

	kind, err := attendance.ParsePolicyKind(group.PolicyKind)
	if err != nil {
		// Surface corrupted configuration instead of masking it.
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(GroupConfigDTO{
		ToleranceMinutes: group.ToleranceMinutes,
		PolicyKind:       string(kind),
	}))
}

// UpdateConfig validates at write time so marking never has to discover a
// bad tolerance or kind.
func (ep *Endpoint) UpdateConfig(c *gin.Context) {
	var dto GroupConfigDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, group, cleanup, ok := ep.loadOwnGroup(c)
	if !ok {
		return
	}
	defer cleanup()

	updates := map[string]interface{}{
		"tolerance_minutes": dto.ToleranceMinutes,
		"policy_kind":       dto.PolicyKind,
	}
	if err := db.Model(group).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(dto))
}

func (ep *Endpoint) GetSchedule(c *gin.Context) {
	db, group, cleanup, ok := ep.loadOwnGroup(c)
	if !ok {
		return
	}
	defer cleanup()

	var windows []model.ScheduleWindow
	if err := db.Where("group_id = ?", group.ID).
		Order("day_of_week ASC, start_time ASC").
		Find(&windows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(windows))
}

type ScheduleWindowDTO struct {
	DayOfWeek string `json:"dayOfWeek" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type ReplaceScheduleDTO struct {
	Windows []ScheduleWindowDTO `json:"windows" binding:"required,dive"`
}

// validateWindow turns a submitted window into its stored form. Times are
// normalized to zero padded "HH:mm" before they hit the database, since the
// eligibility check compares them lexicographically.
func validateWindow(w ScheduleWindowDTO) (model.ScheduleWindow, error) {
	day, err := attendance.ParseWeekday(w.DayOfWeek)
	if err != nil {
		return model.ScheduleWindow{}, err
	}
	if day == time.Sunday {
		return model.ScheduleWindow{}, fmt.Errorf("classes are not scheduled on sunday")
	}
	start, err := attendance.NormalizeClock(w.StartTime)
	if err != nil {
		return model.ScheduleWindow{}, err
	}
	end, err := attendance.NormalizeClock(w.EndTime)
	if err != nil {
		return model.ScheduleWindow{}, err
	}
	if start > end {
		return model.ScheduleWindow{}, fmt.Errorf("window %s %s-%s ends before it starts", w.DayOfWeek, w.StartTime, w.EndTime)
	}
	return model.ScheduleWindow{
		DayOfWeek: canonicalDayName(day),
		StartTime: start,
		EndTime:   end,
	}, nil
}

// ReplaceSchedule swaps the group's whole window list in one transaction.
// Windows are never edited in place.
func (ep *Endpoint) ReplaceSchedule(c *gin.Context) {
	var dto ReplaceScheduleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}
	rows := make([]model.ScheduleWindow, 0, len(dto.Windows))
	for _, w := range dto.Windows {
		row, err := validateWindow(w)
		if err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
			return
		}
		rows = append(rows, row)
	}

	db, group, cleanup, ok := ep.loadOwnGroup(c)
	if !ok {
		return
	}
	defer cleanup()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", group.ID).Delete(&model.ScheduleWindow{}).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].GroupID = group.ID
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"windows": len(rows)}))
}

// canonicalDayName is the stored, locale independent form.
func canonicalDayName(day time.Weekday) string {
	names := [...]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	return names[day]
}
