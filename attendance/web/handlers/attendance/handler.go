package attendance

import (
	"errors"
	"net/http"
	"time"

	attendance "asistapp.com/asistapp/attendance/core"
	"asistapp.com/asistapp/attendance/model"
	"asistapp.com/asistapp/attendance/store"
	common "asistapp.com/asistapp/attendance/web/common"
	"asistapp.com/asistapp/core"
	"asistapp.com/asistapp/web/middlewares"
	web "asistapp.com/asistapp/web/common"
	"github.com/gin-gonic/gin"
)

type Endpoint struct {
	base  common.Handler
	clock attendance.Clock
	loc   *time.Location
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager, clock attendance.Clock, loc *time.Location) {
	endpoint := &Endpoint{base: common.Handler{Dm: dm}, clock: clock, loc: loc}

	student := r.Group("", middlewares.RequireRole(model.RoleStudent))
	student.POST("/attendance/mark", endpoint.Mark)
	student.GET("/attendance/history", endpoint.History)

	staff := r.Group("", middlewares.RequireRole(model.RoleInstructor, model.RoleAdmin))
	staff.POST("/attendance/search", endpoint.Search)
	staff.GET("/groups/:id/attendance/export", endpoint.Export)
	staff.GET("/groups/:id/attendance/summary", endpoint.Summary)
}

type MarkParamsDTO struct {
	GroupID uint          `json:"groupId" binding:"required"`
	Date    *web.DateOnly `json:"date,omitempty"`
}

type MarkResultDTO struct {
	Status      string `json:"status"`
	CheckInTime string `json:"checkInTime"`
	Date        string `json:"date"`
}

// Mark records the calling student's attendance for a group. The status is
// returned so the app can tell the student how the check-in was graded.
func (ep *Endpoint) Mark(c *gin.Context) {
	var params MarkParamsDTO
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	date := time.Now().In(ep.loc)
	if params.Date != nil && !params.Date.IsZero() {
		date = params.Date.Time
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	st := store.New(db)
	recorder := attendance.NewRecorder(st, st, st, st, ep.clock)

	studentID := middlewares.UserID(c)
	result, err := recorder.MarkAttendance(c.Request.Context(), studentID, params.GroupID, date)
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrNotEligible):
			c.JSON(http.StatusUnprocessableEntity, web.NewErrorResponse("You cannot mark attendance right now: no open attendance window for this group"))
		case errors.Is(err, attendance.ErrAlreadyMarked):
			c.JSON(http.StatusConflict, web.NewErrorResponse("Attendance for this group is already recorded today"))
		case errors.Is(err, attendance.ErrInvalidConfig):
			c.JSON(http.StatusBadRequest, web.NewErrorResponse("The group's attendance settings are misconfigured, contact your instructor"))
		default:
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(MarkResultDTO{
		Status:      string(result.Status),
		CheckInTime: result.CheckInTime,
		Date:        date.Format("2006-01-02"),
	}))
}
