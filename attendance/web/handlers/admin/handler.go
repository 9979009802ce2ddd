// Package admin carries the administrator CRUD surface: users, subjects,
// groups and enrollments. Plumbing endpoints, the interesting logic lives
// in the attendance core.
package admin

import (
	"net/http"
	"strconv"

	"asistapp.com/asistapp/attendance/model"
	common "asistapp.com/asistapp/attendance/web/common"
	"asistapp.com/asistapp/core"
	"asistapp.com/asistapp/web/middlewares"
	web "asistapp.com/asistapp/web/common"
	"github.com/gin-gonic/gin"
)

type Endpoint struct {
	base common.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: common.Handler{Dm: dm}}

	admin := r.Group("/admin", middlewares.RequireRole(model.RoleAdmin))
	admin.GET("/users", endpoint.ListUsers)
	admin.POST("/users", endpoint.CreateUser)
	admin.DELETE("/users/:id", endpoint.DeleteUser)

	admin.GET("/subjects", endpoint.ListSubjects)
	admin.POST("/subjects", endpoint.CreateSubject)
	admin.DELETE("/subjects/:id", endpoint.DeleteSubject)

	admin.GET("/groups", endpoint.ListGroups)
	admin.POST("/groups", endpoint.CreateGroup)
	admin.DELETE("/groups/:id", endpoint.DeleteGroup)

	admin.POST("/enrollments", endpoint.CreateEnrollment)
	admin.DELETE("/enrollments/:id", endpoint.DeleteEnrollment)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return 0, false
	}
	return uint(id), true
}

func (ep *Endpoint) ListUsers(c *gin.Context) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	tx := db.Model(&model.User{})
	if role := c.Query("role"); role != "" {
		tx = tx.Where("role = ?", role)
	}
	var users []model.User
	if err := tx.Order("code ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(users))
}

type CreateUserDTO struct {
	Code      string  `json:"code" binding:"required"`
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Role      string  `json:"role" binding:"required,oneof=admin instructor student"`
	Password  string  `json:"password" binding:"required,min=8"`
}

func (ep *Endpoint) CreateUser(c *gin.Context) {
	var dto CreateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	user := model.User{
		Code:      dto.Code,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Role:      dto.Role,
	}
	if err := user.SetPassword(dto.Password); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(user))
}

func (ep *Endpoint) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ep.deleteByID(c, &model.User{}, id)
}

func (ep *Endpoint) ListSubjects(c *gin.Context) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	var subjects []model.Subject
	if err := db.Order("code ASC").Find(&subjects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(subjects))
}

type CreateSubjectDTO struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func (ep *Endpoint) CreateSubject(c *gin.Context) {
	var dto CreateSubjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	subject := model.Subject{Code: dto.Code, Name: dto.Name}
	if err := db.Create(&subject).Error; err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(subject))
}

func (ep *Endpoint) DeleteSubject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ep.deleteByID(c, &model.Subject{}, id)
}

func (ep *Endpoint) ListGroups(c *gin.Context) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	tx := db.Model(&model.Group{})
	if subject := c.Query("subjectId"); subject != "" {
		tx = tx.Where("subject_id = ?", subject)
	}
	var groups []model.Group
	if err := tx.Order("code ASC").Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(groups))
}

type CreateGroupDTO struct {
	Code         string `json:"code" binding:"required"`
	SubjectID    uint   `json:"subjectId" binding:"required"`
	InstructorID uint   `json:"instructorId" binding:"required"`
}

// CreateGroup leaves tolerance and policy kind on their defaults (10
// minutes, LATE); instructors adjust them through the group config
// endpoint.
func (ep *Endpoint) CreateGroup(c *gin.Context) {
	var dto CreateGroupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	var instructor model.User
	if err := db.First(&instructor, dto.InstructorID).Error; err != nil || instructor.Role != model.RoleInstructor {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("instructorId must refer to an instructor"))
		return
	}

	group := model.Group{
		Code:         dto.Code,
		SubjectID:    dto.SubjectID,
		InstructorID: dto.InstructorID,
	}
	if err := db.Create(&group).Error; err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(group))
}

func (ep *Endpoint) DeleteGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ep.deleteByID(c, &model.Group{}, id)
}

type CreateEnrollmentDTO struct {
	StudentID uint `json:"studentId" binding:"required"`
	GroupID   uint `json:"groupId" binding:"required"`
}

func (ep *Endpoint) CreateEnrollment(c *gin.Context) {
	var dto CreateEnrollmentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	var student model.User
	if err := db.First(&student, dto.StudentID).Error; err != nil || student.Role != model.RoleStudent {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("studentId must refer to a student"))
		return
	}

	enrollment := model.Enrollment{StudentID: dto.StudentID, GroupID: dto.GroupID}
	if err := db.Create(&enrollment).Error; err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(enrollment))
}

func (ep *Endpoint) DeleteEnrollment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ep.deleteByID(c, &model.Enrollment{}, id)
}

func (ep *Endpoint) deleteByID(c *gin.Context, entity interface{}, id uint) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	res := db.Delete(entity, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(res.Error.Error()))
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Not found"))
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{}))
}
