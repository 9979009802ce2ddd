package groups

import (
	"fmt"
	"net/http"

	"asistapp.com/asistapp/attendance/model"
	"asistapp.com/asistapp/utils"
	web "asistapp.com/asistapp/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ImportEnrollments ingests a CSV of students (code,firstName,lastName) and
// enrolls them in the group. Unknown codes become new student accounts with
// the code as the initial password; existing enrollments are left alone.
func (ep *Endpoint) ImportEnrollments(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Missing csv upload under field 'file'"))
		return
	}
	defer file.Close()

	rows, err := utils.ParseCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(fmt.Sprintf("Invalid csv: %v", err)))
		return
	}

	db, group, cleanup, ok := ep.loadOwnGroup(c)
	if !ok {
		return
	}
	defer cleanup()

	created, enrolled := 0, 0
	err = db.Transaction(func(tx *gorm.DB) error {
		for i, row := range rows {
			if i == 0 {
				continue // header
			}
			if len(row) < 3 {
				return fmt.Errorf("row %d: expected 3 columns, got %d", i, len(row))
			}
			code := row[0]

			var student model.User
			err := tx.Where("code = ?", code).First(&student).Error
			if err == gorm.ErrRecordNotFound {
				student = model.User{
					Code:      code,
					FirstName: row[1],
					LastName:  row[2],
					Role:      model.RoleStudent,
				}
				if err := student.SetPassword(code); err != nil {
					return err
				}
				if err := tx.Create(&student).Error; err != nil {
					return err
				}
				created++
			} else if err != nil {
				return err
			}

			enrollment := model.Enrollment{StudentID: student.ID, GroupID: group.ID}
			res := tx.Where(&enrollment).FirstOrCreate(&enrollment)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				enrolled++
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{
		"studentsCreated": created,
		"enrolled":        enrolled,
	}))
}
