package handlers

import (
	"net/http"

	"asistapp.com/asistapp/attendance/model"
	"asistapp.com/asistapp/core"
	"asistapp.com/asistapp/security"
	"asistapp.com/asistapp/web/common"
	"github.com/gin-gonic/gin"
)

const tokenLifetimeSeconds = 12 * 60 * 60

type LoginDTO struct {
	Code     string `json:"code" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges user code + password for a bearer token carrying the
// user's role.
func Login(dm *core.DatabaseManager, base64Secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dto LoginDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
			return
		}

		db, conn, err := dm.GetDB(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}
		defer conn.Close()

		var user model.User
		if err := db.Where("code = ?", dto.Code).First(&user).Error; err != nil || !user.CheckPassword(dto.Password) {
			// Same response either way, no account probing.
			c.JSON(http.StatusUnauthorized, common.NewErrorResponse("invalid credentials"))
			return
		}

		email := ""
		if user.Email != nil {
			email = *user.Email
		}
		token, err := security.CreateIdentityToken(&security.AppIdentity{
			Id:       user.ID,
			UserName: user.Code,
			Role:     user.Role,
			Email:    email,
		}, base64Secret, tokenLifetimeSeconds)
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
			"token": token,
			"user":  user,
		}))
	}
}
