package common

import (
	"database/sql"

	"asistapp.com/asistapp/core"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	Dm *core.DatabaseManager
}

func (h *Handler) GetDB(r *gin.Context) (*gorm.DB, *sql.Conn, error) {
	return h.Dm.GetDB(r.Request.Context())
}
