package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"

	attcore "asistapp.com/asistapp/attendance/core"
	attendance "asistapp.com/asistapp/attendance/web/handlers/attendance"
	"asistapp.com/asistapp/attendance/web/handlers/admin"
	"asistapp.com/asistapp/attendance/web/handlers/groups"
	"asistapp.com/asistapp/core"
	"asistapp.com/asistapp/infrastructure/devops"
	"asistapp.com/asistapp/utils"
	"asistapp.com/asistapp/web/handlers"
	"asistapp.com/asistapp/web/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	cfg, err := devops.LoadAppConfig()
	if err != nil {
		log.Fatal(err)
	}

	dm, err := core.New(cfg.DSN, cfg.MaxConnections)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	if os.Getenv("ASISTAPP_MIGRATE") == "1" {
		if err := dm.Exec(context.Background(), func(db *gorm.DB) error { return core.Migrate(db) }); err != nil {
			log.Fatal("migration failed:", err)
		}
		fmt.Println("migration done")
	}

	jwtSecret, err := base64.StdEncoding.DecodeString(cfg.SigningSecret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	loc := utils.CampusLocation(cfg.TimezoneOffsetHours)
	clock := attcore.SystemClock{Location: loc}

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	r.GET("/api/asistapp/manifest/dev", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":     "1.0.0-dev",
			"description": "AsistApp API Manifest for Development",
		})
	})

	r.POST("/api/asistapp/v1.0/auth/login", handlers.Login(dm, cfg.SigningSecret))

	protected := r.Group("/api/asistapp/v1.0")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		attendance.Register(protected, dm, clock, loc)
		groups.Register(protected, dm)
		admin.Register(protected, dm)
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
