package main

import (
	"context"
	"strings"
	"time"

	"api/config"
	"api/database"
	_ "api/docs"
	"api/handlers/contestants"
	"api/logging"
	"api/middleware"
	v1 "api/routes/v1"
	"api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Bachelor Fantasy League API
// @version 1.0
// @description API for running fantasy leagues around The Bachelor: drafts, episode scoring, standings and live notifications.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	config.Load()
	logging.BootstrapLogger()

	database.InitDB()
	database.InitRedis()

	if storage, err := services.NewPhotoStorage(context.Background()); err != nil {
		logging.Log.Warnf("photo storage disabled: %v", err)
	} else {
		contestants.Storage = storage
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(config.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1.Register(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	middleware.UpdateSystemMetrics()
	services.StartNotificationSweeper(time.Hour)

	logging.Log.Infof("listening on :%s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		logging.Log.Fatalf("server exited: %v", err)
	}
}
