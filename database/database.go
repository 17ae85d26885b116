package database

import (
	"fmt"

	"api/config"
	"api/logging"
	"api/models"
	"api/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var AdminEmail = "admin@admin.com"
var DefaultPassword = "admin"

// InitDB initializes the database connection, migrates the models and
// populates the database with default values if needed
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=UTC",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logging.Log.Fatal("failed to connect database: ", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.League{},
		&models.Team{},
		&models.Contestant{},
		&models.Episode{},
		&models.ScoringEvent{},
		&models.Draft{},
		&models.Notification{},
	)
	if err != nil {
		logging.Log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// Populate populates the database with default values if needed
func Populate() {
	var countUser int64

	DB.Model(&models.User{}).Count(&countUser)
	if countUser == 0 {
		// Create default admin user with a hashed password either from the
		// environment or the DefaultPassword constant
		password := DefaultPassword
		if config.DefaultPassword != "" {
			password = config.DefaultPassword
		}

		password, err := utils.HashPassword(password)
		if err != nil {
			panic(err)
		}

		user := models.User{
			Email:         AdminEmail,
			Firstname:     "Admin",
			Lastname:      "Admin",
			Password:      password,
			LastConnected: nil,
		}
		DB.Create(&user)
		logging.Log.Info("Default admin user created")
	}
}
