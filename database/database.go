package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/upasthiti/attendance-api/config"
	"github.com/upasthiti/attendance-api/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the attendance uniqueness check relies on.
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.Center{},
		&models.User{},
		&models.Attendance{},
		&models.LeaveRequest{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
