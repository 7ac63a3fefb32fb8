// scripts/create_admin.go
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/upasthiti/attendance-api/config"
	"github.com/upasthiti/attendance-api/database"
	"github.com/upasthiti/attendance-api/models"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)

	email := envOr("SEED_ADMIN_EMAIL", "admin@attendance.local")
	password := envOr("SEED_ADMIN_PASSWORD", "changeme")

	var existing models.User
	err := database.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		fmt.Println("admin user already exists:", email)
		os.Exit(0)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("failed to query users: %v", err)
	}

	// An admin needs a center; reuse the first one or create a placeholder.
	var center models.Center
	if err := database.DB.Order("id ASC").First(&center).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("failed to query centers: %v", err)
		}
		center = models.Center{
			Name:         "Head Office",
			Address:      "to be filled",
			City:         "to be filled",
			State:        "to be filled",
			Pincode:      "000000",
			ContactEmail: email,
			ContactPhone: "0000000000",
			IsActive:     true,
		}
		if err := database.DB.Create(&center).Error; err != nil {
			log.Fatalf("failed to create default center: %v", err)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		CenterID: center.ID,
	}
	if err := database.DB.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("admin user created:", email)
	fmt.Println("password:", password, "(change it after first login)")
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
