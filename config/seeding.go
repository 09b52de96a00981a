package config

import (
	"errors"
	"log"
	"os"

	"github.com/itousif38-netizen/SN-ENTP/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedUsers creates the initial admin account when no users exist yet.
// Credentials come from the environment; there are no literals here and the
// seed is skipped entirely when they are unset.
func SeedUsers() {
	phone := os.Getenv("ADMIN_PHONE")
	password := os.Getenv("ADMIN_PASSWORD")
	if phone == "" || password == "" {
		log.Println("ADMIN_PHONE/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing models.User
	err := DB.Where("phone = ?", phone).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("❌ Failed to check for admin user: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:         "Administrator",
		Email:        os.Getenv("ADMIN_EMAIL"),
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     true,
	}
	if admin.Email == "" {
		admin.Email = "admin@snenterprise.local"
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to seed admin user: %v", err)
		return
	}
	log.Printf("✅ Seeded admin user %s", phone)
}
