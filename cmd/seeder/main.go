// cmd/seeder creates or updates the admin account. The API never exposes
// admin creation, so this is the only way in:
//
//	ADMIN_EMAIL=admin@school.test ADMIN_PASSWORD=... go run ./cmd/seeder
package main

import (
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"schoolsite_backend/internals/configs"
	database "schoolsite_backend/internals/databases"
	authModel "schoolsite_backend/internals/features/admin/auth/model"
	authService "schoolsite_backend/internals/features/admin/auth/service"
)

func main() {
	configs.LoadEnv()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("❌ ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	database.ConnectDB()
	database.Migrate()
	db := database.DB

	hash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	var admin authModel.AdminUserModel
	err = db.Where("email = ?", email).First(&admin).Error
	switch {
	case err == nil:
		admin.PasswordHash = hash
		if err := db.Save(&admin).Error; err != nil {
			log.Fatalf("❌ Failed to update admin: %v", err)
		}
		log.Printf("✅ Admin %s password updated.", email)
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin = authModel.AdminUserModel{Email: email, PasswordHash: hash}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("❌ Failed to create admin: %v", err)
		}
		log.Printf("✅ Admin %s created.", email)
	default:
		log.Fatalf("❌ DB error: %v", err)
	}
}
