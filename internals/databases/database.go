package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolsite_backend/internals/configs"
	authModel "schoolsite_backend/internals/features/admin/auth/model"
	alumniModel "schoolsite_backend/internals/features/website/alumni/model"
	contactModel "schoolsite_backend/internals/features/website/contact/model"
	eventModel "schoolsite_backend/internals/features/website/events/model"
	galleryModel "schoolsite_backend/internals/features/website/gallery/model"
	kcseModel "schoolsite_backend/internals/features/website/kcse/model"
	newsModel "schoolsite_backend/internals/features/website/news/model"
	staffModel "schoolsite_backend/internals/features/website/staff/model"
	statsModel "schoolsite_backend/internals/features/website/stats/model"
	testimonialModel "schoolsite_backend/internals/features/website/testimonials/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  configs.DatabaseURL,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates every table the API serves. Tables are independent of
// each other, so ordering does not matter.
func Migrate() {
	if err := DB.AutoMigrate(
		&authModel.AdminUserModel{},
		&staffModel.StaffModel{},
		&newsModel.NewsModel{},
		&eventModel.EventModel{},
		&galleryModel.GalleryModel{},
		&alumniModel.AlumniModel{},
		&kcseModel.KcseResultModel{},
		&testimonialModel.TestimonialModel{},
		&contactModel.ContactSubmissionModel{},
		&statsModel.SchoolStatModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}
