package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret   string
	DatabaseURL string
	FrontendURL string

	// SMTP settings for contact-form notifications
	MailServer   string
	MailPort     string
	MailUsername string
	MailPassword string
)

// AccessTokenTTL is the absolute lifetime of an admin access token.
// There is no refresh mechanism; the admin logs in again after expiry.
const AccessTokenTTL = 24 * time.Hour

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	DatabaseURL = GetEnv("DATABASE_URL")
	FrontendURL = GetEnv("FRONTEND_URL", "http://localhost:5173")

	MailServer = GetEnv("MAIL_SERVER", "smtp.gmail.com")
	MailPort = GetEnv("MAIL_PORT", "587")
	MailUsername = GetEnv("MAIL_USERNAME")
	MailPassword = GetEnv("MAIL_PASSWORD")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if DatabaseURL == "" {
		log.Println("❌ DATABASE_URL is not set!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
