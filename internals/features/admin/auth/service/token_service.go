// internals/features/admin/auth/service/token_service.go
package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"schoolsite_backend/internals/configs"
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

// CreateAccessToken signs an HS256 token carrying the admin id as subject,
// expiring AccessTokenTTL (24 h) after issuance.
func CreateAccessToken(adminID uint) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	now := nowUTC()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(adminID), 10),
		"iat": now.Unix(),
		"exp": now.Add(configs.AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}
	return signed, nil
}

// ParseAccessToken verifies signature and expiry and returns the embedded
// admin id. Any failure maps to 401.
func ParseAccessToken(tokenString string) (uint, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return 0, err
	}

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}
	return uint(id), nil
}
