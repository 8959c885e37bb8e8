package service

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"schoolsite_backend/internals/configs"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	configs.JWTSecret = "unit-test-secret"

	signed, err := CreateAccessToken(7)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if signed == "" {
		t.Fatal("empty token")
	}

	id, err := ParseAccessToken(signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != 7 {
		t.Errorf("id = %d, want 7", id)
	}
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	configs.JWTSecret = "unit-test-secret"

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": "7",
		"iat": now.Add(-25 * time.Hour).Unix(),
		"exp": now.Add(-1 * time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseAccessToken(signed); !isUnauthorized(err) {
		t.Errorf("expired token err = %v, want 401", err)
	}
}

func TestParseAccessTokenRejectsBadSignature(t *testing.T) {
	configs.JWTSecret = "unit-test-secret"
	signed, err := CreateAccessToken(7)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	configs.JWTSecret = "a-different-secret"
	if _, err := ParseAccessToken(signed); !isUnauthorized(err) {
		t.Errorf("tampered secret err = %v, want 401", err)
	}
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	configs.JWTSecret = "unit-test-secret"
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseAccessToken(tok); !isUnauthorized(err) {
			t.Errorf("token %q err = %v, want 401", tok, err)
		}
	}
}

func isUnauthorized(err error) bool {
	var fe *fiber.Error
	return errors.As(err, &fe) && fe.Code == fiber.StatusUnauthorized
}
