package service

import "testing"

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("password stored in the clear")
	}

	if err := CheckPasswordHash(hash, "correct horse battery staple"); err != nil {
		t.Errorf("matching password rejected: %v", err)
	}
	if err := CheckPasswordHash(hash, "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
}
