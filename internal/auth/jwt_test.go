package auth

import (
	"os"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	if err := InitJWTSecret(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestGenerateAndVerifyJWT(t *testing.T) {
	token, err := GenerateJWT(42, "alice@mail.test")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}

	if userID, _ := claims["user_id"].(float64); uint(userID) != 42 {
		t.Errorf("expected user_id 42, got %v", claims["user_id"])
	}
	if email, _ := claims["email"].(string); email != "alice@mail.test" {
		t.Errorf("expected email claim, got %v", claims["email"])
	}
}

func TestVerifyJWTRejectsTamperedToken(t *testing.T) {
	token, err := GenerateJWT(42, "alice@mail.test")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := VerifyJWT(token + "x"); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	if _, err := VerifyJWT("not-a-token"); err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}
