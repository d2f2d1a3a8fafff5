package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func TestParseStartTime(t *testing.T) {
	got, err := ParseStartTime("2026-03-02T09:30")
	if err != nil {
		t.Fatalf("ParseStartTime: %v", err)
	}
	want := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	for _, bad := range []string{"", "2026-03-02", "09:30", "2026-03-02T09:30:15", "not-a-time"} {
		if _, err := ParseStartTime(bad); err == nil {
			t.Errorf("ParseStartTime(%q) accepted invalid input", bad)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:00")
	if err != nil {
		t.Fatalf("ParseTimeOfDay: %v", err)
	}
	later, err := ParseTimeOfDay("17:30")
	if err != nil {
		t.Fatalf("ParseTimeOfDay: %v", err)
	}
	if !got.Before(later) {
		t.Fatal("09:00 should sort before 17:30")
	}
	if _, err := ParseTimeOfDay("25:00"); err == nil {
		t.Error("accepted hour 25")
	}
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("s3cret-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("hash equals plaintext")
	}
	if !VerifyPassword(hash, "s3cret-password") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, "wrong-password") {
		t.Fatal("wrong password accepted")
	}
}

func TestNewAccessTokenClaims(t *testing.T) {
	const secret = "test-secret"
	at, err := NewAccessToken(secret, 42, "CUSTOMER", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	parsed, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not verify: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("claims type %T", parsed.Claims)
	}
	if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
		t.Errorf("sub = %v, want 42", claims["sub"])
	}
	if role, _ := claims["role"].(string); role != "CUSTOMER" {
		t.Errorf("role = %v, want CUSTOMER", claims["role"])
	}
	if exp, _ := claims["exp"].(float64); time.Unix(int64(exp), 0).Before(time.Now()) {
		t.Error("token already expired")
	}
}

func TestNewRefreshTokenIsOpaqueAndHashed(t *testing.T) {
	rt1, err := NewRefreshToken(2)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	rt2, err := NewRefreshToken(2)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if rt1.Raw == rt2.Raw {
		t.Fatal("two refresh tokens share the same raw value")
	}
	if len(rt1.Raw) != 96 { // 48 random bytes, hex encoded
		t.Fatalf("raw length = %d, want 96", len(rt1.Raw))
	}
	h := HashRefreshRaw(rt1.Raw)
	if h == rt1.Raw {
		t.Fatal("hash equals raw token")
	}
	if h != HashRefreshRaw(rt1.Raw) {
		t.Fatal("HashRefreshRaw is not deterministic")
	}
	if !rt1.Exp.After(time.Now().Add(47 * time.Hour)) {
		t.Fatalf("expiry %v too soon for a 2 day ttl", rt1.Exp)
	}
}
