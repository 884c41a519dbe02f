package service

import (
	"testing"
	"time"

	"github.com/campushq/campuscore-backend/internal/config"
)

func testAuthService() *AuthService {
	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: 4,
	}
	return NewAuthService(cfg, nil)
}

func TestStaffTokenRoundTrip(t *testing.T) {
	svc := testAuthService()

	perms := []string{"payments:read", "payments:confirm"}
	token, err := svc.GenerateStaffToken(42, 3, perms, "BURSARY")
	if err != nil {
		t.Fatalf("GenerateStaffToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.TokenType != TokenTypeStaff {
		t.Errorf("token type = %s, want %s", claims.TokenType, TokenTypeStaff)
	}
	if claims.UserID != 42 {
		t.Errorf("user ID = %d, want 42", claims.UserID)
	}
	if claims.RoleID != 3 {
		t.Errorf("role ID = %d, want 3", claims.RoleID)
	}
	if claims.Unit != "BURSARY" {
		t.Errorf("unit = %q, want BURSARY", claims.Unit)
	}
	if len(claims.Permissions) != 2 || claims.Permissions[0] != "payments:read" {
		t.Errorf("permissions = %v, want %v", claims.Permissions, perms)
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	svc := testAuthService()

	token, err := svc.GenerateStaffToken(1, 1, nil, "")
	if err != nil {
		t.Fatalf("GenerateStaffToken: %v", err)
	}

	if _, err := svc.ValidateToken(token + "x"); err == nil {
		t.Error("expected error for tampered token")
	}
	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("expected error for garbage token")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := testAuthService()
	token, err := svc.GenerateStaffToken(1, 1, nil, "")
	if err != nil {
		t.Fatalf("GenerateStaffToken: %v", err)
	}

	other := NewAuthService(&config.Config{JWTSecret: "different", JWTExpiry: time.Hour}, nil)
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestPasswordHashing(t *testing.T) {
	svc := testAuthService()

	hash, err := svc.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := svc.CheckPassword(hash, "hunter22"); err != nil {
		t.Errorf("CheckPassword with correct password: %v", err)
	}
	if err := svc.CheckPassword(hash, "wrong"); err != ErrInvalidCredentials {
		t.Errorf("CheckPassword with wrong password = %v, want ErrInvalidCredentials", err)
	}
}
