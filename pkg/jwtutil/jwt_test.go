package jwtutil

import (
	"strings"
	"testing"

	"sapportal/pkg/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})

	token, err := GenerateToken("EMP001", "John Doe", "employee", "Employee", "Information Technology")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("token is not a compact JWS: %q", token)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.SubjectID != "EMP001" {
		t.Errorf("subject_id = %q, want EMP001", claims.SubjectID)
	}
	if claims.Subject != "EMP001" {
		t.Errorf("sub = %q, want EMP001", claims.Subject)
	}
	if claims.Portal != "employee" {
		t.Errorf("portal = %q, want employee", claims.Portal)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	// Negative expiration puts exp in the past at issue time.
	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: -1})
	token, err := GenerateToken("CUST001", "Test Customer", "customer", "", "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "key-one", ExpirationHours: 1})
	token, err := GenerateToken("VENDOR001", "ABC Supplies", "vendor", "", "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	Initialize(&config.JWTConfig{SigningKey: "key-two", ExpirationHours: 1})
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected token signed with a different key to be rejected")
	}
}

func TestInitializeEmptyKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Initialize with empty signing key to panic")
		}
	}()
	Initialize(&config.JWTConfig{SigningKey: "", ExpirationHours: 1})
}

func TestValidateTokenGarbage(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}
