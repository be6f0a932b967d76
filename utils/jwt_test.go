package utils

import (
	"testing"
	"time"

	"craftlink/config"
)

func TestGenerateToken_SignedWithConfiguredSecret(t *testing.T) {
	prev := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = "unit-test-secret"
	defer func() { config.AppConfig.JWTSecret = prev }()

	token, err := GenerateToken("user-1", "a@b.c", "contractor", time.Hour)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	sub, role, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if sub != "user-1" || role != "contractor" {
		t.Fatalf("claims mismatch: sub=%q role=%q", sub, role)
	}

	// A token signed under one secret must not verify under another.
	config.AppConfig.JWTSecret = "rotated-secret"
	if _, _, err := ExtractIDFromToken(token); err == nil {
		t.Fatalf("expected verification to fail after secret rotation")
	}
}

func TestExtractIDFromToken_RejectsGarbage(t *testing.T) {
	if _, _, err := ExtractIDFromToken("not-a-token"); err == nil {
		t.Fatalf("expected malformed token to be rejected")
	}
}
