// SPDX-License-Identifier: GPL-3.0-only

package crypto

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	crypto := NewCrypto()
	password := "testpassword123"

	hash, err := crypto.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if hash == "" {
		t.Error("Hash should not be empty")
	}

	hash2, err := crypto.HashPassword(password)
	if err != nil {
		t.Fatalf("Second HashPassword failed: %v", err)
	}

	if hash == hash2 {
		t.Error("Two hashes of same password should be different (due to salt)")
	}
}

func TestVerifyPassword(t *testing.T) {
	crypto := NewCrypto()
	password := "testpassword123"
	wrongPassword := "wrongpassword"

	hash, err := crypto.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	err = crypto.VerifyPassword(password, hash)
	if err != nil {
		t.Errorf("VerifyPassword failed for correct password: %v", err)
	}

	err = crypto.VerifyPassword(wrongPassword, hash)
	if err == nil {
		t.Error("VerifyPassword should fail for wrong password")
	}

	err = crypto.VerifyPassword(password, "invalid-hash")
	if err == nil {
		t.Error("VerifyPassword should fail for invalid hash")
	}
}

func TestNewCryptoEnvOverrides(t *testing.T) {
	t.Setenv("ARGON2_TIME", "3")
	t.Setenv("ARGON2_MEMORY", "32768")

	crypto := NewCrypto()
	if crypto.ArgonTime != 3 {
		t.Errorf("ArgonTime = %d, want 3", crypto.ArgonTime)
	}
	if crypto.ArgonMemory != 32768 {
		t.Errorf("ArgonMemory = %d, want 32768", crypto.ArgonMemory)
	}
}

func TestGenerateRandomString(t *testing.T) {
	id, err := GenerateRandomString("col_", 16, "hex")
	if err != nil {
		t.Fatalf("GenerateRandomString failed: %v", err)
	}

	if !strings.HasPrefix(id, "col_") {
		t.Errorf("Expected col_ prefix, got %s", id)
	}
	if len(id) != len("col_")+32 {
		t.Errorf("Expected 32 hex characters after prefix, got %d", len(id)-len("col_"))
	}

	id2, err := GenerateRandomString("col_", 16, "hex")
	if err != nil {
		t.Fatalf("Second GenerateRandomString failed: %v", err)
	}
	if id == id2 {
		t.Error("Two generated IDs should differ")
	}

	if _, err := GenerateRandomString("x_", 8, "base32"); err == nil {
		t.Error("Unsupported encoding should return an error")
	}
}
