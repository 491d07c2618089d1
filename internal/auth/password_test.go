package auth

import (
	"strings"
	"testing"
)

// Tests use the minimum bcrypt cost (4) — the logic is identical, only the
// work factor differs, and cost 10 would make this file take seconds.
func testPasswords() *PasswordService {
	return NewPasswordServiceForTest(4)
}

func TestHashAndVerify(t *testing.T) {
	ps := testPasswords()

	hash, err := ps.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("hash = %q, want bcrypt format ($2a$...)", hash)
	}

	if err := ps.Verify(hash, "secret123"); err != nil {
		t.Errorf("Verify() with correct password error = %v", err)
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	ps := testPasswords()

	hash, err := ps.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if err := ps.Verify(hash, "wrong-password"); err == nil {
		t.Error("Verify() should fail for a wrong password")
	}
}

func TestHash_SaltsDiffer(t *testing.T) {
	ps := testPasswords()

	h1, err := ps.Hash("same password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	h2, err := ps.Hash("same password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	// bcrypt salts every hash, so identical passwords hash differently.
	if h1 == h2 {
		t.Error("two hashes of the same password should differ")
	}
}

func TestHash_RejectsOverlongPassword(t *testing.T) {
	ps := testPasswords()

	_, err := ps.Hash(strings.Repeat("a", 73))
	if err == nil {
		t.Error("Hash() should reject passwords longer than 72 bytes")
	}
}

func TestDefaultCost(t *testing.T) {
	// Registration hashes at cost 10; keep the constant honest.
	if defaultCost != 10 {
		t.Errorf("defaultCost = %d, want 10", defaultCost)
	}
}
