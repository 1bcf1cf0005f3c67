package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("testpass123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "testpass123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "testpass123") {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword(hash, "wrongpass") {
		t.Fatal("expected non-matching password to fail")
	}
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-input", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	second, err := HashPassword("same-input", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same input must differ")
	}
	if !CheckPassword(first, "same-input") || !CheckPassword(second, "same-input") {
		t.Fatal("both hashes must still verify")
	}
}

func TestHashPassword_OutOfRangeCostFallsBack(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw", 99)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !CheckPassword(hash, "pw") {
		t.Fatal("expected hash produced with fallback cost to verify")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	if CheckPassword("not-a-bcrypt-digest", "anything") {
		t.Fatal("malformed digest must count as a mismatch")
	}
	if CheckPassword("", "anything") {
		t.Fatal("empty digest must count as a mismatch")
	}
}

func TestComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if err := ComparePassword(hash, "secret"); err != nil {
		t.Fatalf("ComparePassword error: %v", err)
	}
	if err := ComparePassword(hash, "other"); err == nil {
		t.Fatal("expected error for wrong password")
	}
}
