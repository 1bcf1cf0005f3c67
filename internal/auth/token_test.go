package auth

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", 30*time.Minute)

	token, expiresAt, err := tm.GenerateToken("testuser")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if remaining := time.Until(expiresAt); remaining < 29*time.Minute || remaining > 31*time.Minute {
		t.Fatalf("unexpected expiry distance: %v", remaining)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.Username() != "testuser" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Username(), "testuser")
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	issuer := NewTokenManager("secret", 30*time.Minute).WithClock(func() time.Time { return now })

	token, _, err := issuer.GenerateToken("u1")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// Still valid one minute before expiry.
	verifier := NewTokenManager("secret", 30*time.Minute).WithClock(func() time.Time { return now.Add(29 * time.Minute) })
	if _, err := verifier.ParseToken(token); err != nil {
		t.Fatalf("ParseToken before expiry: %v", err)
	}

	// Rejected once the clock passes the expiry instant.
	verifier = NewTokenManager("secret", 30*time.Minute).WithClock(func() time.Time { return now.Add(31 * time.Minute) })
	_, err = verifier.ParseToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_Tampered(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	token, _, err := tm.GenerateToken("u2")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = tm.ParseToken(string(tampered))
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, _, err := NewTokenManager("right-secret", time.Hour).GenerateToken("u3")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = NewTokenManager("wrong-secret", time.Hour).ParseToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("k", time.Hour)
	for _, bad := range []string{"", "garbage", "not.a.jwt"} {
		if _, err := tm.ParseToken(bad); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("ParseToken(%q): expected ErrTokenInvalid, got %v", bad, err)
		}
	}
}

func TestParseToken_RejectsForeignAlgorithm(t *testing.T) {
	t.Parallel()

	// Same secret, different signing method. The manager pins HS256 and
	// must not trust the algorithm declared in the token header.
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "u4",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := foreign.SignedString([]byte("shared-secret"))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	_, err = NewTokenManager("shared-secret", time.Hour).ParseToken(signed)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_MissingExpiry(t *testing.T) {
	t.Parallel()

	// A correctly signed token without an exp claim is invalid.
	bare := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u5"})
	signed, err := bare.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	_, err = NewTokenManager("secret", time.Hour).ParseToken(signed)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_EmptySubject(t *testing.T) {
	t.Parallel()

	anon := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := anon.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	_, err = NewTokenManager("secret", time.Hour).ParseToken(signed)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
