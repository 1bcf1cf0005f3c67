package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/christopherjparrett/TheUniverse/internal/auth"
	"github.com/christopherjparrett/TheUniverse/internal/config"
	"github.com/christopherjparrett/TheUniverse/internal/domain"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, _ *domain.User) error { return nil }

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if user, ok := f.users[username]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 30,
			BcryptCost:            bcrypt.MinCost,
		},
	}
}

func seededAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := auth.HashPassword("testpass123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	repo := &fakeUserRepo{users: map[string]*domain.User{
		"testuser": {ID: 1, Username: "testuser", Email: "testuser@example.com", PasswordHash: hash, IsActive: true},
	}}
	return NewAuthService(testConfig(), repo, nil)
}

func TestAuthenticate_Success(t *testing.T) {
	t.Parallel()

	svc := seededAuthService(t)
	user, err := svc.Authenticate(context.Background(), "testuser", "testpass123")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if user.Username != "testuser" {
		t.Fatalf("username mismatch: got %q", user.Username)
	}
}

func TestAuthenticate_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc := seededAuthService(t)

	_, unknownErr := svc.Authenticate(context.Background(), "nobody", "testpass123")
	_, wrongPassErr := svc.Authenticate(context.Background(), "testuser", "wrongpass")

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongPassErr, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassErr)
	}
	if unknownErr.Error() != wrongPassErr.Error() {
		t.Fatal("failure signals must carry no distinguishing information")
	}
}

func TestAuthenticate_CaseSensitiveUsername(t *testing.T) {
	t.Parallel()

	svc := seededAuthService(t)
	_, err := svc.Authenticate(context.Background(), "TestUser", "testpass123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for case mismatch, got %v", err)
	}
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	t.Parallel()

	svc := seededAuthService(t)
	user, token, expiresAt, err := svc.Login(context.Background(), "testuser", "testpass123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.Username != "testuser" {
		t.Fatalf("username mismatch: got %q", user.Username)
	}
	if expiresAt.IsZero() {
		t.Fatal("expected a set expiry")
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.Username() != "testuser" {
		t.Fatalf("token subject mismatch: got %q", claims.Username())
	}
}

func TestLogin_FailedCredentialsIssueNoToken(t *testing.T) {
	t.Parallel()

	svc := seededAuthService(t)
	_, token, _, err := svc.Login(context.Background(), "testuser", "wrongpass")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if token != "" {
		t.Fatal("no token must be issued on failure")
	}
}
