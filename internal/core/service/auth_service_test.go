package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

func TestAuthService_Register_Success(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "alice@example.org", "pass123", "Alice", "Nguyen", domain.RoleMember)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleMember {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_DefaultsToMember(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "bob@example.org", "pass", "Bob", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != domain.RoleMember {
		t.Fatalf("expected member role, got %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "", "pass", "", "", domain.RoleMember); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob@example.org", "pass", "", "", "superuser"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "bob@example.org", "pass", "", "", domain.RoleMember)
	if _, err := svc.Register(context.Background(), "bob@example.org", "pass2", "", "", domain.RoleMember); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "carol@example.org", "s3cret", "Carol", "Price", domain.RoleAdmin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.org", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "carol@example.org" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["email"] != "carol@example.org" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "dave@example.org", "goodpass", "", "", domain.RoleMember)
	if _, _, err := svc.Login(context.Background(), "dave@example.org", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost@example.org", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
