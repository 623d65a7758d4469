package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"moodwellness/internal/model"
)

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	return NewAuthService(userRepo, "test-secret", time.Hour), userRepo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &model.RegisterRequest{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Token == "" || resp.User.ID == 0 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.User.PasswordHash == "hunter22" {
		t.Fatal("password stored in plain text")
	}

	login, err := svc.Login(ctx, &model.LoginRequest{Username: "alex", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := svc.ValidateToken(login.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != resp.User.ID || claims.Username != "alex" {
		t.Fatalf("claims = %+v, want user %d/alex", claims, resp.User.ID)
	}
}

func TestRegisterRejectsDuplicatesAndWeakPasswords(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, &model.RegisterRequest{Username: "alex", Password: "hunter22"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, &model.RegisterRequest{Username: "alex", Password: "hunter22"}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}
	if _, err := svc.Register(ctx, &model.RegisterRequest{Username: "sam", Password: "abc"}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("err = %v, want ErrWeakPassword", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Login(ctx, &model.LoginRequest{Username: "ghost", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}

	if _, err := svc.Register(ctx, &model.RegisterRequest{Username: "alex", Password: "hunter22"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Login(ctx, &model.LoginRequest{Username: "alex", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _ := newAuthFixture()
	if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}

	other := NewAuthService(newFakeUserRepo(), "other-secret", time.Hour)
	resp, err := other.Register(context.Background(), &model.RegisterRequest{Username: "alex", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.ValidateToken(resp.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("foreign-secret token err = %v, want ErrInvalidToken", err)
	}
}
