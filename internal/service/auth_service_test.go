package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/frenzyhq/frenzy-backend/internal/test"
	"github.com/frenzyhq/frenzy-backend/internal/token"
)

func newTestService(t *testing.T) (*AuthService, *test.MockUserRepository) {
	t.Helper()
	issuer, err := token.New("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to create issuer: %v", err)
	}
	mockRepo := test.NewMockUserRepository()
	return NewAuthService(mockRepo, issuer), mockRepo
}

func TestRegister(t *testing.T) {
	authService, mockRepo := newTestService(t)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid registration",
			email:    "test@example.com",
			password: "password123",
		},
		{
			name:     "duplicate email",
			email:    "test@example.com",
			password: "password123",
			wantErr:  ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tok, err := authService.Register(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if user == nil {
				t.Fatal("expected user but got nil")
			}
			if user.Email != tt.email {
				t.Errorf("got email %q, want %q", user.Email, tt.email)
			}
			if tok == "" {
				t.Error("expected token but got empty string")
			}
		})
	}

	// The failed second registration must not have created a second row
	if got := mockRepo.UserCount(); got != 1 {
		t.Errorf("got %d users, want 1", got)
	}
}

func TestLogin(t *testing.T) {
	authService, _ := newTestService(t)

	// Register a test user first
	email := "test@example.com"
	password := "password123"
	if _, _, err := authService.Register(context.Background(), email, password); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid login",
			email:    email,
			password: password,
		},
		{
			name:     "invalid password",
			email:    email,
			password: "wrongpassword",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "non-existent user",
			email:    "nonexistent@example.com",
			password: password,
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, tok, err := authService.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tok == "" {
				t.Error("expected token but got empty string")
			}
		})
	}
}

// Registration and a subsequent login must issue tokens for the same user.
func TestRegisterThenLogin_SameUser(t *testing.T) {
	issuer, err := token.New("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to create issuer: %v", err)
	}
	authService := NewAuthService(test.NewMockUserRepository(), issuer)

	email := "same@example.com"
	password := "password123"

	registeredUser, registerToken, err := authService.Register(context.Background(), email, password)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	loginUser, loginToken, err := authService.Login(context.Background(), email, password)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if registeredUser.ID != loginUser.ID {
		t.Errorf("user id changed between register and login: %q vs %q", registeredUser.ID, loginUser.ID)
	}

	fromRegister, err := issuer.Verify(registerToken)
	if err != nil {
		t.Fatalf("register token failed verification: %v", err)
	}
	fromLogin, err := issuer.Verify(loginToken)
	if err != nil {
		t.Fatalf("login token failed verification: %v", err)
	}

	if fromRegister != fromLogin || fromRegister != registeredUser.ID {
		t.Errorf("tokens verify to %q and %q, want both %q", fromRegister, fromLogin, registeredUser.ID)
	}
}

// Login failures must be indistinguishable for unknown emails and wrong
// passwords, so responses cannot be used to enumerate accounts.
func TestLogin_NoAccountEnumeration(t *testing.T) {
	authService, _ := newTestService(t)

	if _, _, err := authService.Register(context.Background(), "known@example.com", "password123"); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	_, _, wrongPassword := authService.Login(context.Background(), "known@example.com", "nottherightone")
	_, _, unknownEmail := authService.Login(context.Background(), "unknown@example.com", "password123")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) || !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v and %v", wrongPassword, unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Errorf("error messages differ: %q vs %q", wrongPassword.Error(), unknownEmail.Error())
	}
}
