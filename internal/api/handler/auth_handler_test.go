package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
	"github.com/agencypulse/kpi-dashboard/internal/core/ports"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Username != "alice" || in.Email != "a@example.com" || in.Role != "manager" || in.FullName != "Alice Doe" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: 3, Username: in.Username, Email: in.Email, Role: in.Role, PasswordHash: "hash"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/api/auth/register",
		`{"username":"alice","password":"secret1","email":"a@example.com","full_name":"Alice Doe","role":"manager"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["username"] != "alice" || user["role"] != "manager" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must not be serialized")
	}
	if _, hasToken := resp["token"]; hasToken {
		t.Fatalf("register must not issue a token")
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	cases := map[string]string{
		"short password": `{"username":"alice","password":"123","email":"a@example.com"}`,
		"bad email":      `{"username":"alice","password":"secret1","email":"nope"}`,
		"short username": `{"username":"al","password":"secret1","email":"a@example.com"}`,
		"unknown role":   `{"username":"alice","password":"secret1","email":"a@example.com","role":"owner"}`,
		"email username": `{"username":"bob@example.com","password":"secret1","email":"a@example.com"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			stub := &stubAuthService{
				registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
					t.Fatalf("should not be called")
					return nil, nil
				},
			}
			c, _ := newContext(t, http.MethodPost, "/api/auth/register", body)

			err := NewAuthHandler(stub).Register(c)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			return nil, fmt.Errorf("insert user: %w: users_username_key", domain.ErrUserExists)
		},
	}
	c, _ := newContext(t, http.MethodPost, "/api/auth/register",
		`{"username":"bob","password":"secret1","email":"bob@example.com"}`)

	err := NewAuthHandler(stub).Register(c)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	c, _ := newContext(t, http.MethodPost, "/api/auth/register", "not-json")

	err := NewAuthHandler(stub).Register(c)
	if httpCode(err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, login, password string) (string, *domain.User, error) {
			if login != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", login, password)
			}
			return "token123", &domain.User{Username: "alice", Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/api/auth/login", `{"username":"alice@example.com","password":"secret"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, login, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	c, _ := newContext(t, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"bad"}`)

	err := NewAuthHandler(stub).Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, login, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	c, _ := newContext(t, http.MethodPost, "/api/auth/login", "{")

	err := NewAuthHandler(stub).Login(c)
	if httpCode(err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	stub := &stubAuthService{
		meFn: func(ctx context.Context, userID int64) (*domain.User, error) {
			if userID != 1 {
				t.Fatalf("expected user 1, got %d", userID)
			}
			return &domain.User{ID: 1, Username: "root", Role: domain.RoleAdmin}, nil
		},
	}
	c, rec := newContext(t, http.MethodGet, "/api/auth/me", "")
	withClaims(c)

	if err := NewAuthHandler(stub).Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Me_WithoutClaims(t *testing.T) {
	stub := &stubAuthService{
		meFn: func(ctx context.Context, userID int64) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	c, _ := newContext(t, http.MethodGet, "/api/auth/me", "")

	err := NewAuthHandler(stub).Me(c)
	if httpCode(err) != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var gotID string
	var gotExp time.Time
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, actor domain.Actor, tokenID string, expiresAt time.Time) error {
			if actor.UserID != 1 || actor.Username != "root" {
				t.Fatalf("unexpected actor: %+v", actor)
			}
			gotID, gotExp = tokenID, expiresAt
			return nil
		},
	}
	c, rec := newContext(t, http.MethodPost, "/api/auth/logout", "")
	withClaims(c)

	if err := NewAuthHandler(stub).Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotID != "jti-1" || !gotExp.Equal(testExpiry) {
		t.Fatalf("unexpected revocation args: %s %v", gotID, gotExp)
	}
}
