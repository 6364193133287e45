package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Thanuja200/Resolve-now/internal/api/handler"
	"github.com/Thanuja200/Resolve-now/internal/core/domain"
)

type stubAuthService struct {
	registerUser *domain.User
	registerErr  error
	loginToken   string
	loginUser    *domain.User
	loginErr     error

	gotName, gotEmail, gotPassword string
}

func (s *stubAuthService) Register(_ context.Context, name, email, password string) (*domain.User, error) {
	s.gotName, s.gotEmail, s.gotPassword = name, email, password
	return s.registerUser, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	s.gotEmail, s.gotPassword = email, password
	return s.loginToken, s.loginUser, s.loginErr
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = handler.NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sampleUser() *domain.User {
	return &domain.User{
		ID:        "u1",
		Name:      "Alice",
		Email:     "alice@example.com",
		Role:      domain.RoleUser,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{registerUser: sampleUser()}
	h := handler.NewAuthHandler(svc)

	body := `{"name":"Alice","email":"alice@example.com","password":"secret1"}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.gotEmail != "alice@example.com" || svc.gotPassword != "secret1" {
		t.Errorf("service received %q/%q", svc.gotEmail, svc.gotPassword)
	}

	var resp struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.ID != "u1" || resp.User.Role != "user" {
		t.Errorf("unexpected user in response: %+v", resp.User)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Error("response must not contain password material")
	}
}

func TestAuthHandler_Register_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.com","password":"secret1"}`},
		{"bad email", `{"name":"A","email":"not-an-email","password":"secret1"}`},
		{"short password", `{"name":"A","email":"a@b.com","password":"abc"}`},
		{"empty body", `{}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubAuthService{}
			h := handler.NewAuthHandler(svc)
			c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register", tc.body)

			err := h.Register(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected *echo.HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", httpErr.Code)
			}
			if svc.gotEmail != "" {
				t.Error("service must not be called on invalid input")
			}
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	svc := &stubAuthService{registerErr: domain.ErrUserExists}
	h := handler.NewAuthHandler(svc)

	body := `{"name":"Alice","email":"alice@example.com","password":"secret1"}`
	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register", body)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Register_MalformedJSON(t *testing.T) {
	h := handler.NewAuthHandler(&stubAuthService{})
	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register", `{"name":`)

	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on malformed body, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{loginToken: "signed.jwt.token", loginUser: sampleUser()}
	h := handler.NewAuthHandler(svc)

	body := `{"email":"alice@example.com","password":"secret1"}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login", body)

	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed.jwt.token" {
		t.Errorf("token = %q", resp.Token)
	}
	if resp.User.Email != "alice@example.com" {
		t.Errorf("user email = %q", resp.User.Email)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := handler.NewAuthHandler(svc)

	body := `{"email":"alice@example.com","password":"wrong-pass"}`
	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login", body)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	svc := &stubAuthService{}
	h := handler.NewAuthHandler(svc)
	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com"}`)

	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if svc.gotEmail != "" {
		t.Error("service must not be called on invalid input")
	}
}
