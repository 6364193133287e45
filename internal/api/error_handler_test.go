package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Thanuja200/Resolve-now/internal/core/domain"
)

func invokeErrorHandler(t *testing.T, err error, development bool) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/complaints", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), development)(err, c)

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not the error envelope: %v (%q)", err, rec.Body.String())
	}
	return rec.Code, body.Message
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "invalid or expired token"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access denied, admin privileges required"},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict, "email is already registered"},
		{"complaint not found", domain.ErrComplaintNotFound, http.StatusNotFound, "complaint not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := invokeErrorHandler(t, tc.err, false)
			if code != tc.wantCode {
				t.Errorf("code = %d, want %d", code, tc.wantCode)
			}
			if msg != tc.wantMsg {
				t.Errorf("message = %q, want %q", msg, tc.wantMsg)
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup failed"), domain.ErrInvalidCredentials)
	code, _ := invokeErrorHandler(t, wrapped, false)
	if code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401 for wrapped sentinel", code)
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	verr := domain.NewValidationError(
		domain.FieldError{Field: "title", Message: "title is required"},
		domain.FieldError{Field: "category", Message: "Gas is not a valid category"},
	)
	code, msg := invokeErrorHandler(t, verr, false)
	if code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
	if msg != "title: title is required; category: Gas is not a valid category" {
		t.Errorf("message = %q", msg)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := invokeErrorHandler(t, echo.NewHTTPError(http.StatusBadRequest, "please provide all required fields"), false)
	if code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
	if msg != "please provide all required fields" {
		t.Errorf("message = %q", msg)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	cause := errors.New("mongo: connection reset")

	code, msg := invokeErrorHandler(t, cause, false)
	if code != http.StatusInternalServerError {
		t.Errorf("code = %d, want 500", code)
	}
	if msg != "something went wrong" {
		t.Errorf("production message = %q, must not leak the cause", msg)
	}

	_, devMsg := invokeErrorHandler(t, cause, true)
	if devMsg != cause.Error() {
		t.Errorf("development message = %q, want the real cause", devMsg)
	}
}

func TestErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := c.NoContent(http.StatusOK); err != nil {
		t.Fatalf("commit response: %v", err)
	}

	NewHTTPErrorHandler(zerolog.Nop(), false)(errors.New("late failure"), c)
	if rec.Code != http.StatusOK {
		t.Errorf("committed response must not be rewritten, got %d", rec.Code)
	}
}
