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
	"github.com/Thanuja200/Resolve-now/internal/api/middleware"
	"github.com/Thanuja200/Resolve-now/internal/core/domain"
	"github.com/Thanuja200/Resolve-now/internal/core/ports"
)

type stubComplaintService struct {
	created    *domain.Complaint
	createErr  error
	all        []*domain.Complaint
	allErr     error
	mine       []*domain.Complaint
	mineErr    error
	gotInput   ports.CreateComplaintInput
	gotCaller  domain.Identity
	createCall bool
}

func (s *stubComplaintService) Create(_ context.Context, identity domain.Identity, input ports.CreateComplaintInput) (*domain.Complaint, error) {
	s.createCall = true
	s.gotCaller = identity
	s.gotInput = input
	return s.created, s.createErr
}

func (s *stubComplaintService) ListAll(_ context.Context, identity domain.Identity) ([]*domain.Complaint, error) {
	s.gotCaller = identity
	return s.all, s.allErr
}

func (s *stubComplaintService) ListMine(_ context.Context, identity domain.Identity) ([]*domain.Complaint, error) {
	s.gotCaller = identity
	return s.mine, s.mineErr
}

var testIdentity = domain.Identity{UserID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}

func sampleComplaint() *domain.Complaint {
	now := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)
	return &domain.Complaint{
		ID:             "c1",
		Title:          "No power",
		Description:    "Outage since morning",
		Category:       domain.CategoryElectricity,
		Priority:       domain.PriorityHigh,
		Status:         domain.StatusPending,
		SubmitterName:  "Alice",
		SubmitterEmail: "alice@example.com",
		OwnerID:        "u1",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func newAuthedContext(t *testing.T, method, target, body string, identity domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newJSONContext(t, method, target, body)
	middleware.SetIdentity(c, identity)
	return c, rec
}

func TestComplaintHandler_Create_Success(t *testing.T) {
	svc := &stubComplaintService{created: sampleComplaint()}
	h := handler.NewComplaintHandler(svc)

	body := `{"title":"No power","description":"Outage since morning","category":"Electricity","priority":"High"}`
	c, rec := newAuthedContext(t, http.MethodPost, "/api/complaints", body, testIdentity)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.gotCaller != testIdentity {
		t.Errorf("caller = %+v, want %+v", svc.gotCaller, testIdentity)
	}
	if svc.gotInput.Category != "Electricity" || svc.gotInput.Priority != "High" {
		t.Errorf("input = %+v", svc.gotInput)
	}

	var resp struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Name   string `json:"name"`
		Email  string `json:"email"`
		User   string `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "c1" || resp.Status != "Pending" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Name != "Alice" || resp.Email != "alice@example.com" || resp.User != "u1" {
		t.Errorf("submitter fields wrong: %+v", resp)
	}
}

func TestComplaintHandler_Create_MissingFields(t *testing.T) {
	svc := &stubComplaintService{}
	h := handler.NewComplaintHandler(svc)

	body := `{"title":"No power"}`
	c, _ := newAuthedContext(t, http.MethodPost, "/api/complaints", body, testIdentity)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", httpErr.Code)
	}
	if msg, _ := httpErr.Message.(string); msg != "please provide all required fields" {
		t.Errorf("message = %q", httpErr.Message)
	}
	if svc.createCall {
		t.Error("service must not be called on invalid input")
	}
}

func TestComplaintHandler_Create_NoIdentity(t *testing.T) {
	svc := &stubComplaintService{}
	h := handler.NewComplaintHandler(svc)

	body := `{"title":"t","description":"d","category":"Water","priority":"Low"}`
	c, _ := newJSONContext(t, http.MethodPost, "/api/complaints", body)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %v", err)
	}
	if svc.createCall {
		t.Error("service must not be called without identity")
	}
}

func TestComplaintHandler_Create_ServiceValidationError(t *testing.T) {
	verr := domain.NewValidationError(domain.FieldError{Field: "category", Message: "Gas is not a valid category"})
	svc := &stubComplaintService{createErr: verr}
	h := handler.NewComplaintHandler(svc)

	body := `{"title":"t","description":"d","category":"Gas","priority":"Low"}`
	c, _ := newAuthedContext(t, http.MethodPost, "/api/complaints", body, testIdentity)

	err := h.Create(c)
	var got *domain.ValidationError
	if !errors.As(err, &got) {
		t.Fatalf("expected ValidationError to propagate, got %v", err)
	}
}

func TestComplaintHandler_ListMine(t *testing.T) {
	svc := &stubComplaintService{mine: []*domain.Complaint{sampleComplaint()}}
	h := handler.NewComplaintHandler(svc)

	c, rec := newAuthedContext(t, http.MethodGet, "/api/complaints/my", "", testIdentity)

	if err := h.ListMine(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "c1" {
		t.Errorf("unexpected list: %+v", resp)
	}
}

func TestComplaintHandler_ListMine_Empty(t *testing.T) {
	svc := &stubComplaintService{}
	h := handler.NewComplaintHandler(svc)

	c, rec := newAuthedContext(t, http.MethodGet, "/api/complaints/my", "", testIdentity)

	if err := h.ListMine(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("empty list must encode as [], got %q", body)
	}
}

func TestComplaintHandler_ListAll(t *testing.T) {
	adminIdentity := domain.Identity{UserID: "u-admin", Name: "Root", Email: "admin@example.com", Role: domain.RoleAdmin}
	svc := &stubComplaintService{all: []*domain.Complaint{sampleComplaint()}}
	h := handler.NewComplaintHandler(svc)

	c, rec := newAuthedContext(t, http.MethodGet, "/api/complaints", "", adminIdentity)

	if err := h.ListAll(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.gotCaller != adminIdentity {
		t.Errorf("caller = %+v", svc.gotCaller)
	}
}

func TestComplaintHandler_ListAll_Forbidden(t *testing.T) {
	svc := &stubComplaintService{allErr: domain.ErrForbidden}
	h := handler.NewComplaintHandler(svc)

	c, _ := newAuthedContext(t, http.MethodGet, "/api/complaints", "", testIdentity)

	if err := h.ListAll(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden to propagate, got %v", err)
	}
}
