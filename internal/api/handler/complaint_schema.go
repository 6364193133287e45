package handler

import (
	"time"

	"github.com/Thanuja200/Resolve-now/internal/core/domain"
)

type createComplaintRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category"    validate:"required"`
	Priority    string `json:"priority"    validate:"required"`
}

// complaintResponse is the transport view of a stored complaint. Field names
// follow the original API contract: the denormalized submitter snapshot is
// exposed as "name"/"email" and the owner reference as "user".
type complaintResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    domain.Category `json:"category"`
	Priority    domain.Priority `json:"priority"`
	Status      domain.Status   `json:"status"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	User        string          `json:"user"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
