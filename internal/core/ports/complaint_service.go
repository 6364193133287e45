package ports

import (
	"context"

	"github.com/Thanuja200/Resolve-now/internal/core/domain"
)

// CreateComplaintInput is the DTO passed from the transport layer. Category
// and Priority arrive as raw strings; the service validates them against the
// closed enums.
type CreateComplaintInput struct {
	Title       string
	Description string
	Category    string
	Priority    string
}

// ComplaintService defines use-case operations for complaints. Every
// operation takes the resolved caller identity; authorization decisions live
// behind these methods, not in the handlers.
type ComplaintService interface {
	Create(ctx context.Context, identity domain.Identity, input CreateComplaintInput) (*domain.Complaint, error)
	// ListAll returns every complaint, newest first. Fails with
	// domain.ErrForbidden for non-admin identities.
	ListAll(ctx context.Context, identity domain.Identity) ([]*domain.Complaint, error)
	// ListMine returns the caller's own complaints, newest first.
	ListMine(ctx context.Context, identity domain.Identity) ([]*domain.Complaint, error)
}
