package ports

import (
	"context"

	"github.com/Thanuja200/Resolve-now/internal/core/domain"
)

// ComplaintRepository defines persistence operations for complaints.
// Both list operations return records ordered by created_at descending and
// run a fresh query per call.
type ComplaintRepository interface {
	Insert(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error)
	FindAll(ctx context.Context) ([]*domain.Complaint, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Complaint, error)
}
