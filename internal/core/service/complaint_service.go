package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Thanuja200/Resolve-now/internal/core/domain"
	"github.com/Thanuja200/Resolve-now/internal/core/ports"
)

// ComplaintService implements complaint use cases. Authorization decisions
// are delegated to the pure policy functions in the domain package.
type ComplaintService struct {
	repo   ports.ComplaintRepository
	logger zerolog.Logger
}

func NewComplaintService(repo ports.ComplaintRepository, logger zerolog.Logger) *ComplaintService {
	return &ComplaintService{repo: repo, logger: logger}
}

// validateCreate checks the input against the closed enums and returns the
// full list of field errors, or nil when the input is acceptable.
func validateCreate(input ports.CreateComplaintInput) (*domain.Complaint, *domain.ValidationError) {
	var fields []domain.FieldError

	title := strings.TrimSpace(input.Title)
	if title == "" {
		fields = append(fields, domain.FieldError{Field: "title", Message: "title is required"})
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		fields = append(fields, domain.FieldError{Field: "description", Message: "description is required"})
	}

	category, ok := domain.ParseCategory(input.Category)
	if !ok {
		fields = append(fields, domain.FieldError{Field: "category", Message: input.Category + " is not a valid category"})
	}

	// Priority defaults to Medium when omitted; an explicit bad value is
	// rejected, never coerced.
	priority := domain.PriorityMedium
	if input.Priority != "" {
		priority, ok = domain.ParsePriority(input.Priority)
		if !ok {
			fields = append(fields, domain.FieldError{Field: "priority", Message: input.Priority + " is not a valid priority"})
		}
	}

	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	return &domain.Complaint{
		Title:       title,
		Description: description,
		Category:    category,
		Priority:    priority,
		Status:      domain.StatusPending,
	}, nil
}

// Create validates the input, denormalizes the submitter's name and email
// from the identity, assigns server timestamps, and persists the complaint.
func (s *ComplaintService) Create(ctx context.Context, identity domain.Identity, input ports.CreateComplaintInput) (*domain.Complaint, error) {
	if !domain.CanCreateComplaint(identity) {
		return nil, domain.ErrForbidden
	}

	complaint, verr := validateCreate(input)
	if verr != nil {
		return nil, verr
	}

	now := time.Now().UTC()
	complaint.SubmitterName = identity.Name
	complaint.SubmitterEmail = identity.Email
	complaint.OwnerID = identity.UserID
	complaint.CreatedAt = now
	complaint.UpdatedAt = now

	created, err := s.repo.Insert(ctx, complaint)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", identity.UserID).Msg("failed to store complaint")
		return nil, err
	}

	s.logger.Info().
		Str("complaint_id", created.ID).
		Str("owner", created.OwnerID).
		Str("category", string(created.Category)).
		Str("priority", string(created.Priority)).
		Msg("complaint created")

	return created, nil
}

// ListAll returns every complaint across all owners, newest first.
func (s *ComplaintService) ListAll(ctx context.Context, identity domain.Identity) ([]*domain.Complaint, error) {
	if !domain.CanListAllComplaints(identity) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindAll(ctx)
}

// ListMine returns the caller's own complaints, newest first.
func (s *ComplaintService) ListMine(ctx context.Context, identity domain.Identity) ([]*domain.Complaint, error) {
	if !domain.CanListOwnComplaints(identity) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByOwner(ctx, identity.UserID)
}
