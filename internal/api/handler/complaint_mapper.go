package handler

import (
	"github.com/Thanuja200/Resolve-now/internal/core/domain"
	"github.com/Thanuja200/Resolve-now/internal/core/ports"
)

func toCreateInput(req createComplaintRequest) ports.CreateComplaintInput {
	return ports.CreateComplaintInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
	}
}

func toComplaintResponse(c *domain.Complaint) complaintResponse {
	return complaintResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Priority:    c.Priority,
		Status:      c.Status,
		Name:        c.SubmitterName,
		Email:       c.SubmitterEmail,
		User:        c.OwnerID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toComplaintListResponse(complaints []*domain.Complaint) []complaintResponse {
	out := make([]complaintResponse, len(complaints))
	for i, c := range complaints {
		out[i] = toComplaintResponse(c)
	}
	return out
}
