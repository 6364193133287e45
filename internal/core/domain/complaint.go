package domain

import "time"

// Category is the closed set of complaint categories.
type Category string

const (
	CategoryElectricity Category = "Electricity"
	CategoryWater       Category = "Water"
	CategoryRoad        Category = "Road"
	CategoryInternet    Category = "Internet"
)

// ParseCategory validates a raw category value.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryElectricity, CategoryWater, CategoryRoad, CategoryInternet:
		return Category(s), true
	}
	return "", false
}

// Priority is the closed set of complaint priorities.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParsePriority validates a raw priority value.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), true
	}
	return "", false
}

// Status is the complaint lifecycle state. Only the default is ever written
// by the exposed surface; transitions are manual admin edits out of scope.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// Complaint is a stored complaint record. SubmitterName and SubmitterEmail
// are copied from the owner's identity at creation and never re-synced with
// later identity edits.
type Complaint struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Title          string    `json:"title" bson:"title"`
	Description    string    `json:"description" bson:"description"`
	Category       Category  `json:"category" bson:"category"`
	Priority       Priority  `json:"priority" bson:"priority"`
	Status         Status    `json:"status" bson:"status"`
	SubmitterName  string    `json:"name" bson:"name"`
	SubmitterEmail string    `json:"email" bson:"email"`
	OwnerID        string    `json:"user" bson:"owner_id"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}
