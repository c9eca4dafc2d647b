package models

import "time"

// Inspection decision constants
const (
	DecisionApproved = "APPROVED"
	DecisionRejected = "REJECTED"
)

// ChecklistTemplate is a category-specific ordered set of inspection
// criteria, read-only from this client's perspective
type ChecklistTemplate struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Categories []ChecklistCategory `json:"categories"`
}

// ChecklistCategory is one named group of criteria within a template
type ChecklistCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// ChecklistTemplateRequest creates or updates a template
type ChecklistTemplateRequest struct {
	Title      string              `json:"title"`
	Categories []ChecklistCategory `json:"categories"`
}

// InspectionTask is an auction item assigned to a manager for review
type InspectionTask struct {
	ID         string      `json:"id"`
	Item       AuctionItem `json:"item"`
	AssignedAt time.Time   `json:"assigned_at"`
	Status     string      `json:"status"`
}

// InspectionReport is a past inspection decision as returned by the API
type InspectionReport struct {
	ID            string          `json:"id"`
	ItemID        string          `json:"item_id"`
	ManagerID     string          `json:"manager_id"`
	Decision      string          `json:"decision"`
	OverallRating int             `json:"overall_rating,omitempty"`
	Feedback      string          `json:"feedback"`
	Checklist     map[string]bool `json:"checklist,omitempty"`
	Images        []string        `json:"images,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AuctionActionRequest performs a manager action on an auction (e.g. close)
type AuctionActionRequest struct {
	Action string `json:"action"`
}
