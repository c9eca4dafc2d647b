package inspection

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
)

// DefaultRejectionFeedback is substituted when a rejection is submitted
// with no feedback text
const DefaultRejectionFeedback = "The item did not meet the inspection requirements. Please review the checklist and resubmit."

// ValidationErrors maps field names to user-visible messages, shown inline
// next to the offending fields before any network call is made
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msg := "invalid submission:"
	for _, k := range keys {
		msg += " " + k + ": " + v[k] + ";"
	}
	return msg
}

// ApprovalInput carries the form fields required to approve an item and
// publish it as a live auction
type ApprovalInput struct {
	OverallRating int
	Feedback      string
	InitialPrice  float64
	BuyNowPrice   float64
	BuyNowEnabled bool
	StartDate     time.Time
	EndDate       time.Time
}

// Validate checks the approval requirements: rating, initial price and
// both dates must be present
func (in ApprovalInput) Validate() error {
	errs := ValidationErrors{}
	if in.OverallRating == 0 {
		errs["overall_rating"] = "overall rating is required"
	} else if in.OverallRating < 1 || in.OverallRating > 5 {
		errs["overall_rating"] = "overall rating must be between 1 and 5"
	}
	if in.InitialPrice <= 0 {
		errs["initial_price"] = "initial price is required"
	}
	if in.StartDate.IsZero() {
		errs["start_date"] = "start date is required"
	}
	if in.EndDate.IsZero() {
		errs["end_date"] = "end date is required"
	}
	if !in.StartDate.IsZero() && !in.EndDate.IsZero() && !in.EndDate.After(in.StartDate) {
		errs["end_date"] = "end date must be after start date"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BuildApproval assembles the multipart text fields for an approval.
// Validation failures are returned before anything touches the network.
// The buy-now flag is a real bool here; the wire format wants the
// backend's "True"/"False" string literals, mapped at this boundary only.
func BuildApproval(in ApprovalInput, checklist map[string]bool) (map[string]string, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	flat, err := json.Marshal(checklist)
	if err != nil {
		return nil, fmt.Errorf("encode checklist: %w", err)
	}

	fields := map[string]string{
		"decision":       models.DecisionApproved,
		"overall_rating": strconv.Itoa(in.OverallRating),
		"feedback":       in.Feedback,
		"initial_price":  strconv.FormatFloat(in.InitialPrice, 'f', 2, 64),
		"start_date":     in.StartDate.UTC().Format(time.RFC3339),
		"end_date":       in.EndDate.UTC().Format(time.RFC3339),
		"is_buy_now":     wireBool(in.BuyNowEnabled),
		"checklist":      string(flat),
	}
	if in.BuyNowPrice > 0 {
		fields["buy_now_price"] = strconv.FormatFloat(in.BuyNowPrice, 'f', 2, 64)
	}
	return fields, nil
}

// BuildRejection assembles the multipart text fields for a rejection.
// Only feedback is required and an empty one falls back to the canned
// default, so rejection never fails validation.
func BuildRejection(feedback string, checklist map[string]bool) (map[string]string, error) {
	if feedback == "" {
		feedback = DefaultRejectionFeedback
	}
	flat, err := json.Marshal(checklist)
	if err != nil {
		return nil, fmt.Errorf("encode checklist: %w", err)
	}
	return map[string]string{
		"decision":  models.DecisionRejected,
		"feedback":  feedback,
		"checklist": string(flat),
	}, nil
}

// wireBool maps a bool to the backend's string literals
func wireBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
