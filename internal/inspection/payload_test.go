package inspection

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func validApproval() ApprovalInput {
	return ApprovalInput{
		OverallRating: 4,
		Feedback:      "solid condition",
		InitialPrice:  120.50,
		StartDate:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC),
	}
}

func TestBuildApprovalRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ApprovalInput)
		field  string
	}{
		{"missing rating", func(in *ApprovalInput) { in.OverallRating = 0 }, "overall_rating"},
		{"rating out of range", func(in *ApprovalInput) { in.OverallRating = 9 }, "overall_rating"},
		{"missing price", func(in *ApprovalInput) { in.InitialPrice = 0 }, "initial_price"},
		{"missing start date", func(in *ApprovalInput) { in.StartDate = time.Time{} }, "start_date"},
		{"missing end date", func(in *ApprovalInput) { in.EndDate = time.Time{} }, "end_date"},
		{"end before start", func(in *ApprovalInput) { in.EndDate = in.StartDate.Add(-time.Hour) }, "end_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validApproval()
			tt.mutate(&in)

			_, err := BuildApproval(in, map[string]bool{})
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected validation errors, got %v", err)
			}
			if _, ok := verrs[tt.field]; !ok {
				t.Errorf("expected an error on %s, got %v", tt.field, verrs)
			}
		})
	}
}

func TestBuildApprovalFields(t *testing.T) {
	in := validApproval()
	in.BuyNowEnabled = true
	in.BuyNowPrice = 300

	checklist := map[string]bool{"Exterior-0": true, "Exterior-1": false}
	fields, err := BuildApproval(in, checklist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fields["decision"] != "APPROVED" {
		t.Errorf("decision = %q", fields["decision"])
	}
	if fields["overall_rating"] != "4" {
		t.Errorf("overall_rating = %q", fields["overall_rating"])
	}
	if fields["initial_price"] != "120.50" {
		t.Errorf("initial_price = %q", fields["initial_price"])
	}
	if fields["start_date"] != "2026-09-01T10:00:00Z" {
		t.Errorf("start_date = %q", fields["start_date"])
	}
	// the backend wants Python-style bool literals on the wire
	if fields["is_buy_now"] != "True" {
		t.Errorf("is_buy_now = %q", fields["is_buy_now"])
	}
	if fields["buy_now_price"] != "300.00" {
		t.Errorf("buy_now_price = %q", fields["buy_now_price"])
	}

	var decoded map[string]bool
	if err := json.Unmarshal([]byte(fields["checklist"]), &decoded); err != nil {
		t.Fatalf("checklist is not valid JSON: %v", err)
	}
	if !decoded["Exterior-0"] || decoded["Exterior-1"] {
		t.Errorf("checklist round-trip mismatch: %v", decoded)
	}
}

func TestBuildApprovalBuyNowDisabled(t *testing.T) {
	fields, err := BuildApproval(validApproval(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields["is_buy_now"] != "False" {
		t.Errorf("is_buy_now = %q", fields["is_buy_now"])
	}
	if _, ok := fields["buy_now_price"]; ok {
		t.Error("buy_now_price should be omitted when unset")
	}
}

func TestBuildRejectionDefaultsFeedback(t *testing.T) {
	fields, err := BuildRejection("", map[string]bool{"Exterior-0": false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields["decision"] != "REJECTED" {
		t.Errorf("decision = %q", fields["decision"])
	}
	if fields["feedback"] != DefaultRejectionFeedback {
		t.Errorf("empty feedback should fall back to the default, got %q", fields["feedback"])
	}
}

func TestBuildRejectionKeepsFeedback(t *testing.T) {
	fields, err := BuildRejection("scratched casing", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields["feedback"] != "scratched casing" {
		t.Errorf("feedback = %q", fields["feedback"])
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	in := ApprovalInput{}
	_, err := BuildApproval(in, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, field := range []string{"overall_rating", "initial_price", "start_date", "end_date"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error message should mention %s: %s", field, err)
		}
	}
}
