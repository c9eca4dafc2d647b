package view

import (
	"strconv"
	"strings"
	"testing"
)

// render flattens a window into the compact form used by the assertions,
// e.g. "1 2 3 4 ... 10"
func render(pages []Page) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		if p.Gap {
			parts = append(parts, "...")
		} else {
			parts = append(parts, strconv.Itoa(p.Number))
		}
	}
	return strings.Join(parts, " ")
}

func TestWindow(t *testing.T) {
	tests := []struct {
		total, current int
		want           string
	}{
		{10, 1, "1 2 3 4 ... 10"},
		{10, 2, "1 2 3 4 ... 10"},
		{10, 3, "1 2 3 4 ... 10"},
		{10, 5, "1 ... 4 5 6 ... 10"},
		{10, 8, "1 ... 7 8 9 10"},
		{10, 10, "1 ... 7 8 9 10"},
		{5, 3, "1 2 3 4 5"},
		{1, 1, "1"},
		{6, 4, "1 ... 3 4 5 6"},
	}

	for _, tt := range tests {
		got := render(Window(tt.total, tt.current))
		if got != tt.want {
			t.Errorf("Window(%d, %d) = %q, want %q", tt.total, tt.current, got, tt.want)
		}
	}
}

func TestWindowClampsCurrent(t *testing.T) {
	if got := render(Window(10, 0)); got != "1 2 3 4 ... 10" {
		t.Errorf("current below range should clamp to 1, got %q", got)
	}
	if got := render(Window(10, 99)); got != "1 ... 7 8 9 10" {
		t.Errorf("current above range should clamp to total, got %q", got)
	}
	if Window(0, 1) != nil {
		t.Error("no pages should yield nil")
	}
}

func TestWindowMarksCurrent(t *testing.T) {
	for _, p := range Window(10, 5) {
		if p.Number == 5 && !p.Current {
			t.Error("page 5 should be marked current")
		}
		if p.Number != 5 && p.Current {
			t.Errorf("page %d wrongly marked current", p.Number)
		}
	}
}

func TestSliceAndTotalPages(t *testing.T) {
	rows := make([]int, 12)
	for i := range rows {
		rows[i] = i
	}

	if got := TotalPages(12); got != 3 {
		t.Errorf("TotalPages(12) = %d, want 3", got)
	}
	if got := TotalPages(0); got != 0 {
		t.Errorf("TotalPages(0) = %d, want 0", got)
	}

	if got := Slice(rows, 1); len(got) != PageSize || got[0] != 0 {
		t.Errorf("page 1 = %v", got)
	}
	if got := Slice(rows, 3); len(got) != 2 || got[0] != 10 {
		t.Errorf("page 3 = %v", got)
	}
	if got := Slice(rows, 4); got != nil {
		t.Errorf("page past the end should be empty, got %v", got)
	}
}
