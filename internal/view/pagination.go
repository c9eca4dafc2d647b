package view

// PageSize is the fixed number of rows per listing page
const PageSize = 5

// Page is one entry in a windowed page-number sequence. A Gap entry
// renders as an ellipsis.
type Page struct {
	Number  int
	Gap     bool
	Current bool
}

// Window collapses a long page range into a windowed sequence: near the
// start it shows the first four pages plus the last, near the end the
// first plus the last four, and otherwise a three-page window centered on
// the current page flanked by first and last. Five or fewer pages are
// shown in full.
func Window(total, current int) []Page {
	if total <= 0 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	if total <= 5 {
		pages := make([]Page, 0, total)
		for n := 1; n <= total; n++ {
			pages = append(pages, Page{Number: n, Current: n == current})
		}
		return pages
	}

	var pages []Page
	add := func(n int) {
		pages = append(pages, Page{Number: n, Current: n == current})
	}
	gap := func() {
		pages = append(pages, Page{Gap: true})
	}

	switch {
	case current <= 3:
		for n := 1; n <= 4; n++ {
			add(n)
		}
		gap()
		add(total)
	case current >= total-2:
		add(1)
		gap()
		for n := total - 3; n <= total; n++ {
			add(n)
		}
	default:
		add(1)
		gap()
		for n := current - 1; n <= current+1; n++ {
			add(n)
		}
		gap()
		add(total)
	}
	return pages
}

// TotalPages returns the number of pages needed for n rows
func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// Slice returns the rows visible on a 1-based page
func Slice[T any](rows []T, page int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(rows) {
		return nil
	}
	end := start + PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
