// Package inspection implements the manager inspection workflow: matching
// an auction item to its checklist template, tracking checked criteria,
// and assembling the decision payload submitted to the platform.
package inspection

import (
	"fmt"
	"strings"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
)

// Checklist is the display shape of a resolved template: ordered
// categories, each with positionally-identified items
type Checklist struct {
	Categories []Category
}

// Category is one group of criteria
type Category struct {
	Name  string
	Items []Item
}

// Item is a single criterion. IDs are positional within the category, so
// they are stable only while the template's item order is stable.
type Item struct {
	ID    int
	Label string
}

// ResolveTemplate selects the checklist template for an auction category.
// Matching is tiered: a title equal to "{category} inspection" wins over a
// title equal to the category name, which wins over a title that is a
// prefix of the category name. Within a tier the first template by list
// order wins. Titles and the category are lower-cased and trimmed before
// comparison. Returns nil when nothing matches.
func ResolveTemplate(templates []models.ChecklistTemplate, category string) *models.ChecklistTemplate {
	want := normalize(category)
	if want == "" {
		return nil
	}

	var equal, prefix *models.ChecklistTemplate
	for i := range templates {
		title := normalize(templates[i].Title)
		if title == "" {
			continue
		}
		switch {
		case title == want+" inspection":
			return &templates[i]
		case title == want && equal == nil:
			equal = &templates[i]
		case strings.HasPrefix(want, title) && prefix == nil:
			prefix = &templates[i]
		}
	}
	if equal != nil {
		return equal
	}
	return prefix
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Build turns a template into the display checklist. A nil or malformed
// template yields an empty checklist rather than an error; the review
// page simply renders without a checklist section.
func Build(tmpl *models.ChecklistTemplate) Checklist {
	var c Checklist
	if tmpl == nil {
		return c
	}
	for _, cat := range tmpl.Categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" || len(cat.Items) == 0 {
			continue
		}
		items := make([]Item, 0, len(cat.Items))
		for i, label := range cat.Items {
			items = append(items, Item{ID: i, Label: label})
		}
		c.Categories = append(c.Categories, Category{Name: name, Items: items})
	}
	return c
}

// State is the ephemeral checked/unchecked map for one review. It is
// rebuilt on every page interaction and only ever persists by being
// flattened into the submission payload.
type State struct {
	checked map[string]bool
}

// NewState creates an empty checklist state
func NewState() *State {
	return &State{checked: make(map[string]bool)}
}

// Key builds the flat map key for a category/item pair
func Key(category string, itemID int) string {
	return fmt.Sprintf("%s-%d", category, itemID)
}

// Toggle flips the checked flag for an item. Toggling twice restores the
// original state.
func (s *State) Toggle(category string, itemID int) {
	k := Key(category, itemID)
	s.checked[k] = !s.checked[k]
}

// Set forces an item's checked flag, used when rebuilding state from a
// submitted form
func (s *State) Set(category string, itemID int, checked bool) {
	s.checked[Key(category, itemID)] = checked
}

// Checked reports whether an item is checked
func (s *State) Checked(category string, itemID int) bool {
	return s.checked[Key(category, itemID)]
}

// Count holds the visible checked/total tally for one category
type Count struct {
	Checked int
	Total   int
}

// Counts recomputes the per-category tallies for a checklist
func (s *State) Counts(c Checklist) map[string]Count {
	counts := make(map[string]Count, len(c.Categories))
	for _, cat := range c.Categories {
		n := Count{Total: len(cat.Items)}
		for _, item := range cat.Items {
			if s.Checked(cat.Name, item.ID) {
				n.Checked++
			}
		}
		counts[cat.Name] = n
	}
	return counts
}

// Flatten returns a copy of the flat key → checked map for the payload
func (s *State) Flatten() map[string]bool {
	out := make(map[string]bool, len(s.checked))
	for k, v := range s.checked {
		out[k] = v
	}
	return out
}
