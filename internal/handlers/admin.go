package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/view"
)

// listing bundles the shared search/filter/pagination state of the
// dashboard list pages
type listing struct {
	Items  []models.AuctionItem
	Query  string
	Status string
	Page   int
	Pages  []view.Page
	Total  int
}

// buildListing applies the shared list presentation: substring search,
// status filter, fixed-size pages, windowed page numbers
func buildListing(items []models.AuctionItem, r *http.Request) listing {
	query := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	filtered := view.FilterAuctions(items, query, status)
	total := view.TotalPages(len(filtered))
	return listing{
		Items:  view.Slice(filtered, page),
		Query:  query,
		Status: status,
		Page:   page,
		Pages:  view.Window(total, page),
		Total:  len(filtered),
	}
}

// AdminDashboard lists all auctions with search, status filter and
// pagination
func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	items, err := h.API.ListAuctions(r.Context(), sess.AccessToken, "")
	if err != nil {
		h.handleAPIError(w, r, err, "/sign-in")
		return
	}
	h.render(w, r, "admin-dashboard.html", &pageData{
		Session: sess,
		Data:    map[string]interface{}{"Listing": buildListing(items, r)},
	})
}

// AdminCompleted lists closed auctions
func (h *Handler) AdminCompleted(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	items, err := h.API.ListAuctions(r.Context(), sess.AccessToken, models.StatusClosed)
	if err != nil {
		h.handleAPIError(w, r, err, "/admin")
		return
	}
	h.render(w, r, "admin-completed.html", &pageData{
		Session: sess,
		Data:    map[string]interface{}{"Listing": buildListing(items, r)},
	})
}

// AdminUsers lists platform users
func (h *Handler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	users, err := h.API.ListUsers(r.Context(), sess.AccessToken)
	if err != nil {
		h.handleAPIError(w, r, err, "/admin")
		return
	}
	h.render(w, r, "admin-users.html", &pageData{
		Session: sess,
		Data:    map[string]interface{}{"Users": users},
	})
}

// AdminChecklists lists checklist templates and categories
func (h *Handler) AdminChecklists(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	templates, err := h.API.ListChecklistTemplates(r.Context(), sess.AccessToken)
	if err != nil {
		h.handleAPIError(w, r, err, "/admin")
		return
	}
	categories, err := h.API.ListCategories(r.Context(), sess.AccessToken)
	if err != nil {
		h.handleAPIError(w, r, err, "/admin")
		return
	}
	h.render(w, r, "admin-checklists.html", &pageData{
		Session: sess,
		Data: map[string]interface{}{
			"Templates":  templates,
			"Categories": categories,
		},
	})
}

// AdminChecklistCreate creates a checklist template from the form. Each
// category is a line of "Name: item, item, item".
func (h *Handler) AdminChecklistCreate(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	req := models.ChecklistTemplateRequest{
		Title:      r.FormValue("title"),
		Categories: parseCategoryLines(r.FormValue("categories")),
	}
	if req.Title == "" {
		h.flashError(w, r, "template title is required")
		http.Redirect(w, r, "/admin/checklists", http.StatusSeeOther)
		return
	}
	if _, err := h.API.CreateChecklistTemplate(r.Context(), sess.AccessToken, req); err != nil {
		h.handleAPIError(w, r, err, "/admin/checklists")
		return
	}
	h.flashSuccess(w, r, "checklist template created")
	http.Redirect(w, r, "/admin/checklists", http.StatusSeeOther)
}

// AdminChecklistUpdate updates a checklist template
func (h *Handler) AdminChecklistUpdate(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	id := mux.Vars(r)["id"]
	req := models.ChecklistTemplateRequest{
		Title:      r.FormValue("title"),
		Categories: parseCategoryLines(r.FormValue("categories")),
	}
	if _, err := h.API.UpdateChecklistTemplate(r.Context(), sess.AccessToken, id, req); err != nil {
		h.handleAPIError(w, r, err, "/admin/checklists")
		return
	}
	h.flashSuccess(w, r, "checklist template updated")
	http.Redirect(w, r, "/admin/checklists", http.StatusSeeOther)
}

// AdminChecklistDelete removes a checklist template
func (h *Handler) AdminChecklistDelete(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	id := mux.Vars(r)["id"]
	if err := h.API.DeleteChecklistTemplate(r.Context(), sess.AccessToken, id); err != nil {
		h.handleAPIError(w, r, err, "/admin/checklists")
		return
	}
	h.flashSuccess(w, r, "checklist template deleted")
	http.Redirect(w, r, "/admin/checklists", http.StatusSeeOther)
}

// parseCategoryLines turns "Name: item, item" lines into checklist
// categories, skipping malformed lines
func parseCategoryLines(raw string) []models.ChecklistCategory {
	var out []models.ChecklistCategory
	for _, line := range strings.Split(raw, "\n") {
		name, itemsRaw, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		var items []string
		for _, item := range strings.Split(itemsRaw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		if name == "" || len(items) == 0 {
			continue
		}
		out = append(out, models.ChecklistCategory{Name: name, Items: items})
	}
	return out
}
