// Package handlers implements the console's pages: authentication,
// admin and manager dashboards, the inspection review workflow, and the
// live-auction websocket endpoint.
package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/api"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/inspection"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/live"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/session"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/view"
)

// Sessions is what the handlers need from the session layer; the cookie
// store satisfies it, tests may substitute their own
type Sessions interface {
	session.Store
	AddFlash(w http.ResponseWriter, r *http.Request, f session.Flash)
	Flashes(w http.ResponseWriter, r *http.Request) []session.Flash
}

// Handler carries the dependencies shared by all pages
type Handler struct {
	API          *api.Client
	Sessions     Sessions
	Templates    *TemplateCache
	Hub          *live.Hub
	Feed         *live.Feed
	Guard        *inspection.SubmitGuard
	MediaBaseURL string
}

// pageData is the payload handed to every template
type pageData struct {
	Session *session.Session
	Flashes []session.Flash
	CSRF    template.HTML
	Errors  map[string]string
	Form    map[string]string
	Data    map[string]interface{}
}

// render executes a page template with the common page data filled in
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data *pageData) {
	tmpl := h.Templates.Get(name)
	if tmpl == nil {
		slog.Error("template not found", "name", name)
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	if data == nil {
		data = &pageData{}
	}
	if data.Session == nil {
		if s, err := h.Sessions.Load(r); err == nil {
			data.Session = s
		}
	}
	if data.Flashes == nil {
		data.Flashes = h.Sessions.Flashes(w, r)
	}
	data.CSRF = csrf.TemplateField(r)
	if err := tmpl.Execute(w, data); err != nil {
		slog.Error("render failed", "template", name, "error", err)
	}
}

// flashError queues an error notification for the next page
func (h *Handler) flashError(w http.ResponseWriter, r *http.Request, msg string) {
	h.Sessions.AddFlash(w, r, session.Flash{Type: "error", Message: msg})
}

// flashSuccess queues a success notification for the next page
func (h *Handler) flashSuccess(w http.ResponseWriter, r *http.Request, msg string) {
	h.Sessions.AddFlash(w, r, session.Flash{Type: "success", Message: msg})
}

// mediaURL resolves a media reference against the configured base URL
func (h *Handler) mediaURL(path string) string {
	return view.ResolveMediaURL(h.MediaBaseURL, path)
}
