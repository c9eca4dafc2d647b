package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/api"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/session"
)

type ctxKey int

const sessionKey ctxKey = iota

// loggingMiddleware logs every request with its duration
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// requireSession loads the session into the request context or redirects
// to sign-in
func (h *Handler) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.Sessions.Load(r)
		if err != nil {
			http.Redirect(w, r, "/sign-in", http.StatusSeeOther)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), sessionKey, sess)))
	}
}

// requireRole gates a page to one role on top of requireSession
func (h *Handler) requireRole(role string, next http.HandlerFunc) http.HandlerFunc {
	return h.requireSession(func(w http.ResponseWriter, r *http.Request) {
		sess := currentSession(r)
		if sess.User.Role != role {
			http.Redirect(w, r, sess.LandingRoute(), http.StatusSeeOther)
			return
		}
		next(w, r)
	})
}

// currentSession returns the session placed in the context by
// requireSession; only call under it
func currentSession(r *http.Request) *session.Session {
	return r.Context().Value(sessionKey).(*session.Session)
}

// handleAPIError deals with a failed API call: a 401 tears the session
// down and sends the user to sign-in, anything else becomes a flash
// notification and a redirect back. Returns the redirect target used.
func (h *Handler) handleAPIError(w http.ResponseWriter, r *http.Request, err error, backTo string) {
	if errors.Is(err, api.ErrUnauthorized) {
		// session is stale or revoked; clear wholesale and start over
		if cerr := h.Sessions.Clear(w, r); cerr != nil {
			slog.Error("failed to clear session", "error", cerr)
		}
		http.Redirect(w, r, "/sign-in", http.StatusSeeOther)
		return
	}

	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr):
		h.flashError(w, r, apiErr.Message)
	case errors.Is(err, api.ErrUnavailable):
		h.flashError(w, r, api.ErrUnavailable.Error())
	default:
		slog.Error("api call failed", "error", err)
		h.flashError(w, r, "something went wrong, please try again")
	}
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}
