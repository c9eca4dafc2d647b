// Package testutil provides the shared fixtures for handler tests: a
// fake auction platform backend with per-route call counting, and
// helpers for issuing requests as a signed-in user.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/session"
)

// SessionKey signs the test cookie stores
var SessionKey = []byte("0123456789abcdef0123456789abcdef")

// Backend is a stand-in for the remote auction platform API. Routes are
// registered as "METHOD /api/path"; unregistered routes 404.
type Backend struct {
	*httptest.Server

	mu     sync.Mutex
	calls  map[string]int
	routes map[string]http.HandlerFunc
}

// NewBackend starts a fake backend; it is shut down with the test
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{
		calls:  make(map[string]int),
		routes: make(map[string]http.HandlerFunc),
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.dispatch))
	t.Cleanup(b.Server.Close)
	return b
}

// Handle registers a route, e.g. Handle("GET", "/api/manager/tasks", fn)
func (b *Backend) Handle(method, path string, fn http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[method+" "+path] = fn
}

// HandleJSON registers a route that responds 200 with the given value
func (b *Backend) HandleJSON(method, path string, v interface{}) {
	b.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, v)
	})
}

// HandleStatus registers a route that responds with a bare status and body
func (b *Backend) HandleStatus(method, path string, status int, body string) {
	b.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

// Calls reports how many times a route was hit
func (b *Backend) Calls(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[method+" "+path]
}

func (b *Backend) dispatch(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	b.mu.Lock()
	b.calls[key]++
	fn := b.routes[key]
	b.mu.Unlock()

	if fn == nil {
		http.NotFound(w, r)
		return
	}
	fn(w, r)
}

// WriteJSON writes v as a JSON response
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ManagerSession returns a signed-in manager
func ManagerSession() *session.Session {
	return &session.Session{
		User: models.User{
			ID:        "mgr-1",
			Email:     "manager@example.com",
			FirstName: "Morgan",
			Role:      models.RoleManager,
		},
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		IssuedAt:     time.Now().UTC(),
	}
}

// AdminSession returns a signed-in admin
func AdminSession() *session.Session {
	s := ManagerSession()
	s.User.ID = "adm-1"
	s.User.Email = "admin@example.com"
	s.User.Role = models.RoleAdmin
	return s
}

// SignIn saves the session through the store and returns the cookies a
// browser would carry on subsequent requests
func SignIn(t *testing.T, store *session.CookieStore, s *session.Session) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	if err := store.Save(w, httptest.NewRequest(http.MethodGet, "/", nil), s); err != nil {
		t.Fatalf("save session: %v", err)
	}
	return w.Result().Cookies()
}

// AssertRedirect fails unless the response is a redirect to location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("redirect to %q, want %q", got, location)
	}
}
