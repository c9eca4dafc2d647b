package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func managerSession() *Session {
	return &Session{
		User: models.User{
			ID:    "u-7",
			Email: "m@example.com",
			Role:  models.RoleManager,
		},
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		IssuedAt:     time.Now().UTC(),
	}
}

// roundTrip saves a session and returns a request carrying the cookies
// the save produced, i.e. what the browser would send back.
func roundTrip(t *testing.T, store *CookieStore, s *Session) *http.Request {
	t.Helper()
	w := httptest.NewRecorder()
	if err := store.Save(w, httptest.NewRequest(http.MethodGet, "/", nil), s); err != nil {
		t.Fatalf("save session: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestCookieStoreRoundTrip(t *testing.T) {
	store := NewCookieStore(testKey, false)
	req := roundTrip(t, store, managerSession())

	got, err := store.Load(req)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if got.User.ID != "u-7" || got.User.Role != models.RoleManager {
		t.Errorf("user = %+v", got.User)
	}
	if got.AccessToken != "access-token" || got.RefreshToken != "refresh-token" {
		t.Errorf("tokens not preserved: %+v", got)
	}
}

func TestLoadWithoutCookie(t *testing.T) {
	store := NewCookieStore(testKey, false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := store.Load(req); !errors.Is(err, ErrNoSession) {
		t.Fatalf("want ErrNoSession, got %v", err)
	}
}

func TestLoadWithTamperedCookie(t *testing.T) {
	store := NewCookieStore(testKey, false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "ht-console", Value: "garbage"})
	if _, err := store.Load(req); !errors.Is(err, ErrNoSession) {
		t.Fatalf("want ErrNoSession, got %v", err)
	}
}

func TestClearExpiresCookie(t *testing.T) {
	store := NewCookieStore(testKey, false)
	req := roundTrip(t, store, managerSession())

	w := httptest.NewRecorder()
	if err := store.Clear(w, req); err != nil {
		t.Fatalf("clear session: %v", err)
	}

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "ht-console" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("clear should expire the session cookie")
	}

	// A browser honoring the expiry sends nothing back
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := store.Load(next); !errors.Is(err, ErrNoSession) {
		t.Fatalf("want ErrNoSession after clear, got %v", err)
	}
}

func TestLandingRoute(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{models.RoleAdmin, "/admin"},
		{models.RoleManager, "/manager"},
		{models.RoleBuyer, "/"},
		{models.RoleSeller, "/"},
		{"", "/"},
	}
	for _, tt := range tests {
		s := &Session{User: models.User{Role: tt.role}}
		if got := s.LandingRoute(); got != tt.want {
			t.Errorf("LandingRoute(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestFlashDrainsOnRead(t *testing.T) {
	store := NewCookieStore(testKey, false)

	w := httptest.NewRecorder()
	store.AddFlash(w, httptest.NewRequest(http.MethodGet, "/", nil), Flash{Type: "success", Message: "saved"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}

	w2 := httptest.NewRecorder()
	flashes := store.Flashes(w2, req)
	if len(flashes) != 1 || flashes[0].Message != "saved" {
		t.Fatalf("flashes = %+v", flashes)
	}

	// Replaying with the drained cookie yields nothing
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w2.Result().Cookies() {
		next.AddCookie(c)
	}
	if again := store.Flashes(httptest.NewRecorder(), next); len(again) != 0 {
		t.Fatalf("flashes should drain, got %+v", again)
	}
}
