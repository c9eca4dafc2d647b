package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
)

const (
	cookieName = "ht-console"
	valueKey   = "session"
)

// ErrNoSession is returned when no authenticated session is present
var ErrNoSession = errors.New("no active session")

// Session is the authenticated user's state persisted across page loads
type Session struct {
	User         models.User `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	IssuedAt     time.Time   `json:"issued_at"`
}

// LandingRoute returns the role-specific dashboard route for the session
func (s *Session) LandingRoute() string {
	switch s.User.Role {
	case models.RoleAdmin:
		return "/admin"
	case models.RoleManager:
		return "/manager"
	default:
		return "/"
	}
}

// Store reads and writes the session. Handlers depend on this interface
// so tests can substitute an in-memory fake.
type Store interface {
	Load(r *http.Request) (*Session, error)
	Save(w http.ResponseWriter, r *http.Request, s *Session) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

// CookieStore persists the session in an encrypted cookie
type CookieStore struct {
	store *sessions.CookieStore
}

// NewCookieStore creates a cookie-backed session store
func NewCookieStore(key []byte, secure bool) *CookieStore {
	cs := sessions.NewCookieStore(key)
	cs.Options.HttpOnly = true
	cs.Options.Secure = secure
	cs.Options.SameSite = http.SameSiteLaxMode
	cs.Options.Path = "/"
	return &CookieStore{store: cs}
}

// Load returns the current session, or ErrNoSession when absent
func (c *CookieStore) Load(r *http.Request) (*Session, error) {
	sess, err := c.store.Get(r, cookieName)
	if err != nil {
		// An undecodable cookie is treated as no session
		return nil, ErrNoSession
	}
	raw, ok := sess.Values[valueKey].(string)
	if !ok || raw == "" {
		return nil, ErrNoSession
	}
	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, ErrNoSession
	}
	if s.AccessToken == "" {
		return nil, ErrNoSession
	}
	return &s, nil
}

// Save persists the session to the cookie
func (c *CookieStore) Save(w http.ResponseWriter, r *http.Request, s *Session) error {
	sess, _ := c.store.Get(r, cookieName)
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	sess.Values[valueKey] = string(raw)
	return sess.Save(r, w)
}

// Clear removes the session cookie wholesale
func (c *CookieStore) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := c.store.Get(r, cookieName)
	delete(sess.Values, valueKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
