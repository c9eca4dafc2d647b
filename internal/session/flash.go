package session

import (
	"encoding/gob"
	"net/http"
)

const flashCookie = "ht-flash"

// Flash is a one-shot notification shown on the next rendered page
type Flash struct {
	Type    string // "success" or "error"
	Message string
}

func init() {
	gob.Register(Flash{})
}

// AddFlash queues a notification for the next page render
func (c *CookieStore) AddFlash(w http.ResponseWriter, r *http.Request, f Flash) {
	sess, _ := c.store.Get(r, flashCookie)
	sess.AddFlash(f)
	_ = sess.Save(r, w)
}

// Flashes drains and returns queued notifications
func (c *CookieStore) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	sess, _ := c.store.Get(r, flashCookie)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(r, w)
	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			out = append(out, f)
		}
	}
	return out
}

var _ Store = (*CookieStore)(nil)
