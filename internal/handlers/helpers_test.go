package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/api"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/handlers"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/inspection"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/session"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/testutil"
)

// newConsole wires a handler against the fake backend, with the real
// templates and a real cookie store
func newConsole(t *testing.T, backend *testutil.Backend) (*mux.Router, *session.CookieStore) {
	t.Helper()

	templates := handlers.NewTemplateCache()
	if err := templates.Load("../../templates"); err != nil {
		t.Fatalf("load templates: %v", err)
	}

	store := session.NewCookieStore(testutil.SessionKey, false)
	h := &handlers.Handler{
		API:          api.NewClient(backend.URL),
		Sessions:     store,
		Templates:    templates,
		Guard:        inspection.NewSubmitGuard(),
		MediaBaseURL: "https://media.example.com",
	}
	return h.SetupRoutes(), store
}

// get issues a GET carrying the given cookies
func get(router *mux.Router, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// postForm issues a urlencoded POST carrying the given cookies
func postForm(router *mux.Router, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// multipartBody builds a multipart form of text fields, as the inspection
// page submits
func multipartBody(t *testing.T, fields map[string][]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, v := range values {
			if err := w.WriteField(key, v); err != nil {
				t.Fatalf("write field %s: %v", key, err)
			}
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

// jsonDecode reads a JSON request body into v
func jsonDecode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// postMultipart issues a multipart POST carrying the given cookies
func postMultipart(router *mux.Router, path string, body io.Reader, contentType string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
