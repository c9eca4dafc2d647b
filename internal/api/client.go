package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

var (
	// ErrUnauthorized is returned on any 401; callers must tear down the
	// local session and send the user back to sign-in
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnavailable wraps transport-level failures
	ErrUnavailable = errors.New("service unavailable, please try again later")
)

// Error is a server-rejected request with an extracted message
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// Client wraps the remote auction platform REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a API client for the given base URL; the "/api"
// path prefix is appended to every request
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Upload is a file carried in a multipart submission
type Upload struct {
	FileName string
	Content  io.Reader
}

// do performs a JSON request. A non-empty token is attached as a bearer
// Authorization header. A non-nil out receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, token, out)
}

// doMultipart performs a multipart/form-data POST with text fields plus
// uploaded files under the "images" field
func (c *Client) doMultipart(ctx context.Context, path, token string, fields map[string]string, files []Upload, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return fmt.Errorf("write field %s: %w", key, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile("images", f.FileName)
		if err != nil {
			return fmt.Errorf("create file part: %w", err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return fmt.Errorf("copy file %s: %w", f.FileName, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api"+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, token, out)
}

func (c *Client) send(req *http.Request, token string, out interface{}) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return fmt.Errorf("%w: %v", ErrUnavailable, uerr.Err)
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		return &Error{Status: resp.StatusCode, Message: extractMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// extractMessage pulls a human-readable message out of an error body.
// The backend is not consistent about its envelope, so the lookup falls
// back through the shapes it is known to produce.
func extractMessage(body []byte) string {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "request failed"
	}

	for _, key := range []string{"message", "error", "detail"} {
		if raw, ok := envelope[key]; ok {
			var s string
			if json.Unmarshal(raw, &s) == nil && s != "" {
				return s
			}
		}
	}

	// Field-specific errors: {"field": ["first problem", ...]}.
	// Keys are walked in sorted order so extraction is deterministic.
	keys := make([]string, 0, len(envelope))
	for key := range envelope {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		var list []string
		if json.Unmarshal(envelope[key], &list) == nil && len(list) > 0 {
			return list[0]
		}
	}
	return "request failed"
}
