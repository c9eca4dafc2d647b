// Package view holds pure presentation helpers shared by the dashboard
// pages: media URL resolution, page-number windowing, and list filtering.
package view

import "strings"

// ResolveMediaURL resolves a media reference for rendering: absolute URLs
// pass through unchanged, path-absolute references get the media base URL
// prefixed, and anything else is returned as-is
func ResolveMediaURL(baseURL, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return strings.TrimRight(baseURL, "/") + path
	}
	return path
}
