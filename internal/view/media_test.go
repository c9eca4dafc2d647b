package view

import "testing"

func TestResolveMediaURL(t *testing.T) {
	const base = "https://media.example.com/"

	tests := []struct {
		name string
		path string
		want string
	}{
		{"absolute http", "http://cdn.example.com/a.jpg", "http://cdn.example.com/a.jpg"},
		{"absolute https", "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"path absolute", "/media/items/a.jpg", "https://media.example.com/media/items/a.jpg"},
		{"relative", "items/a.jpg", "items/a.jpg"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveMediaURL(base, tt.path); got != tt.want {
				t.Errorf("ResolveMediaURL(%q, %q) = %q, want %q", base, tt.path, got, tt.want)
			}
		})
	}
}

func TestResolveMediaURLBaseWithoutTrailingSlash(t *testing.T) {
	got := ResolveMediaURL("https://media.example.com", "/a.jpg")
	if got != "https://media.example.com/a.jpg" {
		t.Errorf("got %q", got)
	}
}
