package handlers

import (
	"html/template"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// TemplateCache holds parsed page templates
type TemplateCache struct {
	mu    sync.RWMutex
	cache map[string]*template.Template
	funcs template.FuncMap
}

// NewTemplateCache creates an empty cache
func NewTemplateCache() *TemplateCache {
	return &TemplateCache{
		cache: make(map[string]*template.Template),
		funcs: make(template.FuncMap),
	}
}

// AddFunc registers a template function; call before Load
func (tc *TemplateCache) AddFunc(name string, fn interface{}) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.funcs[name] = fn
}

// Load parses every *.html file in dir
func (tc *TemplateCache) Load(dir string) error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.funcs["prevPage"] = func(page int) int { return page - 1 }
	tc.funcs["nextPage"] = func(page int) int { return page + 1 }
	tc.funcs["humanTime"] = func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return humanize.Time(t)
	}
	tc.funcs["money"] = func(amount float64) string {
		return "$" + humanize.CommafWithDigits(amount, 2)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return err
	}
	for _, file := range files {
		name := filepath.Base(file)
		tmpl, err := template.New(name).Funcs(tc.funcs).ParseFiles(file)
		if err != nil {
			slog.Error("failed to parse template", "file", file, "error", err)
			return err
		}
		tc.cache[name] = tmpl
	}
	return nil
}

// Get returns a parsed template by file name, or nil
func (tc *TemplateCache) Get(name string) *template.Template {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.cache[name]
}
