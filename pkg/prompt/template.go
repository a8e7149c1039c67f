package prompt

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"text/template"
)

// ErrNotReloadable is returned by Reload for templates parsed from memory.
var ErrNotReloadable = errors.New("prompt template has no backing file")

// Template wraps a text/template with an optional function map. Templates
// loaded from disk can be reloaded; in-memory ones are fixed.
type Template struct {
	name  string
	path  string
	funcs template.FuncMap

	mu   sync.RWMutex
	tmpl *template.Template
	hash string
}

// NewTemplate parses the template at path using the provided template functions.
func NewTemplate(path string, funcs template.FuncMap) (*Template, error) {
	if path == "" {
		return nil, fmt.Errorf("prompt template path is empty")
	}
	t := &Template{
		name:  filepath.Base(path),
		path:  path,
		funcs: funcs,
	}
	if err := t.reload(); err != nil {
		return nil, err
	}
	return t, nil
}

// Parse builds a template from source held in memory, typically an
// embedded default.
func Parse(name, src string, funcs template.FuncMap) (*Template, error) {
	t := &Template{
		name:  name,
		funcs: funcs,
	}
	if err := t.parse([]byte(src)); err != nil {
		return nil, err
	}
	return t, nil
}

// Render executes the template with the provided data and returns the rendered string.
func (t *Template) Render(data any) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.tmpl == nil {
		return "", fmt.Errorf("prompt template %q not parsed", t.name)
	}

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute prompt template %q: %w", t.name, err)
	}
	return buf.String(), nil
}

// Reload reparses the underlying template from disk. On failure the
// previously parsed template stays in place.
func (t *Template) Reload() error {
	if t.path == "" {
		return ErrNotReloadable
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reload()
}

// Name returns the template name (the file base name for file templates).
func (t *Template) Name() string {
	return t.name
}

// Path returns the backing file, or "" for in-memory templates.
func (t *Template) Path() string {
	return t.path
}

// Digest returns the sha256 hash of the template content.
func (t *Template) Digest() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hash
}

func (t *Template) reload() error {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return fmt.Errorf("read prompt template %q: %w", t.path, err)
	}
	return t.parse(data)
}

// parse expects the write lock to be held (or t to be unpublished).
func (t *Template) parse(data []byte) error {
	tmpl := template.New(t.name).Option("missingkey=error")
	if len(t.funcs) > 0 {
		tmpl = tmpl.Funcs(t.funcs)
	}
	if _, err := tmpl.Parse(string(data)); err != nil {
		return fmt.Errorf("parse prompt template %q: %w", t.name, err)
	}
	t.tmpl = tmpl
	t.hash = computeDigest(data)
	return nil
}

func computeDigest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
