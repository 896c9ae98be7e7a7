// Package registry provides the lazily built table cache over a loaded
// configuration document.
package registry

import (
	"errors"
	"log/slog"

	"github.com/tablekit/tablekit/pkg/config"
	"github.com/tablekit/tablekit/pkg/table"
)

// ErrNotReloadable is returned by Reload on registries built from an
// in-memory document.
var ErrNotReloadable = errors.New("registry was not loaded from a file, cannot reload")

// TableRegistry hands out table objects built on demand from a
// configuration document, caching each one after its first build.
//
// A registry is not safe for concurrent use. Callers that share one
// across goroutines must serialize access themselves; the usual pattern
// is one registry per loading pipeline.
type TableRegistry struct {
	doc    *config.Document
	cache  map[string]table.SQLTable
	logger *slog.Logger
}

// Option configures a TableRegistry.
type Option func(*TableRegistry)

// WithLogger attaches a logger; the registry emits debug lines on cache
// misses and resets.
func WithLogger(logger *slog.Logger) Option {
	return func(r *TableRegistry) {
		r.logger = logger
	}
}

// New builds a registry over an already loaded document.
func New(doc *config.Document, opts ...Option) *TableRegistry {
	r := &TableRegistry{
		doc:   doc,
		cache: make(map[string]table.SQLTable),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromFile loads the document at path and builds a registry over it.
func NewFromFile(path string, opts ...Option) (*TableRegistry, error) {
	doc, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return New(doc, opts...), nil
}

// Document returns the underlying configuration document.
func (r *TableRegistry) Document() *config.Document { return r.doc }

// Get returns the table with the given name, building it on first
// access. Repeated calls return the same instance until Clear or
// Reload.
func (r *TableRegistry) Get(name string) (table.SQLTable, error) {
	if t, ok := r.cache[name]; ok {
		return t, nil
	}

	cfg, err := r.doc.Table(name)
	if err != nil {
		return nil, err
	}
	t, err := table.New(name, cfg)
	if err != nil {
		return nil, err
	}

	if r.logger != nil {
		r.logger.Debug("built table", "table", name, "dialect", cfg.Dialect)
	}
	r.cache[name] = t
	return t, nil
}

// List returns the names of all configured tables, sorted.
func (r *TableRegistry) List() []string {
	return r.doc.TableNames()
}

// Clear drops every cached table. Subsequent Gets rebuild from the
// document.
func (r *TableRegistry) Clear() {
	if r.logger != nil && len(r.cache) > 0 {
		r.logger.Debug("cleared table cache", "tables", len(r.cache))
	}
	r.cache = make(map[string]table.SQLTable)
}

// Reload re-reads the document from its file source and clears the
// cache. Registries built from an in-memory document cannot reload.
func (r *TableRegistry) Reload() error {
	source := r.doc.Source()
	if source == "" {
		return ErrNotReloadable
	}
	doc, err := config.Load(source)
	if err != nil {
		return err
	}
	r.doc = doc
	r.Clear()
	return nil
}
