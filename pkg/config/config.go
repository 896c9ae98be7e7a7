// Package config loads and validates the declarative table-definition
// document and applies the document-level defaulting cascade.
//
// The document shape is YAML: an optional metadata block carrying
// default_dialect / default_schema, and a tables map of per-table
// definitions (columns, indexes, options, dialect_methods). Loading
// validates the shape once and runs the cascade once; the document is
// read-only afterward.
package config

import (
	"fmt"
	"sort"

	"github.com/tablekit/tablekit/pkg/dialect"
	"github.com/tablekit/tablekit/pkg/params"
	"github.com/tablekit/tablekit/pkg/template"
)

// Metadata holds document-wide defaults adopted by tables that leave the
// corresponding field unset.
type Metadata struct {
	DefaultDialect string `koanf:"default_dialect"`
	DefaultSchema  string `koanf:"default_schema"`
}

// ColumnConfig describes one column of a table definition.
type ColumnConfig struct {
	Name string `koanf:"name"`
	Type string `koanf:"type"` // canonical or alias spelling

	Length    *int `koanf:"length"`
	Precision *int `koanf:"precision"`
	Scale     *int `koanf:"scale"`

	PrimaryKey    bool  `koanf:"primary_key"`
	Nullable      *bool `koanf:"nullable"` // nil means the default, true
	Unique        bool  `koanf:"unique"`
	AutoIncrement bool  `koanf:"auto_increment"`

	Default any `koanf:"default"`
}

// IsNullable reports the effective nullability; columns are nullable
// unless the document says otherwise.
func (c *ColumnConfig) IsNullable() bool {
	return c.Nullable == nil || *c.Nullable
}

// TypeSpecString composes the full type specification for parsing,
// folding the separate length / precision / scale fields into the
// parenthesized form when the type spelling itself carries none.
func (c *ColumnConfig) TypeSpecString() string {
	spec := c.Type
	switch {
	case c.Length != nil:
		spec = fmt.Sprintf("%s(%d)", spec, *c.Length)
	case c.Precision != nil && c.Scale != nil:
		spec = fmt.Sprintf("%s(%d,%d)", spec, *c.Precision, *c.Scale)
	case c.Precision != nil:
		spec = fmt.Sprintf("%s(%d)", spec, *c.Precision)
	}
	return spec
}

// IndexConfig describes one index of a table definition.
type IndexConfig struct {
	Name    string   `koanf:"name"`
	Columns []string `koanf:"columns"`
	Unique  bool     `koanf:"unique"`
}

// TableConfig describes one table. After the defaulting cascade its
// Dialect is non-empty for every table the document can serve; lookups on
// tables where neither the table nor the metadata supplied a dialect fail
// with *MissingDialectError.
type TableConfig struct {
	Dialect        dialect.Name          `koanf:"dialect"`
	SchemaName     string                `koanf:"schema_name"`
	Columns        []ColumnConfig        `koanf:"columns"`
	Indexes        []IndexConfig         `koanf:"indexes"`
	Options        params.Map            `koanf:"options"`
	DialectMethods map[string]params.Map `koanf:"dialect_methods"`
}

// Document is the loaded, validated configuration with the cascade
// already applied.
type Document struct {
	Metadata *Metadata               `koanf:"metadata"`
	Tables   map[string]*TableConfig `koanf:"tables"`

	// source is the file the document was loaded from; empty for
	// in-memory documents.
	source string
}

// Source returns the file path the document was loaded from, or empty for
// in-memory documents.
func (d *Document) Source() string { return d.source }

// TableNames returns all defined table names, sorted.
func (d *Document) TableNames() []string {
	names := make([]string, 0, len(d.Tables))
	for name := range d.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table returns the configuration for name. It fails with *NotFoundError
// for unknown tables and *MissingDialectError when the cascade could not
// settle a dialect for the table.
func (d *Document) Table(name string) (*TableConfig, error) {
	cfg, ok := d.Tables[name]
	if !ok {
		return nil, &NotFoundError{Table: name}
	}
	if cfg.Dialect == "" {
		return nil, &MissingDialectError{Table: name}
	}
	return cfg, nil
}

// MethodConfig returns the stored configuration for a dialect method on a
// table, template-expanded with vars when vars is non-empty. The second
// return is false when the table defines no configuration for the method.
func (d *Document) MethodConfig(table, method string, vars map[string]string) (params.Map, bool, error) {
	cfg, err := d.Table(table)
	if err != nil {
		return nil, false, err
	}

	stored, ok := cfg.DialectMethods[method]
	if !ok {
		return nil, false, nil
	}

	out := stored.Clone()
	if len(vars) > 0 {
		expanded, err := template.ExpandMap(out, vars)
		if err != nil {
			return nil, true, err
		}
		out = expanded
	}
	return out, true, nil
}

// applyDefaults runs the defaulting cascade: explicitly set values are
// never overwritten, only empty fields adopt the metadata defaults.
func (d *Document) applyDefaults() {
	if d.Metadata == nil {
		return
	}
	for _, cfg := range d.Tables {
		if cfg.Dialect == "" && d.Metadata.DefaultDialect != "" {
			cfg.Dialect = dialect.Name(d.Metadata.DefaultDialect)
		}
		if cfg.SchemaName == "" && d.Metadata.DefaultSchema != "" {
			cfg.SchemaName = d.Metadata.DefaultSchema
		}
	}
}
