package config

import (
	"errors"
	"fmt"
	"os"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tablekit/tablekit/pkg/dialect"
	"github.com/tablekit/tablekit/pkg/typespec"

	// Built-in dialects register themselves for the closed-set dialect
	// validation below.
	_ "github.com/tablekit/tablekit/pkg/dialects/athena"
	_ "github.com/tablekit/tablekit/pkg/dialects/mysql"
	_ "github.com/tablekit/tablekit/pkg/dialects/oracle"
	_ "github.com/tablekit/tablekit/pkg/dialects/postgresql"
	_ "github.com/tablekit/tablekit/pkg/dialects/redshift"
	_ "github.com/tablekit/tablekit/pkg/dialects/sqlite"
)

// Load reads, validates, and default-cascades a YAML document from path.
func Load(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("configuration file not found: %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
		return nil, &SchemaValidationError{Reason: "cannot parse document", Cause: err}
	}

	doc, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	doc.source = path
	return doc, nil
}

// LoadMap builds a document from an in-memory mapping, using the same
// validation and cascade as Load. Useful for tests and embedding callers.
func LoadMap(raw map[string]any) (*Document, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(raw, "."), nil); err != nil {
		return nil, &SchemaValidationError{Reason: "cannot read document", Cause: err}
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Document, error) {
	var doc Document
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, &SchemaValidationError{Reason: "document does not match expected shape", Cause: err}
	}

	if err := validate(&doc); err != nil {
		return nil, err
	}

	// Cascade runs exactly once, after shape validation and before the
	// document becomes visible to callers.
	doc.applyDefaults()
	return &doc, nil
}

func validate(doc *Document) error {
	if len(doc.Tables) == 0 {
		return &SchemaValidationError{Field: "tables", Reason: "at least one table is required"}
	}

	if doc.Metadata != nil && doc.Metadata.DefaultDialect != "" {
		if !dialect.IsRegistered(dialect.Name(doc.Metadata.DefaultDialect)) {
			return &SchemaValidationError{
				Field:  "metadata.default_dialect",
				Reason: fmt.Sprintf("unsupported dialect %q (available: %v)", doc.Metadata.DefaultDialect, dialect.List()),
			}
		}
	}

	for name, table := range doc.Tables {
		if table == nil {
			return &SchemaValidationError{Table: name, Reason: "table definition is empty"}
		}

		if table.Dialect != "" && !dialect.IsRegistered(table.Dialect) {
			return &SchemaValidationError{
				Table:  name,
				Field:  "dialect",
				Reason: fmt.Sprintf("unsupported dialect %q (available: %v)", table.Dialect, dialect.List()),
			}
		}

		if len(table.Columns) == 0 {
			return &SchemaValidationError{Table: name, Field: "columns", Reason: "at least one column is required"}
		}

		for _, col := range table.Columns {
			if col.Name == "" {
				return &SchemaValidationError{Table: name, Field: "columns", Reason: "column name is required"}
			}
			if err := validateColumnType(col.Type); err != nil {
				return &SchemaValidationError{Table: name, Field: "columns." + col.Name + ".type", Cause: err}
			}
		}

		for _, idx := range table.Indexes {
			if idx.Name == "" || len(idx.Columns) == 0 {
				return &SchemaValidationError{Table: name, Field: "indexes", Reason: "index name and columns are required"}
			}
		}
	}

	return nil
}

// validateColumnType accepts anything the type parser accepts, falling
// back to the legacy fixed name set so both canonical spellings and alias
// spellings load.
func validateColumnType(spec string) error {
	if spec == "" {
		return fmt.Errorf("column type is required")
	}
	_, err := typespec.Parse(spec)
	if err == nil {
		return nil
	}
	// The legacy canonical spellings (e.g. "Integer") are not aliases but
	// still load; anything else surfaces the parser's error.
	var unknown *typespec.UnknownTypeError
	if errors.As(err, &unknown) && typespec.IsKnown(spec) {
		return nil
	}
	return err
}
