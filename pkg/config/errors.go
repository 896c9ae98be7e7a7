package config

import "fmt"

// SchemaValidationError is returned when the raw document does not match
// the expected shape: wrong field types, an unsupported dialect name, or
// an unsupported column type name.
type SchemaValidationError struct {
	Table  string // offending table, empty for document-level problems
	Field  string // offending field, when known
	Reason string
	Cause  error
}

func (e *SchemaValidationError) Error() string {
	msg := "invalid configuration"
	if e.Table != "" {
		msg += fmt.Sprintf(" for table %q", e.Table)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" (field %q)", e.Field)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *SchemaValidationError) Unwrap() error { return e.Cause }

// NotFoundError is returned when a table name is absent from the document.
type NotFoundError struct {
	Table string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("table %q not found in configuration", e.Table)
}

// MissingDialectError is returned when, after the defaulting cascade, a
// table still has no dialect.
type MissingDialectError struct {
	Table string
}

func (e *MissingDialectError) Error() string {
	return fmt.Sprintf("no dialect specified for table %q and no default_dialect in metadata", e.Table)
}
