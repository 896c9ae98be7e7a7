package table

import "fmt"

// ColumnTypeError is returned when a column's declared type cannot be
// parsed while building a table.
type ColumnTypeError struct {
	Table  string
	Column string
	Err    error
}

func (e *ColumnTypeError) Error() string {
	return fmt.Sprintf("table %q column %q: %v", e.Table, e.Column, e.Err)
}

func (e *ColumnTypeError) Unwrap() error { return e.Err }

// NoColumnsError is returned when a statement needs columns and the
// table (or the call) supplies none.
type NoColumnsError struct {
	Table     string
	Statement string
}

func (e *NoColumnsError) Error() string {
	return fmt.Sprintf("table %q: %s requires at least one column", e.Table, e.Statement)
}

// NoPrimaryKeyError is returned by statements that key on the primary
// key when the table defines none.
type NoPrimaryKeyError struct {
	Table     string
	Statement string
}

func (e *NoPrimaryKeyError) Error() string {
	return fmt.Sprintf("table %q: %s requires a primary key", e.Table, e.Statement)
}

// UnknownColumnError is returned when a caller names a column the table
// does not define.
type UnknownColumnError struct {
	Table  string
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("table %q has no column %q", e.Table, e.Column)
}
