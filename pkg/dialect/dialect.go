// Package dialect provides SQL dialect definitions for table rendering.
//
// This package contains the public contract: a pure-data Definition per
// database engine family plus a process-global registry. Concrete
// definitions are registered from pkg/dialects/*/ packages in their init
// functions.
package dialect

import (
	"strconv"
	"strings"

	"github.com/tablekit/tablekit/pkg/typespec"
)

// Name identifies a dialect. The closed set of supported names is whatever
// the pkg/dialects packages register.
type Name string

const (
	MySQL      Name = "mysql"
	PostgreSQL Name = "postgresql"
	SQLite     Name = "sqlite"
	Redshift   Name = "redshift"
	Athena     Name = "athena"
	Oracle     Name = "oracle"
)

// Definition is the pure-data dialect configuration: identifier quoting,
// default schema, and the type rendering table. Behavior shared by all
// dialects lives on methods of this type.
type Definition struct {
	Name          Name
	DefaultSchema string

	// Identifier quoting
	Quote    string // opening quote, e.g. `"` or a backtick
	QuoteEnd string // closing quote
	Escape   string // replacement for QuoteEnd inside an identifier

	// TypeNames maps a canonical kind to the dialect's SQL spelling.
	// Parameters (length, precision/scale) are appended by RenderType.
	TypeNames map[typespec.Kind]string

	// TextWithLength is the spelling used for Text columns that carry a
	// length parameter, for dialects whose plain Text spelling cannot
	// take one (VARCHAR(MAX), CLOB, STRING). Empty means the Text
	// spelling accepts a length suffix directly.
	TextWithLength string

	// AutoIncrement is the column suffix for auto-incrementing keys;
	// empty when the dialect expresses identity some other way.
	AutoIncrement string

	// BindStyle selects the parameter placeholder syntax for generated
	// DML. The zero value is BindQuestion.
	BindStyle BindStyle
}

// BindStyle enumerates parameter placeholder syntaxes.
type BindStyle int

const (
	// BindQuestion renders every placeholder as "?".
	BindQuestion BindStyle = iota
	// BindDollar renders positional placeholders as "$1", "$2", ...
	BindDollar
	// BindColon renders positional placeholders as ":1", ":2", ...
	BindColon
)

// Placeholder renders the i-th (1-based) bind parameter.
func (d *Definition) Placeholder(i int) string {
	switch d.BindStyle {
	case BindDollar:
		return "$" + strconv.Itoa(i)
	case BindColon:
		return ":" + strconv.Itoa(i)
	default:
		return "?"
	}
}

// RenderType renders a canonical type descriptor in this dialect's SQL
// spelling, e.g. Numeric{18,5} on oracle becomes "NUMBER(18, 5)".
func (d *Definition) RenderType(t typespec.Type) string {
	base, ok := d.TypeNames[t.Kind]
	if !ok {
		base = strings.ToUpper(string(t.Kind))
	}
	if t.Kind == typespec.Text && t.HasLength && d.TextWithLength != "" {
		base = d.TextWithLength
	}

	switch {
	case t.HasLength:
		return base + "(" + strconv.Itoa(t.Length) + ")"
	case t.HasPrecision && t.HasScale:
		return base + "(" + strconv.Itoa(t.Precision) + ", " + strconv.Itoa(t.Scale) + ")"
	case t.HasPrecision:
		return base + "(" + strconv.Itoa(t.Precision) + ")"
	case len(t.Args) > 0:
		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			parts[i] = strconv.Itoa(a)
		}
		return base + "(" + strings.Join(parts, ", ") + ")"
	default:
		return base
	}
}

// QuoteIdentifier quotes an identifier using the dialect's quote
// characters, escaping embedded closing quotes.
func (d *Definition) QuoteIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, d.QuoteEnd, d.Escape)
	return d.Quote + escaped + d.QuoteEnd
}

// QualifyTable renders the schema-qualified table name. Identifiers are
// left unquoted; statements quote only where a dialect requires it.
func (d *Definition) QualifyTable(schema, table string) string {
	if schema == "" {
		return table
	}
	return schema + "." + table
}
