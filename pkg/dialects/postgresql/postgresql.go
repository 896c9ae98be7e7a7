// Package postgresql provides the PostgreSQL dialect definition.
package postgresql

import (
	"github.com/tablekit/tablekit/pkg/dialect"
	"github.com/tablekit/tablekit/pkg/typespec"
)

func init() {
	dialect.Register(Definition)
}

// Definition is the PostgreSQL dialect configuration. PostgreSQL spells
// identity columns with SERIAL types rather than a column suffix, so
// AutoIncrement stays empty.
var Definition = &dialect.Definition{
	Name:          dialect.PostgreSQL,
	DefaultSchema: "public",
	Quote:         `"`,
	QuoteEnd:      `"`,
	Escape:        `""`,
	TypeNames: map[typespec.Kind]string{
		typespec.Integer:  "INTEGER",
		typespec.String:   "VARCHAR",
		typespec.Text:     "TEXT",
		typespec.Numeric:  "NUMERIC",
		typespec.Float:    "FLOAT",
		typespec.Boolean:  "BOOLEAN",
		typespec.Date:     "DATE",
		typespec.DateTime: "TIMESTAMP",
		typespec.Time:     "TIME",
	},
	TextWithLength: "VARCHAR",
	BindStyle:      dialect.BindDollar,
}
