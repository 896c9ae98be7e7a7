// Package sqlite provides the SQLite dialect definition.
package sqlite

import (
	"github.com/tablekit/tablekit/pkg/dialect"
	"github.com/tablekit/tablekit/pkg/typespec"
)

func init() {
	dialect.Register(Definition)
}

// Definition is the SQLite dialect configuration.
var Definition = &dialect.Definition{
	Name:          dialect.SQLite,
	DefaultSchema: "main",
	Quote:         `"`,
	QuoteEnd:      `"`,
	Escape:        `""`,
	AutoIncrement: "AUTOINCREMENT",
	TypeNames: map[typespec.Kind]string{
		typespec.Integer:  "INTEGER",
		typespec.String:   "VARCHAR",
		typespec.Text:     "TEXT",
		typespec.Numeric:  "NUMERIC",
		typespec.Float:    "FLOAT",
		typespec.Boolean:  "BOOLEAN",
		typespec.Date:     "DATE",
		typespec.DateTime: "DATETIME",
		typespec.Time:     "TIME",
	},
}
