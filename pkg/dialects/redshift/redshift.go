// Package redshift provides the Amazon Redshift dialect definition.
// Redshift is PostgreSQL-derived; it shares the quoting rules and most of
// the type spellings but caps TEXT at VARCHAR semantics server-side.
package redshift

import (
	"github.com/tablekit/tablekit/pkg/dialect"
	"github.com/tablekit/tablekit/pkg/typespec"
)

func init() {
	dialect.Register(Definition)
}

// Definition is the Redshift dialect configuration.
var Definition = &dialect.Definition{
	Name:          dialect.Redshift,
	DefaultSchema: "public",
	Quote:         `"`,
	QuoteEnd:      `"`,
	Escape:        `""`,
	TypeNames: map[typespec.Kind]string{
		typespec.Integer:  "INTEGER",
		typespec.String:   "VARCHAR",
		typespec.Text:     "VARCHAR(MAX)",
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
