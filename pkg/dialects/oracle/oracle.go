// Package oracle provides the Oracle dialect definition.
package oracle

import (
	"github.com/tablekit/tablekit/pkg/dialect"
	"github.com/tablekit/tablekit/pkg/typespec"
)

func init() {
	dialect.Register(Definition)
}

// Definition is the Oracle dialect configuration. Identity comes from
// sequences, not a column suffix, so AutoIncrement stays empty.
var Definition = &dialect.Definition{
	Name:          dialect.Oracle,
	DefaultSchema: "",
	Quote:         `"`,
	QuoteEnd:      `"`,
	Escape:        `""`,
	TypeNames: map[typespec.Kind]string{
		typespec.Integer:  "INTEGER",
		typespec.String:   "VARCHAR2",
		typespec.Text:     "CLOB",
		typespec.Numeric:  "NUMBER",
		typespec.Float:    "FLOAT",
		typespec.Boolean:  "SMALLINT",
		typespec.Date:     "DATE",
		typespec.DateTime: "TIMESTAMP",
		typespec.Time:     "TIMESTAMP",
	},
	TextWithLength: "VARCHAR2",
	BindStyle:      dialect.BindColon,
}
