// Package mysql provides the MySQL dialect definition.
package mysql

import (
	"github.com/tablekit/tablekit/pkg/dialect"
	"github.com/tablekit/tablekit/pkg/typespec"
)

func init() {
	dialect.Register(Definition)
}

// Definition is the MySQL dialect configuration.
var Definition = &dialect.Definition{
	Name:          dialect.MySQL,
	DefaultSchema: "",
	Quote:         "`",
	QuoteEnd:      "`",
	Escape:        "``",
	AutoIncrement: "AUTO_INCREMENT",
	TypeNames: map[typespec.Kind]string{
		typespec.Integer:  "INTEGER",
		typespec.String:   "VARCHAR",
		typespec.Text:     "TEXT",
		typespec.Numeric:  "NUMERIC",
		typespec.Float:    "FLOAT",
		typespec.Boolean:  "BOOL",
		typespec.Date:     "DATE",
		typespec.DateTime: "DATETIME",
		typespec.Time:     "TIME",
	},
}
