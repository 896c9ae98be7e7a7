// Package athena provides the AWS Athena dialect definition. Athena speaks
// Presto SQL; DDL type spellings follow the Hive/Glue catalog conventions.
package athena

import (
	"github.com/tablekit/tablekit/pkg/dialect"
	"github.com/tablekit/tablekit/pkg/typespec"
)

func init() {
	dialect.Register(Definition)
}

// Definition is the Athena dialect configuration.
var Definition = &dialect.Definition{
	Name:          dialect.Athena,
	DefaultSchema: "default",
	Quote:         `"`,
	QuoteEnd:      `"`,
	Escape:        `""`,
	TypeNames: map[typespec.Kind]string{
		typespec.Integer:  "BIGINT",
		typespec.String:   "VARCHAR",
		typespec.Text:     "STRING",
		typespec.Numeric:  "DECIMAL",
		typespec.Float:    "DOUBLE",
		typespec.Boolean:  "BOOLEAN",
		typespec.Date:     "DATE",
		typespec.DateTime: "TIMESTAMP",
		typespec.Time:     "TIME",
	},
	TextWithLength: "VARCHAR",
}
