package table

import (
	"fmt"
	"strings"

	"github.com/tablekit/tablekit/pkg/config"
	"github.com/tablekit/tablekit/pkg/dialect"
	"github.com/tablekit/tablekit/pkg/typespec"
)

// Column is a fully resolved table column: the declared type spelling has
// been parsed into its canonical descriptor and the nullability default
// applied.
type Column struct {
	Name          string
	Type          typespec.Type
	PrimaryKey    bool
	Nullable      bool
	Unique        bool
	AutoIncrement bool
	Default       any
}

func buildColumns(tableName string, cfgs []config.ColumnConfig) ([]Column, error) {
	cols := make([]Column, 0, len(cfgs))
	for i := range cfgs {
		cc := &cfgs[i]
		t, err := typespec.Parse(cc.TypeSpecString())
		if err != nil {
			return nil, &ColumnTypeError{Table: tableName, Column: cc.Name, Err: err}
		}
		cols = append(cols, Column{
			Name:          cc.Name,
			Type:          t,
			PrimaryKey:    cc.PrimaryKey,
			Nullable:      cc.IsNullable() && !cc.PrimaryKey,
			Unique:        cc.Unique,
			AutoIncrement: cc.AutoIncrement,
			Default:       cc.Default,
		})
	}
	return cols, nil
}

// render produces the column clause of a CREATE TABLE statement in the
// given dialect. inlinePK puts PRIMARY KEY on the column itself, which
// auto-increment columns need on engines like SQLite.
func (c *Column) render(def *dialect.Definition, inlinePK bool) string {
	var b strings.Builder
	b.WriteString(def.QuoteIdentifier(c.Name))
	b.WriteString(" ")
	b.WriteString(def.RenderType(c.Type))
	if !c.Nullable {
		b.WriteString(" NOT NULL")
	}
	if c.Default != nil {
		b.WriteString(" DEFAULT ")
		b.WriteString(renderLiteral(c.Default))
	}
	if c.Unique && !c.PrimaryKey {
		b.WriteString(" UNIQUE")
	}
	if inlinePK && c.PrimaryKey {
		b.WriteString(" PRIMARY KEY")
	}
	if c.AutoIncrement && def.AutoIncrement != "" {
		b.WriteString(" ")
		b.WriteString(def.AutoIncrement)
	}
	return b.String()
}

// renderLiteral renders a configured default value as a SQL literal.
// Strings are single-quoted with embedded quotes doubled; everything
// else uses its Go formatting.
func renderLiteral(v any) string {
	switch x := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprintf("%v", x)
	}
}
