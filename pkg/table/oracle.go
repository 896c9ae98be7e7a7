package table

import (
	"strconv"
	"strings"
)

// OracleTable adds the Oracle-specific operations: MERGE upserts,
// sequences for identity columns, and storage-aware DDL.
type OracleTable struct {
	*Table
	tablespace TablespaceOptions
}

func newOracleTable(base *Table) (*OracleTable, error) {
	t := &OracleTable{Table: base}
	if err := decodeParams(base.Options(), &t.tablespace); err != nil {
		return nil, err
	}

	var suffix strings.Builder
	if t.tablespace.Organization != "" {
		suffix.WriteString(" ORGANIZATION " + strings.ToUpper(t.tablespace.Organization))
	}
	if t.tablespace.Tablespace != "" {
		suffix.WriteString(" TABLESPACE " + t.tablespace.Tablespace)
	}
	if t.tablespace.Compress {
		suffix.WriteString(" COMPRESS")
	}
	base.createSuffix = suffix.String()
	return t, nil
}

// TruncateReuseStorage renders TRUNCATE TABLE ... REUSE STORAGE.
func (t *OracleTable) TruncateReuseStorage() Statement {
	return newStatement("TRUNCATE TABLE " + t.QualifiedName() + " REUSE STORAGE")
}

// Merge renders a parameterized MERGE keyed on the primary key:
// matched rows are updated, unmatched rows inserted. When no columns
// are given it covers every non-key column.
func (t *OracleTable) Merge(columns ...string) (Statement, error) {
	pks := t.primaryKey()
	if len(pks) == 0 {
		return Statement{}, &NoPrimaryKeyError{Table: t.name, Statement: "MERGE"}
	}

	var cols []Column
	var err error
	if len(columns) == 0 {
		for _, c := range t.columns {
			if !c.PrimaryKey && !c.AutoIncrement {
				cols = append(cols, c)
			}
		}
		if len(cols) == 0 {
			return Statement{}, &NoColumnsError{Table: t.name, Statement: "MERGE"}
		}
	} else {
		cols, err = t.selectColumns(columns, "MERGE")
		if err != nil {
			return Statement{}, err
		}
	}

	n := 0
	srcCols := make([]string, 0, len(pks)+len(cols))
	for _, c := range pks {
		n++
		srcCols = append(srcCols, t.def.Placeholder(n)+" AS "+t.def.QuoteIdentifier(c.Name))
	}
	for _, c := range cols {
		n++
		srcCols = append(srcCols, t.def.Placeholder(n)+" AS "+t.def.QuoteIdentifier(c.Name))
	}

	conds := make([]string, len(pks))
	for i, c := range pks {
		q := t.def.QuoteIdentifier(c.Name)
		conds[i] = "t." + q + " = s." + q
	}
	sets := make([]string, len(cols))
	insNames := make([]string, 0, len(pks)+len(cols))
	insVals := make([]string, 0, len(pks)+len(cols))
	for _, c := range pks {
		q := t.def.QuoteIdentifier(c.Name)
		insNames = append(insNames, "t."+q)
		insVals = append(insVals, "s."+q)
	}
	for i, c := range cols {
		q := t.def.QuoteIdentifier(c.Name)
		sets[i] = "t." + q + " = s." + q
		insNames = append(insNames, "t."+q)
		insVals = append(insVals, "s."+q)
	}

	var b strings.Builder
	b.WriteString("MERGE INTO ")
	b.WriteString(t.QualifiedName())
	b.WriteString(" t USING (SELECT ")
	b.WriteString(strings.Join(srcCols, ", "))
	b.WriteString(" FROM dual) s ON (")
	b.WriteString(strings.Join(conds, " AND "))
	b.WriteString(") WHEN MATCHED THEN UPDATE SET ")
	b.WriteString(strings.Join(sets, ", "))
	b.WriteString(" WHEN NOT MATCHED THEN INSERT (")
	b.WriteString(strings.Join(insNames, ", "))
	b.WriteString(") VALUES (")
	b.WriteString(strings.Join(insVals, ", "))
	b.WriteString(")")
	return newStatement(b.String()), nil
}

// CreateIndex renders CREATE INDEX with the table's tablespace applied
// when configured.
func (t *OracleTable) CreateIndex(name string, columns []string, unique bool) Statement {
	var b strings.Builder
	b.WriteString("CREATE ")
	if unique {
		b.WriteString("UNIQUE ")
	}
	b.WriteString("INDEX ")
	b.WriteString(name)
	b.WriteString(" ON ")
	b.WriteString(t.QualifiedName())
	b.WriteString(" (")
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = t.def.QuoteIdentifier(c)
	}
	b.WriteString(strings.Join(quoted, ", "))
	b.WriteString(")")
	if t.tablespace.Tablespace != "" {
		b.WriteString(" TABLESPACE " + t.tablespace.Tablespace)
	}
	return newStatement(b.String())
}

// AnalyzeTable renders ANALYZE TABLE ... COMPUTE STATISTICS.
func (t *OracleTable) AnalyzeTable() Statement {
	return newStatement("ANALYZE TABLE " + t.QualifiedName() + " COMPUTE STATISTICS")
}

// CreateSequence renders a CREATE SEQUENCE feeding the auto-increment
// column, named <table>_seq. The second return is false when no column
// is marked auto-increment.
func (t *OracleTable) CreateSequence(start, increment int) (Statement, bool) {
	hasIdentity := false
	for _, c := range t.columns {
		if c.AutoIncrement {
			hasIdentity = true
			break
		}
	}
	if !hasIdentity {
		return Statement{}, false
	}
	if start <= 0 {
		start = 1
	}
	if increment <= 0 {
		increment = 1
	}
	sql := "CREATE SEQUENCE " + t.name + "_seq START WITH " +
		strconv.Itoa(start) + " INCREMENT BY " + strconv.Itoa(increment)
	return newStatement(sql), true
}
