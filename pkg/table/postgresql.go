package table

import (
	"strings"

	"github.com/tablekit/tablekit/pkg/resolver"
)

// PostgreSQLTable adds the PostgreSQL-specific operations: server-side
// CSV COPY in both directions, upsert, and maintenance statements.
type PostgreSQLTable struct {
	*Table
}

func newPostgreSQLTable(base *Table) (*PostgreSQLTable, error) {
	return &PostgreSQLTable{Table: base}, nil
}

// CopyFromCSV renders COPY ... FROM for a server-side CSV file, from
// the stored method configuration merged with the request. The file
// path is mandatory; it may come from either side.
func (t *PostgreSQLTable) CopyFromCSV(req resolver.Request) (Statement, error) {
	return t.copyCSV("copy_from_csv", "FROM", req)
}

// CopyToCSV renders COPY ... TO for a server-side CSV file.
func (t *PostgreSQLTable) CopyToCSV(req resolver.Request) (Statement, error) {
	return t.copyCSV("copy_to_csv", "TO", req)
}

func (t *PostgreSQLTable) copyCSV(method, direction string, req resolver.Request) (Statement, error) {
	bag, err := t.resolveMethod(method, "file_path", req)
	if err != nil {
		return Statement{}, err
	}
	var opts CSVOptions
	if err := decodeParams(bag, &opts); err != nil {
		return Statement{}, err
	}

	with := []string{"FORMAT csv"}
	if opts.Delimiter != "" {
		with = append(with, "DELIMITER '"+opts.Delimiter+"'")
	}
	if opts.Header {
		with = append(with, "HEADER")
	}
	if opts.Null != "" {
		with = append(with, "NULL '"+opts.Null+"'")
	}

	sql := "COPY " + t.QualifiedName() + " " + direction + " '" + opts.FilePath +
		"' WITH (" + strings.Join(with, ", ") + ")"
	return newStatement(sql), nil
}

// Upsert renders INSERT ... ON CONFLICT on the primary key, updating
// every non-key column from the excluded row.
func (t *PostgreSQLTable) Upsert(columns ...string) (Statement, error) {
	pks := t.primaryKey()
	if len(pks) == 0 {
		return Statement{}, &NoPrimaryKeyError{Table: t.name, Statement: "UPSERT"}
	}

	insert, err := t.Insert(columns...)
	if err != nil {
		return Statement{}, err
	}

	keyNames := make([]string, len(pks))
	isKey := make(map[string]bool, len(pks))
	for i, c := range pks {
		keyNames[i] = t.def.QuoteIdentifier(c.Name)
		isKey[c.Name] = true
	}

	targets := columns
	if len(targets) == 0 {
		for _, c := range t.columns {
			if !c.AutoIncrement {
				targets = append(targets, c.Name)
			}
		}
	}
	var sets []string
	for _, name := range targets {
		if isKey[name] {
			continue
		}
		q := t.def.QuoteIdentifier(name)
		sets = append(sets, q+" = EXCLUDED."+q)
	}

	sql := insert.SQL() + " ON CONFLICT (" + strings.Join(keyNames, ", ") + ")"
	if len(sets) == 0 {
		sql += " DO NOTHING"
	} else {
		sql += " DO UPDATE SET " + strings.Join(sets, ", ")
	}
	return newStatement(sql), nil
}

// Analyze renders ANALYZE.
func (t *PostgreSQLTable) Analyze() Statement {
	return newStatement("ANALYZE " + t.QualifiedName())
}

// Vacuum renders VACUUM, optionally as VACUUM FULL.
func (t *PostgreSQLTable) Vacuum(full bool) Statement {
	if full {
		return newStatement("VACUUM FULL " + t.QualifiedName())
	}
	return newStatement("VACUUM " + t.QualifiedName())
}
