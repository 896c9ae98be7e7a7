// Package table builds dialect-aware SQL statements from declarative
// table configuration. A table is constructed once from its resolved
// configuration and exposes generic DDL/DML builders plus the operations
// specific to its dialect.
package table

import (
	"strings"

	"github.com/tablekit/tablekit/pkg/config"
	"github.com/tablekit/tablekit/pkg/dialect"
	"github.com/tablekit/tablekit/pkg/params"
	"github.com/tablekit/tablekit/pkg/resolver"
)

// SQLTable is the statement-building surface shared by every dialect
// variant. Dialect-specific operations live on the concrete types
// returned by New.
type SQLTable interface {
	Name() string
	Schema() string
	QualifiedName() string
	Dialect() dialect.Name
	Columns() []Column

	Create() (Statement, error)
	CreateIfNotExists() (Statement, error)
	CreateIndexes() []Statement
	Drop() Statement
	DropIfExists() Statement
	Truncate() Statement
	Select(columns ...string) (Statement, error)
	Insert(columns ...string) (Statement, error)
	Update(columns ...string) (Statement, error)
	Delete() (Statement, error)
	CreateAsSelect(query string) (Statement, error)
}

// Table is the dialect-neutral core embedded by every variant. It owns
// the resolved columns and the generic statement builders; variants
// override the few builders whose syntax diverges.
type Table struct {
	name    string
	cfg     *config.TableConfig
	def     *dialect.Definition
	columns []Column

	// createSuffix holds dialect-specific trailing clauses of CREATE
	// TABLE (storage engine, distribution, tablespace). Set by the
	// variant constructors from the table options.
	createSuffix string
}

func newTable(name string, cfg *config.TableConfig) (*Table, error) {
	def, err := dialect.Lookup(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	cols, err := buildColumns(name, cfg.Columns)
	if err != nil {
		return nil, err
	}
	return &Table{name: name, cfg: cfg, def: def, columns: cols}, nil
}

// Name returns the bare table name.
func (t *Table) Name() string { return t.name }

// Dialect returns the dialect this table renders for.
func (t *Table) Dialect() dialect.Name { return t.def.Name }

// Columns returns the resolved columns in declaration order.
func (t *Table) Columns() []Column { return t.columns }

// Schema returns the effective schema: the configured one, or the
// dialect's default.
func (t *Table) Schema() string {
	if t.cfg.SchemaName != "" {
		return t.cfg.SchemaName
	}
	return t.def.DefaultSchema
}

// QualifiedName returns the schema-qualified table name.
func (t *Table) QualifiedName() string {
	return t.def.QualifyTable(t.Schema(), t.name)
}

// Options returns the per-table option bag from the configuration.
func (t *Table) Options() params.Map { return t.cfg.Options }

// Column returns the column with the given name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

func (t *Table) primaryKey() []Column {
	var pks []Column
	for _, c := range t.columns {
		if c.PrimaryKey {
			pks = append(pks, c)
		}
	}
	return pks
}

// resolveMethod runs the parameter resolution pipeline for a
// configuration-backed dialect operation.
func (t *Table) resolveMethod(method, requiredKey string, req resolver.Request) (params.Map, error) {
	return resolver.Resolve(method, t.cfg.DialectMethods[method], requiredKey, req)
}

// selectColumns validates an explicit column list, defaulting to all
// columns when empty.
func (t *Table) selectColumns(names []string, statement string) ([]Column, error) {
	if len(names) == 0 {
		if len(t.columns) == 0 {
			return nil, &NoColumnsError{Table: t.name, Statement: statement}
		}
		return t.columns, nil
	}
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		c, ok := t.Column(name)
		if !ok {
			return nil, &UnknownColumnError{Table: t.name, Column: name}
		}
		cols = append(cols, c)
	}
	return cols, nil
}

// Create renders the CREATE TABLE statement. A single auto-increment
// primary key is declared inline on its column; composite keys get a
// table-level PRIMARY KEY clause.
func (t *Table) Create() (Statement, error) {
	return t.create(false)
}

// CreateIfNotExists renders CREATE TABLE IF NOT EXISTS.
func (t *Table) CreateIfNotExists() (Statement, error) {
	return t.create(true)
}

func (t *Table) create(ifNotExists bool) (Statement, error) {
	if len(t.columns) == 0 {
		return Statement{}, &NoColumnsError{Table: t.name, Statement: "CREATE TABLE"}
	}

	pks := t.primaryKey()
	inlinePK := len(pks) == 1 && pks[0].AutoIncrement

	clauses := make([]string, 0, len(t.columns)+1)
	for i := range t.columns {
		clauses = append(clauses, t.columns[i].render(t.def, inlinePK))
	}
	if len(pks) > 0 && !inlinePK {
		names := make([]string, len(pks))
		for i, c := range pks {
			names[i] = t.def.QuoteIdentifier(c.Name)
		}
		clauses = append(clauses, "PRIMARY KEY ("+strings.Join(names, ", ")+")")
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	if ifNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(t.QualifiedName())
	b.WriteString(" (\n    ")
	b.WriteString(strings.Join(clauses, ",\n    "))
	b.WriteString("\n)")
	b.WriteString(t.createSuffix)
	return newStatement(b.String()), nil
}

// CreateIndexes renders one CREATE INDEX statement per configured index,
// in configuration order.
func (t *Table) CreateIndexes() []Statement {
	stmts := make([]Statement, 0, len(t.cfg.Indexes))
	for _, idx := range t.cfg.Indexes {
		var b strings.Builder
		b.WriteString("CREATE ")
		if idx.Unique {
			b.WriteString("UNIQUE ")
		}
		b.WriteString("INDEX ")
		b.WriteString(idx.Name)
		b.WriteString(" ON ")
		b.WriteString(t.QualifiedName())
		b.WriteString(" (")
		quoted := make([]string, len(idx.Columns))
		for i, c := range idx.Columns {
			quoted[i] = t.def.QuoteIdentifier(c)
		}
		b.WriteString(strings.Join(quoted, ", "))
		b.WriteString(")")
		stmts = append(stmts, newStatement(b.String()))
	}
	return stmts
}

// Drop renders DROP TABLE.
func (t *Table) Drop() Statement {
	return newStatement("DROP TABLE " + t.QualifiedName())
}

// DropIfExists renders DROP TABLE IF EXISTS.
func (t *Table) DropIfExists() Statement {
	return newStatement("DROP TABLE IF EXISTS " + t.QualifiedName())
}

// Truncate renders TRUNCATE TABLE. Variants without a TRUNCATE verb
// override with their equivalent.
func (t *Table) Truncate() Statement {
	return newStatement("TRUNCATE TABLE " + t.QualifiedName())
}

// Select renders a SELECT over the named columns, or all columns when
// none are given.
func (t *Table) Select(columns ...string) (Statement, error) {
	cols, err := t.selectColumns(columns, "SELECT")
	if err != nil {
		return Statement{}, err
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = t.def.QuoteIdentifier(c.Name)
	}
	sql := "SELECT " + strings.Join(names, ", ") + " FROM " + t.QualifiedName()
	return newStatement(sql), nil
}

// Insert renders a parameterized INSERT over the named columns. When no
// columns are given it covers every column except auto-increment ones.
func (t *Table) Insert(columns ...string) (Statement, error) {
	return t.insertWithVerb("INSERT INTO", columns)
}

func (t *Table) insertWithVerb(verb string, columns []string) (Statement, error) {
	var cols []Column
	var err error
	if len(columns) == 0 {
		for _, c := range t.columns {
			if !c.AutoIncrement {
				cols = append(cols, c)
			}
		}
		if len(cols) == 0 {
			return Statement{}, &NoColumnsError{Table: t.name, Statement: verb}
		}
	} else {
		cols, err = t.selectColumns(columns, verb)
		if err != nil {
			return Statement{}, err
		}
	}

	names := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	for i, c := range cols {
		names[i] = t.def.QuoteIdentifier(c.Name)
		placeholders[i] = t.def.Placeholder(i + 1)
	}
	sql := verb + " " + t.QualifiedName() +
		" (" + strings.Join(names, ", ") + ") VALUES (" +
		strings.Join(placeholders, ", ") + ")"
	return newStatement(sql), nil
}

// Update renders a parameterized UPDATE keyed on the primary key. When
// no columns are given it sets every non-key column.
func (t *Table) Update(columns ...string) (Statement, error) {
	pks := t.primaryKey()
	if len(pks) == 0 {
		return Statement{}, &NoPrimaryKeyError{Table: t.name, Statement: "UPDATE"}
	}

	var cols []Column
	var err error
	if len(columns) == 0 {
		for _, c := range t.columns {
			if !c.PrimaryKey {
				cols = append(cols, c)
			}
		}
		if len(cols) == 0 {
			return Statement{}, &NoColumnsError{Table: t.name, Statement: "UPDATE"}
		}
	} else {
		cols, err = t.selectColumns(columns, "UPDATE")
		if err != nil {
			return Statement{}, err
		}
	}

	n := 0
	sets := make([]string, len(cols))
	for i, c := range cols {
		n++
		sets[i] = t.def.QuoteIdentifier(c.Name) + " = " + t.def.Placeholder(n)
	}
	conds := make([]string, len(pks))
	for i, c := range pks {
		n++
		conds[i] = t.def.QuoteIdentifier(c.Name) + " = " + t.def.Placeholder(n)
	}
	sql := "UPDATE " + t.QualifiedName() +
		" SET " + strings.Join(sets, ", ") +
		" WHERE " + strings.Join(conds, " AND ")
	return newStatement(sql), nil
}

// Delete renders a parameterized DELETE keyed on the primary key.
func (t *Table) Delete() (Statement, error) {
	pks := t.primaryKey()
	if len(pks) == 0 {
		return Statement{}, &NoPrimaryKeyError{Table: t.name, Statement: "DELETE"}
	}
	conds := make([]string, len(pks))
	for i, c := range pks {
		conds[i] = t.def.QuoteIdentifier(c.Name) + " = " + t.def.Placeholder(i+1)
	}
	sql := "DELETE FROM " + t.QualifiedName() + " WHERE " + strings.Join(conds, " AND ")
	return newStatement(sql), nil
}

// CreateAsSelect renders CREATE TABLE ... AS over the given query.
func (t *Table) CreateAsSelect(query string) (Statement, error) {
	if strings.TrimSpace(query) == "" {
		return Statement{}, &NoColumnsError{Table: t.name, Statement: "CREATE TABLE AS"}
	}
	return newStatement("CREATE TABLE " + t.QualifiedName() + " AS " + query), nil
}
