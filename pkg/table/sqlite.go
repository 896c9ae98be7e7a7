package table

import "fmt"

// SQLiteTable adds the SQLite-specific operations: conflict-resolving
// inserts, database attachment, and pragmas.
type SQLiteTable struct {
	*Table
}

func newSQLiteTable(base *Table) (*SQLiteTable, error) {
	return &SQLiteTable{Table: base}, nil
}

// Truncate renders the SQLite equivalent; the engine has no TRUNCATE
// verb.
func (t *SQLiteTable) Truncate() Statement {
	return newStatement("DELETE FROM " + t.QualifiedName())
}

// InsertOrReplace renders a parameterized INSERT OR REPLACE statement.
func (t *SQLiteTable) InsertOrReplace(columns ...string) (Statement, error) {
	return t.insertWithVerb("INSERT OR REPLACE INTO", columns)
}

// InsertOrIgnore renders a parameterized INSERT OR IGNORE statement.
func (t *SQLiteTable) InsertOrIgnore(columns ...string) (Statement, error) {
	return t.insertWithVerb("INSERT OR IGNORE INTO", columns)
}

// AttachDatabase renders ATTACH DATABASE binding the file at path to
// the given schema name.
func (t *SQLiteTable) AttachDatabase(path, name string) Statement {
	return newStatement("ATTACH DATABASE '" + path + "' AS " + name)
}

// DetachDatabase renders DETACH DATABASE.
func (t *SQLiteTable) DetachDatabase(name string) Statement {
	return newStatement("DETACH DATABASE " + name)
}

// Pragma renders a PRAGMA statement; value nil queries the pragma
// instead of setting it.
func (t *SQLiteTable) Pragma(name string, value any) Statement {
	if value == nil {
		return newStatement("PRAGMA " + name)
	}
	return newStatement(fmt.Sprintf("PRAGMA %s = %v", name, value))
}
