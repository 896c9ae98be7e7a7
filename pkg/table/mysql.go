package table

import (
	"strconv"
	"strings"

	"github.com/tablekit/tablekit/pkg/resolver"
)

// MySQLTable adds the MySQL-specific operations: REPLACE, INSERT IGNORE,
// SHOW CREATE TABLE, and the configuration-backed LOAD DATA INFILE.
type MySQLTable struct {
	*Table
	storage StorageOptions
}

func newMySQLTable(base *Table) (*MySQLTable, error) {
	t := &MySQLTable{Table: base}
	if err := decodeParams(base.Options(), &t.storage); err != nil {
		return nil, err
	}

	var suffix strings.Builder
	if t.storage.Engine != "" {
		suffix.WriteString(" ENGINE=" + t.storage.Engine)
	}
	if t.storage.Charset != "" {
		suffix.WriteString(" DEFAULT CHARSET=" + t.storage.Charset)
	}
	if t.storage.Collation != "" {
		suffix.WriteString(" COLLATE=" + t.storage.Collation)
	}
	base.createSuffix = suffix.String()
	return t, nil
}

// Replace renders a parameterized REPLACE statement.
func (t *MySQLTable) Replace(columns ...string) (Statement, error) {
	return t.insertWithVerb("REPLACE INTO", columns)
}

// InsertIgnore renders a parameterized INSERT IGNORE statement.
func (t *MySQLTable) InsertIgnore(columns ...string) (Statement, error) {
	return t.insertWithVerb("INSERT IGNORE INTO", columns)
}

// ShowCreate renders SHOW CREATE TABLE.
func (t *MySQLTable) ShowCreate() Statement {
	return newStatement("SHOW CREATE TABLE " + t.QualifiedName())
}

// LoadDataInfile renders LOAD DATA INFILE from the stored method
// configuration merged with the request. The file path is mandatory;
// it may come from either side.
func (t *MySQLTable) LoadDataInfile(req resolver.Request) (Statement, error) {
	bag, err := t.resolveMethod("load_data_infile", "file_path", req)
	if err != nil {
		return Statement{}, err
	}
	var opts LoadDataOptions
	if err := decodeParams(bag, &opts); err != nil {
		return Statement{}, err
	}

	var b strings.Builder
	b.WriteString("LOAD DATA ")
	if opts.Local {
		b.WriteString("LOCAL ")
	}
	b.WriteString("INFILE '")
	b.WriteString(opts.FilePath)
	b.WriteString("' INTO TABLE ")
	b.WriteString(t.QualifiedName())
	if opts.Delimiter != "" || opts.Enclosure != "" {
		b.WriteString(" FIELDS")
		if opts.Delimiter != "" {
			b.WriteString(" TERMINATED BY '" + opts.Delimiter + "'")
		}
		if opts.Enclosure != "" {
			b.WriteString(" ENCLOSED BY '" + opts.Enclosure + "'")
		}
	}
	if opts.LineTerminator != "" {
		b.WriteString(" LINES TERMINATED BY '" + opts.LineTerminator + "'")
	}
	if opts.IgnoreLines > 0 {
		b.WriteString(" IGNORE " + strconv.Itoa(opts.IgnoreLines) + " LINES")
	}
	return newStatement(b.String()), nil
}
