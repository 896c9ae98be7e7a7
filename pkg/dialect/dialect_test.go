package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablekit/tablekit/pkg/dialect"
	"github.com/tablekit/tablekit/pkg/typespec"

	_ "github.com/tablekit/tablekit/pkg/dialects/athena"
	_ "github.com/tablekit/tablekit/pkg/dialects/mysql"
	_ "github.com/tablekit/tablekit/pkg/dialects/oracle"
	_ "github.com/tablekit/tablekit/pkg/dialects/postgresql"
	_ "github.com/tablekit/tablekit/pkg/dialects/redshift"
	_ "github.com/tablekit/tablekit/pkg/dialects/sqlite"
)

func TestRegistry_AllBuiltinsRegistered(t *testing.T) {
	assert.Equal(t,
		[]string{"athena", "mysql", "oracle", "postgresql", "redshift", "sqlite"},
		dialect.List())

	for _, name := range []dialect.Name{
		dialect.MySQL, dialect.PostgreSQL, dialect.SQLite,
		dialect.Redshift, dialect.Athena, dialect.Oracle,
	} {
		assert.True(t, dialect.IsRegistered(name), "dialect %s", name)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := dialect.Lookup("teradata")

	var unknown *dialect.UnknownDialectError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "teradata", unknown.Name)
	assert.Contains(t, unknown.Available, "mysql")
}

func TestRenderType(t *testing.T) {
	tests := []struct {
		dialect dialect.Name
		spec    string
		want    string
	}{
		{dialect.MySQL, "varchar(255)", "VARCHAR(255)"},
		{dialect.MySQL, "datetime", "DATETIME"},
		{dialect.MySQL, "bool", "BOOL"},
		{dialect.PostgreSQL, "datetime", "TIMESTAMP"},
		{dialect.PostgreSQL, "numeric(18,5)", "NUMERIC(18, 5)"},
		{dialect.Oracle, "string(100)", "VARCHAR2(100)"},
		{dialect.Oracle, "numeric(18,5)", "NUMBER(18, 5)"},
		{dialect.Oracle, "text", "CLOB"},
		{dialect.Redshift, "text", "VARCHAR(MAX)"},
		{dialect.Redshift, "text(100)", "VARCHAR(100)"},
		{dialect.PostgreSQL, "text(100)", "VARCHAR(100)"},
		{dialect.Oracle, "text(100)", "VARCHAR2(100)"},
		{dialect.Athena, "text(100)", "VARCHAR(100)"},
		{dialect.MySQL, "text(100)", "TEXT(100)"},
		{dialect.Athena, "int", "BIGINT"},
		{dialect.Athena, "float", "DOUBLE"},
		{dialect.SQLite, "decimal(10)", "NUMERIC(10)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect)+"/"+tt.spec, func(t *testing.T) {
			def, err := dialect.Lookup(tt.dialect)
			require.NoError(t, err)

			ts, err := typespec.Parse(tt.spec)
			require.NoError(t, err)

			assert.Equal(t, tt.want, def.RenderType(ts))
		})
	}
}

func TestQuoteIdentifier(t *testing.T) {
	my, err := dialect.Lookup(dialect.MySQL)
	require.NoError(t, err)
	assert.Equal(t, "`order`", my.QuoteIdentifier("order"))

	pg, err := dialect.Lookup(dialect.PostgreSQL)
	require.NoError(t, err)
	assert.Equal(t, `"user"`, pg.QuoteIdentifier("user"))
	assert.Equal(t, `"a""b"`, pg.QuoteIdentifier(`a"b`))
}

func TestQualifyTable(t *testing.T) {
	pg, err := dialect.Lookup(dialect.PostgreSQL)
	require.NoError(t, err)

	assert.Equal(t, "analytics.events", pg.QualifyTable("analytics", "events"))
	assert.Equal(t, "events", pg.QualifyTable("", "events"))
}

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		dialect dialect.Name
		want    []string
	}{
		{dialect.MySQL, []string{"?", "?"}},
		{dialect.SQLite, []string{"?", "?"}},
		{dialect.Athena, []string{"?", "?"}},
		{dialect.PostgreSQL, []string{"$1", "$2"}},
		{dialect.Redshift, []string{"$1", "$2"}},
		{dialect.Oracle, []string{":1", ":2"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			def, err := dialect.Lookup(tt.dialect)
			require.NoError(t, err)

			got := []string{def.Placeholder(1), def.Placeholder(2)}
			assert.Equal(t, tt.want, got)
		})
	}
}
