package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablekit/tablekit/pkg/dialect"
	"github.com/tablekit/tablekit/pkg/template"
)

func sampleDoc() map[string]any {
	return map[string]any{
		"metadata": map[string]any{
			"default_dialect": "mysql",
			"default_schema":  "analytics",
		},
		"tables": map[string]any{
			"users": map[string]any{
				"columns": []any{
					map[string]any{"name": "id", "type": "int", "primary_key": true, "auto_increment": true},
					map[string]any{"name": "email", "type": "varchar", "length": 255, "nullable": false, "unique": true},
					map[string]any{"name": "balance", "type": "numeric", "precision": 18, "scale": 5},
				},
				"indexes": []any{
					map[string]any{"name": "idx_users_email", "columns": []any{"email"}, "unique": true},
				},
			},
			"events": map[string]any{
				"dialect":     "redshift",
				"schema_name": "warehouse",
				"columns": []any{
					map[string]any{"name": "id", "type": "bigint", "primary_key": true},
					map[string]any{"name": "payload", "type": "text"},
				},
				"options": map[string]any{
					"sort_keys": []any{"id"},
					"dist_key":  "id",
				},
				"dialect_methods": map[string]any{
					"copy_from_s3": map[string]any{
						"s3_path":     "s3://bucket/{{ date }}/events.csv",
						"format":      "CSV",
						"delimiter":   ",",
						"credentials": "aws_iam_role=arn:aws:iam::123:role/loader",
						"custom_knob": true,
					},
				},
			},
		},
	}
}

func TestLoadMap_Valid(t *testing.T) {
	doc, err := LoadMap(sampleDoc())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"users", "events"}, doc.TableNames())
	assert.Empty(t, doc.Source())
}

func TestCascade_DefaultsAdopted(t *testing.T) {
	doc, err := LoadMap(sampleDoc())
	require.NoError(t, err)

	users, err := doc.Table("users")
	require.NoError(t, err)
	assert.Equal(t, dialect.MySQL, users.Dialect)
	assert.Equal(t, "analytics", users.SchemaName)
}

func TestCascade_ExplicitValuesWin(t *testing.T) {
	doc, err := LoadMap(sampleDoc())
	require.NoError(t, err)

	events, err := doc.Table("events")
	require.NoError(t, err)
	assert.Equal(t, dialect.Redshift, events.Dialect)
	assert.Equal(t, "warehouse", events.SchemaName)
}

func TestTable_NotFound(t *testing.T) {
	doc, err := LoadMap(sampleDoc())
	require.NoError(t, err)

	_, err = doc.Table("orders")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "orders", notFound.Table)
}

func TestTable_MissingDialect(t *testing.T) {
	raw := map[string]any{
		"tables": map[string]any{
			"users": map[string]any{
				"columns": []any{map[string]any{"name": "id", "type": "int"}},
			},
		},
	}
	doc, err := LoadMap(raw)
	require.NoError(t, err)

	_, err = doc.Table("users")
	var missing *MissingDialectError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "users", missing.Table)
}

func TestLoadMap_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(raw map[string]any)
	}{
		{
			name: "unsupported dialect",
			mutate: func(raw map[string]any) {
				tables := raw["tables"].(map[string]any)
				tables["events"].(map[string]any)["dialect"] = "teradata"
			},
		},
		{
			name: "unsupported default dialect",
			mutate: func(raw map[string]any) {
				raw["metadata"].(map[string]any)["default_dialect"] = "db2"
			},
		},
		{
			name: "unsupported column type",
			mutate: func(raw map[string]any) {
				tables := raw["tables"].(map[string]any)
				cols := tables["users"].(map[string]any)["columns"].([]any)
				cols[0].(map[string]any)["type"] = "geography"
			},
		},
		{
			name: "malformed type parameters",
			mutate: func(raw map[string]any) {
				tables := raw["tables"].(map[string]any)
				cols := tables["users"].(map[string]any)["columns"].([]any)
				cols[1].(map[string]any)["type"] = "varchar(10,20)"
			},
		},
		{
			name: "missing columns",
			mutate: func(raw map[string]any) {
				tables := raw["tables"].(map[string]any)
				delete(tables["users"].(map[string]any), "columns")
			},
		},
		{
			name: "column without name",
			mutate: func(raw map[string]any) {
				tables := raw["tables"].(map[string]any)
				cols := tables["users"].(map[string]any)["columns"].([]any)
				delete(cols[0].(map[string]any), "name")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := sampleDoc()
			tt.mutate(raw)

			_, err := LoadMap(raw)
			var invalid *SchemaValidationError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestLoadMap_AliasAndLegacySpellings(t *testing.T) {
	raw := map[string]any{
		"tables": map[string]any{
			"t": map[string]any{
				"dialect": "sqlite",
				"columns": []any{
					map[string]any{"name": "a", "type": "Integer"},
					map[string]any{"name": "b", "type": "varchar(100)"},
					map[string]any{"name": "c", "type": "DateTime"},
				},
			},
		},
	}
	_, err := LoadMap(raw)
	require.NoError(t, err)
}

func TestMethodConfig(t *testing.T) {
	doc, err := LoadMap(sampleDoc())
	require.NoError(t, err)

	t.Run("absent method", func(t *testing.T) {
		_, ok, err := doc.MethodConfig("events", "unload_to_s3", nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("no vars returns stored config", func(t *testing.T) {
		got, ok, err := doc.MethodConfig("events", "copy_from_s3", nil)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "s3://bucket/{{ date }}/events.csv", got["s3_path"])
		assert.Equal(t, true, got["custom_knob"]) // unrecognized keys pass through
	})

	t.Run("vars expanded", func(t *testing.T) {
		got, ok, err := doc.MethodConfig("events", "copy_from_s3", map[string]string{"date": "2024-01-15"})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "s3://bucket/2024-01-15/events.csv", got["s3_path"])
	})

	t.Run("missing var fails", func(t *testing.T) {
		_, _, err := doc.MethodConfig("events", "copy_from_s3", map[string]string{"wrong": "x"})
		var unresolved *template.UnresolvedVarError
		require.ErrorAs(t, err, &unresolved)
		assert.Equal(t, "date", unresolved.Name)
	})

	t.Run("expansion does not mutate document", func(t *testing.T) {
		_, _, err := doc.MethodConfig("events", "copy_from_s3", map[string]string{"date": "2024-01-15"})
		require.NoError(t, err)

		stored, _, err := doc.MethodConfig("events", "copy_from_s3", nil)
		require.NoError(t, err)
		assert.Equal(t, "s3://bucket/{{ date }}/events.csv", stored["s3_path"])
	})

	t.Run("unknown table", func(t *testing.T) {
		_, _, err := doc.MethodConfig("orders", "copy_from_s3", nil)
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

func TestLoad_FromFile(t *testing.T) {
	content := `
metadata:
  default_dialect: postgresql
tables:
  users:
    columns:
      - name: id
        type: int
        primary_key: true
      - name: name
        type: string
        length: 100
`
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source())

	users, err := doc.Table("users")
	require.NoError(t, err)
	assert.Equal(t, dialect.PostgreSQL, users.Dialect)
	require.Len(t, users.Columns, 2)
	assert.Equal(t, "string(100)", users.Columns[1].TypeSpecString())
	assert.True(t, users.Columns[1].IsNullable())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestColumnConfig_TypeSpecString(t *testing.T) {
	length := 255
	precision := 18
	scale := 5

	tests := []struct {
		name string
		col  ColumnConfig
		want string
	}{
		{"plain", ColumnConfig{Type: "int"}, "int"},
		{"length", ColumnConfig{Type: "varchar", Length: &length}, "varchar(255)"},
		{"precision only", ColumnConfig{Type: "numeric", Precision: &precision}, "numeric(18)"},
		{"precision and scale", ColumnConfig{Type: "numeric", Precision: &precision, Scale: &scale}, "numeric(18,5)"},
		{"already parameterized", ColumnConfig{Type: "varchar(50)"}, "varchar(50)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.col.TypeSpecString())
		})
	}
}
