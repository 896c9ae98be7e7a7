package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablekit/tablekit/pkg/config"
	"github.com/tablekit/tablekit/pkg/table"
)

func testDoc(t *testing.T) *config.Document {
	t.Helper()
	doc, err := config.LoadMap(map[string]any{
		"metadata": map[string]any{"default_dialect": "postgresql"},
		"tables": map[string]any{
			"users": map[string]any{
				"columns": []any{
					map[string]any{"name": "id", "type": "int", "primary_key": true},
					map[string]any{"name": "email", "type": "varchar", "length": 255},
				},
			},
			"events": map[string]any{
				"dialect": "sqlite",
				"columns": []any{
					map[string]any{"name": "id", "type": "int", "primary_key": true},
				},
			},
		},
	})
	require.NoError(t, err)
	return doc
}

func TestGet_BuildsAndCaches(t *testing.T) {
	r := New(testDoc(t))

	first, err := r.Get("users")
	require.NoError(t, err)
	assert.Equal(t, "users", first.Name())

	second, err := r.Get("users")
	require.NoError(t, err)
	assert.Same(t, first.(*table.PostgreSQLTable), second.(*table.PostgreSQLTable))
}

func TestGet_UnknownTable(t *testing.T) {
	r := New(testDoc(t))

	_, err := r.Get("orders")
	var notFound *config.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "orders", notFound.Table)
}

func TestList(t *testing.T) {
	r := New(testDoc(t))
	assert.Equal(t, []string{"events", "users"}, r.List())
}

func TestClear_DropsCache(t *testing.T) {
	r := New(testDoc(t))

	first, err := r.Get("users")
	require.NoError(t, err)

	r.Clear()

	second, err := r.Get("users")
	require.NoError(t, err)
	assert.NotSame(t, first.(*table.PostgreSQLTable), second.(*table.PostgreSQLTable))
}

func TestReload_InMemoryFails(t *testing.T) {
	r := New(testDoc(t))
	require.ErrorIs(t, r.Reload(), ErrNotReloadable)
}

func TestReload_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.yaml")

	v1 := `
metadata:
  default_dialect: sqlite
tables:
  users:
    columns:
      - name: id
        type: int
        primary_key: true
`
	require.NoError(t, os.WriteFile(path, []byte(v1), 0o644))

	r, err := NewFromFile(path)
	require.NoError(t, err)

	before, err := r.Get("users")
	require.NoError(t, err)
	require.Len(t, before.Columns(), 1)

	v2 := `
metadata:
  default_dialect: sqlite
tables:
  users:
    columns:
      - name: id
        type: int
        primary_key: true
      - name: email
        type: varchar
        length: 255
`
	require.NoError(t, os.WriteFile(path, []byte(v2), 0o644))
	require.NoError(t, r.Reload())

	after, err := r.Get("users")
	require.NoError(t, err)
	assert.Len(t, after.Columns(), 2)
}

func TestGet_LegacyTypeSpelling(t *testing.T) {
	doc, err := config.LoadMap(map[string]any{
		"tables": map[string]any{
			"users": map[string]any{
				"dialect": "sqlite",
				"columns": []any{
					map[string]any{"name": "id", "type": "Integer", "primary_key": true},
				},
			},
		},
	})
	require.NoError(t, err)

	r := New(doc)
	tbl, err := r.Get("users")
	require.NoError(t, err)
	assert.Equal(t, "users", tbl.Name())
}
