package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	content := `
metadata:
  default_dialect: postgresql
  default_schema: app
tables:
  users:
    columns:
      - name: id
        type: int
        primary_key: true
      - name: email
        type: varchar
        length: 255
    indexes:
      - name: idx_users_email
        columns: [email]
        unique: true
  events:
    dialect: redshift
    columns:
      - name: id
        type: bigint
        primary_key: true
    dialect_methods:
      copy_from_s3:
        s3_path: "s3://bucket/{{ date }}/events.csv"
        format: CSV
`
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestValidateCommand(t *testing.T) {
	path := writeConfig(t)
	out, err := runCommand(t, "validate", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK (2 tables)")
}

func TestValidateCommand_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tables: {}\n"), 0o644))

	_, err := runCommand(t, "validate", "-c", path)
	require.Error(t, err)
}

func TestTablesCommand(t *testing.T) {
	path := writeConfig(t)
	out, err := runCommand(t, "tables", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "users")
	assert.Contains(t, out, "postgresql")
	assert.Contains(t, out, "redshift")
}

func TestTablesCommand_JSON(t *testing.T) {
	path := writeConfig(t)
	out, err := runCommand(t, "tables", "-c", path, "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"dialect": "postgresql"`)
}

func TestRenderCommand(t *testing.T) {
	path := writeConfig(t)
	out, err := runCommand(t, "render", "users", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "CREATE TABLE app.users")
	assert.Contains(t, out, "CREATE UNIQUE INDEX idx_users_email")
}

func TestRenderCommand_Ops(t *testing.T) {
	path := writeConfig(t)
	out, err := runCommand(t, "render", "users", "-c", path, "--op", "insert")
	require.NoError(t, err)
	assert.Contains(t, out, `INSERT INTO app.users ("id", "email") VALUES ($1, $2);`)
}

func TestRenderCommand_UnknownTable(t *testing.T) {
	path := writeConfig(t)
	_, err := runCommand(t, "render", "orders", "-c", path)
	require.Error(t, err)
}

func TestMethodsCommand(t *testing.T) {
	path := writeConfig(t)
	out, err := runCommand(t, "methods", "events", "copy_from_s3", "-c", path, "--var", "date=2024-01-15")
	require.NoError(t, err)
	assert.Contains(t, out, "s3://bucket/2024-01-15/events.csv")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "tablekit")
}
