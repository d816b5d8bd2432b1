package main

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rows.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
CREATE TABLE person (id INTEGER, name TEXT, ratio DOUBLE, born TEXT);
INSERT INTO person VALUES (1, 'Ada', 0.5, '1815-12-10'), (2, NULL, NULL, 'unknown');
`)
	require.NoError(t, err)

	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestDumpYAML(t *testing.T) {
	path := createDB(t)

	out, _, err := run(t, "dump", "--db", path, "-q", "SELECT id, name, ratio FROM person ORDER BY id")
	require.NoError(t, err)
	assert.Equal(t, `id: 1
name: Ada
ratio: 0.5
---
id: 2
name: ""
ratio: null
`, out)
}

func TestDumpJSON(t *testing.T) {
	path := createDB(t)

	out, _, err := run(t, "dump", "--db", path, "--format", "json", "-q", "SELECT id, name FROM person ORDER BY id")
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"name":"Ada"}
{"id":2,"name":""}
`, out)
}

func TestDumpWithConfig(t *testing.T) {
	path := createDB(t)

	cfgPath := filepath.Join(t.TempDir(), "rowdoc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("types:\n  born: date\n"), 0o644))

	out, _, err := run(t, "dump", "--db", path, "--config", cfgPath, "--format", "json",
		"-q", "SELECT born FROM person WHERE id = 1")
	require.NoError(t, err)
	assert.Equal(t, "{\"born\":\"1815-12-10\"}\n", out)

	_, _, err = run(t, "dump", "--db", path, "--config", cfgPath, "-q", "SELECT born FROM person")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "born"`)
}

func TestInspect(t *testing.T) {
	path := createDB(t)

	out, stderr, err := run(t, "inspect", "--db", path, "--format", "json", "-v",
		"-q", "SELECT id, name, ratio FROM person ORDER BY id")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `{"row":0,"document":{"id":1,"name":"Ada","ratio":0.5}}`, lines[0])
	assert.Contains(t, lines[1], `"code":"empty-text"`)
	assert.Contains(t, lines[1], `"code":"null"`)
	assert.Contains(t, stderr, "inspect finished")
}

func writeConfig(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rowdoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	return path
}

const checkConfig = `
aliases:
  full_name: name
fields:
  - name: id
    type: int64
  - name: name
    type: string
  - name: ratio
    type: float64
    optional: true
  - name: born
    type: time
`

func TestCheck(t *testing.T) {
	path := createDB(t)
	cfgPath := writeConfig(t, checkConfig)

	out, _, err := run(t, "check", "--db", path, "--config", cfgPath, "--format", "json",
		"-q", "SELECT id AS ID, name AS full_name, ratio, born FROM person ORDER BY id")
	require.Error(t, err)
	assert.Equal(t, "1 of 2 rows did not decode", err.Error())

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `{"row":0,"record":{"id":1,"name":"Ada","ratio":0.5,"born":"1815-12-10T00:00:00Z"}}`, lines[0])
	assert.Contains(t, lines[1], `"row":1,"error":`)
	assert.Contains(t, lines[1], `field \"born\"`)
}

func TestCheckYAML(t *testing.T) {
	path := createDB(t)
	cfgPath := writeConfig(t, checkConfig)

	out, _, err := run(t, "check", "--db", path, "--config", cfgPath,
		"-q", "SELECT id, name, NULL AS ratio, born FROM person WHERE id = 1")
	require.NoError(t, err)
	assert.Contains(t, out, "record:\n  id: 1\n  name: Ada\n  ratio: null\n")
}

func TestCheckExactNames(t *testing.T) {
	path := createDB(t)
	cfgPath := writeConfig(t, "exact_names: true\n"+checkConfig)

	out, _, err := run(t, "check", "--db", path, "--config", cfgPath, "--format", "json",
		"-q", "SELECT id AS ID, name, ratio, born FROM person WHERE id = 1")
	require.Error(t, err)
	assert.Contains(t, out, `field \"id\": missing`)
}

func TestCheckWithoutFields(t *testing.T) {
	path := createDB(t)

	_, _, err := run(t, "check", "--db", path, "-q", "SELECT id FROM person")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config declares no fields")

	cfgPath := writeConfig(t, "fields:\n  - name: id\n    type: json\n")
	_, _, err = run(t, "check", "--db", path, "--config", cfgPath, "-q", "SELECT id FROM person")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestInvalidInvocation(t *testing.T) {
	path := createDB(t)

	_, _, err := run(t, "dump", "--db", path)
	require.Error(t, err)

	_, _, err = run(t, "dump", "--db", path, "--format", "xml", "-q", "SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")

	_, _, err = run(t, "dump", "--db", filepath.Join(t.TempDir(), "missing.db"), "-q", "SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not found")

	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("types:\n  x: udt\n"), 0o644))

	_, _, err = run(t, "dump", "--db", path, "--config", cfgPath, "-q", "SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
