package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowdoc/column"
	"rowdoc/primitive"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
strict_temporal: true
exact_names: true
categories: [default, textual-bool]
aliases:
  user_key: id
  full_name: name
types:
  created_at: datetime2
  amount: Numeric
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1", cfg.Version)
	assert.True(t, cfg.StrictTemporal)
	assert.True(t, cfg.ExactNames)
	assert.Equal(t, StringOrArray{"default", "textual-bool"}, cfg.Categories)
	assert.Equal(t, map[string]string{"user_key": "id", "full_name": "name"}, cfg.Aliases)

	allowed, err := cfg.CategorySet()
	require.NoError(t, err)
	assert.Equal(t, primitive.CategoryDefault|primitive.CategoryTextualBool, allowed)

	types, err := cfg.ColumnTypes()
	require.NoError(t, err)
	assert.Equal(t, map[string]column.Kind{
		"created_at": column.KindDateTime2,
		"amount":     column.KindNumeric,
	}, types)

	assert.Len(t, cfg.NormalizeOptions(), 1)

	opts, err := cfg.DecodeOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}

func TestParseDefaults(t *testing.T) {
	for _, data := range []string{"", "\n", "strict_temporal: false\n"} {
		cfg, err := Parse([]byte(data))
		require.NoError(t, err)

		assert.Equal(t, CurrentVersion, cfg.Version)
		assert.Equal(t, StringOrArray{"default"}, cfg.Categories)
		assert.Empty(t, cfg.NormalizeOptions())

		allowed, err := cfg.CategorySet()
		require.NoError(t, err)
		assert.Equal(t, primitive.CategoryEnum(primitive.CategoryDefault), allowed)
	}

	assert.Equal(t, Default(), mustParse(t, ""))
}

func TestParseSingleCategory(t *testing.T) {
	cfg := mustParse(t, "categories: all\n")
	assert.Equal(t, StringOrArray{"all"}, cfg.Categories)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "strict: true\n"},
		{"categories mapping", "categories:\n  a: b\n"},
		{"invalid yaml", "aliases: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to parse config YAML")
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rowdoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
aliases:
  user_key: id
types:
  created_at: datetime2
fields:
  - name: id
    type: int64
  - name: created_at
    type: time
    optional: true
`), 0o644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	want := Default()
	want.Aliases = map[string]string{"user_key": "id"}
	want.Types = map[string]string{"created_at": "datetime2"}
	want.Fields = []FieldConfig{
		{Name: "id", Type: "int64"},
		{Name: "created_at", Type: "time", Optional: true},
	}
	assert.Equal(t, want, loaded)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func mustParse(t *testing.T, data string) *Config {
	t.Helper()

	cfg, err := Parse([]byte(data))
	require.NoError(t, err)

	return cfg
}
