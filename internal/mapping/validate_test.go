package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := mustParse(t, `
categories: [default, text-number]
aliases:
  user_key: id
types:
  created_at: datetime2
`)

		res := Validate(cfg)
		assert.False(t, res.HasErrors())
		assert.Empty(t, res.Warnings)
	})

	t.Run("nil", func(t *testing.T) {
		res := Validate(nil)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "config_is_nil", res.Errors[0].Code)
	})

	t.Run("invalid entries", func(t *testing.T) {
		cfg := mustParse(t, `
version: "2"
categories: [default, sloppy]
aliases:
  id: id
  orphan: ""
types:
  blob: varbinary
  shape: udt
`)

		res := Validate(cfg)

		var codes []string
		for _, d := range res.Errors {
			codes = append(codes, d.Code)
		}
		assert.Equal(t, []string{"unsupported_version", "unknown_category", "empty_alias", "unknown_kind", "unsupported_kind"}, codes)

		require.Len(t, res.Warnings, 1)
		assert.Equal(t, "redundant_alias", res.Warnings[0].Code)
		assert.Equal(t, "id", res.Warnings[0].Column)

		assert.Error(t, res.Error())
	})
	t.Run("fields", func(t *testing.T) {
		cfg := mustParse(t, `
aliases:
  user_key: id
  full_name: name
fields:
  - name: id
    type: int64
  - name: id
    type: string
  - name: ""
    type: bool
  - name: payload
    type: json
  - name: timeout
    type: duration
`)

		res := Validate(cfg)

		var codes []string
		for _, d := range res.Errors {
			codes = append(codes, d.Code)
		}
		assert.Equal(t, []string{"duplicate_field", "empty_field_name", "unknown_field_type", "unknown_alias_target"}, codes)
		assert.Equal(t, "full_name", res.Errors[3].Column)

		require.Len(t, res.Warnings, 1)
		assert.Equal(t, "unreachable_field_type", res.Warnings[0].Code)
		assert.Equal(t, "timeout", res.Warnings[0].Column)
	})

	t.Run("duration reachable with its category", func(t *testing.T) {
		cfg := mustParse(t, `
categories: [default, duration]
fields:
  - name: timeout
    type: duration
`)

		res := Validate(cfg)
		assert.False(t, res.HasErrors())
		assert.Empty(t, res.Warnings)
	})
}
