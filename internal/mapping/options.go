package mapping

import (
	"fmt"

	"rowdoc/column"
	"rowdoc/decode"
	"rowdoc/normalize"
	"rowdoc/primitive"
)

// CategorySet combines the configured conversion categories.
func (c *Config) CategorySet() (primitive.CategoryEnum, error) {
	return primitive.ParseCategories(c.Categories...)
}

// NormalizeOptions returns the normalizer options the configuration selects.
func (c *Config) NormalizeOptions() []normalize.Option {
	var opts []normalize.Option
	if c.StrictTemporal {
		opts = append(opts, normalize.WithStrictTemporal())
	}

	return opts
}

// DecodeOptions returns the decoder options the configuration selects.
func (c *Config) DecodeOptions() ([]decode.Option, error) {
	allowed, err := c.CategorySet()
	if err != nil {
		return nil, err
	}

	opts := []decode.Option{decode.WithCategories(allowed)}
	if len(c.Aliases) > 0 {
		opts = append(opts, decode.WithAliases(c.Aliases))
	}
	if c.ExactNames {
		opts = append(opts, decode.WithExactNames())
	}

	return opts, nil
}

// ColumnTypes resolves the type overrides to column kinds.
func (c *Config) ColumnTypes() (map[string]column.Kind, error) {
	res := make(map[string]column.Kind, len(c.Types))
	for col, name := range c.Types {
		kind, ok := column.ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("column %q: unknown column kind %q", col, name)
		}

		res[col] = kind
	}

	return res, nil
}
