package mapping

import (
	"errors"
	"fmt"

	"rowdoc/decode"
	"rowdoc/primitive"
)

var ErrNoFields = errors.New("config declares no fields")

// Record is a row decoded against the configured fields, keyed by field name.
// Optional fields that were missing or null hold nil.
type Record map[string]any

func setField(name string) func(*Record, any) {
	return func(r *Record, v any) {
		if *r == nil {
			*r = make(Record)
		}
		(*r)[name] = v
	}
}

// Decoder builds a decoder for the configured fields, honoring the configured
// categories, aliases and exact_names.
func (c *Config) Decoder() (*decode.Decoder[Record], error) {
	if len(c.Fields) == 0 {
		return nil, ErrNoFields
	}

	fields := make([]decode.Field[Record], 0, len(c.Fields))
	for _, f := range c.Fields {
		kind, ok := primitive.ParseKind(f.Type)
		if !ok {
			return nil, fmt.Errorf("field %q: unknown type %q", f.Name, f.Type)
		}

		fields = append(fields, decode.Dynamic(f.Name, kind, f.Optional, setField(f.Name)))
	}

	opts, err := c.DecodeOptions()
	if err != nil {
		return nil, err
	}

	return decode.New(fields, opts...)
}
