package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"rowdoc/internal/mapping"
	"rowdoc/rowconv"
)

// checkReport is the check output for one row.
type checkReport struct {
	Row    int            `json:"row" yaml:"row"`
	Record *orderedRecord `json:"record,omitempty" yaml:"record,omitempty"`
	Error  string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// orderedRecord renders a decoded record in field declaration order.
type orderedRecord struct {
	fields []string
	values mapping.Record
}

func (r *orderedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, name := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.values[name])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (r *orderedRecord) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, name := range r.fields {
		var value yaml.Node
		if err := value.Encode(r.values[name]); err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}

		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: name}, &value)
	}

	return node, nil
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Decode every result row into the fields declared in --config",
		Long: `Decode every result row into the record declared by the "fields" list of
the configuration, using its categories, aliases and exact_names settings.
Every row is reported; the command fails when any row did not decode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dec, err := opts.config.Decoder()
			if err != nil {
				return err
			}

			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			rows, err := opts.rows(cmd.Context(), db)
			if err != nil {
				return err
			}

			out := newWriter(cmd.OutOrStdout(), opts.format)
			conv := opts.converter()
			fields := dec.Fields()

			opts.logger.Debug("checking rows", "fields", fields)

			var failed int
			n := 0
			for row, err := range rows {
				if err != nil {
					return err
				}

				rep := checkReport{Row: n}

				rec, err := rowconv.ConvertWith(conv, row, dec)

				var re *rowconv.RowError
				switch {
				case errors.As(err, &re):
					rep.Error = re.Error()
					failed++
				case err != nil:
					return err
				default:
					rep.Record = &orderedRecord{fields: fields, values: rec}
				}

				if err := out.Encode(rep); err != nil {
					return err
				}
				n++
			}

			if err := out.Close(); err != nil {
				return err
			}

			opts.logger.Debug("check finished", "rows", n, "failed", failed)

			if failed > 0 {
				return fmt.Errorf("%d of %d rows did not decode", failed, n)
			}

			return nil
		},
	}
}
