package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDumpCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print one document per result row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			n := 0
			for row, err := range rows {
				if err != nil {
					return err
				}

				doc, err := conv.Assemble(row)
				if err != nil {
					return fmt.Errorf("row %d: %w", n, err)
				}

				if err := out.Encode(doc); err != nil {
					return err
				}
				n++
			}

			opts.logger.Debug("dump finished", "rows", n)

			return out.Close()
		},
	}
}

// encoder writes a stream of values: YAML documents separated by "---", or
// one JSON value per line.
type encoder interface {
	Encode(v any) error
	Close() error
}

type jsonLines struct {
	*json.Encoder
}

func (jsonLines) Close() error { return nil }

func newWriter(w io.Writer, format string) encoder {
	if format == "json" {
		return jsonLines{json.NewEncoder(w)}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	return enc
}
