package main

import (
	"errors"

	"github.com/spf13/cobra"

	"rowdoc/document"
	"rowdoc/internal/diagnostic"
	"rowdoc/rowconv"
)

// report is the inspect output for one row.
type report struct {
	Row         int                     `json:"row" yaml:"row"`
	Document    *document.Document      `json:"document" yaml:"document"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Error       string                  `json:"error,omitempty" yaml:"error,omitempty"`
}

func newInspectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Report how every column of every result row converts",
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

			var failed int
			n := 0
			for row, err := range rows {
				if err != nil {
					return err
				}

				doc, diags, err := conv.Inspect(row)
				rep := report{Row: n, Document: doc, Diagnostics: diags.All()}

				var re *rowconv.RowError
				if errors.As(err, &re) {
					rep.Error = re.Error()
					failed++
				} else if err != nil {
					return err
				}

				if err := out.Encode(rep); err != nil {
					return err
				}
				n++
			}

			opts.logger.Debug("inspect finished", "rows", n, "failed", failed)

			return out.Close()
		},
	}
}
