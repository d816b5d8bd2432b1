package main

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"rowdoc/column"
	"rowdoc/internal/mapping"
	"rowdoc/rowconv"
	"rowdoc/sqlsource"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	dbPath         string
	configPath     string
	query          string
	format         string
	strictTemporal bool
	verbose        bool

	logger *slog.Logger
	config *mapping.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "rowdoc",
		Short:         "Convert SQL result rows into documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.dbPath, "db", "", "Path to the SQLite database")
	flags.StringVar(&opts.configPath, "config", "", "Path to a rowdoc YAML config")
	flags.StringVarP(&opts.query, "query", "q", "", "SQL query to run")
	flags.StringVar(&opts.format, "format", "yaml", "Output format: yaml or json")
	flags.BoolVar(&opts.strictTemporal, "strict-temporal", false, "Fail on malformed temporal values instead of rendering null")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	_ = cmd.MarkPersistentFlagRequired("db")
	_ = cmd.MarkPersistentFlagRequired("query")

	cmd.AddCommand(newDumpCmd(opts), newInspectCmd(opts), newCheckCmd(opts))

	return cmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if o.format != "yaml" && o.format != "json" {
		return fmt.Errorf("unknown format %q (want yaml or json)", o.format)
	}

	cfg := mapping.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = mapping.LoadFile(o.configPath); err != nil {
			return err
		}
	}

	diags := mapping.Validate(cfg)
	for _, w := range diags.Warnings {
		o.logger.Warn("config", "diagnostic", w.String())
	}
	if err := diags.Error(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if cmd.Flags().Changed("strict-temporal") {
		cfg.StrictTemporal = o.strictTemporal
	}

	o.config = cfg
	o.logger.Debug("config loaded", "path", o.configPath, "strict_temporal", cfg.StrictTemporal, "types", len(cfg.Types))

	return nil
}

func (o *rootOptions) openDB() (*sql.DB, error) {
	if _, err := os.Stat(o.dbPath); err != nil {
		return nil, fmt.Errorf("database not found at --db path: %s", o.dbPath)
	}

	return sql.Open("sqlite", o.dbPath)
}

func (o *rootOptions) converter() *rowconv.Converter {
	return rowconv.New(o.config.NormalizeOptions()...)
}

// rows runs the query and yields its rows; db must stay open while iterating.
func (o *rootOptions) rows(ctx context.Context, db *sql.DB) (iter.Seq2[column.Row, error], error) {
	types, err := o.config.ColumnTypes()
	if err != nil {
		return nil, err
	}

	o.logger.Debug("running query", "db", o.dbPath, "query", o.query)

	return sqlsource.Stream(ctx, db, o.query, nil, sqlsource.WithTypes(types)), nil
}
