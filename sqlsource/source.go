package sqlsource

import (
	"context"
	"database/sql"
	"fmt"
	"iter"

	"rowdoc/column"
)

// Querier is implemented by *sql.DB, *sql.Tx, *sql.Conn, and any wrapper
// that can execute a query returning rows.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Option configures column kind resolution.
type Option func(*options)

type options struct {
	types map[string]column.Kind
}

// WithTypes pins the kind of named columns, overriding the database type.
func WithTypes(types map[string]column.Kind) Option {
	return func(o *options) {
		if o.types == nil {
			o.types = make(map[string]column.Kind, len(types))
		}
		for name, kind := range types {
			o.types[name] = kind
		}
	}
}

// Scanner converts the rows of one result set. Column kinds are resolved once
// from the result set metadata.
type Scanner struct {
	names []string
	kinds []column.Kind // 0 when the kind is inferred per value
}

// NewScanner resolves the columns of rows.
func NewScanner(rows *sql.Rows, opts ...Option) (*Scanner, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read column types: %w", err)
	}

	s := &Scanner{
		names: make([]string, len(types)),
		kinds: make([]column.Kind, len(types)),
	}

	for i, ct := range types {
		s.names[i] = ct.Name()

		if kind, ok := o.types[ct.Name()]; ok {
			s.kinds[i] = kind
			continue
		}

		if kind, ok := KindOf(ct.DatabaseTypeName()); ok {
			s.kinds[i] = kind
		}
	}

	return s, nil
}

// Names returns the column names of the result set.
func (s *Scanner) Names() []string { return s.names }

// Scan reads the current row of rows.
func (s *Scanner) Scan(rows *sql.Rows) (column.Row, error) {
	raw := make([]any, len(s.names))
	dest := make([]any, len(raw))
	for i := range raw {
		dest[i] = &raw[i]
	}

	if err := rows.Scan(dest...); err != nil {
		return column.Row{}, fmt.Errorf("failed to scan row: %w", err)
	}

	values := make([]column.Value, len(raw))
	for i, src := range raw {
		kind := s.kinds[i]
		if kind == 0 {
			kind = inferKind(src)
		}

		v, err := toValue(kind, src)
		if err != nil {
			return column.Row{}, fmt.Errorf("column %q: %w", s.names[i], err)
		}

		values[i] = v
	}

	return column.NewRow(s.names, values)
}

// Scan reads every remaining row of rows and closes it.
func Scan(rows *sql.Rows, opts ...Option) ([]column.Row, error) {
	defer rows.Close()

	s, err := NewScanner(rows, opts...)
	if err != nil {
		return nil, err
	}

	var res []column.Row
	for rows.Next() {
		row, err := s.Scan(rows)
		if err != nil {
			return nil, err
		}

		res = append(res, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return res, nil
}

// Query runs query through q and reads all resulting rows.
func Query(ctx context.Context, q Querier, query string, args []any, opts ...Option) ([]column.Row, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}

	return Scan(rows, opts...)
}

// Stream runs query through q and yields rows as they are read. Iteration
// stops after the first error.
func Stream(ctx context.Context, q Querier, query string, args []any, opts ...Option) iter.Seq2[column.Row, error] {
	return func(yield func(column.Row, error) bool) {
		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			yield(column.Row{}, fmt.Errorf("failed to run query: %w", err))
			return
		}
		defer rows.Close()

		s, err := NewScanner(rows, opts...)
		if err != nil {
			yield(column.Row{}, err)
			return
		}

		for rows.Next() {
			row, err := s.Scan(rows)
			if !yield(row, err) || err != nil {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(column.Row{}, fmt.Errorf("failed to iterate rows: %w", err))
		}
	}
}
