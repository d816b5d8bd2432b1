package column

import (
	"fmt"
	"iter"
)

// Row is one result-set row: column names aligned positionally with their values.
type Row struct {
	names  []string
	values []Value
}

// NewRow pairs names with values. Both slices are retained, not copied.
func NewRow(names []string, values []Value) (Row, error) {
	if len(names) != len(values) {
		return Row{}, fmt.Errorf("column: %d names for %d values", len(names), len(values))
	}

	return Row{names: names, values: values}, nil
}

// MustRow is like NewRow but panics on misaligned input. Intended for tests and literals.
func MustRow(names []string, values []Value) Row {
	r, err := NewRow(names, values)
	if err != nil {
		panic(err)
	}

	return r
}

func (r Row) Len() int { return len(r.names) }

// Column returns the i-th column name and value.
func (r Row) Column(i int) (string, Value) { return r.names[i], r.values[i] }

func (r Row) Names() []string { return r.names }

// Pairs yields (name, value) in positional order.
func (r Row) Pairs() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i := range r.names {
			if !yield(r.names[i], r.values[i]) {
				return
			}
		}
	}
}
