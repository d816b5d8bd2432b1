package normalize

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"rowdoc/column"
)

var (
	ErrUnsupportedKind = errors.New("unsupported column kind")
	ErrTemporalRange   = errors.New("temporal component out of range")
)

var dumper = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// UnsupportedKindError reports a column whose kind has no normalization rule.
type UnsupportedKindError struct {
	Column string
	Value  column.Value
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedKind, dumper.Sprintf("%+v", e.Value))
}

func (e *UnsupportedKindError) Is(target error) bool { return target == ErrUnsupportedKind }

// TemporalDecodeError reports a temporal value that could not be reconstructed.
type TemporalDecodeError struct {
	Column string
	Kind   column.Kind
	Err    error
}

func (e *TemporalDecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Kind.Short(), e.Err)
}

func (e *TemporalDecodeError) Unwrap() error { return e.Err }
