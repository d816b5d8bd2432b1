package decode

import (
	"errors"
	"fmt"
	"strings"

	"rowdoc/document"
	"rowdoc/primitive"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrIncompatible = errors.New("incompatible value")
	ErrShape        = errors.New("invalid shape")
)

//go:generate go tool stringer -type=Reason -trimprefix=Reason -output=reason_string.go

// Reason classifies a decode failure.
type Reason int

const (
	_ Reason = iota

	ReasonMissing      // required field has no matching key
	ReasonIncompatible // node cannot be converted into the field type
	ReasonShape        // document (or the field table) cannot describe the record
)

// Error describes why a document could not be decoded into a record.
type Error struct {
	Field      string // dotted path for nested records
	Key        string // matched document key, empty when missing
	Reason     Reason
	Got        document.NodeKind
	Want       primitive.KindEnum
	Suggestion string // closest unmatched key for missing fields
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "field %q", e.Field)
	if e.Key != "" && e.Key != e.Field {
		fmt.Fprintf(&b, " (key %q)", e.Key)
	}

	switch e.Reason {
	case ReasonMissing:
		b.WriteString(": missing")
		if e.Suggestion != "" {
			fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
		}
	case ReasonIncompatible:
		fmt.Fprintf(&b, ": cannot decode %s", e.Got)
		if e.Want != 0 {
			fmt.Fprintf(&b, " into %s", e.Want)
		}
	default:
		b.WriteString(": invalid shape")
	}

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch e.Reason {
	case ReasonMissing:
		return target == ErrMissingField
	case ReasonIncompatible:
		return target == ErrIncompatible
	case ReasonShape:
		return target == ErrShape
	default:
		return false
	}
}

func shapeError(field string, err error) *Error {
	return &Error{Field: field, Reason: ReasonShape, Err: err}
}
