package decode

import (
	"rowdoc/document"
	"rowdoc/primitive"
)

// Field is one entry of a decoder's field table: the name it is matched by and
// how a node is stored into the record.
type Field[R any] struct {
	name     string
	optional bool
	want     primitive.KindEnum
	assign   func(r *R, n document.Node, allowed primitive.CategoryEnum) error
	clear    func(r *R)
}

func (f Field[R]) Name() string   { return f.name }
func (f Field[R]) Optional() bool { return f.optional }

// Bind declares a required field: a missing key fails with ReasonMissing and a
// null node with ReasonIncompatible.
func Bind[R, V any](name string, ex Extractor[V], ptr func(*R) *V) Field[R] {
	return Field[R]{
		name: name,
		want: ex.Kind,
		assign: func(r *R, n document.Node, allowed primitive.CategoryEnum) error {
			v, err := ex.Extract(n, allowed)
			if err != nil {
				return err
			}

			*ptr(r) = v
			return nil
		},
	}
}

// Optional declares a pointer field left nil for a missing key or a null node.
func Optional[R, V any](name string, ex Extractor[V], ptr func(*R) **V) Field[R] {
	return Field[R]{
		name:     name,
		optional: true,
		want:     ex.Kind,
		assign: func(r *R, n document.Node, allowed primitive.CategoryEnum) error {
			v, err := ex.Extract(n, allowed)
			if err != nil {
				return err
			}

			*ptr(r) = &v
			return nil
		},
		clear: func(r *R) { *ptr(r) = nil },
	}
}

// Dynamic declares a field whose target kind is only known at run time, such
// as one read from a configuration file. set receives the converted value as
// returned by primitive.Convert; an optional field that is missing or null
// calls set with nil.
func Dynamic[R any](name string, kind primitive.KindEnum, optional bool, set func(r *R, v any)) Field[R] {
	ex := scalar(kind, func(v any) any { return v })

	f := Field[R]{
		name:     name,
		optional: optional,
		want:     kind,
		assign: func(r *R, n document.Node, allowed primitive.CategoryEnum) error {
			v, err := ex.Extract(n, allowed)
			if err != nil {
				return err
			}

			set(r, v)
			return nil
		},
	}

	if optional {
		f.clear = func(r *R) { set(r, nil) }
	}

	return f
}
