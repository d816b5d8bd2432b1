package decode

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rowdoc/document"
	"rowdoc/primitive"
)

var ErrInvalidEnum = errors.New("invalid enum value")

// Extractor turns a non-null document node into a typed value. Kind is the
// target kind reported in errors.
type Extractor[V any] struct {
	Kind    primitive.KindEnum
	Extract func(n document.Node, allowed primitive.CategoryEnum) (V, error)
}

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Enumeration is a string-based enum type that knows its valid values.
type Enumeration interface {
	~string
	IsValid() bool
}

func scalar[V any](kind primitive.KindEnum, cast func(any) V) Extractor[V] {
	return Extractor[V]{
		Kind: kind,
		Extract: func(n document.Node, allowed primitive.CategoryEnum) (V, error) {
			v, err := primitive.Convert(n, kind, allowed)
			if err != nil {
				var zero V
				return zero, err
			}

			return cast(v), nil
		},
	}
}

// Int extracts a signed integer, range checked against the width of V.
func Int[V signed]() Extractor[V] {
	return scalar(primitive.KindOf[V](), func(v any) V { return V(v.(int64)) })
}

// Uint extracts an unsigned integer, range checked against the width of V.
func Uint[V unsigned]() Extractor[V] {
	return scalar(primitive.KindOf[V](), func(v any) V { return V(v.(uint64)) })
}

func Float[V ~float32 | ~float64]() Extractor[V] {
	return scalar(primitive.KindOf[V](), func(v any) V { return V(v.(float64)) })
}

func Bool[V ~bool]() Extractor[V] {
	return scalar(primitive.KindBool, func(v any) V { return V(v.(bool)) })
}

func String[V ~string]() Extractor[V] {
	return scalar(primitive.KindString, func(v any) V { return V(v.(string)) })
}

// Time extracts a time.Time from an ISO-8601 string (or a Unix timestamp when
// CategoryTimestamp is allowed).
func Time() Extractor[time.Time] {
	return scalar(primitive.KindTime, func(v any) time.Time { return v.(time.Time) })
}

func Duration() Extractor[time.Duration] {
	return scalar(primitive.KindDuration, func(v any) time.Duration { return v.(time.Duration) })
}

// Enum extracts a string enum and rejects values E does not consider valid.
func Enum[E Enumeration]() Extractor[E] {
	return Extractor[E]{
		Kind: primitive.KindPrimitiveEnum,
		Extract: func(n document.Node, allowed primitive.CategoryEnum) (E, error) {
			v, err := primitive.Convert(n, primitive.KindPrimitiveEnum, allowed)
			if err != nil {
				return "", err
			}

			e := E(v.(string))
			if !e.IsValid() {
				return "", fmt.Errorf("%w: %q", ErrInvalidEnum, string(e))
			}

			return e, nil
		},
	}
}

func Decimal() Extractor[decimal.Decimal] {
	return scalar(primitive.KindDecimal, func(v any) decimal.Decimal { return v.(decimal.Decimal) })
}

func UUID() Extractor[uuid.UUID] {
	return scalar(primitive.KindUUID, func(v any) uuid.UUID { return v.(uuid.UUID) })
}

// Bytes extracts standard Base64 text.
func Bytes() Extractor[[]byte] {
	return scalar(primitive.KindBytes, func(v any) []byte { return v.([]byte) })
}

// Nested decodes an object node with its own decoder. The nested decoder keeps
// its own categories and aliases.
func Nested[V any](dec *Decoder[V]) Extractor[V] {
	return Extractor[V]{
		Extract: func(n document.Node, _ primitive.CategoryEnum) (V, error) {
			return dec.DecodeNode(n)
		},
	}
}
