package sqlsource

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rowdoc/column"
	"rowdoc/document"
	"rowdoc/primitive"
	"rowdoc/utils"
)

var ErrUnexpectedValue = errors.New("unexpected driver value")

// inferKind picks a kind for a value of a column without a known type.
func inferKind(src any) column.Kind {
	switch src.(type) {
	case bool:
		return column.KindBit
	case float32, float64:
		return column.KindFloat64
	case string:
		return column.KindString
	case []byte:
		return column.KindBinary
	case time.Time:
		return column.KindDateTime2
	default:
		// int64 and NULL
		return column.KindInt64
	}
}

// toValue converts a driver value into a column value of the given kind.
func toValue(kind column.Kind, src any) (column.Value, error) {
	if src == nil {
		return column.Null(kind), nil
	}

	if kind.IsTemporal() {
		return temporal(kind, src)
	}

	switch kind {
	case column.KindInt16:
		return integer(src, column.Int16)
	case column.KindInt32:
		return integer(src, column.Int32)
	case column.KindInt64:
		return integer(src, column.Int64)
	case column.KindUint8:
		return integer(src, column.Uint8)
	case column.KindFloat32, column.KindFloat64:
		return floating(kind, src)
	case column.KindBit:
		return bit(src)
	case column.KindNumeric:
		return numeric(src)
	case column.KindBigInt:
		return bigInt(src)
	case column.KindString:
		s, err := text(src)
		return column.String(s), err
	case column.KindXML:
		s, err := text(src)
		return column.XML(s), err
	case column.KindGUID:
		return guid(src)
	case column.KindBinary:
		switch v := src.(type) {
		case []byte:
			return column.Binary(append([]byte(nil), v...)), nil
		case string:
			return column.Binary([]byte(v)), nil
		}
	default:
		switch v := src.(type) {
		case []byte:
			return column.Opaque(kind, append([]byte(nil), v...)), nil
		default:
			return column.Opaque(kind, fmt.Append(nil, v)), nil
		}
	}

	return column.Value{}, unexpected(kind, src)
}

func unexpected(kind column.Kind, src any) error {
	return fmt.Errorf("%w %T for %s", ErrUnexpectedValue, src, kind.Short())
}

func integer[T int16 | int32 | int64 | uint8](src any, mk func(T) column.Value) (column.Value, error) {
	var zero T

	v, ok := src.(int64)
	if !ok {
		s, err := text(src)
		if err != nil {
			return column.Value{}, err
		}

		// drivers hand some integer types over as text
		n, err := primitive.Convert(document.String(s), primitive.KindInt64, primitive.CategoryTextNumber)
		if err != nil {
			return column.Value{}, err
		}
		v = n.(int64)
	}

	if !utils.Fits[T](v) {
		return column.Value{}, fmt.Errorf("value %d overflows %T", v, zero)
	}

	return mk(T(v)), nil
}

func floating(kind column.Kind, src any) (column.Value, error) {
	var f float64

	switch v := src.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int64:
		f = float64(v)
	default:
		return column.Value{}, unexpected(kind, src)
	}

	if kind == column.KindFloat32 {
		return column.Float32(float32(f)), nil
	}

	return column.Float64(f), nil
}

func bit(src any) (column.Value, error) {
	switch v := src.(type) {
	case bool:
		return column.Bit(v), nil
	case int64:
		b, err := primitive.Convert(document.Int(v), primitive.KindBool, primitive.CategoryNumericBool)
		if err != nil {
			return column.Value{}, err
		}
		return column.Bit(b.(bool)), nil
	default:
		return column.Value{}, unexpected(column.KindBit, src)
	}
}

func numeric(src any) (column.Value, error) {
	switch v := src.(type) {
	case int64:
		return column.Numeric(decimal.NewFromInt(v)), nil
	case float64:
		return column.Numeric(decimal.NewFromFloat(v)), nil
	case string, []byte:
		s, _ := text(v)
		d, err := decimal.NewFromString(s)
		if err != nil {
			return column.Value{}, err
		}
		return column.Numeric(d), nil
	default:
		return column.Value{}, unexpected(column.KindNumeric, src)
	}
}

func bigInt(src any) (column.Value, error) {
	switch v := src.(type) {
	case int64:
		return column.BigInt(big.NewInt(v)), nil
	case string, []byte:
		s, _ := text(v)
		b, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return column.Value{}, fmt.Errorf("invalid integer %q", s)
		}
		return column.BigInt(b), nil
	default:
		return column.Value{}, unexpected(column.KindBigInt, src)
	}
}

func text(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("%w %T for text", ErrUnexpectedValue, src)
	}
}

func guid(src any) (column.Value, error) {
	switch v := src.(type) {
	case []byte:
		if len(v) == 16 {
			id, err := uuid.FromBytes(v)
			if err != nil {
				return column.Value{}, err
			}
			return column.GUID(id), nil
		}
		id, err := uuid.ParseBytes(v)
		if err != nil {
			return column.Value{}, err
		}
		return column.GUID(id), nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return column.Value{}, err
		}
		return column.GUID(id), nil
	default:
		return column.Value{}, unexpected(column.KindGUID, src)
	}
}

func temporal(kind column.Kind, src any) (column.Value, error) {
	var t time.Time

	switch v := src.(type) {
	case time.Time:
		t = v
	case string, []byte:
		s, _ := text(v)
		parsed, err := primitive.Convert(document.String(s), primitive.KindTime, primitive.CategoryDatetime)
		if err != nil {
			return column.Value{}, err
		}
		t = parsed.(time.Time)
	default:
		return column.Value{}, unexpected(kind, src)
	}

	switch kind {
	case column.KindDate:
		w, err := column.EncodeDate(t)
		return column.Date(w), err
	case column.KindTime:
		return column.Time(column.EncodeTime(t, column.MaxScale)), nil
	case column.KindDateTime:
		w, err := column.EncodeDateTime(t)
		return column.DateTime(w), err
	case column.KindSmallDateTime:
		w, err := column.EncodeSmallDateTime(t)
		return column.SmallDateTime(w), err
	case column.KindDateTime2:
		w, err := column.EncodeDateTime2(t, column.MaxScale)
		return column.DateTime2(w), err
	default:
		w, err := column.EncodeDateTimeOffset(t, column.MaxScale)
		return column.DateTimeOffset(w), err
	}
}
