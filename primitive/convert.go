package primitive

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rowdoc/document"
	"rowdoc/utils"
)

var (
	ErrNotAllowed = errors.New("conversion not allowed")
	ErrNoSource   = errors.New("node has no convertible value")
)

// RangeError reports a number that does not fit the target kind.
type RangeError struct {
	Value string
	Kind  KindEnum
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %s overflows %s", e.Value, e.Kind)
}

// ConversionError reports a pair the allowed categories do not cover.
type ConversionError struct {
	Pair ConversionPair
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrNotAllowed, e.Pair.From, e.Pair.To)
}

func (e *ConversionError) Is(target error) bool { return target == ErrNotAllowed }

// DatetimeLayouts are tried in order when a string converts to time.Time.
// Layouts without a zone produce UTC.
var DatetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
	"15:04:05.999999999",
}

type converter func(src any, dst KindEnum) (any, error)

var converters map[ConversionPair]converter

func init() {
	converters = map[ConversionPair]converter{}

	for toKind := KindEnum(1); int(toKind) < KindTotal; toKind++ {
		switch {
		case toKind.IsInteger():
			converters[ConversionPair{KindInt64, toKind}] = intToInteger
			converters[ConversionPair{KindFloat64, toKind}] = floatToInteger
			converters[ConversionPair{KindString, toKind}] = textToNumber
			converters[ConversionPair{KindBool, toKind}] = boolToInteger
		case toKind.IsFloat():
			converters[ConversionPair{KindInt64, toKind}] = intToFloat
			converters[ConversionPair{KindFloat64, toKind}] = floatToFloat
			converters[ConversionPair{KindString, toKind}] = textToNumber
		}
	}

	converters[ConversionPair{KindBool, KindBool}] = identity
	converters[ConversionPair{KindString, KindString}] = identity
	converters[ConversionPair{KindInt64, KindString}] = func(src any, _ KindEnum) (any, error) {
		return strconv.FormatInt(src.(int64), 10), nil
	}
	converters[ConversionPair{KindFloat64, KindString}] = func(src any, _ KindEnum) (any, error) {
		return strconv.FormatFloat(src.(float64), 'f', -1, 64), nil
	}
	converters[ConversionPair{KindInt64, KindBool}] = func(src any, _ KindEnum) (any, error) {
		switch src.(int64) {
		case 0:
			return false, nil
		case 1:
			return true, nil
		default:
			return nil, fmt.Errorf("only numbers 0 and 1 are allowed for bool, got: %d", src)
		}
	}
	converters[ConversionPair{KindString, KindBool}] = func(src any, _ KindEnum) (any, error) {
		switch strings.ToLower(src.(string)) {
		default:
			return nil, fmt.Errorf("only strings true/false, yes/no, on/off are allowed for bool, got: %s", src)
		case "true", "yes", "on":
			return true, nil
		case "false", "no", "off":
			return false, nil
		}
	}
	converters[ConversionPair{KindBool, KindString}] = func(src any, _ KindEnum) (any, error) {
		return strconv.FormatBool(src.(bool)), nil
	}
	converters[ConversionPair{KindString, KindTime}] = textToTime
	converters[ConversionPair{KindInt64, KindTime}] = func(src any, _ KindEnum) (any, error) {
		return time.Unix(src.(int64), 0).UTC(), nil
	}
	converters[ConversionPair{KindString, KindDuration}] = func(src any, _ KindEnum) (any, error) {
		return time.ParseDuration(src.(string))
	}
	converters[ConversionPair{KindInt64, KindDuration}] = func(src any, _ KindEnum) (any, error) {
		return time.Duration(src.(int64)), nil
	}
	converters[ConversionPair{KindFloat64, KindDuration}] = func(src any, dst KindEnum) (any, error) {
		ns := src.(float64) * float64(time.Second)
		if ns >= math.MaxInt64 || ns <= math.MinInt64 {
			return nil, &RangeError{Value: formatAny(src), Kind: dst}
		}
		return time.Duration(ns), nil
	}
	converters[ConversionPair{KindString, KindPrimitiveEnum}] = identity
	converters[ConversionPair{KindString, KindDecimal}] = func(src any, _ KindEnum) (any, error) {
		return decimal.NewFromString(src.(string))
	}
	converters[ConversionPair{KindInt64, KindDecimal}] = func(src any, _ KindEnum) (any, error) {
		return decimal.NewFromInt(src.(int64)), nil
	}
	converters[ConversionPair{KindFloat64, KindDecimal}] = func(src any, _ KindEnum) (any, error) {
		return decimal.NewFromFloat(src.(float64)), nil
	}
	converters[ConversionPair{KindString, KindUUID}] = func(src any, _ KindEnum) (any, error) {
		return uuid.Parse(src.(string))
	}
	converters[ConversionPair{KindString, KindBytes}] = func(src any, _ KindEnum) (any, error) {
		return base64.StdEncoding.DecodeString(src.(string))
	}
}

// Convert turns a document node into the canonical Go value of dst:
//   - signed integer kinds: int64, range checked against the kind width
//   - unsigned integer kinds: uint64, range checked against the kind width
//   - float kinds: float64 (float32 overflow checked)
//   - KindBool: bool; KindString, KindPrimitiveEnum: string
//   - KindTime: time.Time; KindDuration: time.Duration
//   - KindDecimal: decimal.Decimal; KindUUID: uuid.UUID; KindBytes: []byte
//
// Null and object nodes fail with ErrNoSource; pairs outside allowed fail with
// a *ConversionError matching ErrNotAllowed.
func Convert(n document.Node, dst KindEnum, allowed CategoryEnum) (any, error) {
	from := FromNode(n)
	if from == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSource, n.Kind())
	}

	pair := ConversionPair{From: from, To: dst}
	if !Allowed(pair, allowed) {
		return nil, &ConversionError{Pair: pair}
	}

	conv, ok := converters[pair]
	if !ok {
		return nil, &ConversionError{Pair: pair}
	}

	return conv(sourceValue(n), dst)
}

// HasConverter reports whether a runtime converter exists for pair.
func HasConverter(pair ConversionPair) bool {
	_, ok := converters[pair]
	return ok
}

func sourceValue(n document.Node) any {
	switch n.Kind() {
	case document.NodeBool:
		b, _ := n.AsBool()
		return b
	case document.NodeNumber:
		num, _ := n.AsNumber()
		if i, ok := num.Int64(); ok {
			return i
		}
		return num.Float64()
	case document.NodeString:
		s, _ := n.AsString()
		return s
	default:
		return nil
	}
}

func identity(src any, _ KindEnum) (any, error) { return src, nil }

func intToInteger(src any, dst KindEnum) (any, error) {
	return fitInteger(src.(int64), dst)
}

func floatToInteger(src any, dst KindEnum) (any, error) {
	f := math.Trunc(src.(float64))
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, &RangeError{Value: formatAny(src), Kind: dst}
	}

	return fitInteger(int64(f), dst)
}

func boolToInteger(src any, dst KindEnum) (any, error) {
	if src.(bool) {
		return fitInteger(1, dst)
	}

	return fitInteger(0, dst)
}

// maxExactFloat64 is the largest magnitude below which every integer is a float64.
const (
	maxExactFloat64 = 1 << 53
	maxExactFloat32 = 1 << 24
)

func intToFloat(src any, dst KindEnum) (any, error) {
	v := src.(int64)

	limit := int64(maxExactFloat64)
	if dst == KindFloat32 {
		limit = maxExactFloat32
	}

	if !utils.IsInRange(-limit, v, limit) {
		return nil, &RangeError{Value: formatAny(src), Kind: dst}
	}

	return float64(v), nil
}

func floatToFloat(src any, dst KindEnum) (any, error) {
	f := src.(float64)
	if dst == KindFloat32 && math.Abs(f) > math.MaxFloat32 {
		return nil, &RangeError{Value: formatAny(src), Kind: dst}
	}

	return f, nil
}

func textToNumber(src any, dst KindEnum) (any, error) {
	s := src.(string)

	switch {
	case dst.IsSigned():
		v, err := strconv.ParseInt(s, 10, dst.Bits())
		if err != nil {
			return nil, err
		}
		return v, nil
	case dst.IsUnsigned():
		v, err := strconv.ParseUint(s, 10, dst.Bits())
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		v, err := strconv.ParseFloat(s, dst.Bits())
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func textToTime(src any, _ KindEnum) (any, error) {
	s := src.(string)

	var firstErr error
	for _, layout := range DatetimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	return nil, firstErr
}

func fitInteger(v int64, dst KindEnum) (any, error) {
	if dst.IsUnsigned() {
		if !fitsUnsigned(v, dst.Bits()) {
			return nil, &RangeError{Value: strconv.FormatInt(v, 10), Kind: dst}
		}
		return uint64(v), nil
	}

	if !fitsSigned(v, dst.Bits()) {
		return nil, &RangeError{Value: strconv.FormatInt(v, 10), Kind: dst}
	}

	return v, nil
}

func fitsSigned(v int64, bits int) bool {
	switch bits {
	case 8:
		return utils.Fits[int8](v)
	case 16:
		return utils.Fits[int16](v)
	case 32:
		return utils.Fits[int32](v)
	default:
		return true
	}
}

func fitsUnsigned(v int64, bits int) bool {
	switch bits {
	case 8:
		return utils.Fits[uint8](v)
	case 16:
		return utils.Fits[uint16](v)
	case 32:
		return utils.Fits[uint32](v)
	default:
		return utils.Fits[uint64](v)
	}
}

func formatAny(v any) string {
	switch v := v.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
