package column

import (
	"math/big"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Value is a single typed column value. Only the fields matching Kind are
// meaningful; Valid is false for SQL NULL, independently of an empty payload.
type Value struct {
	Kind  Kind
	Valid bool

	I64     int64           // KindInt16, KindInt32, KindInt64, KindUint8
	F64     float64         // KindFloat32, KindFloat64
	Bool    bool            // KindBit
	Str     string          // KindString, KindXML
	Bytes   []byte          // KindBinary
	Decimal decimal.Decimal // KindNumeric
	BigInt  *big.Int        // KindBigInt
	GUID    uuid.UUID       // KindGUID

	Date           DateWire           // KindDate
	Time           TimeWire           // KindTime
	DateTime       DateTimeWire       // KindDateTime
	SmallDateTime  SmallDateTimeWire  // KindSmallDateTime
	DateTime2      DateTime2Wire      // KindDateTime2
	DateTimeOffset DateTimeOffsetWire // KindDateTimeOffset

	Raw []byte // KindVariant, KindUDT: undecoded payload
}

// Null returns the SQL NULL of the given kind.
func Null(kind Kind) Value { return Value{Kind: kind} }

func Int16(v int16) Value { return Value{Kind: KindInt16, Valid: true, I64: int64(v)} }
func Int32(v int32) Value { return Value{Kind: KindInt32, Valid: true, I64: int64(v)} }
func Int64(v int64) Value { return Value{Kind: KindInt64, Valid: true, I64: v} }
func Uint8(v uint8) Value { return Value{Kind: KindUint8, Valid: true, I64: int64(v)} }

func Float32(v float32) Value { return Value{Kind: KindFloat32, Valid: true, F64: float64(v)} }
func Float64(v float64) Value { return Value{Kind: KindFloat64, Valid: true, F64: v} }

func Bit(v bool) Value { return Value{Kind: KindBit, Valid: true, Bool: v} }

func String(v string) Value { return Value{Kind: KindString, Valid: true, Str: v} }
func XML(v string) Value    { return Value{Kind: KindXML, Valid: true, Str: v} }

// Binary keeps a reference to b; callers must not mutate it afterwards.
func Binary(b []byte) Value { return Value{Kind: KindBinary, Valid: true, Bytes: b} }

func Numeric(d decimal.Decimal) Value { return Value{Kind: KindNumeric, Valid: true, Decimal: d} }

// BigInt returns a NULL value for a nil v.
func BigInt(v *big.Int) Value {
	if v == nil {
		return Null(KindBigInt)
	}

	return Value{Kind: KindBigInt, Valid: true, BigInt: v}
}

func GUID(v uuid.UUID) Value { return Value{Kind: KindGUID, Valid: true, GUID: v} }

func Date(w DateWire) Value         { return Value{Kind: KindDate, Valid: true, Date: w} }
func Time(w TimeWire) Value         { return Value{Kind: KindTime, Valid: true, Time: w} }
func DateTime(w DateTimeWire) Value { return Value{Kind: KindDateTime, Valid: true, DateTime: w} }

func SmallDateTime(w SmallDateTimeWire) Value {
	return Value{Kind: KindSmallDateTime, Valid: true, SmallDateTime: w}
}

func DateTime2(w DateTime2Wire) Value {
	return Value{Kind: KindDateTime2, Valid: true, DateTime2: w}
}

func DateTimeOffset(w DateTimeOffsetWire) Value {
	return Value{Kind: KindDateTimeOffset, Valid: true, DateTimeOffset: w}
}

// Opaque wraps an undecoded payload of a kind the client cannot interpret.
func Opaque(kind Kind, raw []byte) Value { return Value{Kind: kind, Valid: true, Raw: raw} }
