package column

import "strings"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the wire type tag of a column value as delivered by the database client.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindFloat32
	KindFloat64
	KindBit
	KindNumeric
	KindBigInt
	KindString
	KindGUID
	KindBinary
	KindXML
	KindDate
	KindTime
	KindDateTime
	KindSmallDateTime
	KindDateTime2
	KindDateTimeOffset
	KindVariant // sql_variant, delivered by the client but never converted
	KindUDT     // CLR user-defined type, delivered by the client but never converted

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k Kind) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt16, KindInt32, KindInt64, KindUint8:
		return true
	}
}

func (k Kind) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

// IsText reports kinds whose SQL NULL is rendered as an empty string.
func (k Kind) IsText() bool {
	switch k {
	default:
		return false
	case KindString, KindXML:
		return true
	}
}

func (k Kind) IsTemporal() bool {
	switch k {
	default:
		return false
	case KindDate, KindTime, KindDateTime, KindSmallDateTime, KindDateTime2, KindDateTimeOffset:
		return true
	}
}

// ParseKind resolves a kind by its short name ("int32", "datetime2", ...) or its
// generated name ("KindInt32"). Matching is case-insensitive.
func ParseKind(s string) (Kind, bool) {
	for k := Kind(1); int(k) < KindTotal; k++ {
		if strings.EqualFold(s, k.String()) || strings.EqualFold(s, k.Short()) {
			return k, true
		}
	}

	return 0, false
}

// Short returns the kind name without the "Kind" prefix, lower-cased.
func (k Kind) Short() string {
	return strings.ToLower(strings.TrimPrefix(k.String(), "Kind"))
}
