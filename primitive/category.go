package primitive

import (
	"fmt"
	"maps"
	"strings"
)

type CategoryEnum int

type ConversionPair struct {
	From, To KindEnum
}

const (
	CategorySafeNumber    CategoryEnum = 1 << iota // int, uint, float without precision loss
	CategoryUnsafeNumber                           // float -> int truncation, int -> float rounding
	CategoryTextNumber                             // int, uint, float <-> string: textual number representation
	CategoryNumericBool                            // int <-> bool: 0, 1 representation of boolean values
	CategoryTextualBool                            // string <-> bool: yes, no, on, off, true, false representation of boolean values
	CategoryDatetime                               // string(ISO-8601) -> time.Time: textual date and time representation
	CategoryTimestamp                              // int(Unix seconds) -> time.Time: Unix timestamp representation
	CategoryDuration                               // string(2h45m) -> time.Duration: textual duration representation
	CategoryNanoseconds                            // int(nanoseconds) -> time.Duration: numerical (integer) duration representation
	CategorySeconds                                // float(seconds) -> time.Duration: numerical (floating-point) duration representation
	CategoryEnumString                             // string -> enum: textual representation of an enum type
	CategoryCheckedNumber                          // int -> narrower int, int -> float: range checked, fails instead of losing data
	CategoryCanonicalText                          // string -> decimal, uuid, base64 bytes; number -> decimal

	CategoryAll  = (1 << iota) - 1 //all categories combined
	CategoryNone = 0               // no categories selected

	// CategoryDefault mirrors strict structural decoding: numbers narrow only when
	// they fit, strings become dates, enums and canonical values, nothing else.
	CategoryDefault = CategorySafeNumber | CategoryCheckedNumber | CategoryDatetime |
		CategoryEnumString | CategoryCanonicalText
)

var categoryNames = map[string]CategoryEnum{
	"safe-number":    CategorySafeNumber,
	"unsafe-number":  CategoryUnsafeNumber,
	"text-number":    CategoryTextNumber,
	"numeric-bool":   CategoryNumericBool,
	"textual-bool":   CategoryTextualBool,
	"datetime":       CategoryDatetime,
	"timestamp":      CategoryTimestamp,
	"duration":       CategoryDuration,
	"nanoseconds":    CategoryNanoseconds,
	"seconds":        CategorySeconds,
	"enum-string":    CategoryEnumString,
	"checked-number": CategoryCheckedNumber,
	"canonical-text": CategoryCanonicalText,
	"default":        CategoryDefault,
	"all":            CategoryAll,
}

// ParseCategories combines categories given by name ("text-number", "default", ...).
func ParseCategories(names ...string) (CategoryEnum, error) {
	var res CategoryEnum
	for _, name := range names {
		c, ok := categoryNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return CategoryNone, fmt.Errorf("unknown conversion category %q", name)
		}

		res |= c
	}

	return res, nil
}

var conversionPairs map[CategoryEnum]map[ConversionPair]struct{}

func init() {
	conversionPairs = make(map[CategoryEnum]map[ConversionPair]struct{})

	conversionPairs[CategorySafeNumber] = map[ConversionPair]struct{}{
		{KindInt64, KindInt64}:     {}, // int64 is the widest signed integer type
		{KindFloat64, KindFloat64}: {},
	}

	// CategoryCheckedNumber: integers into any number kind when the value fits
	conversionPairs[CategoryCheckedNumber] = map[ConversionPair]struct{}{
		{KindFloat64, KindFloat32}: {},
	}
	for toKind := KindEnum(1); int(toKind) < KindTotal; toKind++ {
		if toKind.IsNumber() && toKind != KindInt64 {
			conversionPairs[CategoryCheckedNumber][ConversionPair{KindInt64, toKind}] = struct{}{}
		}
	}

	// CategoryUnsafeNumber: fractional numbers truncated into integers
	conversionPairs[CategoryUnsafeNumber] = map[ConversionPair]struct{}{}
	for toKind := KindEnum(1); int(toKind) < KindTotal; toKind++ {
		if toKind.IsInteger() {
			conversionPairs[CategoryUnsafeNumber][ConversionPair{KindFloat64, toKind}] = struct{}{}
		}
	}

	// CategoryTextNumber: text <-> number conversions
	conversionPairs[CategoryTextNumber] = map[ConversionPair]struct{}{
		{KindInt64, KindString}:   {},
		{KindFloat64, KindString}: {},
	}
	for numberKind := KindEnum(1); int(numberKind) < KindTotal; numberKind++ {
		if numberKind.IsNumber() {
			conversionPairs[CategoryTextNumber][ConversionPair{KindString, numberKind}] = struct{}{}
		}
	}

	// CategoryNumericBool: int <-> bool conversions
	conversionPairs[CategoryNumericBool] = map[ConversionPair]struct{}{
		{KindInt64, KindBool}: {},
	}
	for toKind := KindEnum(1); int(toKind) < KindTotal; toKind++ {
		if toKind.IsInteger() {
			conversionPairs[CategoryNumericBool][ConversionPair{KindBool, toKind}] = struct{}{}
		}
	}

	// string <-> bool: yes, no, on, off, true, false
	conversionPairs[CategoryTextualBool] = map[ConversionPair]struct{}{
		{KindString, KindBool}: {},
		{KindBool, KindString}: {},
	}

	conversionPairs[CategoryDatetime] = map[ConversionPair]struct{}{
		{KindString, KindTime}: {},
	}

	conversionPairs[CategoryTimestamp] = map[ConversionPair]struct{}{
		{KindInt64, KindTime}: {},
	}

	conversionPairs[CategoryDuration] = map[ConversionPair]struct{}{
		{KindString, KindDuration}: {},
	}

	conversionPairs[CategoryNanoseconds] = map[ConversionPair]struct{}{
		{KindInt64, KindDuration}: {},
	}

	conversionPairs[CategorySeconds] = map[ConversionPair]struct{}{
		{KindFloat64, KindDuration}: {},
	}

	conversionPairs[CategoryEnumString] = map[ConversionPair]struct{}{
		{KindString, KindPrimitiveEnum}: {},
	}

	conversionPairs[CategoryCanonicalText] = map[ConversionPair]struct{}{
		{KindString, KindDecimal}:  {},
		{KindInt64, KindDecimal}:   {},
		{KindFloat64, KindDecimal}: {},
		{KindString, KindUUID}:     {},
		{KindString, KindBytes}:    {},
	}
}

// Allowed reports whether pair may be converted under the allowed categories.
// Identity pairs of bool and string are always allowed.
func Allowed(pair ConversionPair, allowed CategoryEnum) bool {
	if pair.From == pair.To && (pair.From == KindBool || pair.From == KindString) {
		return true
	}

	for category := CategoryEnum(1); category&CategoryAll > 0; category <<= 1 {
		if allowed&category == 0 {
			continue
		}

		if _, ok := conversionPairs[category][pair]; ok {
			return true
		}
	}

	return false
}

// Pairs lists every conversion reachable under allowed, including identities.
func Pairs(allowed CategoryEnum) []ConversionPair {
	set := allowedSet(allowed)
	set[ConversionPair{KindBool, KindBool}] = struct{}{}
	set[ConversionPair{KindString, KindString}] = struct{}{}

	res := make([]ConversionPair, 0, len(set))
	for pair := range set {
		res = append(res, pair)
	}

	return res
}

func allowedSet(allowed CategoryEnum) map[ConversionPair]struct{} {
	res := map[ConversionPair]struct{}{}

	for category := CategoryEnum(1); category&CategoryAll > 0; category <<= 1 {
		if allowed&category == 0 {
			continue
		}

		maps.Copy(res, conversionPairs[category])
	}

	return res
}
