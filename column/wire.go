package column

import (
	"errors"
	"fmt"
	"math"
	"time"

	"rowdoc/utils"
)

// ErrOutOfRange is returned when a time cannot be represented by the target wire encoding.
var ErrOutOfRange = errors.New("time out of wire range")

const (
	secondsPerDay = 86400

	// MaxDateDays is 9999-12-31 counted in days from 0001-01-01.
	MaxDateDays = 3652058

	// FragmentsPerSecond is the resolution of the legacy DATETIME time-of-day counter.
	FragmentsPerSecond = 300

	// MaxScale is the highest fractional-second scale of TIME, DATETIME2 and DATETIMEOFFSET.
	MaxScale = 7
)

var (
	unixDay1900 = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
	unixDay0001 = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
)

// DateTimeWire is the legacy DATETIME encoding: a signed day count from 1900-01-01
// and a count of 1/300 second fragments since midnight.
type DateTimeWire struct {
	Days      int32
	Fragments uint32
}

// SmallDateTimeWire is the SMALLDATETIME encoding: days from 1900-01-01 and
// minutes since midnight.
type SmallDateTimeWire struct {
	Days    uint16
	Minutes uint16
}

// DateWire is the DATE encoding: days from 0001-01-01.
type DateWire struct {
	Days uint32
}

// TimeWire is the TIME encoding: Increments of 10^-Scale seconds since midnight.
type TimeWire struct {
	Increments uint64
	Scale      uint8
}

type DateTime2Wire struct {
	Date DateWire
	Time TimeWire
}

// DateTimeOffsetWire carries a UTC DATETIME2 and the original offset in minutes.
type DateTimeOffsetWire struct {
	DateTime2     DateTime2Wire
	OffsetMinutes int16
}

// EncodeDateTime rounds t (taken in UTC) to the nearest fragment.
func EncodeDateTime(t time.Time) (DateTimeWire, error) {
	days, nanos := splitDay(t.UTC(), unixDay1900)

	fragments := (nanos*FragmentsPerSecond + int64(time.Second)/2) / int64(time.Second)
	if fragments >= secondsPerDay*FragmentsPerSecond {
		days++
		fragments = 0
	}

	if !utils.Fits[int32](days) {
		return DateTimeWire{}, rangeError("datetime", t, days)
	}

	return DateTimeWire{Days: int32(days), Fragments: uint32(fragments)}, nil
}

// EncodeSmallDateTime rounds t (taken in UTC) to the nearest minute. The range
// is 1900-01-01 through 2079-06-06 23:59.
func EncodeSmallDateTime(t time.Time) (SmallDateTimeWire, error) {
	days, nanos := splitDay(t.UTC(), unixDay1900)

	minutes := (nanos + int64(30*time.Second)) / int64(time.Minute)
	if minutes >= 24*60 {
		days++
		minutes = 0
	}

	if !utils.IsInRange(0, days, math.MaxUint16) {
		return SmallDateTimeWire{}, rangeError("smalldatetime", t, days)
	}

	return SmallDateTimeWire{Days: uint16(days), Minutes: uint16(minutes)}, nil
}

// EncodeDate keeps the calendar date of t in its own location. The range is
// 0001-01-01 through 9999-12-31.
func EncodeDate(t time.Time) (DateWire, error) {
	y, m, d := t.Date()
	days, _ := splitDay(time.Date(y, m, d, 0, 0, 0, 0, time.UTC), unixDay0001)

	if !utils.IsInRange(0, days, MaxDateDays) {
		return DateWire{}, rangeError("date", t, days)
	}

	return DateWire{Days: uint32(days)}, nil
}

// EncodeTime truncates the wall clock of t to the given scale.
func EncodeTime(t time.Time, scale uint8) TimeWire {
	if scale > MaxScale {
		scale = MaxScale
	}

	h, m, s := t.Clock()
	nanos := int64(h)*int64(time.Hour) + int64(m)*int64(time.Minute) +
		int64(s)*int64(time.Second) + int64(t.Nanosecond())

	return TimeWire{Increments: uint64(nanos / pow10(9-int(scale))), Scale: scale}
}

// EncodeDateTime2 keeps the wall clock of t in its own location.
func EncodeDateTime2(t time.Time, scale uint8) (DateTime2Wire, error) {
	date, err := EncodeDate(t)
	if err != nil {
		return DateTime2Wire{}, err
	}

	return DateTime2Wire{Date: date, Time: EncodeTime(t, scale)}, nil
}

// EncodeDateTimeOffset stores t in UTC together with its zone offset.
func EncodeDateTimeOffset(t time.Time, scale uint8) (DateTimeOffsetWire, error) {
	_, offset := t.Zone()
	if !utils.Fits[int16](offset / 60) {
		return DateTimeOffsetWire{}, fmt.Errorf("%w: offset of %s", ErrOutOfRange, t)
	}

	dt2, err := EncodeDateTime2(t.UTC(), scale)
	if err != nil {
		return DateTimeOffsetWire{}, err
	}

	return DateTimeOffsetWire{DateTime2: dt2, OffsetMinutes: int16(offset / 60)}, nil
}

func rangeError(kind string, t time.Time, days int64) error {
	return fmt.Errorf("%w: %s %s is day %d", ErrOutOfRange, kind, t.Format(time.RFC3339Nano), days)
}

// splitDay returns whole days of t since the given unix day and the nanoseconds into that day.
func splitDay(t time.Time, epochDay int64) (days, nanos int64) {
	sec := t.Unix()
	day := sec / secondsPerDay
	rem := sec % secondsPerDay
	if rem < 0 {
		day--
		rem += secondsPerDay
	}

	return day - epochDay, rem*int64(time.Second) + int64(t.Nanosecond())
}

func pow10(n int) int64 {
	p := int64(1)
	for range n {
		p *= 10
	}

	return p
}
