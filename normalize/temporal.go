package normalize

import (
	"fmt"
	"math"
	"time"

	"rowdoc/column"
	"rowdoc/document"
	"rowdoc/utils"
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04:05.999999999"
	dateTimeLayout = "2006-01-02T15:04:05.999999999"
	offsetLayout   = "2006-01-02T15:04:05.999999999-07:00"

	maxOffsetMinutes = 14 * 60
	minutesPerDay    = 24 * 60
)

// civilDate builds midnight UTC of the given date, failing when the date does
// not exist instead of normalizing it.
func civilDate(year int, month time.Month, day int) (time.Time, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if y, m, d := t.Date(); y != year || m != month || d != day {
		return time.Time{}, fmt.Errorf("invalid calendar date %04d-%02d-%02d", year, int(month), day)
	}

	return t, nil
}

// DecodeDateTime reconstructs a legacy DATETIME: 1900-01-01 plus Days, plus
// Fragments/300 seconds split into whole seconds and truncated nanoseconds.
// The result is in UTC.
func DecodeDateTime(w column.DateTimeWire) (time.Time, error) {
	epoch, err := civilDate(1900, time.January, 1)
	if err != nil {
		return time.Time{}, &TemporalDecodeError{Kind: column.KindDateTime, Err: err}
	}

	seconds := float64(w.Fragments) / column.FragmentsPerSecond
	whole, frac := math.Modf(seconds)

	return epoch.
		AddDate(0, 0, int(w.Days)).
		Add(time.Duration(whole) * time.Second).
		Add(time.Duration(frac * float64(time.Second))), nil
}

func (n *Normalizer) fragmentDateTime(v column.Value) (document.Node, Outcome, error) {
	t, err := DecodeDateTime(v.DateTime)
	if err != nil {
		return document.Node{}, 0, err
	}

	return document.String(t.Format(time.RFC3339Nano)), OutcomeValue, nil
}

// wireDecoder validates one temporal wire layout and renders it.
type wireDecoder func(v column.Value) (string, error)

var wireDecoders = map[column.Kind]wireDecoder{
	column.KindDate: func(v column.Value) (string, error) {
		d, err := decodeDate(v.Date)
		if err != nil {
			return "", err
		}
		return d.Format(dateLayout), nil
	},
	column.KindTime: func(v column.Value) (string, error) {
		clock, err := decodeTime(v.Time)
		if err != nil {
			return "", err
		}
		return time.Time{}.Add(clock).Format(timeLayout), nil
	},
	column.KindSmallDateTime: func(v column.Value) (string, error) {
		t, err := decodeSmallDateTime(v.SmallDateTime)
		if err != nil {
			return "", err
		}
		return t.Format(dateTimeLayout), nil
	},
	column.KindDateTime2: func(v column.Value) (string, error) {
		t, err := decodeDateTime2(v.DateTime2)
		if err != nil {
			return "", err
		}
		return t.Format(dateTimeLayout), nil
	},
	column.KindDateTimeOffset: func(v column.Value) (string, error) {
		t, err := decodeDateTimeOffset(v.DateTimeOffset)
		if err != nil {
			return "", err
		}
		return t.Format(offsetLayout), nil
	},
}

// wireTemporal degrades decode failures to a null node unless the normalizer is strict.
func wireTemporal(kind column.Kind, decode wireDecoder) handler {
	return func(n *Normalizer, v column.Value) (document.Node, Outcome, error) {
		s, err := decode(v)
		if err == nil {
			return document.String(s), OutcomeValue, nil
		}

		if n.strictTemporal {
			return document.Node{}, 0, &TemporalDecodeError{Kind: kind, Err: err}
		}

		return document.Null(), OutcomeDegraded, nil
	}
}

func decodeDate(w column.DateWire) (time.Time, error) {
	if w.Days > column.MaxDateDays {
		return time.Time{}, fmt.Errorf("%w: %d days after 0001-01-01", ErrTemporalRange, w.Days)
	}

	base, err := civilDate(1, time.January, 1)
	if err != nil {
		return time.Time{}, err
	}

	return base.AddDate(0, 0, int(w.Days)), nil
}

func decodeTime(w column.TimeWire) (time.Duration, error) {
	if !utils.IsInRange(0, int(w.Scale), column.MaxScale) {
		return 0, fmt.Errorf("%w: scale %d", ErrTemporalRange, w.Scale)
	}

	unit := uint64(1)
	for range 9 - int(w.Scale) {
		unit *= 10
	}

	perDay := uint64(24*time.Hour) / unit
	if w.Increments >= perDay {
		return 0, fmt.Errorf("%w: %d increments at scale %d", ErrTemporalRange, w.Increments, w.Scale)
	}

	return time.Duration(w.Increments * unit), nil
}

func decodeSmallDateTime(w column.SmallDateTimeWire) (time.Time, error) {
	if w.Minutes >= minutesPerDay {
		return time.Time{}, fmt.Errorf("%w: %d minutes", ErrTemporalRange, w.Minutes)
	}

	epoch, err := civilDate(1900, time.January, 1)
	if err != nil {
		return time.Time{}, err
	}

	return epoch.AddDate(0, 0, int(w.Days)).Add(time.Duration(w.Minutes) * time.Minute), nil
}

func decodeDateTime2(w column.DateTime2Wire) (time.Time, error) {
	date, err := decodeDate(w.Date)
	if err != nil {
		return time.Time{}, err
	}

	clock, err := decodeTime(w.Time)
	if err != nil {
		return time.Time{}, err
	}

	return date.Add(clock), nil
}

// decodeDateTimeOffset returns the instant in a fixed zone of the stored offset.
func decodeDateTimeOffset(w column.DateTimeOffsetWire) (time.Time, error) {
	if !utils.IsInRange(-maxOffsetMinutes, int(w.OffsetMinutes), maxOffsetMinutes) {
		return time.Time{}, fmt.Errorf("%w: offset %d minutes", ErrTemporalRange, w.OffsetMinutes)
	}

	utc, err := decodeDateTime2(w.DateTime2)
	if err != nil {
		return time.Time{}, err
	}

	return utc.In(time.FixedZone("", int(w.OffsetMinutes)*60)), nil
}
