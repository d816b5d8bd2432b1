package normalize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowdoc/column"
	"rowdoc/document"
	"rowdoc/normalize"
)

func TestDecodeDateTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		wire column.DateTimeWire
		want time.Time
	}{
		{"epoch midnight", column.DateTimeWire{}, time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"half second", column.DateTimeWire{Days: 1, Fragments: 150}, time.Date(1900, 1, 2, 0, 0, 0, 500_000_000, time.UTC)},
		{"one fragment truncates", column.DateTimeWire{Fragments: 1}, time.Date(1900, 1, 1, 0, 0, 0, 3_333_333, time.UTC)},
		{"last fragment of day", column.DateTimeWire{Fragments: 86400*300 - 1}, time.Date(1900, 1, 1, 23, 59, 59, 996_666_666, time.UTC)},
		{"before epoch", column.DateTimeWire{Days: -1}, time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"leap day", column.DateTimeWire{Days: 36583, Fragments: 12 * 3600 * 300}, time.Date(2000, 2, 29, 12, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalize.DecodeDateTime(tt.wire)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestNormalizeDateTimeRendersUTC(t *testing.T) {
	t.Parallel()

	node, err := normalize.Normalize("created", column.DateTime(column.DateTimeWire{}))
	require.NoError(t, err)
	assert.Equal(t, document.String("1900-01-01T00:00:00Z"), node)

	node, err = normalize.Normalize("created", column.DateTime(column.DateTimeWire{Days: 1, Fragments: 150}))
	require.NoError(t, err)
	assert.Equal(t, document.String("1900-01-02T00:00:00.5Z"), node)
}

func TestNormalizeDateTimeRoundTripsEncoding(t *testing.T) {
	t.Parallel()

	in := time.Date(2023, 7, 14, 18, 30, 15, 0, time.UTC)
	wire, err := column.EncodeDateTime(in)
	require.NoError(t, err)

	node, err := normalize.Normalize("ts", column.DateTime(wire))
	require.NoError(t, err)

	s, _ := node.AsString()
	got, err := time.Parse(time.RFC3339Nano, s)
	require.NoError(t, err)
	assert.True(t, in.Equal(got))
}

func TestNormalizeWireTemporal(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 2, 29, 13, 45, 30, 123_456_700, time.UTC)
	east := at.In(time.FixedZone("", 5*3600+30*60))

	tests := []struct {
		name  string
		value column.Value
		want  string
	}{
		{"date", column.Date(mustWire(column.EncodeDate(at))), "2024-02-29"},
		{"date min", column.Date(column.DateWire{}), "0001-01-01"},
		{"date max", column.Date(column.DateWire{Days: column.MaxDateDays}), "9999-12-31"},
		{"time", column.Time(column.EncodeTime(at, 7)), "13:45:30.1234567"},
		{"time scale 0", column.Time(column.EncodeTime(at, 0)), "13:45:30"},
		{"smalldatetime", column.SmallDateTime(mustWire(column.EncodeSmallDateTime(at))), "2024-02-29T13:46:00"},
		{"datetime2", column.DateTime2(mustWire(column.EncodeDateTime2(at, 7))), "2024-02-29T13:45:30.1234567"},
		{"datetime2 midnight", column.DateTime2(column.DateTime2Wire{}), "0001-01-01T00:00:00"},
		{"datetimeoffset", column.DateTimeOffset(mustWire(column.EncodeDateTimeOffset(east, 3))), "2024-02-29T19:15:30.123+05:30"},
		{"datetimeoffset utc", column.DateTimeOffset(mustWire(column.EncodeDateTimeOffset(at, 0))), "2024-02-29T13:45:30+00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, outcome, err := normalize.New().NormalizeDetailed(tt.name, tt.value)
			require.NoError(t, err)
			assert.Equal(t, document.String(tt.want), node)
			assert.Equal(t, normalize.OutcomeValue, outcome)
		})
	}
}

func mustWire[W any](w W, err error) W {
	if err != nil {
		panic(err)
	}

	return w
}

func malformedTemporals() map[string]column.Value {
	return map[string]column.Value{
		"date past 9999":       column.Date(column.DateWire{Days: 3652059}),
		"time scale":           column.Time(column.TimeWire{Increments: 1, Scale: 8}),
		"time past midnight":   column.Time(column.TimeWire{Increments: 86400, Scale: 0}),
		"smalldatetime minute": column.SmallDateTime(column.SmallDateTimeWire{Minutes: 1440}),
		"datetime2 bad time": column.DateTime2(column.DateTime2Wire{
			Time: column.TimeWire{Increments: 864_000_000_000, Scale: 7},
		}),
		"datetimeoffset offset": column.DateTimeOffset(column.DateTimeOffsetWire{OffsetMinutes: 841}),
	}
}

func TestMalformedTemporalDegradesToNull(t *testing.T) {
	t.Parallel()

	for name, v := range malformedTemporals() {
		t.Run(name, func(t *testing.T) {
			node, outcome, err := normalize.New().NormalizeDetailed(name, v)
			require.NoError(t, err)
			assert.True(t, node.IsNull())
			assert.Equal(t, normalize.OutcomeDegraded, outcome)
		})
	}
}

func TestMalformedTemporalStrict(t *testing.T) {
	t.Parallel()

	strict := normalize.New(normalize.WithStrictTemporal())

	for name, v := range malformedTemporals() {
		t.Run(name, func(t *testing.T) {
			_, err := strict.Normalize("col", v)
			require.ErrorIs(t, err, normalize.ErrTemporalRange)

			var terr *normalize.TemporalDecodeError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, "col", terr.Column)
			assert.Equal(t, v.Kind, terr.Kind)
		})
	}
}
