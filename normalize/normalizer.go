package normalize

import (
	"encoding/base64"
	"errors"
	"strconv"

	"rowdoc/column"
	"rowdoc/document"
)

// handler renders a present (non-NULL) value of one kind.
type handler func(n *Normalizer, v column.Value) (document.Node, Outcome, error)

// handlers is indexed by column.Kind; a nil entry means the kind is unsupported.
var handlers [column.KindTotal]handler

func init() {
	for _, k := range []column.Kind{column.KindInt16, column.KindInt32, column.KindInt64, column.KindUint8} {
		handlers[k] = integer
	}

	handlers[column.KindFloat32] = floating(32)
	handlers[column.KindFloat64] = floating(64)
	handlers[column.KindBit] = bit
	handlers[column.KindString] = text
	handlers[column.KindXML] = text
	handlers[column.KindNumeric] = numeric
	handlers[column.KindBigInt] = bigInteger
	handlers[column.KindGUID] = guid
	handlers[column.KindBinary] = binary

	handlers[column.KindDateTime] = (*Normalizer).fragmentDateTime
	for k, decode := range wireDecoders {
		handlers[k] = wireTemporal(k, decode)
	}
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithStrictTemporal turns malformed DATE, TIME, SMALLDATETIME, DATETIME2 and
// DATETIMEOFFSET values into *TemporalDecodeError instead of null nodes.
func WithStrictTemporal() Option {
	return func(n *Normalizer) { n.strictTemporal = true }
}

// Normalizer converts column values into document nodes. It holds no mutable
// state and is safe for concurrent use.
type Normalizer struct {
	strictTemporal bool
}

func New(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

var defaultNormalizer = New()

// Normalize converts v using the default normalizer.
func Normalize(name string, v column.Value) (document.Node, error) {
	return defaultNormalizer.Normalize(name, v)
}

func (n *Normalizer) Normalize(name string, v column.Value) (document.Node, error) {
	node, _, err := n.NormalizeDetailed(name, v)
	return node, err
}

// NormalizeDetailed is Normalize that also reports how the node was produced.
func (n *Normalizer) NormalizeDetailed(name string, v column.Value) (document.Node, Outcome, error) {
	h := lookup(v.Kind)
	if h == nil {
		return document.Node{}, 0, &UnsupportedKindError{Column: name, Value: v}
	}

	if !v.Valid {
		if v.Kind.IsText() {
			return document.String(""), OutcomeEmptyText, nil
		}
		return document.Null(), OutcomeNull, nil
	}

	node, outcome, err := h(n, v)
	if err != nil {
		var te *TemporalDecodeError
		if errors.As(err, &te) {
			te.Column = name
		}
		return document.Node{}, 0, err
	}

	return node, outcome, nil
}

// Supported reports whether values of kind k can be normalized.
func Supported(k column.Kind) bool { return lookup(k) != nil }

func lookup(k column.Kind) handler {
	if k <= 0 || int(k) >= column.KindTotal {
		return nil
	}

	return handlers[k]
}

func integer(_ *Normalizer, v column.Value) (document.Node, Outcome, error) {
	return document.Int(v.I64), OutcomeValue, nil
}

func floating(bits int) handler {
	return func(_ *Normalizer, v column.Value) (document.Node, Outcome, error) {
		if node, ok := document.Float(v.F64); ok {
			return node, OutcomeValue, nil
		}

		return document.String(strconv.FormatFloat(v.F64, 'g', -1, bits)), OutcomeTextFallback, nil
	}
}

func bit(_ *Normalizer, v column.Value) (document.Node, Outcome, error) {
	return document.Bool(v.Bool), OutcomeValue, nil
}

func text(_ *Normalizer, v column.Value) (document.Node, Outcome, error) {
	return document.String(v.Str), OutcomeValue, nil
}

func numeric(_ *Normalizer, v column.Value) (document.Node, Outcome, error) {
	return document.String(v.Decimal.String()), OutcomeValue, nil
}

func bigInteger(_ *Normalizer, v column.Value) (document.Node, Outcome, error) {
	if v.BigInt == nil {
		return document.Null(), OutcomeNull, nil
	}

	return document.String(v.BigInt.String()), OutcomeValue, nil
}

func guid(_ *Normalizer, v column.Value) (document.Node, Outcome, error) {
	return document.String(v.GUID.String()), OutcomeValue, nil
}

func binary(_ *Normalizer, v column.Value) (document.Node, Outcome, error) {
	return document.String(base64.StdEncoding.EncodeToString(v.Bytes)), OutcomeValue, nil
}
