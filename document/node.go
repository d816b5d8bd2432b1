package document

import (
	"fmt"
	"math"
	"strconv"
)

//go:generate go tool stringer -type=NodeKind -output=node_string.go

// NodeKind identifies the variant held by a Node. The zero value is NodeNull.
type NodeKind int

const (
	NodeNull NodeKind = iota
	NodeBool
	NodeNumber
	NodeString
	NodeObject
)

// Node is an immutable document value.
type Node struct {
	kind NodeKind
	b    bool
	num  Number
	s    string
	obj  *Document
}

func Null() Node               { return Node{} }
func Bool(b bool) Node         { return Node{kind: NodeBool, b: b} }
func String(s string) Node     { return Node{kind: NodeString, s: s} }
func Int(i int64) Node         { return Node{kind: NodeNumber, num: IntNumber(i)} }
func NumberNode(n Number) Node { return Node{kind: NodeNumber, num: n} }

// Float returns a number node, or false when f is NaN or infinite.
func Float(f float64) (Node, bool) {
	n, ok := FloatNumber(f)
	if !ok {
		return Node{}, false
	}

	return Node{kind: NodeNumber, num: n}, true
}

// Object wraps a nested document. A nil document is an empty object.
func Object(d *Document) Node {
	if d == nil {
		d = New()
	}

	return Node{kind: NodeObject, obj: d}
}

func (n Node) Kind() NodeKind { return n.kind }
func (n Node) IsNull() bool   { return n.kind == NodeNull }

func (n Node) AsBool() (bool, bool)        { return n.b, n.kind == NodeBool }
func (n Node) AsNumber() (Number, bool)    { return n.num, n.kind == NodeNumber }
func (n Node) AsString() (string, bool)    { return n.s, n.kind == NodeString }
func (n Node) AsObject() (*Document, bool) { return n.obj, n.kind == NodeObject }

// String renders the node for messages: strings are quoted, objects abbreviated.
func (n Node) String() string {
	switch n.kind {
	case NodeBool:
		return strconv.FormatBool(n.b)
	case NodeNumber:
		return n.num.String()
	case NodeString:
		return strconv.Quote(n.s)
	case NodeObject:
		return fmt.Sprintf("{%d keys}", n.obj.Len())
	default:
		return "null"
	}
}

// Number is a document number: an exact integer or a finite float.
type Number struct {
	i       int64
	f       float64
	isFloat bool
}

func IntNumber(i int64) Number { return Number{i: i} }

// FloatNumber rejects values that have no finite double-precision representation.
func FloatNumber(f float64) (Number, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, false
	}

	return Number{f: f, isFloat: true}, true
}

func (n Number) IsFloat() bool { return n.isFloat }

// Int64 returns the integer value for numbers built from integers.
func (n Number) Int64() (int64, bool) { return n.i, !n.isFloat }

// Float64 converts integers with the usual float rounding above 2^53.
func (n Number) Float64() float64 {
	if n.isFloat {
		return n.f
	}

	return float64(n.i)
}

func (n Number) String() string {
	if !n.isFloat {
		return strconv.FormatInt(n.i, 10)
	}

	return strconv.FormatFloat(n.f, 'g', -1, 64)
}
