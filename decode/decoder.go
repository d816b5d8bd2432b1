package decode

import (
	"errors"
	"fmt"
	"slices"

	"rowdoc/document"
	"rowdoc/internal/match"
	"rowdoc/primitive"
)

// Option configures a Decoder.
type Option func(*options)

type options struct {
	allowed primitive.CategoryEnum
	aliases map[string]string
	exact   bool
}

// WithCategories replaces the conversion categories (primitive.CategoryDefault).
func WithCategories(allowed primitive.CategoryEnum) Option {
	return func(o *options) {
		o.allowed = allowed
	}
}

// WithAliases maps document keys onto field names. Calls accumulate.
func WithAliases(aliases map[string]string) Option {
	return func(o *options) {
		if o.aliases == nil {
			o.aliases = make(map[string]string, len(aliases))
		}
		for key, field := range aliases {
			o.aliases[key] = field
		}
	}
}

// WithExactNames disables normalized identifier matching.
func WithExactNames() Option {
	return func(o *options) {
		o.exact = true
	}
}

// Decoder decodes documents into R. It is immutable and safe for concurrent use.
type Decoder[R any] struct {
	fields  []Field[R]
	names   []string
	allowed primitive.CategoryEnum
	exact   bool

	// field name -> alias keys, in sorted order
	aliases map[string][]string
}

// New builds a decoder from a field table. Duplicate field names and aliases
// pointing at unknown fields fail with ReasonShape.
func New[R any](fields []Field[R], opts ...Option) (*Decoder[R], error) {
	o := options{allowed: primitive.CategoryDefault}
	for _, opt := range opts {
		opt(&o)
	}

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.name == "" || f.assign == nil {
			return nil, shapeError(f.name, errors.New("incomplete field declaration"))
		}
		if slices.Contains(names, f.name) {
			return nil, shapeError(f.name, errors.New("duplicate field"))
		}
		names = append(names, f.name)
	}

	aliases := make(map[string][]string)
	for key, field := range o.aliases {
		if !slices.Contains(names, field) {
			return nil, shapeError(field, fmt.Errorf("alias %q targets an unknown field", key))
		}
		aliases[field] = append(aliases[field], key)
	}
	for _, keys := range aliases {
		slices.Sort(keys)
	}

	return &Decoder[R]{
		fields:  slices.Clone(fields),
		names:   names,
		allowed: o.allowed,
		exact:   o.exact,
		aliases: aliases,
	}, nil
}

// MustNew is like New but panics on an invalid field table.
func MustNew[R any](fields []Field[R], opts ...Option) *Decoder[R] {
	dec, err := New(fields, opts...)
	if err != nil {
		panic(err)
	}

	return dec
}

// Fields returns the declared field names in declaration order.
func (d *Decoder[R]) Fields() []string {
	return slices.Clone(d.names)
}

// DecodeNode decodes an object node; any other node kind fails with ReasonShape.
func (d *Decoder[R]) DecodeNode(n document.Node) (R, error) {
	doc, ok := n.AsObject()
	if !ok {
		var zero R
		return zero, &Error{Reason: ReasonShape, Got: n.Kind(), Err: errors.New("document is not an object")}
	}

	return d.Decode(doc)
}

// Decode fills a new R from doc. The first failing field aborts decoding; no
// partially decoded record is returned.
func (d *Decoder[R]) Decode(doc *document.Document) (R, error) {
	var res R

	if doc == nil {
		return res, &Error{Reason: ReasonShape, Err: errors.New("nil document")}
	}

	keys := d.newLookup(doc)
	matches := keys.resolve(d.names)

	for i, f := range d.fields {
		key, err := matches[i].key, matches[i].err
		if err != nil {
			return *new(R), err
		}

		if key == "" {
			if f.optional {
				f.clear(&res)
				continue
			}

			suggestion, _ := match.Suggest(f.name, keys.unclaimed())
			return *new(R), &Error{Field: f.name, Reason: ReasonMissing, Want: f.want, Suggestion: suggestion}
		}

		n, _ := doc.Get(key)
		if n.IsNull() {
			if f.optional {
				f.clear(&res)
				continue
			}

			return *new(R), &Error{Field: f.name, Key: key, Reason: ReasonIncompatible, Got: n.Kind(), Want: f.want}
		}

		if err := f.assign(&res, n, d.allowed); err != nil {
			return *new(R), fieldError(f, key, n, err)
		}
	}

	return res, nil
}

func fieldError[R any](f Field[R], key string, n document.Node, err error) error {
	var nested *Error
	if errors.As(err, &nested) {
		path := f.name
		if nested.Field != "" {
			path += "." + nested.Field
		}

		res := *nested
		res.Field = path
		if res.Key == "" && res.Reason == ReasonShape {
			res.Key = key
		}

		return &res
	}

	return &Error{Field: f.name, Key: key, Reason: ReasonIncompatible, Got: n.Kind(), Want: f.want, Err: err}
}

// lookup resolves field names against the keys of one document.
type lookup struct {
	doc     *document.Document
	aliases map[string][]string
	exact   bool

	normalized map[string][]string
	claimed    map[string]struct{}
}

func (d *Decoder[R]) newLookup(doc *document.Document) *lookup {
	l := &lookup{
		doc:     doc,
		aliases: d.aliases,
		exact:   d.exact,
		claimed: make(map[string]struct{}, len(d.fields)),
	}

	if !d.exact {
		l.normalized = make(map[string][]string, doc.Len())
		for key := range doc.All() {
			norm := match.NormalizeIdent(key)
			l.normalized[norm] = append(l.normalized[norm], key)
		}
	}

	return l
}

type keyMatch struct {
	key string
	err error
}

// resolve assigns document keys to fields. Exact names are matched first for
// every field, then aliases, then normalized identifiers, and a key claimed by
// one field is never offered to another.
func (l *lookup) resolve(fields []string) []keyMatch {
	res := make([]keyMatch, len(fields))

	for i, field := range fields {
		if _, ok := l.doc.Get(field); ok {
			res[i].key = field
			l.claim(field)
		}
	}

	for i, field := range fields {
		if res[i].key != "" {
			continue
		}

		for _, alias := range l.aliases[field] {
			if l.available(alias) {
				res[i].key = alias
				l.claim(alias)
				break
			}
		}
	}

	if l.exact {
		return res
	}

	for i, field := range fields {
		if res[i].key != "" {
			continue
		}

		res[i].key, res[i].err = l.findNormalized(field)
		if res[i].key != "" {
			l.claim(res[i].key)
		}
	}

	return res
}

// findNormalized returns the unclaimed key normalizing to the same identifier
// as field, or "" when there is none. Several such keys are ambiguous.
func (l *lookup) findNormalized(field string) (string, error) {
	var keys []string
	for _, key := range l.normalized[match.NormalizeIdent(field)] {
		if l.available(key) {
			keys = append(keys, key)
		}
	}

	switch len(keys) {
	case 0:
		return "", nil
	case 1:
		return keys[0], nil
	default:
		return "", shapeError(field, fmt.Errorf("ambiguous keys %q", keys))
	}
}

func (l *lookup) available(key string) bool {
	if _, ok := l.doc.Get(key); !ok {
		return false
	}
	_, claimed := l.claimed[key]

	return !claimed
}

func (l *lookup) claim(key string) {
	l.claimed[key] = struct{}{}
}

func (l *lookup) unclaimed() []string {
	var res []string
	for key := range l.doc.All() {
		if _, ok := l.claimed[key]; !ok {
			res = append(res, key)
		}
	}

	return res
}
