package document

import "iter"

// Document is an ordered mapping from key to Node. Setting an existing key
// replaces its value and keeps its original position.
type Document struct {
	keys  []string
	nodes map[string]Node
}

func New() *Document {
	return &Document{nodes: map[string]Node{}}
}

// WithCapacity preallocates room for n keys.
func WithCapacity(n int) *Document {
	return &Document{keys: make([]string, 0, n), nodes: make(map[string]Node, n)}
}

// Set stores n under key; a repeated key overwrites the earlier entry.
func (d *Document) Set(key string, n Node) {
	if _, exists := d.nodes[key]; !exists {
		d.keys = append(d.keys, key)
	}

	d.nodes[key] = n
}

func (d *Document) Get(key string) (Node, bool) {
	n, ok := d.nodes[key]
	return n, ok
}

func (d *Document) Len() int { return len(d.keys) }

// Keys returns a copy of the keys in insertion order.
func (d *Document) Keys() []string {
	return append([]string(nil), d.keys...)
}

// All yields entries in insertion order.
func (d *Document) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		for _, k := range d.keys {
			if !yield(k, d.nodes[k]) {
				return
			}
		}
	}
}
