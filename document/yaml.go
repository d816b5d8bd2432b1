package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the document as an order-preserving mapping.
func (d *Document) MarshalYAML() (any, error) {
	return d.yamlNode(), nil
}

// MarshalYAML renders the node with an explicit tag so that strings such as
// "true" or "42" survive a round trip.
func (n Node) MarshalYAML() (any, error) {
	return n.yamlNode(), nil
}

func (d *Document) yamlNode() *yaml.Node {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range d.All() {
		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			v.yamlNode(),
		)
	}

	return out
}

func (n Node) yamlNode() *yaml.Node {
	switch n.kind {
	case NodeBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(n.b)}
	case NodeNumber:
		if i, ok := n.num.Int64(); ok {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(i, 10)}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(n.num.Float64())}
	case NodeString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.s}
	case NodeObject:
		return n.obj.yamlNode()
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// formatFloat keeps a fractional marker so the value is read back as a float.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}

// UnmarshalYAML builds a document from a YAML mapping. Sequences are rejected:
// documents have no array variant.
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode && len(value.Content) == 1 {
		value = value.Content[0]
	}

	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("document: expected mapping, got %s", yamlKindName(value.Kind))
	}

	*d = Document{keys: make([]string, 0, len(value.Content)/2), nodes: map[string]Node{}}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value

		n, err := nodeFromYAML(value.Content[i+1])
		if err != nil {
			return fmt.Errorf("document: key %q: %w", key, err)
		}

		d.Set(key, n)
	}

	return nil
}

func nodeFromYAML(v *yaml.Node) (Node, error) {
	for v.Kind == yaml.AliasNode && v.Alias != nil {
		v = v.Alias
	}

	switch v.Kind {
	case yaml.MappingNode:
		var nested Document
		if err := nested.UnmarshalYAML(v); err != nil {
			return Node{}, err
		}
		return Object(&nested), nil

	case yaml.ScalarNode:
		switch v.ShortTag() {
		case "!!null":
			return Null(), nil
		case "!!bool":
			var b bool
			if err := v.Decode(&b); err != nil {
				return Node{}, err
			}
			return Bool(b), nil
		case "!!int":
			var i int64
			if err := v.Decode(&i); err == nil {
				return Int(i), nil
			}
			// wider than int64: keep the digits
			return String(v.Value), nil
		case "!!float":
			var f float64
			if err := v.Decode(&f); err != nil {
				return Node{}, err
			}
			if n, ok := Float(f); ok {
				return n, nil
			}
			return String(canonicalNonFinite(f)), nil
		default:
			return String(v.Value), nil
		}

	default:
		return Node{}, fmt.Errorf("unsupported YAML %s", yamlKindName(v.Kind))
	}
}

func canonicalNonFinite(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	default:
		return "NaN"
	}
}

func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "node"
	}
}
