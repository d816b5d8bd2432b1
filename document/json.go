package document

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MarshalJSON renders the document as a JSON object in key order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.writeJSON(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (n Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.writeJSON(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (d *Document) writeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	first := true
	for k, v := range d.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(k)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')

		if err := v.writeJSON(buf); err != nil {
			return err
		}
	}
	buf.WriteByte('}')

	return nil
}

func (n Node) writeJSON(buf *bytes.Buffer) error {
	switch n.kind {
	case NodeBool:
		buf.WriteString(strconv.FormatBool(n.b))
	case NodeNumber:
		buf.WriteString(n.num.String())
	case NodeString:
		s, err := json.Marshal(n.s)
		if err != nil {
			return err
		}
		buf.Write(s)
	case NodeObject:
		return n.obj.writeJSON(buf)
	default:
		buf.WriteString("null")
	}

	return nil
}
