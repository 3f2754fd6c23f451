package linkedin

import (
	"bytes"
	"encoding/json"
)

// Row is one flat extracted record. Values is parallel to Columns; a nil
// value marks a null field. Value types are string, int64, or
// json.RawMessage depending on the field mapping that produced them.
type Row struct {
	Columns []string
	Values  []any
}

// Value returns the value stored under column, or nil if the column is
// absent or null.
func (r Row) Value(column string) any {
	for i, c := range r.Columns {
		if c == column {
			return r.Values[i]
		}
	}
	return nil
}

// NonNullCount returns the number of populated fields.
func (r Row) NonNullCount() int {
	n := 0
	for _, v := range r.Values {
		if v != nil {
			n++
		}
	}
	return n
}

// NullCount returns the number of null fields.
func (r Row) NullCount() int {
	return len(r.Values) - r.NonNullCount()
}

// MarshalJSON encodes the row as a JSON object with keys in column order.
// Null fields are encoded as JSON null.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		switch v := r.Values[i].(type) {
		case nil:
			buf.WriteString("null")
		case json.RawMessage:
			buf.Write(v)
		default:
			val, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
