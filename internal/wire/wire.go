// Package wire encodes and decodes JSON objects through explicit field tables.
//
// Model types list their wire names once and build their MarshalJSON and
// UnmarshalJSON methods on top of Encode and Decode, so the key set and key
// order of every payload are visible in one place.
package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one member of an encoded object.
type Field struct {
	Name  string
	Value any
	Omit  bool // Skip the member entirely
}

// Encode writes fields as a JSON object in the given order.
func Encode(fields ...Field) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	written := 0
	for _, f := range fields {
		if f.Omit {
			continue
		}

		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to encode key %q: %w", f.Name, err)
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", f.Name, err)
		}

		if written > 0 {
			buf.WriteByte(',')
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		written++
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Object holds the raw members of a decoded JSON object.
type Object map[string]json.RawMessage

// Decode parses data as a JSON object. A JSON null decodes to an empty Object.
func Decode(data []byte) (Object, error) {
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("failed to decode object: %w", err)
	}
	if obj == nil {
		obj = Object{}
	}
	return obj, nil
}

// Has returns true if name is present with a non-null value.
func (o Object) Has(name string) bool {
	raw, ok := o[name]
	return ok && !isNull(raw)
}

// Into decodes the member name into dst. Absent and null members leave dst untouched.
func (o Object) Into(name string, dst any) error {
	if !o.Has(name) {
		return nil
	}
	if err := json.Unmarshal(o[name], dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// String decodes a string member.
func (o Object) String(name string, dst *string) error {
	return o.Into(name, dst)
}

// Int decodes an integer member.
func (o Object) Int(name string, dst *int) error {
	return o.Into(name, dst)
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
