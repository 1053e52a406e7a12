package bcapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FieldSet is an ordered set of explicitly bound field/value pairs. It
// marshals to a JSON object containing exactly the bound fields, in binding
// order. A field that was never bound is absent from the payload, not null
// and not empty, which keeps create and update calls partial-update safe:
// the service treats presence-in-payload as "set this field", including to
// empty.
type FieldSet struct {
	names  []string
	values map[string]interface{}
}

// NewFieldSet creates an empty field set.
func NewFieldSet() *FieldSet {
	return &FieldSet{
		values: map[string]interface{}{},
	}
}

// Set binds a field to a value. Re-binding a field replaces the value and
// keeps the original position.
func (f *FieldSet) Set(name string, value interface{}) *FieldSet {
	if _, exists := f.values[name]; !exists {
		f.names = append(f.names, name)
	}

	f.values[name] = value

	return f
}

// SetString binds a string field. Binding the empty string is meaningful:
// it clears the field upstream.
func (f *FieldSet) SetString(name, value string) *FieldSet {
	return f.Set(name, value)
}

// SetBool binds a boolean field.
func (f *FieldSet) SetBool(name string, value bool) *FieldSet {
	return f.Set(name, value)
}

// SetDecimal binds a decimal field.
func (f *FieldSet) SetDecimal(name string, value float64) *FieldSet {
	return f.Set(name, value)
}

// Has reports whether a field is bound.
func (f *FieldSet) Has(name string) bool {
	_, exists := f.values[name]

	return exists
}

// Value returns the bound value for a field and whether it is bound.
func (f *FieldSet) Value(name string) (interface{}, bool) {
	value, exists := f.values[name]

	return value, exists
}

// Names returns the bound field names in binding order.
func (f *FieldSet) Names() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)

	return names
}

// Len returns the number of bound fields.
func (f *FieldSet) Len() int {
	return len(f.names)
}

// MarshalJSON implements json.Marshaler, preserving binding order.
func (f *FieldSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, name := range f.names {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("marshaling field name %q: %w", name, err)
		}

		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(f.values[name])
		if err != nil {
			return nil, fmt.Errorf("marshaling field %q: %w", name, err)
		}

		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
