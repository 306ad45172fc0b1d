// Package note defines the in-memory representation of a note file:
// an ordered metadata mapping plus the body text.
package note

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Recognized metadata keys. Matching is case-sensitive.
const (
	KeyCreated     = "Created"
	KeyTitle       = "Title"
	KeyDescription = "Description"
)

// Note is a parsed note file. It exists only for the duration of one
// processing pass: parsed from file bytes, enriched in place, serialized,
// and discarded.
type Note struct {
	Meta Metadata
	Body string
}

// Field is a single metadata entry.
type Field struct {
	Key   string
	Value Value
}

// Metadata is an ordered mapping of string keys to scalar values.
// Order follows the source file; new keys are appended at the end.
type Metadata struct {
	fields []Field
}

// Get returns the value for key, if present.
func (m *Metadata) Get(key string) (Value, bool) {
	for _, f := range m.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Set replaces the value for key in place, or appends the key if absent.
func (m *Metadata) Set(key string, v Value) {
	for i, f := range m.fields {
		if f.Key == key {
			m.fields[i].Value = v
			return
		}
	}
	m.fields = append(m.fields, Field{Key: key, Value: v})
}

// Fields returns the entries in order.
func (m *Metadata) Fields() []Field {
	return m.fields
}

// Keys returns the keys in order.
func (m *Metadata) Keys() []string {
	keys := make([]string, len(m.fields))
	for i, f := range m.fields {
		keys[i] = f.Key
	}
	return keys
}

// Len returns the number of entries.
func (m *Metadata) Len() int {
	return len(m.fields)
}

// Value is a tagged scalar: string, date, number, bool, or a raw YAML
// node carried through untouched for structured values this tool does
// not interpret (lists, nested maps).
type Value struct {
	value interface{}
}

// Internal type to distinguish dates from plain strings.
type dateValue struct{ s string }

// Internal type carrying an uninterpreted YAML node.
type rawValue struct{ node *yaml.Node }

// String creates a string Value.
func String(s string) Value {
	return Value{value: s}
}

// Date creates a date Value from a YYYY-MM-DD string.
func Date(s string) Value {
	return Value{value: dateValue{s}}
}

// Number creates a numeric Value.
func Number(n float64) Value {
	return Value{value: n}
}

// Bool creates a boolean Value.
func Bool(b bool) Value {
	return Value{value: b}
}

// Null creates a null Value.
func Null() Value {
	return Value{}
}

// Raw creates a Value that passes the given YAML node through unchanged.
func Raw(node *yaml.Node) Value {
	return Value{value: rawValue{node}}
}

// IsNull returns true if the value is null.
func (v Value) IsNull() bool {
	return v.value == nil
}

// IsString returns true for plain string values.
func (v Value) IsString() bool {
	_, ok := v.value.(string)
	return ok
}

// IsEmpty reports whether the value counts as absent for enrichment:
// null, or a string/date with no content.
func (v Value) IsEmpty() bool {
	switch val := v.value.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case dateValue:
		return val.s == ""
	}
	return false
}

// AsString returns the value as a string, if it is string-like.
func (v Value) AsString() (string, bool) {
	switch val := v.value.(type) {
	case string:
		return val, true
	case dateValue:
		return val.s, true
	}
	return "", false
}

// AsDate returns the YYYY-MM-DD form, if this is a date.
func (v Value) AsDate() (string, bool) {
	if d, ok := v.value.(dateValue); ok {
		return d.s, true
	}
	return "", false
}

// AsNumber returns the value as a number, if possible.
func (v Value) AsNumber() (float64, bool) {
	if n, ok := v.value.(float64); ok {
		return n, true
	}
	return 0, false
}

// AsBool returns the value as a boolean, if possible.
func (v Value) AsBool() (bool, bool) {
	if b, ok := v.value.(bool); ok {
		return b, true
	}
	return false, false
}

// AsRaw returns the underlying YAML node for pass-through values.
func (v Value) AsRaw() (*yaml.Node, bool) {
	if r, ok := v.value.(rawValue); ok {
		return r.node, true
	}
	return nil, false
}

// StringForm coerces any scalar value to its string rendering. Raw values
// yield the node's scalar text, which is empty for non-scalars.
func (v Value) StringForm() string {
	switch val := v.value.(type) {
	case nil:
		return ""
	case string:
		return val
	case dateValue:
		return val.s
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case rawValue:
		if val.node != nil {
			return val.node.Value
		}
	}
	return ""
}
