// Package jsonv provides a small JSON value tree whose objects keep their key order.
//
// Records are mutated as generic trees (keys shuffled, dropped, retyped) before
// serialization, so object members are stored as an ordered slice rather than a Go
// map, whose iteration order would make output irreproducible.
package jsonv

import (
	"strconv"

	"github.com/goccy/go-json"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a JSON value. The zero Value is null.
// Numbers are integers only.
type Value struct {
	kind Kind
	b    bool
	n    int64
	s    string
	arr  []Value
	obj  *Map
}

// NullValue returns the JSON null.
func NullValue() Value { return Value{} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

// IntValue wraps an integer.
func IntValue(n int64) Value { return Value{kind: Number, n: n} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: String, s: s} }

// ArrayValue wraps a list of values.
func ArrayValue(items ...Value) Value { return Value{kind: Array, arr: items} }

// ObjectValue wraps an ordered object. A nil map is treated as an empty object.
func ObjectValue(m *Map) Value {
	if m == nil {
		m = NewMap(0)
	}
	return Value{kind: Object, obj: m}
}

// Kind reports the variant of v.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == Bool }

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, bool) { return v.n, v.kind == Number }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.s, v.kind == String }

// AsArray returns the items held by v.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == Array }

// AsObject returns the object held by v. The returned map is shared, not copied.
func (v Value) AsObject() (*Map, bool) { return v.obj, v.kind == Object }

// AppendJSON appends the compact JSON encoding of v to dst.
func (v Value) AppendJSON(dst []byte) []byte {
	switch v.kind {
	case Bool:
		return strconv.AppendBool(dst, v.b)
	case Number:
		return strconv.AppendInt(dst, v.n, 10)
	case String:
		return appendString(dst, v.s)
	case Array:
		dst = append(dst, '[')
		for i, item := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = item.AppendJSON(dst)
		}
		return append(dst, ']')
	case Object:
		return v.obj.appendJSON(dst)
	default:
		return append(dst, "null"...)
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.AppendJSON(nil), nil
}

// String returns the compact JSON encoding of v.
func (v Value) String() string {
	return string(v.AppendJSON(nil))
}

func appendString(dst []byte, s string) []byte {
	// Marshal of a plain string cannot fail.
	enc, _ := json.Marshal(s)
	return append(dst, enc...)
}
