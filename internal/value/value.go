package value

import (
	"fmt"
	"strconv"
)

// DataType is the type tag of a Value.
type DataType int

const (
	Integer DataType = iota
	Float
	Boolean
	String
)

// String returns the lower-case keyword used for the type in manifests and logs.
func (t DataType) String() string {
	switch t {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Boolean:
		return "boolean"
	case String:
		return "string"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// ParseDataType resolves a type keyword back to its DataType.
func ParseDataType(s string) (DataType, error) {
	switch s {
	case "integer":
		return Integer, nil
	case "float":
		return Float, nil
	case "boolean":
		return Boolean, nil
	case "string":
		return String, nil
	}
	return 0, fmt.Errorf("unknown data type %q", s)
}

// Value is a tagged scalar. The zero Value is Integer 0.
// Values are comparable with ==.
type Value struct {
	t DataType
	i int64
	f float64
	b bool
	s string
}

// NewInteger returns an Integer value.
func NewInteger(v int64) Value { return Value{t: Integer, i: v} }

// NewFloat returns a Float value.
func NewFloat(v float64) Value { return Value{t: Float, f: v} }

// NewBoolean returns a Boolean value.
func NewBoolean(v bool) Value { return Value{t: Boolean, b: v} }

// NewString returns a String value.
func NewString(v string) Value { return Value{t: String, s: v} }

// DefaultFor returns the zero value of the given type.
func DefaultFor(t DataType) Value {
	switch t {
	case Float:
		return NewFloat(0)
	case Boolean:
		return NewBoolean(false)
	case String:
		return NewString("")
	default:
		return NewInteger(0)
	}
}

// DataType reports the type tag of v.
func (v Value) DataType() DataType { return v.t }

// Integer returns the payload of an Integer value.
func (v Value) Integer() (int64, bool) { return v.i, v.t == Integer }

// Float returns the payload of a Float value.
func (v Value) Float() (float64, bool) { return v.f, v.t == Float }

// Boolean returns the payload of a Boolean value.
func (v Value) Boolean() (bool, bool) { return v.b, v.t == Boolean }

// Str returns the payload of a String value.
func (v Value) Str() (string, bool) { return v.s, v.t == String }

// String renders the payload without its type tag.
func (v Value) String() string {
	switch v.t {
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case Boolean:
		return strconv.FormatBool(v.b)
	case String:
		return v.s
	default:
		return strconv.FormatInt(v.i, 10)
	}
}

// Any returns the payload as a plain Go value, used for JSON encoding.
func (v Value) Any() any {
	switch v.t {
	case Float:
		return v.f
	case Boolean:
		return v.b
	case String:
		return v.s
	default:
		return v.i
	}
}
