package value

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// CtyType returns the cty type that carries values of t.
func CtyType(t DataType) cty.Type {
	switch t {
	case Boolean:
		return cty.Bool
	case String:
		return cty.String
	default:
		return cty.Number
	}
}

// ToCty converts v into its cty representation.
func ToCty(v Value) cty.Value {
	switch v.t {
	case Float:
		return cty.NumberFloatVal(v.f)
	case Boolean:
		return cty.BoolVal(v.b)
	case String:
		return cty.StringVal(v.s)
	default:
		return cty.NumberIntVal(v.i)
	}
}

// FromCty converts a cty value into a Value of the requested type. Safe
// conversions (e.g. "42" to a number) are applied first; an Integer target
// rejects numbers with a fractional part.
func FromCty(cv cty.Value, t DataType) (Value, error) {
	if cv.IsNull() {
		return Value{}, fmt.Errorf("null value is not a valid %s", t)
	}
	if !cv.IsKnown() {
		return Value{}, fmt.Errorf("unknown value is not a valid %s", t)
	}

	converted, err := convert.Convert(cv, CtyType(t))
	if err != nil {
		return Value{}, fmt.Errorf("cannot use %s as %s: %w", cv.Type().FriendlyName(), t, err)
	}

	switch t {
	case Integer:
		bf := converted.AsBigFloat()
		if !bf.IsInt() {
			return Value{}, fmt.Errorf("number %s is not a whole number", bf.Text('g', -1))
		}
		i, acc := bf.Int64()
		if acc != big.Exact {
			return Value{}, fmt.Errorf("number %s overflows integer", bf.Text('g', -1))
		}
		return NewInteger(i), nil
	case Float:
		f, _ := converted.AsBigFloat().Float64()
		return NewFloat(f), nil
	case Boolean:
		return NewBoolean(converted.True()), nil
	default:
		return NewString(converted.AsString()), nil
	}
}
