package pairs

import (
	"fmt"
	"slices"
	"strconv"
)

// Value is a value stored under a key: either a single string (scalar)
// or an ordered list of strings produced by repeated "key[]" tokens.
// The zero Value is an empty scalar.
type Value struct {
	vals   []string
	isList bool
}

// Scalar returns a scalar [Value].
func Scalar(s string) Value { return Value{vals: []string{s}} }

// List returns a list [Value] holding a copy of vs.
func List(vs ...string) Value {
	return Value{vals: slices.Clone(vs), isList: true}
}

// IsList reports whether the value is a list.
func (v Value) IsList() bool { return v.isList }

// String returns the scalar value.
// For a list value it returns the last element, the same element a form decoder
// would keep for repeated scalar keys.
func (v Value) String() string {
	if len(v.vals) == 0 {
		return ""
	}
	return v.vals[len(v.vals)-1]
}

// Values returns a copy of all the strings in the value.
// Scalar value returns a single element slice.
func (v Value) Values() []string {
	if !v.isList && len(v.vals) == 0 {
		return []string{""}
	}
	return slices.Clone(v.vals)
}

// Len returns the number of strings in the value.
func (v Value) Len() int {
	if !v.isList {
		return 1
	}
	return len(v.vals)
}

// Clone returns a copy of the value that does not share memory with v.
func (v Value) Clone() Value {
	v.vals = slices.Clone(v.vals)
	return v
}

// Equal compares the value with another [Value] or *[Value].
func (v Value) Equal(val any) bool {
	var other Value
	switch o := val.(type) {
	case Value:
		other = o
	case *Value:
		if o == nil {
			return false
		}
		other = *o
	default:
		return false
	}

	if v.isList != other.isList {
		return false
	}
	if !v.isList {
		return v.String() == other.String()
	}
	return slices.Equal(v.vals, other.vals)
}

// Format implements fmt.Formatter.
// Scalars are printed as strings, lists as string slices.
func (v Value) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if v.isList {
			fmt.Fprint(f, v.vals)
			return
		}
		fmt.Fprint(f, v.String())
	case 'q':
		if v.isList {
			fmt.Fprintf(f, "%q", v.vals)
			return
		}
		fmt.Fprint(f, strconv.Quote(v.String()))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), v.Values())
	}
}
