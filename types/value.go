package types

import (
	"fmt"
	"strconv"
	"time"

	"github.com/napalu/goarg/errs"
)

// Value holds a typed option value. The zero Value is unset. Readers are checked against the
// kind the Value was created with, so reading a SignedInt as a string reports false rather than
// reinterpreting the storage.
type Value struct {
	kind ValueType
	str  string
	u    uint64
	i    int64
	f    float64
	b    bool
	t    time.Time
}

// StringValue creates a String Value
func StringValue(s string) Value {
	return Value{kind: String, str: s}
}

// UintValue creates an UnsignedInt Value
func UintValue(u uint64) Value {
	return Value{kind: UnsignedInt, u: u}
}

// IntValue creates a SignedInt Value
func IntValue(i int64) Value {
	return Value{kind: SignedInt, i: i}
}

// FloatValue creates a Float Value
func FloatValue(f float64) Value {
	return Value{kind: Float, f: f}
}

// BoolValue creates a Bool Value
func BoolValue(b bool) Value {
	return Value{kind: Bool, b: b}
}

// ToggleValue creates a set Toggle Value
func ToggleValue() Value {
	return Value{kind: Toggle, b: true}
}

// TimeValue creates a Time Value
func TimeValue(t time.Time) Value {
	return Value{kind: Time, t: t}
}

// NewValue converts a Go value to a Value of the given kind. Integer kinds of any width are accepted
// for UnsignedInt and SignedInt, float32 and float64 for Float. Toggle values cannot be created from
// a Go value since a toggle only ever becomes set by its presence on the command line.
func NewValue(kind ValueType, v any) (Value, error) {
	mismatch := func() (Value, error) {
		return Value{}, fmt.Errorf("%w: %T is not a %s", errs.ErrTypeMismatch, v, kind)
	}

	switch kind {
	case String:
		if s, ok := v.(string); ok {
			return StringValue(s), nil
		}
	case UnsignedInt:
		switch n := v.(type) {
		case uint:
			return UintValue(uint64(n)), nil
		case uint8:
			return UintValue(uint64(n)), nil
		case uint16:
			return UintValue(uint64(n)), nil
		case uint32:
			return UintValue(uint64(n)), nil
		case uint64:
			return UintValue(n), nil
		default:
			if i, ok := signed(v); ok {
				if i < 0 {
					return Value{}, fmt.Errorf("%w: %d is negative", errs.ErrTypeMismatch, i)
				}
				return UintValue(uint64(i)), nil
			}
		}
	case SignedInt:
		if i, ok := signed(v); ok {
			return IntValue(i), nil
		}
		switch n := v.(type) {
		case uint8:
			return IntValue(int64(n)), nil
		case uint16:
			return IntValue(int64(n)), nil
		case uint32:
			return IntValue(int64(n)), nil
		}
	case Float:
		switch f := v.(type) {
		case float64:
			return FloatValue(f), nil
		case float32:
			return FloatValue(float64(f)), nil
		}
	case Bool:
		if b, ok := v.(bool); ok {
			return BoolValue(b), nil
		}
	case Time:
		if t, ok := v.(time.Time); ok {
			return TimeValue(t), nil
		}
	case Toggle:
		return Value{}, fmt.Errorf("%w: toggle cannot hold a value", errs.ErrInvalidAttributeForType)
	default:
		return Value{}, fmt.Errorf(errs.FmtErrorWithString, errs.ErrUnsupportedType, kind)
	}

	return mismatch()
}

func signed(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

// Kind returns the ValueType the Value was created with, Invalid when unset
func (v Value) Kind() ValueType {
	return v.kind
}

// IsSet returns true when the Value holds something
func (v Value) IsSet() bool {
	return v.kind != Invalid
}

// AsString returns the text of a String Value
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == String
}

// AsUint returns the number held by an UnsignedInt Value
func (v Value) AsUint() (uint64, bool) {
	return v.u, v.kind == UnsignedInt
}

// AsInt returns the number held by a SignedInt Value
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == SignedInt
}

// AsFloat returns the number held by a Float Value
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == Float
}

// AsBool returns the state of a Bool or Toggle Value
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == Bool || v.kind == Toggle
}

// AsTime returns the timestamp held by a Time Value
func (v Value) AsTime() (time.Time, bool) {
	return v.t, v.kind == Time
}

// Format renders the Value the way help output shows defaults. Toggle and unset values render
// as the empty string.
func (v Value) Format() string {
	switch v.kind {
	case String:
		return `"` + v.str + `"`
	case UnsignedInt:
		return strconv.FormatUint(v.u, 10)
	case SignedInt:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'f', 6, 64)
	case Bool:
		return strconv.FormatBool(v.b)
	case Time:
		return v.t.Format(time.RFC3339)
	}
	return ""
}

// String implements fmt.Stringer
func (v Value) String() string {
	if v.kind == String {
		return v.str
	}
	if v.kind == Toggle {
		return strconv.FormatBool(v.b)
	}
	return v.Format()
}
