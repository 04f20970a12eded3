package types

import (
	"testing"
	"time"

	"github.com/napalu/goarg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Zero(t *testing.T) {
	var v Value

	assert.False(t, v.IsSet())
	assert.Equal(t, Invalid, v.Kind())
	assert.Equal(t, "", v.Format())
	_, ok := v.AsString()
	assert.False(t, ok)
}

func TestValue_NewValue(t *testing.T) {
	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		kind   ValueType
		in     any
		want   Value
		format string
	}{
		{"string", String, "abc", StringValue("abc"), `"abc"`},
		{"uint from uint8", UnsignedInt, uint8(7), UintValue(7), "7"},
		{"uint from int", UnsignedInt, 3, UintValue(3), "3"},
		{"int from int32", SignedInt, int32(-4), IntValue(-4), "-4"},
		{"int from uint16", SignedInt, uint16(9), IntValue(9), "9"},
		{"float from float32", Float, float32(0.5), FloatValue(0.5), "0.500000"},
		{"bool", Bool, true, BoolValue(true), "true"},
		{"time", Time, when, TimeValue(when), "2024-03-01T12:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewValue(tt.kind, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.kind, got.Kind())
			assert.Equal(t, tt.format, got.Format())
		})
	}
}

func TestValue_NewValueErrors(t *testing.T) {
	tests := []struct {
		name string
		kind ValueType
		in   any
		want error
	}{
		{"string from int", String, 1, errs.ErrTypeMismatch},
		{"negative uint", UnsignedInt, -1, errs.ErrTypeMismatch},
		{"int from uint64", SignedInt, uint64(1), errs.ErrTypeMismatch},
		{"float from int", Float, 1, errs.ErrTypeMismatch},
		{"bool from string", Bool, "true", errs.ErrTypeMismatch},
		{"toggle", Toggle, true, errs.ErrInvalidAttributeForType},
		{"invalid kind", Invalid, "x", errs.ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewValue(tt.kind, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValue_Readers(t *testing.T) {
	v := IntValue(-12)

	i, ok := v.AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(-12), i)

	_, ok = v.AsUint()
	assert.False(t, ok)
	_, ok = v.AsString()
	assert.False(t, ok)
	_, ok = v.AsFloat()
	assert.False(t, ok)
	_, ok = v.AsTime()
	assert.False(t, ok)

	b, ok := ToggleValue().AsBool()
	assert.True(t, ok)
	assert.True(t, b)
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "plain", StringValue("plain").String())
	assert.Equal(t, "true", ToggleValue().String())
	assert.Equal(t, "42", UintValue(42).String())
	assert.Equal(t, "", ToggleValue().Format())
}

func TestValueType(t *testing.T) {
	assert.Equal(t, "uint", UnsignedInt.String())
	assert.Equal(t, "invalid", ValueType(99).String())
	assert.False(t, Invalid.IsValid())
	assert.True(t, Time.IsValid())
	assert.False(t, Toggle.TakesValue())
	assert.True(t, Bool.TakesValue())
	assert.Equal(t, "request-exit", RequestExit.String())
}
