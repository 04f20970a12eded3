// Package convert turns option value text into typed values.
package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
	"github.com/napalu/goarg/errs"
	"github.com/napalu/goarg/types"
	"golang.org/x/text/cases"
)

// Convert parses text according to kind. Without strict, numeric text is read up to the first
// character which cannot continue the number ("42abc" is 42), out of range numbers saturate and text
// without any leading number yields zero; time text which fails to parse yields the zero time. With
// strict, any of these is reported with the matching parse error. Bool text is always checked: only
// true and false (in any case) are accepted.
func Convert(kind types.ValueType, text string, strict bool) (types.Value, error) {
	switch kind {
	case types.String:
		return types.StringValue(text), nil
	case types.UnsignedInt:
		u, err := strconv.ParseUint(text, 0, 64)
		if err != nil {
			if strict {
				return types.Value{}, fmt.Errorf(errs.FmtErrorWithString, errs.ErrParseUint, text)
			}
			u = leadingUint(text)
		}
		return types.UintValue(u), nil
	case types.SignedInt:
		i, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			if strict {
				return types.Value{}, fmt.Errorf(errs.FmtErrorWithString, errs.ErrParseInt, text)
			}
			i = leadingInt(text)
		}
		return types.IntValue(i), nil
	case types.Float:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			if strict {
				return types.Value{}, fmt.Errorf(errs.FmtErrorWithString, errs.ErrParseFloat, text)
			}
			f = leadingFloat(text)
		}
		return types.FloatValue(f), nil
	case types.Bool:
		return parseBool(text)
	case types.Toggle:
		return types.ToggleValue(), nil
	case types.Time:
		t, err := dateparse.ParseAny(text)
		if err != nil {
			if strict {
				return types.Value{}, fmt.Errorf(errs.FmtErrorWithString, errs.ErrParseTime, text)
			}
			t = time.Time{}
		}
		return types.TimeValue(t), nil
	}

	return types.Value{}, fmt.Errorf(errs.FmtErrorWithString, errs.ErrUnsupportedType, kind)
}

func parseBool(text string) (types.Value, error) {
	switch cases.Fold().String(text) {
	case "true":
		return types.BoolValue(true), nil
	case "false":
		return types.BoolValue(false), nil
	}

	return types.Value{}, fmt.Errorf(errs.FmtErrorWithString, errs.ErrParseBool, text)
}

func leadingUint(text string) uint64 {
	u, err := strconv.ParseUint(text, 0, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		u, _ = strconv.ParseUint(intPrefix(text, false), 0, 64)
	}
	return u
}

func leadingInt(text string) int64 {
	i, err := strconv.ParseInt(text, 0, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		i, _ = strconv.ParseInt(intPrefix(text, true), 0, 64)
	}
	return i
}

func leadingFloat(text string) float64 {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		f, _ = strconv.ParseFloat(floatPrefix(text), 64)
	}
	return f
}

// intPrefix returns the longest leading part of text forming an integer literal. A base prefix only
// counts when a digit of that base follows it.
func intPrefix(text string, signed bool) string {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)
	i := 0
	if i < len(s) && (s[i] == '+' || (signed && s[i] == '-')) {
		i++
	}

	isDigit := isDecimal
	switch rest := s[i:]; {
	case len(rest) > 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') && isHex(rest[2]):
		isDigit, i = isHex, i+2
	case len(rest) > 2 && rest[0] == '0' && (rest[1] == 'b' || rest[1] == 'B') && isBinary(rest[2]):
		isDigit, i = isBinary, i+2
	case len(rest) > 2 && rest[0] == '0' && (rest[1] == 'o' || rest[1] == 'O') && isOctal(rest[2]):
		isDigit, i = isOctal, i+2
	case len(rest) > 0 && rest[0] == '0':
		isDigit = isOctal
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return ""
	}
	if !signed {
		return strings.TrimPrefix(s[:i], "+")
	}

	return s[:i]
}

// floatPrefix returns the longest leading part of text forming a decimal floating point literal,
// inf, infinity or nan
func floatPrefix(text string) string {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for _, word := range []string{"infinity", "inf", "nan"} {
		if len(s)-i >= len(word) && strings.EqualFold(s[i:i+len(word)], word) {
			return s[:i+len(word)]
		}
	}

	digits := 0
	for i < len(s) && isDecimal(s[i]) {
		i, digits = i+1, digits+1
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDecimal(s[i]) {
			i, digits = i+1, digits+1
		}
	}
	if digits == 0 {
		return ""
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDecimal(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}

	return s[:end]
}

func isDecimal(c byte) bool { return '0' <= c && c <= '9' }

func isOctal(c byte) bool { return '0' <= c && c <= '7' }

func isBinary(c byte) bool { return c == '0' || c == '1' }

func isHex(c byte) bool {
	return isDecimal(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
